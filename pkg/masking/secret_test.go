package masking

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestSecretRedactsInFormatting(t *testing.T) {
	s := NewSecret("pk_live_abc123")
	if got := fmt.Sprintf("%v", s); strings.Contains(got, "pk_live") {
		t.Fatalf("secret leaked through Stringer: %s", got)
	}
	if s.Peek() != "pk_live_abc123" {
		t.Fatalf("peek returned %q", s.Peek())
	}
}

func TestSecretRedactsInJSON(t *testing.T) {
	payload := struct {
		Key Secret `json:"key"`
	}{Key: NewSecret("sk_live_secret")}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), "sk_live") {
		t.Fatalf("secret leaked through json: %s", out)
	}
}

func TestSecretUnmarshal(t *testing.T) {
	var s Secret
	if err := json.Unmarshal([]byte(`"hunter2"`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Peek() != "hunter2" {
		t.Fatalf("got %q", s.Peek())
	}
	if s.IsEmpty() {
		t.Fatal("expected non-empty secret")
	}
}
