package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestMissingRequiredFieldCarriesFieldName(t *testing.T) {
	err := MissingRequiredField("client_secret")
	if err.Code() != CodeMissingField {
		t.Fatalf("expected %s, got %s", CodeMissingField, err.Code())
	}
	details, ok := err.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected map details, got %T", err.Details())
	}
	if details["field_name"] != "client_secret" {
		t.Fatalf("expected field_name client_secret, got %v", details["field_name"])
	}
}

func TestNotAllowedCarriesAction(t *testing.T) {
	err := NotAllowed("use payment link for", "succeeded")
	if err.Code() != CodeNotAllowed {
		t.Fatalf("expected %s, got %s", CodeNotAllowed, err.Code())
	}
	details := err.Details().(map[string]any)
	if details["action"] != "use payment link for" {
		t.Fatalf("action not carried: %v", details)
	}
	if details["status"] != "succeeded" {
		t.Fatalf("status not carried: %v", details)
	}
}

func TestAsUnwrapsThroughChain(t *testing.T) {
	inner := InvalidDataValue("payment_link_config", fmt.Errorf("bad json"))
	wrapped := fmt.Errorf("resolving config: %w", inner)
	typed := As(wrapped)
	if typed == nil {
		t.Fatal("expected typed error through wrap chain")
	}
	if typed.Code() != CodeInvalidValue {
		t.Fatalf("expected %s, got %s", CodeInvalidValue, typed.Code())
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("BOGUS"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestIsCode(t *testing.T) {
	err := New(CodeNotFound, "payment link not found")
	if !IsCode(err, CodeNotFound) {
		t.Fatal("expected IsCode to match")
	}
	if IsCode(err, CodeInternal) {
		t.Fatal("expected IsCode mismatch")
	}
	if IsCode(nil, CodeNotFound) {
		t.Fatal("nil error must not match")
	}
}
