package masking

import "encoding/json"

const redacted = "*** redacted ***"

// Secret wraps a sensitive string so it cannot leak through logging or
// accidental serialization. Reading the value requires an explicit Peek.
type Secret struct {
	inner string
}

func NewSecret(value string) Secret {
	return Secret{inner: value}
}

// Peek returns the wrapped value.
func (s Secret) Peek() string {
	return s.inner
}

// IsEmpty reports whether no value is wrapped.
func (s Secret) IsEmpty() bool {
	return s.inner == ""
}

// String implements fmt.Stringer and always redacts.
func (s Secret) String() string {
	return redacted
}

// MarshalJSON redacts the value. Code paths that genuinely need the raw
// value must call Peek before serializing.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(redacted)
}

// UnmarshalJSON accepts a raw string value.
func (s *Secret) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	s.inner = value
	return nil
}
