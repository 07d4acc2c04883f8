package ejbjar

import (
	"encoding/json"
	"strings"
)

// Bool is a WebLogic true-false value. WebLogic descriptors accept a wider
// lexical space than xsd:boolean; anything outside the truthy set reads as
// false. Values are always written back as "true" or "false".
type Bool bool

// BoolOf returns a pointer to b, for populating optional fields.
func BoolOf(b bool) *Bool {
	v := Bool(b)
	return &v
}

// Value reports the value of b. A nil Bool is false.
func (b *Bool) Value() bool {
	return b != nil && bool(*b)
}

// ParseBool reports whether s is one of the lexical forms WebLogic treats as
// true: true, True, TRUE, yes, Yes, YES, Y or 1.
func ParseBool(s string) bool {
	switch strings.TrimSpace(s) {
	case "true", "True", "TRUE", "yes", "Yes", "YES", "Y", "1":
		return true
	}
	return false
}

// FormatBool returns the canonical lexical form of b.
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) String() string {
	return FormatBool(bool(b))
}

func (b Bool) MarshalText() ([]byte, error) {
	return []byte(FormatBool(bool(b))), nil
}

func (b *Bool) UnmarshalText(text []byte) error {
	*b = Bool(ParseBool(string(text)))
	return nil
}

func (b Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// UnmarshalJSON accepts a JSON boolean or any string in the WebLogic lexical
// space.
func (b *Bool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = Bool(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*b = Bool(ParseBool(s))
	return nil
}

// Empty marks presence-only elements such as externally-defined.
type Empty struct{}
