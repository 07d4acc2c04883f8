package ejbjar

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Integer is an xsd:integer value: an optionally signed run of decimal
// digits of any length, surrounded by optional whitespace. Leading zeros do
// not make it octal and Go literal syntax such as 0x10 or 1_000 is
// rejected.
type Integer struct {
	big.Int
}

// IntegerOf returns a pointer to an Integer holding n.
func IntegerOf(n int64) *Integer {
	i := new(Integer)
	i.SetInt64(n)
	return i
}

// ParseInteger parses s in the xsd:integer lexical space.
func ParseInteger(s string) (*Integer, error) {
	i := new(Integer)
	if err := i.UnmarshalText([]byte(s)); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *Integer) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	if len(digits) == 0 || len(s)-len(digits) > 1 || strings.Trim(digits, "0123456789") != "" {
		return fmt.Errorf("invalid integer %q", string(text))
	}
	if _, ok := i.Int.SetString(strings.TrimPrefix(s, "+"), 10); !ok {
		return fmt.Errorf("invalid integer %q", string(text))
	}
	return nil
}

func (i *Integer) MarshalText() ([]byte, error) {
	if i == nil {
		return nil, nil
	}
	return []byte(i.Int.String()), nil
}

func (i *Integer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return i.UnmarshalText([]byte(s))
	}
	return i.UnmarshalText(data)
}

func (i *Integer) MarshalJSON() ([]byte, error) {
	return i.MarshalText()
}

func (i *Integer) String() string {
	if i == nil {
		return "<nil>"
	}
	return i.Int.String()
}
