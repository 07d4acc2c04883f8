package format

import (
	"encoding"
	"errors"
	"fmt"
	"io"
	"slices"
)

// Encoder writes a descriptor. Encode accepts a *ejbjar.Document or a bare
// model value such as *ejbjar.WeblogicEjbJar.
type Encoder interface {
	encoding.TextMarshaler
	Encode(doc any) error
}

var ErrUnknownFormat = errors.New("unknown format")

// Names lists the formats New understands.
var Names = []string{"json", "yaml", "xml"}

// New returns the encoder registered under name.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml", "yml":
		return NewYAMLEncoder(w), nil
	case "xml":
		return NewXMLEncoder(w), nil
	}
	return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownFormat, name, slices.Clone(Names))
}

// ContentType returns the media type of the named format.
func ContentType(name string) string {
	switch name {
	case "yaml", "yml":
		return "application/yaml"
	case "xml":
		return "application/xml; charset=utf-8"
	default:
		return "application/json"
	}
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
