package format

import (
	"bytes"
	"io"

	"github.com/dhamidi/wls/ejbjar"
)

// XMLEncoder writes the canonical XML form of a descriptor. Validation
// events and public identifiers are not part of the output.
type XMLEncoder struct {
	w   io.Writer
	doc any

	Namespace string
}

func NewXMLEncoder(w io.Writer) *XMLEncoder {
	return &XMLEncoder{w: w, Namespace: ejbjar.Namespace}
}

func (e *XMLEncoder) Encode(doc any) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *XMLEncoder) MarshalText() ([]byte, error) {
	v := e.doc
	switch d := v.(type) {
	case *ejbjar.Document:
		v = d.Value
	case ejbjar.Document:
		v = d.Value
	}

	var buf bytes.Buffer
	enc := ejbjar.NewEncoder(&buf)
	enc.Namespace = e.Namespace
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
