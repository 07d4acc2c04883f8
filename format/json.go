package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/wls/ejbjar"
)

type JSONEncoder struct {
	w   io.Writer
	doc any
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc any) error {
	e.doc = doc
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := json.MarshalIndent(buildDocument(e.doc), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// jsonDocument is shared by the JSON and YAML encoders.
type jsonDocument struct {
	Root      string         `json:"root" yaml:"root"`
	PublicIDs []string       `json:"publicIds,omitempty" yaml:"publicIds,omitempty"`
	Events    []ejbjar.Event `json:"events,omitempty" yaml:"events,omitempty"`
	Document  any            `json:"document" yaml:"document"`
}

func buildDocument(doc any) any {
	switch d := doc.(type) {
	case *ejbjar.Document:
		return jsonDocument{
			Root:      d.Root,
			PublicIDs: d.PublicIDs,
			Events:    d.Events,
			Document:  tree(d.Value),
		}
	case ejbjar.Document:
		return buildDocument(&d)
	}
	return tree(doc)
}
