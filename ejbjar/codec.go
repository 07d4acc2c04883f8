package ejbjar

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"
	"golang.org/x/net/html/charset"
)

var log = commonlog.GetLogger("wls.ejbjar")

// Document is a decoded descriptor together with what was learned while
// decoding it.
type Document struct {
	// Root is the local name of the document element.
	Root string
	// Value is a pointer to the model type bound to Root.
	Value any
	// PublicIDs lists the DOCTYPE public identifiers of DTD-era documents.
	PublicIDs []string
	// Events holds schema validation events. They never fail a decode.
	Events []Event
}

// Valid reports whether validation produced no events.
func (d *Document) Valid() bool {
	return len(d.Events) == 0
}

type DecodeOption func(*Decoder)

// WithNamespace rewrites elements into ns instead of Namespace.
func WithNamespace(ns string) DecodeOption {
	return func(d *Decoder) {
		d.namespace = ns
	}
}

// WithValidation validates document roots against the WebLogic schema while
// decoding.
func WithValidation(v *Validator) DecodeOption {
	return func(d *Decoder) {
		d.validator = v
	}
}

// WithEventHandler registers fn to be called for each validation event.
func WithEventHandler(fn func(Event)) DecodeOption {
	return func(d *Decoder) {
		d.onEvent = fn
	}
}

// Decoder reads a single descriptor document. Every element is moved into
// one namespace before it reaches encoding/xml, so documents that omit the
// namespace declaration, or use another one, bind the same way.
type Decoder struct {
	r         io.Reader
	namespace string
	validator *Validator
	onEvent   func(Event)

	publicIDs []string
	events    []Event
}

func NewDecoder(r io.Reader, opts ...DecodeOption) *Decoder {
	d := &Decoder{r: r, namespace: Namespace}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode decodes the document into v, which must be a pointer to the model
// type of the document's root element.
func (d *Decoder) Decode(v any) error {
	_, err := d.decode(func(string) (any, error) { return v, nil })
	return err
}

// DecodeElement decodes the document into a new value of the type
// registered for its root element. Any registered element may be the root,
// so descriptor fragments decode as well.
func (d *Decoder) DecodeElement() (any, error) {
	doc, err := d.DecodeDocument()
	if err != nil {
		return nil, err
	}
	return doc.Value, nil
}

func (d *Decoder) DecodeDocument() (*Document, error) {
	return d.decode(func(root string) (any, error) {
		v, ok := NewElement(root)
		if !ok {
			return nil, fmt.Errorf("%w: <%s>", ErrUnknownElement, root)
		}
		return v, nil
	})
}

// PublicIDs returns the DOCTYPE public identifiers seen by the last decode.
func (d *Decoder) PublicIDs() []string {
	return d.publicIDs
}

// Events returns the validation events of the last decode.
func (d *Decoder) Events() []Event {
	return d.events
}

func (d *Decoder) decode(target func(root string) (any, error)) (*Document, error) {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, fmt.Errorf("read descriptor: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	filter := NewNamespaceFilter(newInputDecoder(data), d.namespace)
	dec := xml.NewTokenDecoder(filter)

	start, err := firstElement(dec)
	if err != nil {
		return nil, err
	}
	root := start.Name.Local

	v, err := target(root)
	if err != nil {
		return nil, err
	}
	if err := dec.DecodeElement(v, &start); err != nil {
		return nil, fmt.Errorf("decode <%s>: %w", root, err)
	}
	d.publicIDs = filter.PublicIDs()
	d.events = nil

	if d.validator != nil && IsRoot(root) {
		events, err := d.validator.Validate(root, data)
		if err != nil {
			log.Errorf("validate <%s>: %s", root, err)
		}
		d.events = events
		if d.onEvent != nil {
			for _, e := range events {
				d.onEvent(e)
			}
		}
	}

	return &Document{
		Root:      root,
		Value:     v,
		PublicIDs: d.publicIDs,
		Events:    d.events,
	}, nil
}

func newInputDecoder(data []byte) *xml.Decoder {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	return dec
}

func firstElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, ErrEmptyDocument
		}
		if err != nil {
			return xml.StartElement{}, fmt.Errorf("read descriptor: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	return NewDecoder(bytes.NewReader(data)).Decode(v)
}

// UnmarshalFile decodes the descriptor at path into v.
func UnmarshalFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open descriptor: %w", err)
	}
	defer f.Close()

	if err := NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Encoder writes model values as XML documents in schema order, with an XML
// declaration and the namespace declared on the root element.
type Encoder struct {
	w         io.Writer
	Namespace string
	Indent    string
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, Namespace: Namespace, Indent: "  "}
}

func (e *Encoder) Encode(v any) error {
	name, ok := ElementName(v)
	if !ok {
		return fmt.Errorf("marshal %T: %w", v, ErrUnknownElement)
	}

	if _, err := io.WriteString(e.w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(e.w)
	enc.Indent("", e.Indent)
	start := xml.StartElement{Name: xml.Name{Space: e.Namespace, Local: name}}
	if err := enc.EncodeElement(v, start); err != nil {
		return fmt.Errorf("marshal <%s>: %w", name, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("marshal <%s>: %w", name, err)
	}
	_, err := io.WriteString(e.w, "\n")
	return err
}

// Marshal returns the XML document for v.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := MarshalTo(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func MarshalTo(w io.Writer, v any) error {
	return NewEncoder(w).Encode(v)
}
