package ejbjar

import (
	"bytes"
	"embed"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/jacoelho/xsd"
	xsderrors "github.com/jacoelho/xsd/errors"
)

//go:embed schema/*.xsd
var schemaFS embed.FS

// SchemaFile is the embedded schema covering both descriptor roots.
const SchemaFile = "schema/weblogic-90.xsd"

var rootSchemas = map[string]string{
	"weblogic-ejb-jar":   SchemaFile,
	"weblogic-rdbms-jar": SchemaFile,
}

// Event is a schema validation event. Line numbers refer to the document as
// it was read.
type Event struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column  int    `json:"column,omitempty" yaml:"column,omitempty"`
}

func (e Event) String() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "%d:%d: ", e.Line, e.Column)
	}
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Path != "" {
		fmt.Fprintf(&b, " at %s", e.Path)
	}
	return b.String()
}

type compiledSchema struct {
	once   sync.Once
	schema *xsd.Schema
	err    error
}

// Validator checks descriptors against the WebLogic schema. Schemas are
// compiled on first use and shared by all callers; a Validator is safe for
// concurrent use.
type Validator struct {
	fsys fs.FS

	mu      sync.Mutex
	schemas map[string]*compiledSchema
}

// NewValidator returns a validator backed by the embedded schema.
func NewValidator() *Validator {
	return NewValidatorFS(schemaFS)
}

// NewValidatorFS returns a validator that loads SchemaFile from fsys.
func NewValidatorFS(fsys fs.FS) *Validator {
	return &Validator{
		fsys:    fsys,
		schemas: make(map[string]*compiledSchema),
	}
}

// Schema returns the source of the schema used for root.
func (v *Validator) Schema(root string) ([]byte, error) {
	location, ok := rootSchemas[root]
	if !ok {
		return nil, fmt.Errorf("%w: <%s>", ErrNoSchema, root)
	}
	return fs.ReadFile(v.fsys, location)
}

func (v *Validator) compiled(location string) (*xsd.Schema, error) {
	v.mu.Lock()
	c, ok := v.schemas[location]
	if !ok {
		c = &compiledSchema{}
		v.schemas[location] = c
	}
	v.mu.Unlock()

	c.once.Do(func() {
		log.Debugf("compiling schema %s", location)
		c.schema, c.err = xsd.LoadWithOptions(v.fsys, location, xsd.NewLoadOptions())
	})
	return c.schema, c.err
}

// Validate checks data, a document whose root element is root. Violations
// are returned as events and logged; the error is reserved for input that
// cannot be validated at all.
func (v *Validator) Validate(root string, data []byte) ([]Event, error) {
	location, ok := rootSchemas[root]
	if !ok {
		return nil, fmt.Errorf("%w: <%s>", ErrNoSchema, root)
	}
	schema, err := v.compiled(location)
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	normalized, err := normalizeDocument(data, Namespace)
	if err != nil {
		return nil, fmt.Errorf("read descriptor: %w", err)
	}

	err = schema.Validate(bytes.NewReader(normalized))
	if err == nil {
		return nil, nil
	}
	violations, ok := xsderrors.AsValidations(err)
	if !ok {
		return nil, fmt.Errorf("validate <%s>: %w", root, err)
	}

	events := make([]Event, 0, len(violations))
	for _, vi := range violations {
		e := Event{
			Code:    vi.Code,
			Message: vi.Message,
			Path:    vi.Path,
			Line:    vi.Line,
			Column:  vi.Column,
		}
		log.Warningf("<%s>: %s", root, e)
		events = append(events, e)
	}
	return events, nil
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\n", "&#xA;", "\r", "&#xD;", "\t", "&#x9;")
)

// normalizeDocument rewrites data into a document the schema can check:
// every element in ns, no DOCTYPE, and only unqualified attributes. Line
// breaks are kept in place so event lines still match the input.
func normalizeDocument(data []byte, ns string) ([]byte, error) {
	input := newInputDecoder(data)
	filter := NewNamespaceFilter(input, ns)

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	wroteRoot := false
	for {
		before, _ := input.InputPos()
		tok, err := filter.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		after, _ := input.InputPos()
		breaks := strings.Repeat("\n", after-before)

		switch t := tok.(type) {
		case xml.StartElement:
			buf.WriteByte('<')
			buf.WriteString(t.Name.Local)
			if !wroteRoot {
				buf.WriteString(` xmlns="`)
				attrEscaper.WriteString(&buf, ns)
				buf.WriteByte('"')
				wroteRoot = true
			}
			for _, a := range t.Attr {
				if a.Name.Space != "" || a.Name.Local == "xmlns" {
					continue
				}
				buf.WriteByte(' ')
				buf.WriteString(a.Name.Local)
				buf.WriteString(`="`)
				attrEscaper.WriteString(&buf, a.Value)
				buf.WriteByte('"')
			}
			buf.WriteString(breaks)
			buf.WriteByte('>')
		case xml.EndElement:
			buf.WriteString("</")
			buf.WriteString(t.Name.Local)
			buf.WriteString(breaks)
			buf.WriteByte('>')
		case xml.CharData:
			textEscaper.WriteString(&buf, string(t))
		case xml.Comment:
			buf.WriteString("<!--")
			buf.Write(t)
			buf.WriteString("-->")
		default:
			buf.WriteString(breaks)
		}
	}
	if !wroteRoot {
		return nil, ErrEmptyDocument
	}
	return buf.Bytes(), nil
}
