package lsp

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/wls/ejbjar"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"golang.org/x/net/html/charset"
)

const diagnosticSource = "wls"

// diagnose decodes text and reports what is wrong with it. Documents whose
// root is not a descriptor root get no diagnostics.
func diagnose(data []byte, namespace string, validator *ejbjar.Validator) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	root, ok := rootElement(data)
	if !ok || !ejbjar.IsRoot(root) {
		return diagnostics
	}
	text := string(data)

	dec := ejbjar.NewDecoder(bytes.NewReader(data),
		ejbjar.WithNamespace(namespace),
		ejbjar.WithValidation(validator),
	)
	doc, err := dec.DecodeDocument()
	if err != nil {
		line := 0
		var syntaxErr *xml.SyntaxError
		if errors.As(err, &syntaxErr) {
			line = syntaxErr.Line - 1
		}
		return append(diagnostics, diagnostic(text, line, 0, protocol.DiagnosticSeverityError, "", err.Error()))
	}

	for _, e := range doc.Events {
		diagnostics = append(diagnostics,
			diagnostic(text, e.Line-1, e.Column-1, protocol.DiagnosticSeverityWarning, e.Code, e.Message))
	}

	lines := elementLines(data)
	for _, f := range ejbjar.Check(doc.Value) {
		diagnostics = append(diagnostics,
			diagnostic(text, lines.find(f.Path)-1, 0, protocol.DiagnosticSeverityWarning, f.Rule, f.Message))
	}
	return diagnostics
}

func diagnostic(text string, line, column int, severity protocol.DiagnosticSeverity, code, message string) protocol.Diagnostic {
	line = max(line, 0)
	column = max(column, 0)
	start := protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(column)}

	d := protocol.Diagnostic{
		Range: protocol.Range{
			Start: start,
			End:   start.EndOfLineIn(text),
		},
		Severity: &severity,
		Source:   strPtr(diagnosticSource),
		Message:  message,
	}
	if code != "" {
		d.Code = &protocol.IntegerOrString{Value: code}
	}
	return d
}

func newTextDecoder(data []byte) *xml.Decoder {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	dec.CharsetReader = charset.NewReaderLabel
	return dec
}

func rootElement(data []byte) (string, bool) {
	dec := newTextDecoder(data)
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", false
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local, true
		}
	}
}

// lineIndex maps element paths such as /a[1]/b[2] to the line their start
// tag ends on.
type lineIndex map[string]int

func elementLines(data []byte) lineIndex {
	type frame struct {
		path   string
		counts map[string]int
	}

	lines := make(lineIndex)
	stack := []frame{{counts: make(map[string]int)}}
	dec := newTextDecoder(data)
	for {
		tok, err := dec.Token()
		if err != nil {
			return lines
		}
		switch t := tok.(type) {
		case xml.StartElement:
			parent := &stack[len(stack)-1]
			parent.counts[t.Name.Local]++
			path := fmt.Sprintf("%s/%s[%d]", parent.path, t.Name.Local, parent.counts[t.Name.Local])
			line, _ := dec.InputPos()
			lines[path] = line
			stack = append(stack, frame{path: path, counts: make(map[string]int)})
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}
}

// find returns the line of the element at path, a finding path like
// a/b[2]/c, or of its nearest ancestor that exists. It returns 1 when
// nothing matches.
func (idx lineIndex) find(path string) int {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if !strings.HasSuffix(s, "]") {
			segments[i] = s + "[1]"
		}
	}
	for n := len(segments); n > 0; n-- {
		if line, ok := idx["/"+strings.Join(segments[:n], "/")]; ok {
			return line
		}
	}
	return 1
}

func strPtr(s string) *string {
	return &s
}
