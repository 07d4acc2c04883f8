package ejbjar

import (
	"bytes"
	"encoding/xml"
	"slices"
)

// Namespace is the namespace of the WebLogic 9.x descriptor schemas. Older
// DTD-based descriptors carry no namespace at all, and some 10.x documents
// use the Oracle namespace; both are rewritten to this one while decoding.
const Namespace = "http://www.bea.com/ns/weblogic/90"

// NamespaceFilter is an xml.TokenReader that moves every element into a
// single namespace and remembers the public identifiers of the DOCTYPE
// declarations it passes through.
type NamespaceFilter struct {
	src       xml.TokenReader
	namespace string
	publicIDs []string
}

// NewNamespaceFilter wraps src so that every element it yields is in ns.
func NewNamespaceFilter(src xml.TokenReader, ns string) *NamespaceFilter {
	return &NamespaceFilter{src: src, namespace: ns}
}

func (f *NamespaceFilter) Token() (xml.Token, error) {
	tok, err := f.src.Token()
	if tok == nil {
		return nil, err
	}
	switch t := tok.(type) {
	case xml.StartElement:
		t.Name.Space = f.namespace
		tok = t
	case xml.EndElement:
		t.Name.Space = f.namespace
		tok = t
	case xml.Directive:
		if id, ok := doctypePublicID(t); ok && !slices.Contains(f.publicIDs, id) {
			f.publicIDs = append(f.publicIDs, id)
		}
	}
	return tok, err
}

// PublicIDs returns the DOCTYPE public identifiers seen so far, in order of
// first appearance.
func (f *NamespaceFilter) PublicIDs() []string {
	return slices.Clone(f.publicIDs)
}

// doctypePublicID extracts the public identifier from a directive of the
// form DOCTYPE name PUBLIC "id" "system".
func doctypePublicID(d xml.Directive) (string, bool) {
	rest, ok := bytes.CutPrefix(bytes.TrimSpace(d), []byte("DOCTYPE"))
	if !ok {
		return "", false
	}
	fields := bytes.Fields(rest)
	if len(fields) < 3 || !bytes.Equal(fields[1], []byte("PUBLIC")) {
		return "", false
	}

	i := bytes.Index(rest, []byte("PUBLIC")) + len("PUBLIC")
	lit := bytes.TrimLeft(rest[i:], " \t\r\n")
	if len(lit) == 0 || (lit[0] != '"' && lit[0] != '\'') {
		return "", false
	}
	end := bytes.IndexByte(lit[1:], lit[0])
	if end < 0 {
		return "", false
	}
	return string(lit[1 : end+1]), true
}
