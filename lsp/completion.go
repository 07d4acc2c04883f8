package lsp

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/dhamidi/wls/ejbjar"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// completions offers element names after "<" and the name of the open
// element after "</".
func completions(text string, line, character int) []protocol.CompletionItem {
	pos := protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(character)}
	offset := pos.IndexIn(text)
	if offset <= 0 || offset > len(text) {
		return nil
	}
	before := text[:offset]

	closing := false
	switch {
	case strings.HasSuffix(before, "</"):
		closing = true
		before = strings.TrimSuffix(before, "</")
	case strings.HasSuffix(before, "<"):
		before = strings.TrimSuffix(before, "<")
	default:
		return nil
	}

	parent := enclosingElement(before)
	if closing {
		if parent == "" {
			return nil
		}
		return []protocol.CompletionItem{completionItem(0, parent, parent+">")}
	}

	var names []string
	switch {
	case parent == "":
		names = ejbjar.RootElements()
	default:
		names = ejbjar.ChildElements(parent)
		if len(names) == 0 {
			names = ejbjar.ElementNames()
		}
	}

	items := make([]protocol.CompletionItem, len(names))
	for i, name := range names {
		items[i] = completionItem(i, name, name)
	}
	return items
}

func completionItem(i int, label, insert string) protocol.CompletionItem {
	kind := protocol.CompletionItemKindProperty
	sortText := fmt.Sprintf("%03d", i)
	return protocol.CompletionItem{
		Label:      label,
		Kind:       &kind,
		SortText:   &sortText,
		InsertText: &insert,
	}
}

// enclosingElement returns the innermost element still open at the end of
// text, which may be an incomplete document.
func enclosingElement(text string) string {
	dec := newTextDecoder([]byte(text))
	var stack []string
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1]
}
