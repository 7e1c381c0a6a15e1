// Package etree parses WordprocessingML document bodies into paragraphs
// using an in-memory element tree.
package etree

import (
	"bytes"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docxtext"
	"golang.org/x/net/html/charset"
)

// Ensure Parser implements docxtext.Parser at compile time.
var _ docxtext.Parser = (*Parser)(nil)

// Parser builds an etree document from body XML and collects the text of
// every paragraph.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns one paragraph per w:p element found anywhere in data, in
// document order. A paragraph's text is the concatenation of every w:t
// beneath it, at any depth.
func (p *Parser) Parse(data []byte) (*docxtext.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, docxtext.Errorf(docxtext.EPARSE, "empty document")
	}

	doc := etree.NewDocument()
	doc.ReadSettings.ValidateInput = true
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, docxtext.Errorf(docxtext.EPARSE, "%v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, docxtext.Errorf(docxtext.EPARSE, "no root element")
	}

	var unbound *etree.Element
	paragraphs := make([]string, 0)
	walk(root, func(e *etree.Element) {
		if unbound == nil && e.Space != "" && e.NamespaceURI() == "" {
			unbound = e
		}
		if isWordElement(e, docxtext.ParagraphTag) {
			paragraphs = append(paragraphs, paragraphText(e))
		}
	})
	if unbound != nil {
		return nil, docxtext.Errorf(docxtext.EPARSE, "unbound prefix %q on element <%s>", unbound.Space, unbound.FullTag())
	}

	return &docxtext.Document{Paragraphs: paragraphs}, nil
}

// paragraphText concatenates the text runs beneath p. Runs inside nested
// paragraphs are included.
func paragraphText(p *etree.Element) string {
	var b strings.Builder
	walk(p, func(e *etree.Element) {
		if isWordElement(e, docxtext.TextRunTag) {
			b.WriteString(e.Text())
		}
	})
	return b.String()
}

// walk visits e and then its descendants, depth first in document order.
func walk(e *etree.Element, visit func(*etree.Element)) {
	visit(e)
	for _, child := range e.ChildElements() {
		walk(child, visit)
	}
}

// isWordElement reports whether e is the WordprocessingML element with the
// given local name, whatever prefix the document binds to the namespace.
func isWordElement(e *etree.Element, local string) bool {
	return e.Tag == local && e.NamespaceURI() == docxtext.WordprocessingMLNamespace
}
