package docxtext

import "strings"

// DocumentPart is the archive entry holding the document body.
const DocumentPart = "word/document.xml"

// WordprocessingMLNamespace is the namespace URI of document body elements.
const WordprocessingMLNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Local names of the WordprocessingML elements that carry text.
const (
	ParagraphTag = "p"
	TextRunTag   = "t"
)

// Document represents the plain text extracted from a document body.
type Document struct {
	// Path is the container the document was read from.
	Path string `json:"path"`

	// Paragraphs holds one entry per paragraph element in document order.
	// Paragraphs without text are kept as empty strings so blank lines
	// survive extraction.
	Paragraphs []string `json:"paragraphs"`
}

// Len returns the number of paragraphs in the document.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Paragraphs)
}

// Text joins the paragraphs with a single newline.
func (d *Document) Text() string {
	if d == nil {
		return ""
	}
	return strings.Join(d.Paragraphs, "\n")
}

// FormatResult renders an extraction result as a single string: the
// document text on success, or "Error: " followed by the error message.
func FormatResult(doc *Document, err error) string {
	if err != nil {
		return "Error: " + ErrorMessage(err)
	}
	return doc.Text()
}
