// Package extract provides the extraction pipeline.
// It reads the document body part from a container and parses it into
// paragraphs.
package extract

import (
	"context"

	"github.com/fwojciec/docxtext"
)

// Ensure Extractor implements docxtext.Extractor at compile time.
var _ docxtext.Extractor = (*Extractor)(nil)

// Extractor combines a PartReader and a Parser into a docxtext.Extractor.
type Extractor struct {
	Parts  docxtext.PartReader
	Parser docxtext.Parser
}

// Extract reads the document body of the container at path and returns its
// paragraphs. The container is closed before the body is parsed. A panic in
// either stage is returned as an EINTERNAL error.
func (e *Extractor) Extract(ctx context.Context, path string) (doc *docxtext.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = docxtext.Errorf(docxtext.EINTERNAL, "extracting %s: %v", path, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := e.Parts.ReadPart(ctx, path, docxtext.DocumentPart)
	if err != nil {
		return nil, err
	}

	doc, err = e.Parser.Parse(data)
	if err != nil {
		return nil, err
	}
	doc.Path = path

	return doc, nil
}
