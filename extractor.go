package docxtext

import "context"

// Extractor extracts plain text from a document container.
type Extractor interface {
	// Extract opens the container at path and returns its paragraphs.
	// Returns EARCHIVE if the container cannot be read, ENOTFOUND if it has
	// no document body, and EPARSE if the body is not well-formed XML.
	Extract(ctx context.Context, path string) (*Document, error)
}

// PartReader reads named entries from a container archive.
type PartReader interface {
	// ReadPart returns the bytes of the entry called name inside the
	// archive at path. The archive is released before ReadPart returns.
	// Returns EARCHIVE if the archive cannot be opened or read and
	// ENOTFOUND if it has no such entry.
	ReadPart(ctx context.Context, path, name string) ([]byte, error)
}

// Parser turns document body XML into paragraphs.
type Parser interface {
	// Parse returns one paragraph per paragraph element in data.
	// Returns EPARSE if data is not well-formed XML.
	Parse(data []byte) (*Document, error)
}

// TextWriter persists extracted text.
type TextWriter interface {
	// WriteText writes text to path as UTF-8, replacing any existing file.
	WriteText(ctx context.Context, path, text string) error
}
