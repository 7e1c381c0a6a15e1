package docxtext

import (
	"context"
	"time"
)

// Extraction records one extraction attempt.
type Extraction struct {
	ID           string    `json:"id"`
	SourcePath   string    `json:"sourcePath"`
	OutputPath   string    `json:"outputPath"`
	Paragraphs   int       `json:"paragraphs"`
	Text         string    `json:"text"`
	ContentHash  string    `json:"contentHash"`
	ErrorCode    string    `json:"errorCode"`
	ErrorMessage string    `json:"errorMessage"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewExtraction builds a record from the result of extracting path.
func NewExtraction(path, outputPath string, doc *Document, err error) *Extraction {
	e := &Extraction{
		SourcePath: path,
		OutputPath: outputPath,
	}
	if err != nil {
		e.ErrorCode = ErrorCode(err)
		e.ErrorMessage = ErrorMessage(err)
		return e
	}
	e.Paragraphs = doc.Len()
	e.Text = doc.Text()
	return e
}

// Failed reports whether the extraction ended in an error.
func (e *Extraction) Failed() bool {
	return e.ErrorCode != ""
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.SourcePath == "" {
		return Errorf(EINVALID, "extraction source path required")
	}
	return nil
}

// ExtractionService represents a service for recording extractions.
type ExtractionService interface {
	// CreateExtraction records a new extraction.
	CreateExtraction(ctx context.Context, e *Extraction) error

	// FindExtractionByID retrieves an extraction by ID.
	// Returns ENOTFOUND if extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter,
	// newest first.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID          *string `json:"id"`
	SourcePath  *string `json:"sourcePath"`
	ContentHash *string `json:"contentHash"`
	Failed      *bool   `json:"failed"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
