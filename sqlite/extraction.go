package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/docxtext"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docxtext.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements docxtext.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

const extractionColumns = "id, source_path, output_path, paragraphs, text, content_hash, error_code, error_message, created_at"

// CreateExtraction records a new extraction. ID, CreatedAt and ContentHash
// are assigned here.
func (s *ExtractionService) CreateExtraction(ctx context.Context, e *docxtext.Extraction) error {
	if err := e.Validate(); err != nil {
		return err
	}

	e.ID = uuid.New().String()
	e.CreatedAt = time.Now().UTC()
	e.ContentHash = ""
	if !e.Failed() {
		e.ContentHash = hashContent(e.Text)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO extractions (`+extractionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.SourcePath, e.OutputPath, e.Paragraphs, e.Text, e.ContentHash,
		e.ErrorCode, e.ErrorMessage, formatTime(e.CreatedAt))

	return err
}

// FindExtractionByID retrieves an extraction by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*docxtext.Extraction, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+extractionColumns+` FROM extractions WHERE id = ?`, id)

	e, err := scanExtraction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docxtext.Errorf(docxtext.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}

	return e, nil
}

// FindExtractions retrieves extractions matching the filter, newest first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter docxtext.ExtractionFilter) ([]*docxtext.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + extractionColumns + " FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourcePath != nil {
		query.WriteString(" AND source_path = ?")
		args = append(args, *filter.SourcePath)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}
	if filter.Failed != nil {
		if *filter.Failed {
			query.WriteString(" AND error_code != ''")
		} else {
			query.WriteString(" AND error_code = ''")
		}
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*docxtext.Extraction
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, e)
	}

	return extractions, rows.Err()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanExtraction(sc scanner) (*docxtext.Extraction, error) {
	var e docxtext.Extraction
	var createdAt string

	if err := sc.Scan(&e.ID, &e.SourcePath, &e.OutputPath, &e.Paragraphs, &e.Text,
		&e.ContentHash, &e.ErrorCode, &e.ErrorMessage, &createdAt); err != nil {
		return nil, err
	}

	var err error
	e.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &e, nil
}
