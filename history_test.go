package docxtext_test

import (
	"testing"

	"github.com/fwojciec/docxtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtraction(t *testing.T) {
	t.Parallel()

	t.Run("records successful extraction", func(t *testing.T) {
		t.Parallel()

		doc := &docxtext.Document{Paragraphs: []string{"Hi there", ""}}

		e := docxtext.NewExtraction("in.docx", "out.txt", doc, nil)

		assert.Equal(t, "in.docx", e.SourcePath)
		assert.Equal(t, "out.txt", e.OutputPath)
		assert.Equal(t, 2, e.Paragraphs)
		assert.Equal(t, "Hi there\n", e.Text)
		assert.False(t, e.Failed())
	})

	t.Run("records failed extraction", func(t *testing.T) {
		t.Parallel()

		err := docxtext.Errorf(docxtext.EPARSE, "XML syntax error on line 1")

		e := docxtext.NewExtraction("in.docx", "out.txt", nil, err)

		assert.True(t, e.Failed())
		assert.Equal(t, docxtext.EPARSE, e.ErrorCode)
		assert.Equal(t, "XML syntax error on line 1", e.ErrorMessage)
		assert.Zero(t, e.Paragraphs)
		assert.Empty(t, e.Text)
	})
}

func TestExtraction_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires source path", func(t *testing.T) {
		t.Parallel()

		err := (&docxtext.Extraction{}).Validate()

		require.Error(t, err)
		assert.Equal(t, docxtext.EINVALID, docxtext.ErrorCode(err))
	})

	t.Run("accepts minimal extraction", func(t *testing.T) {
		t.Parallel()

		err := (&docxtext.Extraction{SourcePath: "in.docx"}).Validate()

		assert.NoError(t, err)
	})
}
