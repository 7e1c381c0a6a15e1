package main_test

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/docxtext"
	main "github.com/fwojciec/docxtext/cmd/docxtext"
	"github.com/fwojciec/docxtext/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDocx creates a .docx archive in dir with the given document body.
// An empty body writes an archive without word/document.xml.
func writeDocx(t *testing.T, dir, body string) string {
	t.Helper()

	path := filepath.Join(dir, "input.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<Types/>`))
	require.NoError(t, err)
	if body != "" {
		w, err := zw.Create("word/document.xml")
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return path
}

// twoParagraphs is a document body with "Hi there" and an empty paragraph.
const twoParagraphs = `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
	`<w:p><w:r><w:t>Hi</w:t></w:r><w:r><w:t xml:space="preserve"> there</w:t></w:r></w:p>` +
	`<w:p/>` +
	`</w:body></w:document>`

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "docxtext")
	assert.Contains(t, stdout.String(), "input")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestMain_Run_MissingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "missing.docx")
	output := filepath.Join(dir, "out.txt")
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{input, output}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, docxtext.ENOTFOUND, docxtext.ErrorCode(err))
	assert.Contains(t, stderr.String(), "file not found: "+input)
	assert.NoFileExists(t, output)
}

func TestMain_Run_Extracts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeDocx(t, dir, twoParagraphs)
	output := filepath.Join(dir, "out.txt")
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{input, output}, &stdout, &stderr)

	require.NoError(t, err)
	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "Hi there\n", string(content))
	assert.Equal(t, "Successfully wrote to "+output+"\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestMain_Run_Stdout(t *testing.T) {
	t.Parallel()

	input := writeDocx(t, t.TempDir(), twoParagraphs)
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{input, "-"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "Hi there\n", stdout.String())
}

func TestMain_Run_DefaultOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeDocx(t, dir, twoParagraphs)
	t.Chdir(dir)
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{input}, &stdout, &stderr)

	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(dir, main.DefaultOutput))
	require.NoError(t, err)
	assert.Equal(t, "Hi there\n", string(content))
	assert.Contains(t, stdout.String(), main.DefaultOutput)
}

func TestMain_Run_ExtractionError(t *testing.T) {
	t.Parallel()

	t.Run("fails without writing output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeDocx(t, dir, "")
		output := filepath.Join(dir, "out.txt")
		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{input, output}, &stdout, &stderr)

		require.Error(t, err)
		assert.Equal(t, docxtext.ENOTFOUND, docxtext.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: there is no item named")
		assert.NoFileExists(t, output)
	})

	t.Run("writes error text with --write-errors", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "input.docx")
		require.NoError(t, os.WriteFile(input, []byte("not a zip"), 0644))
		output := filepath.Join(dir, "out.txt")
		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"--write-errors", input, output}, &stdout, &stderr)

		require.NoError(t, err)
		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "Error: "), "got %q", content)
		assert.Contains(t, stdout.String(), "Successfully wrote to")
	})
}

func TestMain_Run_Debug(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeDocx(t, dir, twoParagraphs)
	output := filepath.Join(dir, "out.txt")
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--debug", input, output}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "msg=extract")
	assert.Contains(t, stderr.String(), "paragraphs=2")
	assert.Contains(t, stderr.String(), "write output")
}

func TestMain_Run_RecordsHistory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeDocx(t, dir, twoParagraphs)
	output := filepath.Join(dir, "out.txt")
	dbPath := filepath.Join(dir, "history.db")
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--db", dbPath, input, output}, &stdout, &stderr)
	require.NoError(t, err)

	db := sqlite.NewDB(dbPath)
	require.NoError(t, db.Open())
	defer db.Close()
	found, err := sqlite.NewExtractionService(db).FindExtractions(context.Background(), docxtext.ExtractionFilter{})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, input, found[0].SourcePath)
	assert.Equal(t, output, found[0].OutputPath)
	assert.Equal(t, 2, found[0].Paragraphs)
	assert.Equal(t, "Hi there\n", found[0].Text)
}
