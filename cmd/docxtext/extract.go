package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/docxtext"
	"github.com/fwojciec/docxtext/fs"
)

// DefaultOutput is written to when no output path is given.
const DefaultOutput = "extracted_text.txt"

// stdoutPath selects standard output instead of a file.
const stdoutPath = "-"

// ExtractCmd handles the extraction of a single document.
type ExtractCmd struct {
	Input       string
	Output      string
	WriteErrors bool
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	output := c.Output
	if output == "" {
		output = DefaultOutput
	}

	exists, err := fs.Exists(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if !exists {
		fmt.Fprintf(deps.Stderr, "file not found: %s\n", c.Input)
		return docxtext.Errorf(docxtext.ENOTFOUND, "file not found: %s", c.Input)
	}

	doc, extractErr := deps.Extractor.Extract(deps.Ctx, c.Input)
	c.record(deps, output, doc, extractErr)

	if extractErr != nil && !c.WriteErrors {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docxtext.ErrorMessage(extractErr))
		return extractErr
	}

	text := docxtext.FormatResult(doc, extractErr)

	if output == stdoutPath {
		_, err := io.WriteString(deps.Stdout, text)
		return err
	}

	if err := deps.Writer.WriteText(deps.Ctx, output, text); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", output, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Successfully wrote to %s\n", output)
	return nil
}

// record stores the extraction in the history database, if one is configured.
// A failure to record does not fail the command.
func (c *ExtractCmd) record(deps *Dependencies, output string, doc *docxtext.Document, extractErr error) {
	if deps.Extractions == nil {
		return
	}

	e := docxtext.NewExtraction(c.Input, output, doc, extractErr)
	if err := deps.Extractions.CreateExtraction(deps.Ctx, e); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to record extraction: %v\n", err)
	}
}
