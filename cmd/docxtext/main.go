package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docxtext"
	"github.com/fwojciec/docxtext/etree"
	"github.com/fwojciec/docxtext/extract"
	"github.com/fwojciec/docxtext/fs"
	docslog "github.com/fwojciec/docxtext/slog"
	"github.com/fwojciec/docxtext/sqlite"
	"github.com/fwojciec/docxtext/zip"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database for extraction history. Nil unless --db is set.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docxtext"),
		kong.Description("Extract plain text from a .docx file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no input file specified")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Extractor: &extract.Extractor{
			Parts:  zip.NewPartReader(),
			Parser: etree.NewParser(),
		},
		Writer: fs.NewWriter(),
	}

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Extractor = docslog.NewLoggingExtractor(deps.Extractor, logger)
		deps.Writer = docslog.NewLoggingTextWriter(deps.Writer, logger)
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Unset DOCXTEXT_DB or pass --db to use a different history database\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Extractions = sqlite.NewExtractionService(m.DB)
	}

	cmd := &ExtractCmd{
		Input:       cli.Input,
		Output:      cli.Output,
		WriteErrors: cli.WriteErrors,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug       bool   `help:"Log extraction steps to stderr"`
	DB          string `name:"db" env:"DOCXTEXT_DB" help:"Record extractions in this SQLite database"`
	WriteErrors bool   `help:"Write extraction errors to the output file instead of failing"`
	Input       string `arg:"" required:"" help:"Path to the .docx file"`
	Output      string `arg:"" optional:"" default:"extracted_text.txt" help:"Output text file, or - for stdout"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Extractor   docxtext.Extractor
	Writer      docxtext.TextWriter
	Extractions docxtext.ExtractionService
}
