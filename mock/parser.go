package mock

import "github.com/fwojciec/docxtext"

var _ docxtext.Parser = (*Parser)(nil)

// Parser is a mock implementation of docxtext.Parser.
type Parser struct {
	ParseFn func(data []byte) (*docxtext.Document, error)
}

func (p *Parser) Parse(data []byte) (*docxtext.Document, error) {
	return p.ParseFn(data)
}
