package markdown

import (
	"fmt"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/mdxe/core"
	"github.com/npillmayer/mdxe/core/parameters"
	"github.com/npillmayer/mdxe/engine/mdtree"
)

// Parser parses normalized Markdown text into a document tree. A Parser is
// configured once and is safe for concurrent use, as parsing does not change it.
type Parser struct {
	maxNesting int
	maxInput   int
	schemes    *trie.Trie // lower-case URL schemes for autolinks
}

// NewParser creates a parser from a set of conversion parameters.
// regs may be nil, resulting in default settings.
func NewParser(regs *parameters.ConversionRegisters) *Parser {
	if regs == nil {
		regs = parameters.NewConversionRegisters()
	}
	p := &Parser{
		maxNesting: regs.N(parameters.P_MAXNESTING),
		maxInput:   regs.N(parameters.P_MAXINPUT),
		schemes:    trie.New(),
	}
	for _, scheme := range parameters.Schemes(regs.S(parameters.P_AUTOLINKSCHEMES)) {
		p.schemes.Add(scheme, nil)
	}
	return p
}

var (
	defaultParser     *Parser
	defaultParserOnce sync.Once
)

// Parse parses normalized text with default settings.
// Text is expected to have been passed through Cleanup.
func Parse(text string) (*mdtree.Document, error) {
	defaultParserOnce.Do(func() {
		defaultParser = NewParser(nil)
	})
	return defaultParser.Parse(text)
}

// Parse parses normalized text into a document. The document's blocks cover
// all of text, in order and without overlap. Empty text results in a document
// without blocks.
//
// Errors are of type core.AppError: ELIMIT if text is larger than the
// configured maximum input size, EINTERNAL (wrapping a *ParseError) if
// segmentation gets stuck.
func (p *Parser) Parse(text string) (*mdtree.Document, error) {
	if p.maxInput > 0 && len(text) > p.maxInput {
		err := core.Error(core.ELIMIT, "input of %d bytes exceeds limit of %d bytes", len(text), p.maxInput)
		tracer().Errorf(err.Error())
		return nil, err
	}
	seg := newSegmenter(p, text)
	blocks, err := seg.run()
	if err != nil {
		tracer().Errorf(err.Error())
		return nil, core.WrapError(err, core.EINTERNAL, "cannot parse markdown: %v", err)
	}
	tracer().Debugf("parsed %d blocks from %d bytes, %d lines of setext lookahead",
		len(blocks), len(text), seg.scanned)
	return &mdtree.Document{Source: text, Blocks: blocks}, nil
}

// ParseError is reported if no block alternative is able to consume input.
// This signals a bug in the parser rather than a problem with the input.
type ParseError struct {
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Reason)
}
