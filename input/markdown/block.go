package markdown

import (
	"strings"

	"github.com/npillmayer/mdxe/engine/mdtree"
)

// blockRule is an alternative for recognizing a block. A rule returns false if
// it does not apply at the given position.
type blockRule struct {
	name  string
	parse func(s *segmenter, pos int) (mdtree.Block, bool)
}

// blockRules are tried in order, the first one to match wins.
var blockRules = []blockRule{
	{"separator", parseSeparator},
	{"heading", parseHeading},
	{"paragraph", parseParagraph},
}

// segmenter holds the state of a single parse. Blocks always start at the
// beginning of a line.
type segmenter struct {
	*Parser
	src string
	// noUnderlineBefore is the end of the last failed Setext lookahead. No line
	// starting before it can be followed by an underline without a blank line
	// in between.
	noUnderlineBefore int
	scanned           int // lines inspected by Setext lookahead
}

func newSegmenter(p *Parser, src string) *segmenter {
	return &segmenter{Parser: p, src: src}
}

// run splits the source into blocks.
func (s *segmenter) run() ([]mdtree.Block, error) {
	var blocks []mdtree.Block
	for pos := 0; pos < len(s.src); {
		block, err := s.parseBlock(pos)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
		pos = block.Extent().End
	}
	return blocks, nil
}

func (s *segmenter) parseBlock(pos int) (mdtree.Block, error) {
	for _, rule := range blockRules {
		block, ok := rule.parse(s, pos)
		if !ok {
			continue
		}
		if block.Extent().End <= pos {
			return nil, &ParseError{Offset: pos, Reason: rule.name + " did not consume input"}
		}
		return block, nil
	}
	return nil, &ParseError{Offset: pos, Reason: "no block matches"}
}

func parseSeparator(s *segmenter, pos int) (mdtree.Block, bool) {
	src := s.src
	end := pos
	for end < len(src) && src[end] == '\n' {
		end++
	}
	if end == pos {
		return nil, false
	}
	return &mdtree.Separator{Count: end - pos, Span: mdtree.Span{Start: pos, End: end}}, true
}

// --- Paragraphs ------------------------------------------------------------

func parseParagraph(s *segmenter, pos int) (mdtree.Block, bool) {
	end := paragraphEnd(s.src, pos)
	if end <= pos {
		return nil, false
	}
	return &mdtree.Paragraph{
		Text: s.parseInlines(s.src[pos:end], 0),
		Span: mdtree.Span{Start: pos, End: end},
	}, true
}

// paragraphEnd finds the first newline after pos which is followed by another
// newline or by one of '=', '-', '#'. The newline is not part of the paragraph.
// Without such a terminator the paragraph extends to the end of src.
func paragraphEnd(src string, pos int) int {
	for i := pos; i < len(src); {
		k := strings.IndexByte(src[i:], '\n')
		if k < 0 {
			break
		}
		nl := i + k
		if nl+1 < len(src) {
			switch src[nl+1] {
			case '\n', '=', '-', '#':
				return nl
			}
		}
		i = nl + 1
	}
	return len(src)
}

// lineEnd returns the position of the next newline at or after pos, or len(src).
func lineEnd(src string, pos int) int {
	if k := strings.IndexByte(src[pos:], '\n'); k >= 0 {
		return pos + k
	}
	return len(src)
}

func isHSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isBlank(line string) bool {
	return strings.TrimLeft(line, " \t") == ""
}
