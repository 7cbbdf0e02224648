package markdown

import (
	"strings"

	"github.com/npillmayer/mdxe/engine/mdtree"
)

// spanParser parses an inline span at the start of s. It returns the span and
// the number of bytes consumed, or false if s does not start with a span of
// its kind. depth is the nesting depth of link text.
type spanParser func(p *Parser, s string, depth int) (mdtree.Inline, int, bool)

// spanRule pairs a look ahead test with a parser for inline markup.
type spanRule struct {
	name   string
	prefix string
	parse  spanParser
}

// spanRules are checked in order. The first rule whose prefix matches is
// attempted; if it fails, its first character is taken literally.
var spanRules []spanRule

func init() {
	// link text is parsed recursively, which would be an initialization cycle
	// for a plain variable declaration
	spanRules = []spanRule{
		{name: "image", prefix: "![", parse: parseImage},
		{name: "link", prefix: "[", parse: parseLink},
		{name: "code", prefix: "`", parse: parseCode},
		{name: "autolink", prefix: "<", parse: parseAutoLink},
	}
}

// textStops are the characters which end a run of plain text.
const textStops = "\n[]<>!"

// parseInlines splits s completely into inline spans.
func (p *Parser) parseInlines(s string, depth int) []mdtree.Inline {
	var spans []mdtree.Inline
	for len(s) > 0 {
		span, n := p.parseInline(s, depth)
		spans = append(spans, span)
		s = s[n:]
	}
	return spans
}

// parseInline parses the next span of s, which must not be empty. It always
// consumes at least one byte.
func (p *Parser) parseInline(s string, depth int) (mdtree.Inline, int) {
	for _, rule := range spanRules {
		if !strings.HasPrefix(s, rule.prefix) {
			continue
		}
		if span, n, ok := rule.parse(p, s, depth); ok && n > 0 {
			return span, n
		}
		tracer().Debugf("no %s at %.20q, taking %q literally", rule.name, s, s[:1])
		return &mdtree.Text{Text: s[:1]}, 1
	}
	if s[0] == '\n' {
		n := 1
		for n < len(s) && isSpace(s[n]) {
			n++
		}
		return &mdtree.SoftBreak{}, n
	}
	n := strings.IndexAny(s, textStops)
	if n < 0 {
		n = len(s)
	} else if n == 0 {
		// a stop character without markup: the rest is literal text
		n = len(s)
	}
	return &mdtree.Text{Text: s[:n]}, n
}
