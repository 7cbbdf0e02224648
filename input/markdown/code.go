package markdown

import (
	"strings"

	"github.com/npillmayer/mdxe/engine/mdtree"
)

// parseCode parses a code span `body`. The body is at least one character
// long and ends at the next backtick, possibly spanning lines.
func parseCode(p *Parser, s string, depth int) (mdtree.Inline, int, bool) {
	j := strings.IndexByte(s[1:], '`')
	if j <= 0 {
		return nil, 0, false
	}
	return &mdtree.Code{Body: s[1 : 1+j]}, j + 2, true
}
