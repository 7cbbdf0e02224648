package markdown

import (
	"strings"

	"github.com/npillmayer/mdxe/engine/mdtree"
)

const mailto = "mailto:"

// parseAutoLink parses <scheme:address> for one of the configured URL schemes,
// or an e-mail address <local@domain>, optionally prefixed with "mailto:".
// URLs are tried first, as "<http://user@host>" would be a valid e-mail
// address as well.
func parseAutoLink(p *Parser, s string, depth int) (mdtree.Inline, int, bool) {
	if link, n, ok := p.scanURL(s); ok {
		return link, n, true
	}
	return scanEmail(s)
}

// scanURL recognizes <scheme:address>. The scheme is matched case-insensitively
// against the trie of configured schemes. The address must not be empty and
// must not contain quotes, angle brackets or line breaks.
func (p *Parser) scanURL(s string) (*mdtree.AutoLink, int, bool) {
	i := 1
	for i < len(s) && isSchemeChar(s[i], i == 1) {
		i++
	}
	if i == 1 || i >= len(s) || s[i] != ':' {
		return nil, 0, false
	}
	if _, ok := p.schemes.Find(strings.ToLower(s[1:i])); !ok {
		return nil, 0, false
	}
	j := i + 1
	for j < len(s) && !strings.ContainsRune("'\"<>\r\n\t\v\f", rune(s[j])) {
		j++
	}
	if j == i+1 || j >= len(s) || s[j] != '>' {
		return nil, 0, false
	}
	return &mdtree.AutoLink{Target: s[1:j], Text: s[1:j]}, j + 1, true
}

func isSchemeChar(c byte, first bool) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' {
		return true
	}
	return !first && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.')
}

// scanEmail recognizes <local@domain>. The local part may contain blanks, the
// domain may not. Neither may span lines. The target of the resulting link
// always carries a "mailto:" prefix.
func scanEmail(s string) (*mdtree.AutoLink, int, bool) {
	i := 1
	if len(s) >= 1+len(mailto) && strings.EqualFold(s[1:1+len(mailto)], mailto) {
		i += len(mailto)
	}
	at := i
	for at < len(s) && s[at] != '@' {
		if strings.IndexByte("<>\r\n", s[at]) >= 0 {
			return nil, 0, false
		}
		at++
	}
	if at == i || at >= len(s) {
		return nil, 0, false
	}
	end := at + 1
	for end < len(s) && s[end] != '>' {
		if strings.IndexByte("< \t\n", s[end]) >= 0 {
			return nil, 0, false
		}
		end++
	}
	if end == at+1 || end >= len(s) {
		return nil, 0, false
	}
	link := &mdtree.AutoLink{Text: s[1:end]}
	if strings.HasPrefix(link.Text, mailto) {
		link.Target = link.Text
	} else {
		link.Target = mailto + s[i:end]
	}
	return link, end + 1, true
}
