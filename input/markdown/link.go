package markdown

import (
	"strings"

	"github.com/npillmayer/mdxe/core/option"
	"github.com/npillmayer/mdxe/engine/mdtree"
)

// linkForm is what links and images have in common: a bracketed text, followed
// by either a bracketed reference identifier or a destination in parentheses.
type linkForm struct {
	text   string
	target mdtree.Target
	title  option.Maybe[string]
	length int
}

// parseLink parses "[text][id]" or "[text](dest "title")". The link text is
// parsed for inline markup, up to a nesting depth of maxNesting.
func parseLink(p *Parser, s string, depth int) (mdtree.Inline, int, bool) {
	if depth >= p.maxNesting {
		tracer().Infof("links nested deeper than %d levels", p.maxNesting)
		return nil, 0, false
	}
	form, ok := p.scanLinkForm(s)
	if !ok {
		return nil, 0, false
	}
	link := &mdtree.Link{
		Text:   p.parseInlines(form.text, depth+1),
		Target: form.target,
		Title:  form.title,
	}
	return link, form.length, true
}

// parseImage parses "![alt][id]" or "![alt](src "title")". The alternative
// text is taken literally.
func parseImage(p *Parser, s string, depth int) (mdtree.Inline, int, bool) {
	form, ok := p.scanLinkForm(s[1:])
	if !ok {
		return nil, 0, false
	}
	img := &mdtree.Image{
		Alt:    form.text,
		Target: form.target,
		Title:  form.title,
	}
	return img, form.length + 1, true
}

func (p *Parser) scanLinkForm(s string) (linkForm, bool) {
	var form linkForm
	if len(s) < 2 || s[0] != '[' {
		return form, false
	}
	k := 1 + balancedBrackets(s[1:], p.maxNesting)
	if k >= len(s) || s[k] != ']' {
		return form, false
	}
	form.text = s[1:k]
	rest := s[k+1:]
	if id, n, ok := scanReference(rest); ok {
		form.target = mdtree.Ref(id)
		form.title = option.Nothing[string]()
		form.length = k + 1 + n
		return form, true
	}
	if dest, title, n, ok := p.scanDestination(rest); ok {
		form.target = mdtree.Dest(dest)
		form.title = title
		form.length = k + 1 + n
		return form, true
	}
	return form, false
}

// scanReference recognizes " [id]", with an optional single space, and
// optionally a line break followed by indentation, before the opening bracket.
func scanReference(s string) (string, int, bool) {
	i := 0
	if i < len(s) && s[i] == ' ' {
		i++
	}
	if i < len(s) && s[i] == '\n' {
		i++
		for i < len(s) && isHSpace(s[i]) {
			i++
		}
	}
	if i >= len(s) || s[i] != '[' {
		return "", 0, false
	}
	j := strings.IndexByte(s[i+1:], ']')
	if j < 0 {
		return "", 0, false
	}
	return s[i+1 : i+1+j], i + j + 2, true
}

// scanDestination recognizes ` (dest "title")`. Destinations may contain
// balanced parentheses. Whitespace separates the destination from the title,
// which is enclosed in double or single quotes. If the parenthesized text
// does not split into destination and title, all of it is the destination,
// as in `(my file.png)`.
func (p *Parser) scanDestination(s string) (string, option.Maybe[string], int, bool) {
	title := option.Nothing[string]()
	i := 0
	if i < len(s) && s[i] == ' ' {
		i++
	}
	if i >= len(s) || s[i] != '(' {
		return "", title, 0, false
	}
	open := i
	i = skipSpace(s, i+1)
	d := balancedDestination(s[i:], p.maxNesting)
	dest := s[i : i+d]
	i = skipSpace(s, i+d)
	if i < len(s) && (s[i] == '"' || s[i] == '\'') {
		if j := strings.IndexByte(s[i+1:], s[i]); j >= 0 {
			title = option.Something(s[i+1 : i+1+j])
			i = skipSpace(s, i+j+2)
		} else {
			i = len(s)
		}
	}
	if i < len(s) && s[i] == ')' {
		return dest, title, i + 1, true
	}
	k := open + 1 + balanced(s[open+1:], '(', ')', p.maxNesting, false)
	if k >= len(s) {
		return "", option.Nothing[string](), 0, false
	}
	dest = strings.Trim(s[open+1:k], " \t\n\r")
	tracer().Debugf("destination with whitespace: %q", dest)
	return dest, option.Nothing[string](), k + 1, true
}
