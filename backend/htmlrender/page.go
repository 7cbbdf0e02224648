package htmlrender

import (
	"io"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/mdxe/core"
	"github.com/npillmayer/mdxe/engine/mdtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PageOptions control the document wrapper created by RenderPage.
type PageOptions struct {
	Title      string // empty: use ExtractTitle
	Stylesheet string // CSS text, empty: use DefaultStylesheet
	NoStyle    bool   // omit the <style> element
}

// DefaultStylesheet is used for pages if clients do not supply a style sheet.
const DefaultStylesheet = `
body {
  font-family: sans-serif;
  font-size: 16px;
  max-width: 680px;
  margin: 30px auto 0 auto;
}
@media (max-width: 980px) {
  body {
    max-width: 90%;
  }
}
h1, h2, h3, h4, h5, h6 {
  margin-bottom: 0.5em;
}
h1 {
  text-align: center;
}
h2 {
  border-bottom: 2px black solid;
}
a:hover {
  opacity: 0.5;
}
p {
  margin: 0 auto 0.5em auto;
}
code {
  background: #eee;
  padding: 0.2rem;
}
`

// RenderPage writes doc as a complete HTML document to w, including a
// doctype, a character set declaration, a title and a style sheet.
//
// The style sheet is parsed and written in normalized form. A style sheet
// which cannot be parsed results in an error with code core.EINVALID, before
// anything is written. Write errors are returned with code core.EIO.
func RenderPage(w io.Writer, doc *mdtree.Document, page PageOptions, opts ...Option) error {
	if doc == nil {
		doc = &mdtree.Document{}
	}
	title := page.Title
	if title == "" {
		title = ExtractTitle(doc)
	}
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	t := element(atom.Title)
	t.AppendChild(text(title))
	head.AppendChild(t)
	if !page.NoStyle {
		css := page.Stylesheet
		if strings.TrimSpace(css) == "" {
			css = DefaultStylesheet
		}
		stylesheet, err := parser.Parse(css)
		if err != nil {
			tracer().Errorf("style sheet: %v", err)
			return core.WrapError(err, core.EINVALID, "cannot parse style sheet")
		}
		style := element(atom.Style)
		style.AppendChild(text("\n" + stylesheet.String() + "\n"))
		head.AppendChild(style)
	}
	r := newRenderer(opts)
	body := element(atom.Body)
	for _, block := range doc.Blocks {
		body.AppendChild(r.block(block))
	}
	root := element(atom.Html)
	root.AppendChild(head)
	root.AppendChild(body)
	htmlDoc := &html.Node{Type: html.DocumentNode}
	htmlDoc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	htmlDoc.AppendChild(root)
	if err := html.Render(w, htmlDoc); err != nil {
		tracer().Errorf("HTML page output failed: %v", err)
		return core.WrapError(err, core.EIO, "cannot write HTML page")
	}
	tracer().Debugf("rendered page %q with %d blocks", title, len(doc.Blocks))
	return nil
}

// ExtractTitle returns the plain text of the first level-1 heading of doc.
// If doc has no level-1 heading, the first heading of any level is used. If
// there is no heading at all, ExtractTitle returns an empty string.
func ExtractTitle(doc *mdtree.Document) string {
	var first *mdtree.Heading
	for _, h := range doc.Headings() {
		if h.Level == mdtree.H1 {
			return strings.TrimSpace(mdtree.PlainText(h.Text))
		}
		if first == nil {
			first = h
		}
	}
	if first == nil {
		return ""
	}
	return strings.TrimSpace(mdtree.PlainText(first.Text))
}
