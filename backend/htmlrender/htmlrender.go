package htmlrender

import (
	"io"
	"strconv"

	"github.com/npillmayer/mdxe/core"
	"github.com/npillmayer/mdxe/core/option"
	"github.com/npillmayer/mdxe/engine/mdtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Option configures an HTML rendering.
type Option func(*renderer)

// WithReferences sets the link definitions for reference-style links and
// images.
func WithReferences(refs References) Option {
	return func(r *renderer) {
		if refs != nil {
			r.refs = refs
		}
	}
}

// WithHardBreaks renders soft breaks as <br> elements. Without this option, a
// soft break is rendered as a newline.
func WithHardBreaks() Option {
	return func(r *renderer) {
		r.hardBreaks = true
	}
}

type renderer struct {
	refs       References
	hardBreaks bool
}

func newRenderer(opts []Option) *renderer {
	r := &renderer{refs: noReferences{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes doc as an HTML fragment to w. Headings and paragraphs are
// written as elements, separators as a single newline.
// If writing fails, Render stops and returns the error, wrapped into an
// error with code core.EIO.
func Render(w io.Writer, doc *mdtree.Document, opts ...Option) error {
	if doc == nil {
		return nil
	}
	r := newRenderer(opts)
	for i, block := range doc.Blocks {
		if err := html.Render(w, r.block(block)); err != nil {
			tracer().Errorf("HTML output failed at block #%d: %v", i, err)
			return core.WrapError(err, core.EIO, "cannot write HTML output")
		}
	}
	tracer().Debugf("rendered %d blocks as HTML", len(doc.Blocks))
	return nil
}

// block converts a block into an HTML node. Separators turn into a newline.
func (r *renderer) block(b mdtree.Block) *html.Node {
	switch blk := b.(type) {
	case *mdtree.Heading:
		level := min(max(int(blk.Level), 1), 6)
		h := element(headingAtoms[level-1])
		r.inlines(h, blk.Text)
		return h
	case *mdtree.Paragraph:
		p := element(atom.P)
		r.inlines(p, blk.Text)
		return p
	}
	return text("\n")
}

var headingAtoms = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

func (r *renderer) inlines(parent *html.Node, spans []mdtree.Inline) {
	for _, span := range spans {
		switch s := span.(type) {
		case *mdtree.Text:
			parent.AppendChild(text(s.Text))
		case *mdtree.SoftBreak:
			if r.hardBreaks {
				parent.AppendChild(element(atom.Br))
			}
			parent.AppendChild(text("\n"))
		case *mdtree.Code:
			code := element(atom.Code)
			code.AppendChild(text(s.Body))
			parent.AppendChild(code)
		case *mdtree.Link:
			r.link(parent, s)
		case *mdtree.Image:
			r.image(parent, s)
		case *mdtree.AutoLink:
			a := element(atom.A, "href", s.Target)
			a.AppendChild(text(s.Text))
			parent.AppendChild(a)
		}
	}
}

func (r *renderer) link(parent *html.Node, link *mdtree.Link) {
	dest, title, ok := r.resolve(link.Target, link.Title)
	if !ok {
		parent.AppendChild(text("["))
		r.inlines(parent, link.Text)
		parent.AppendChild(text("][" + link.Target.Value + "]"))
		return
	}
	a := element(atom.A, "href", dest)
	title.Match(nil, func(t string) {
		a.Attr = append(a.Attr, html.Attribute{Key: "title", Val: t})
	})
	r.inlines(a, link.Text)
	parent.AppendChild(a)
}

func (r *renderer) image(parent *html.Node, img *mdtree.Image) {
	src, title, ok := r.resolve(img.Target, img.Title)
	if !ok {
		parent.AppendChild(text("![" + img.Alt + "][" + img.Target.Value + "]"))
		return
	}
	node := element(atom.Img, "src", src, "alt", img.Alt)
	title.Match(nil, func(t string) {
		node.Attr = append(node.Attr, html.Attribute{Key: "title", Val: t})
	})
	parent.AppendChild(node)
}

// resolve returns the destination and the title for a link target. Inline
// targets resolve to themselves, reference targets are looked up.
func (r *renderer) resolve(target mdtree.Target, title option.Maybe[string]) (string, option.Maybe[string], bool) {
	if !target.IsRef() {
		return target.Value, title, true
	}
	ref, ok := r.refs.Lookup(target.Value)
	if !ok {
		tracer().Infof("unresolved link reference %s", strconv.Quote(target.Value))
		return "", title, false
	}
	return ref.Destination, ref.Title, true
}

// --- Nodes -----------------------------------------------------------------

// element creates an element node. attrs are pairs of key and value.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
