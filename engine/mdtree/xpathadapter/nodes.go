package xpathadapter

import (
	"strconv"
	"strings"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/mdxe/engine/mdtree"
)

// node is the navigable view of a block or an inline span.
type node struct {
	typ      xpath.NodeType
	name     string
	data     string // content of text nodes
	attrs    []attribute
	children []*node
	block    mdtree.Block
	inline   mdtree.Inline
}

type attribute struct {
	key, value string
}

func (n *node) attr(key, value string) {
	n.attrs = append(n.attrs, attribute{key: key, value: value})
}

func (n *node) add(child *node) {
	n.children = append(n.children, child)
}

func (n *node) innerText(b *strings.Builder) {
	if n.typ == xpath.TextNode {
		b.WriteString(n.data)
		return
	}
	for _, ch := range n.children {
		ch.innerText(b)
	}
}

func element(name string) *node {
	return &node{typ: xpath.ElementNode, name: name}
}

func textNode(s string) *node {
	return &node{typ: xpath.TextNode, data: s}
}

// buildTree creates the node tree for a document.
func buildTree(doc *mdtree.Document) *node {
	root := &node{typ: xpath.RootNode}
	top := element("document")
	root.add(top)
	if doc == nil {
		return root
	}
	for _, b := range doc.Blocks {
		var n *node
		switch blk := b.(type) {
		case *mdtree.Separator:
			n = element("separator")
			n.attr("count", strconv.Itoa(blk.Count))
		case *mdtree.Heading:
			n = element("heading")
			n.attr("level", strconv.Itoa(int(blk.Level)))
			n.attr("style", blk.Style.String())
			if blk.Style == mdtree.Setext {
				n.attr("underline", strconv.Itoa(blk.UnderlineLen))
			}
			addInlines(n, b, blk.Text)
		case *mdtree.Paragraph:
			n = element("paragraph")
			addInlines(n, b, blk.Text)
		default:
			continue
		}
		n.block = b
		top.add(n)
	}
	tracer().Debugf("xpath tree with %d block nodes", len(top.children))
	return root
}

func addInlines(parent *node, b mdtree.Block, spans []mdtree.Inline) {
	for _, span := range spans {
		var n *node
		switch s := span.(type) {
		case *mdtree.Text:
			n = textNode(s.Text)
		case *mdtree.SoftBreak:
			n = element("softbreak")
		case *mdtree.Code:
			n = element("code")
			n.add(textNode(s.Body))
		case *mdtree.Link:
			n = element("link")
			targetAttrs(n, "href", s.Target)
			if title, ok := s.Title.Get(); ok {
				n.attr("title", title)
			}
			addInlines(n, b, s.Text)
		case *mdtree.Image:
			n = element("image")
			targetAttrs(n, "src", s.Target)
			n.attr("alt", s.Alt)
			if title, ok := s.Title.Get(); ok {
				n.attr("title", title)
			}
		case *mdtree.AutoLink:
			n = element("autolink")
			n.attr("href", s.Target)
			n.add(textNode(s.Text))
		default:
			continue
		}
		n.block, n.inline = b, span
		parent.add(n)
	}
}

func targetAttrs(n *node, key string, target mdtree.Target) {
	if target.IsRef() {
		n.attr("ref", target.Value)
		return
	}
	n.attr(key, target.Value)
}
