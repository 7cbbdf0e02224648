/*
Package xpathadapter implements an xpath.NodeNavigator for Markdown documents.

We use this library for XPath queries:

	github.com/antchfx/xpath

The navigator presents a document as an XML-like tree. The root node has a
single child element 'document', which holds one element per block:

	separator   @count
	heading     @level @style (atx|setext) @underline
	paragraph

Headings and paragraphs hold their inline spans. Text spans are text nodes,
all other spans are elements:

	code        text node child holds the code
	link        @href or @ref, @title; children are the link text
	image       @src or @ref, @alt, @title
	autolink    @href; text node child holds the text
	softbreak

For a description of the various methods of interface xpath.NodeNavigator
please refer to the documentation of antchfx/xpath. It is not replicated here.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package xpathadapter

import (
	"strings"

	"github.com/antchfx/xpath"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/mdxe/engine/mdtree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdxe.xpath'.
func tracer() tracing.Trace {
	return tracing.Select("mdxe.xpath")
}

// NodeNavigator navigates the nodes of a document. The path from the root to
// the current node is held on a stack, together with the child index of each
// node on the path, so moving to siblings does not need a search.
type NodeNavigator struct {
	root *node
	path *arraystack.Stack // of step, current node on top
	attr int               // attributes index, -1 if not on an attribute
}

// step is a node on the path from the root, with its index among its siblings.
type step struct {
	n     *node
	index int
}

// NewNavigator creates a new xpath.NodeNavigator for a document.
func NewNavigator(doc *mdtree.Document) *NodeNavigator {
	nav := &NodeNavigator{
		root: buildTree(doc),
		path: arraystack.New(),
		attr: -1,
	}
	nav.path.Push(step{n: nav.root})
	return nav
}

func (nav *NodeNavigator) current() step {
	top, _ := nav.path.Peek()
	return top.(step)
}

func (nav *NodeNavigator) parent() *node {
	values := nav.path.Values() // top first
	return values[1].(step).n
}

// CurrentBlock returns the block of the current node, if any.
func (nav *NodeNavigator) CurrentBlock() mdtree.Block {
	return nav.current().n.block
}

// CurrentInline returns the inline span of the current node, if any.
func (nav *NodeNavigator) CurrentInline() mdtree.Inline {
	return nav.current().n.inline
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	if nav.attr != -1 {
		return xpath.AttributeNode
	}
	return nav.current().n.typ
}

func (nav *NodeNavigator) LocalName() string {
	if nav.attr != -1 {
		return nav.current().n.attrs[nav.attr].key
	}
	return nav.current().n.name
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (*NodeNavigator) NamespaceURL() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	n := nav.current().n
	if nav.attr != -1 {
		return n.attrs[nav.attr].value
	}
	if n.typ == xpath.TextNode {
		return n.data
	}
	var b strings.Builder
	n.innerText(&b)
	return b.String()
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	c := &NodeNavigator{root: nav.root, path: arraystack.New(), attr: nav.attr}
	values := nav.path.Values()
	for i := len(values) - 1; i >= 0; i-- {
		c.path.Push(values[i])
	}
	return c
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.path.Clear()
	nav.path.Push(step{n: nav.root})
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if nav.path.Size() <= 1 {
		return false
	}
	nav.path.Pop()
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.attr >= len(nav.current().n.attrs)-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	n := nav.current().n
	if len(n.children) == 0 {
		return false
	}
	nav.path.Push(step{n: n.children[0]})
	return true
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.path.Size() <= 1 || nav.current().index == 0 {
		return false
	}
	parent := nav.parent()
	nav.path.Pop()
	nav.path.Push(step{n: parent.children[0]})
	return true
}

func (nav *NodeNavigator) MoveToNext() bool {
	return nav.moveToSibling(+1)
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	return nav.moveToSibling(-1)
}

func (nav *NodeNavigator) moveToSibling(delta int) bool {
	if nav.attr != -1 || nav.path.Size() <= 1 {
		return false
	}
	parent := nav.parent()
	i := nav.current().index + delta
	if i < 0 || i >= len(parent.children) {
		return false
	}
	nav.path.Pop()
	nav.path.Push(step{n: parent.children[i], index: i})
	return true
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	c := n.Copy().(*NodeNavigator)
	nav.path = c.path
	nav.attr = c.attr
	return true
}

var _ xpath.NodeNavigator = &NodeNavigator{}
