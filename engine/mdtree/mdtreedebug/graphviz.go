/*
Package mdtreedebug draws document trees for debugging.

ToGraphViz writes a tree in DOT format, suitable as input for GraphViz:

	mdtreedebug.ToGraphViz(doc, w)
	// then: dot -Tsvg -o tree.svg tree.dot

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mdtreedebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/mdxe/core"
	"github.com/npillmayer/mdxe/engine/mdtree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdxe.render'.
func tracer() tracing.Trace {
	return tracing.Select("mdxe.render")
}

// Parameters for GraphViz drawing.
type graphParams struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// Helper structs
type gnode struct {
	Name  string
	Label string
	Text  bool // literal content, drawn in a fixed font
}

type gedge struct {
	From, To string
}

// ToGraphViz creates a graphical representation of a document tree.
// Write errors are reported with code core.EIO.
func ToGraphViz(doc *mdtree.Document, w io.Writer) error {
	header := template.Must(template.New("mdtree").Parse(graphHeadTmpl))
	gparams := graphParams{
		Fontname: "Helvetica",
		NodeTmpl: template.Must(template.New("node").Parse(nodeTmpl)),
		EdgeTmpl: template.Must(template.New("edge").Parse(edgeTmpl)),
	}
	if err := header.Execute(w, gparams); err != nil {
		return core.WrapError(err, core.EIO, "cannot write tree")
	}
	root, err := gparams.node(w, "document", false)
	if err == nil && doc != nil {
		parents := []string{root} // parents[d] is the parent for depth d
		doc.Walk(func(b mdtree.Block, span mdtree.Inline, depth int) bool {
			var name string
			if span == nil {
				name, err = gparams.node(w, BlockLabel(b), false)
			} else {
				_, literal := span.(*mdtree.Text)
				name, err = gparams.node(w, InlineLabel(span), literal)
			}
			if err != nil {
				return false
			}
			parents = append(parents[:depth+1], name)
			err = gparams.EdgeTmpl.Execute(w, gedge{From: parents[depth], To: name})
			return err == nil
		})
	}
	if err == nil {
		_, err = io.WriteString(w, "}\n")
	}
	if err != nil {
		tracer().Errorf("drawing stopped after %d nodes: %v", gparams.cnt, err)
		return core.WrapError(err, core.EIO, "cannot write tree")
	}
	tracer().Debugf("tree drawn with %d nodes", gparams.cnt)
	return nil
}

func (gparams *graphParams) node(w io.Writer, label string, literal bool) (string, error) {
	gparams.cnt++
	n := gnode{
		Name:  fmt.Sprintf("node%05d", gparams.cnt),
		Label: quote(label),
		Text:  literal,
	}
	return n.Name, gparams.NodeTmpl.Execute(w, n)
}

// BlockLabel is a one-line description of a block.
func BlockLabel(b mdtree.Block) string {
	switch blk := b.(type) {
	case *mdtree.Separator:
		return fmt.Sprintf("separator ×%d", blk.Count)
	case *mdtree.Heading:
		return fmt.Sprintf("%s %s %s", blk.Level, blk.Style, blk.Span)
	case *mdtree.Paragraph:
		return "paragraph " + blk.Span.String()
	}
	return "?"
}

// InlineLabel is a one-line description of an inline span.
func InlineLabel(span mdtree.Inline) string {
	switch s := span.(type) {
	case *mdtree.Text:
		return shortText(s.Text)
	case *mdtree.SoftBreak:
		return "softbreak"
	case *mdtree.Code:
		return "code " + shortText(s.Body)
	case *mdtree.Link:
		return "link → " + s.Target.String()
	case *mdtree.Image:
		return "image → " + s.Target.String()
	case *mdtree.AutoLink:
		return "autolink → " + s.Target
	}
	return "?"
}

func shortText(txt string) string {
	if r := []rune(txt); len(r) > 12 {
		txt = string(r[:12]) + "…"
	}
	txt = strings.ReplaceAll(txt, "\n", `\n`)
	return "\"" + strings.ReplaceAll(txt, " ", "␣") + "\""
}

func quote(label string) string {
	label = strings.ReplaceAll(label, `\`, `\\`)
	return "\"" + strings.ReplaceAll(label, `"`, `\"`) + "\""
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  node [fontname = "{{ .Fontname }}" fontsize=12] ;
  edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const nodeTmpl = `{{ if .Text -}}
{{ .Name }}	[ label={{ .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else -}}
{{ .Name }}	[ label={{ .Label }} shape=box style=filled fillcolor=lightblue3 ] ;
{{ end -}}
`

const edgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`
