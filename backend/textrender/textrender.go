package textrender

import (
	"io"
	"strings"

	"github.com/npillmayer/mdxe/core"
	"github.com/npillmayer/mdxe/core/option"
	"github.com/npillmayer/mdxe/engine/mdtree"
)

// Render writes doc as Markdown text to w. Output is written block by block.
// If writing fails, Render stops and returns the error, wrapped into an
// error with code core.EIO. Output written up to that point remains in w.
func Render(w io.Writer, doc *mdtree.Document) error {
	if doc == nil {
		return nil
	}
	var b strings.Builder
	for i, block := range doc.Blocks {
		b.Reset()
		writeBlock(&b, block)
		if _, err := io.WriteString(w, b.String()); err != nil {
			tracer().Errorf("text output failed at block #%d: %v", i, err)
			return core.WrapError(err, core.EIO, "cannot write text output")
		}
	}
	tracer().Debugf("rendered %d blocks as text", len(doc.Blocks))
	return nil
}

// Text renders a sequence of inlines as Markdown text.
func Text(spans []mdtree.Inline) string {
	var b strings.Builder
	writeInlines(&b, spans)
	return b.String()
}

func writeBlock(b *strings.Builder, block mdtree.Block) {
	switch blk := block.(type) {
	case *mdtree.Separator:
		b.WriteString(strings.Repeat("\n", blk.Count))
	case *mdtree.Heading:
		if blk.Style == mdtree.Setext {
			writeInlines(b, blk.Text)
			b.WriteByte('\n')
			underline := "="
			if blk.Level != mdtree.H1 {
				underline = "-"
			}
			b.WriteString(strings.Repeat(underline, max(blk.UnderlineLen, 1)))
			return
		}
		marker := strings.Repeat("#", int(blk.Level))
		b.WriteString(marker)
		b.WriteByte(' ')
		if len(blk.Text) == 0 {
			b.WriteString(marker) // an empty heading needs a closing run
			return
		}
		writeInlines(b, blk.Text)
	case *mdtree.Paragraph:
		writeInlines(b, blk.Text)
	}
}

// blockMarkers end a paragraph if they follow a newline directly.
const blockMarkers = "#=-"

func writeInlines(b *strings.Builder, spans []mdtree.Inline) {
	for i, span := range spans {
		switch s := span.(type) {
		case *mdtree.Text:
			b.WriteString(s.Text)
		case *mdtree.SoftBreak:
			b.WriteByte('\n')
			if next, ok := nextText(spans, i); ok && strings.IndexByte(blockMarkers, next[0]) >= 0 {
				b.WriteByte(' ') // indent, or the line would start a new block
			}
		case *mdtree.Code:
			b.WriteByte('`')
			b.WriteString(s.Body)
			b.WriteByte('`')
		case *mdtree.Link:
			b.WriteByte('[')
			writeInlines(b, s.Text)
			b.WriteByte(']')
			writeTarget(b, s.Target, s.Title)
		case *mdtree.Image:
			b.WriteString("![")
			b.WriteString(s.Alt)
			b.WriteByte(']')
			writeTarget(b, s.Target, s.Title)
		case *mdtree.AutoLink:
			b.WriteByte('<')
			b.WriteString(s.Text)
			b.WriteByte('>')
		}
	}
}

func nextText(spans []mdtree.Inline, i int) (string, bool) {
	if i+1 < len(spans) {
		if t, ok := spans[i+1].(*mdtree.Text); ok && t.Text != "" {
			return t.Text, true
		}
	}
	return "", false
}

func writeTarget(b *strings.Builder, target mdtree.Target, t option.Maybe[string]) {
	if target.IsRef() {
		b.WriteByte('[')
		b.WriteString(target.Value)
		b.WriteByte(']')
		return
	}
	b.WriteByte('(')
	b.WriteString(target.Value)
	if title, ok := t.Get(); ok {
		quote := byte('"')
		if strings.IndexByte(title, '"') >= 0 {
			quote = '\''
		}
		b.WriteByte(' ')
		b.WriteByte(quote)
		b.WriteString(title)
		b.WriteByte(quote)
	}
	b.WriteByte(')')
}
