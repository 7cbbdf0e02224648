package mdtree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mdxe/core/option"
)

// Document is a parsed Markdown text.
type Document struct {
	Source string  // normalized input the blocks refer to
	Blocks []Block // blocks in source order, covering all of Source
}

// Span is a range of byte offsets [Start…End) into a document's source.
type Span struct {
	Start, End int
}

// Len returns the number of bytes covered by a span.
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d…%d)", s.Start, s.End)
}

// Block is a top-level element of a document.
type Block interface {
	// Extent returns the source range covered by the block.
	Extent() Span
	isBlock()
}

// Inline is a span of text within a heading, a paragraph or a link.
type Inline interface {
	isInline()
}

// --- Blocks ----------------------------------------------------------------

// Separator is a run of Count consecutive newline characters.
type Separator struct {
	Count int
	Span  Span
}

// Level is the level of a heading, from 1 to 6.
type Level int

// Heading levels.
const (
	H1 Level = iota + 1
	H2
	H3
	H4
	H5
	H6
)

// Valid returns true for levels 1…6.
func (l Level) Valid() bool {
	return l >= H1 && l <= H6
}

func (l Level) String() string {
	return fmt.Sprintf("H%d", int(l))
}

// HeadingStyle tells how a heading has been marked up.
type HeadingStyle int

const (
	// ATX headings start with a run of '#'.
	ATX HeadingStyle = iota
	// Setext headings are underlined with '=' (level 1) or '-' (level 2).
	Setext
)

func (s HeadingStyle) String() string {
	if s == Setext {
		return "setext"
	}
	return "atx"
}

// Heading is an ATX or Setext heading.
type Heading struct {
	Level Level
	Style HeadingStyle
	// UnderlineLen is the length of the '='/'-' run of a Setext heading.
	// It is 0 for ATX headings.
	UnderlineLen int
	Text         []Inline
	Span         Span
}

// Paragraph is a run of inline content up to the next blank line or heading.
type Paragraph struct {
	Text []Inline
	Span Span
}

func (b *Separator) Extent() Span { return b.Span }
func (b *Heading) Extent() Span   { return b.Span }
func (b *Paragraph) Extent() Span { return b.Span }

func (*Separator) isBlock() {}
func (*Heading) isBlock()   {}
func (*Paragraph) isBlock() {}

// --- Inlines ---------------------------------------------------------------

// Text is a literal run of characters.
type Text struct {
	Text string
}

// SoftBreak is a line break within running text.
type SoftBreak struct{}

// Code is an inline code span. Its body may contain newlines.
type Code struct {
	Body string
}

// TargetKind tells a reference target from an inline one.
type TargetKind int

const (
	// RefTarget is an identifier to be resolved against a link reference table.
	RefTarget TargetKind = iota
	// InlineTarget is a destination given literally.
	InlineTarget
)

// Target is the destination of a link or an image.
type Target struct {
	Kind  TargetKind
	Value string // identifier or destination
}

// Ref creates a reference-style target.
func Ref(id string) Target {
	return Target{Kind: RefTarget, Value: id}
}

// Dest creates an inline-style target.
func Dest(url string) Target {
	return Target{Kind: InlineTarget, Value: url}
}

// IsRef is true for reference-style targets.
func (t Target) IsRef() bool {
	return t.Kind == RefTarget
}

func (t Target) String() string {
	if t.IsRef() {
		return "ref:" + t.Value
	}
	return t.Value
}

// Link is a hyperlink. Its text is itself inline content.
type Link struct {
	Text   []Inline
	Target Target
	Title  option.Maybe[string]
}

// Image is an image. Its alternative text is not parsed for markup.
type Image struct {
	Alt    string
	Target Target
	Title  option.Maybe[string]
}

// AutoLink is a link written as <target>. E-mail addresses get a
// mailto: target, while Text keeps what has been written between the brackets.
type AutoLink struct {
	Target string
	Text   string
}

func (*Text) isInline()      {}
func (*SoftBreak) isInline() {}
func (*Code) isInline()      {}
func (*Link) isInline()      {}
func (*Image) isInline()     {}
func (*AutoLink) isInline()  {}

// --- Utilities -------------------------------------------------------------

// PlainText returns the textual content of a sequence of inlines, without any
// markup. Soft breaks turn into single spaces.
func PlainText(spans []Inline) string {
	var b strings.Builder
	collectText(spans, &b)
	return b.String()
}

func collectText(spans []Inline, b *strings.Builder) {
	for _, span := range spans {
		switch s := span.(type) {
		case *Text:
			b.WriteString(s.Text)
		case *SoftBreak:
			b.WriteByte(' ')
		case *Code:
			b.WriteString(s.Body)
		case *Link:
			collectText(s.Text, b)
		case *Image:
			b.WriteString(s.Alt)
		case *AutoLink:
			b.WriteString(s.Text)
		}
	}
}

// Visitor is called for every node of a document during Walk. For blocks,
// inline is nil; for inlines, block is the enclosing block. Returning false
// stops the walk.
type Visitor func(block Block, inline Inline, depth int) bool

// Walk visits the blocks of a document in order, each block followed by its
// inlines in depth-first order. Link text is visited after the link itself.
func (doc *Document) Walk(visit Visitor) {
	for _, b := range doc.Blocks {
		if !visit(b, nil, 0) {
			return
		}
		var spans []Inline
		switch blk := b.(type) {
		case *Heading:
			spans = blk.Text
		case *Paragraph:
			spans = blk.Text
		}
		if !walkInlines(b, spans, 1, visit) {
			return
		}
	}
}

func walkInlines(b Block, spans []Inline, depth int, visit Visitor) bool {
	for _, span := range spans {
		if !visit(b, span, depth) {
			return false
		}
		if link, ok := span.(*Link); ok {
			if !walkInlines(b, link.Text, depth+1, visit) {
				return false
			}
		}
	}
	return true
}

// Headings returns all headings of a document.
func (doc *Document) Headings() []*Heading {
	var hh []*Heading
	for _, b := range doc.Blocks {
		if h, ok := b.(*Heading); ok {
			hh = append(hh, h)
		}
	}
	return hh
}
