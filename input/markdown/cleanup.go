package markdown

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/mdxe/core/parameters"
	"github.com/npillmayer/uax/grapheme"
	"golang.org/x/text/unicode/norm"
)

const (
	byteOrderMark = "\xEF\xBB\xBF"
	substitute    = "\x1A"
)

// Normalizer prepares raw text for parsing. It is configured once and may
// be used for any number of texts, concurrently.
type Normalizer struct {
	tabWidth int
	columns  func(string) int // column width of a tab-free segment
	nfc      bool
}

var setupGraphemes sync.Once

// NewNormalizer creates a normalizer from a set of conversion parameters.
// regs may be nil, resulting in default settings.
func NewNormalizer(regs *parameters.ConversionRegisters) *Normalizer {
	if regs == nil {
		regs = parameters.NewConversionRegisters()
	}
	n := &Normalizer{
		tabWidth: regs.N(parameters.P_TABWIDTH),
		columns:  utf8.RuneCountInString,
		nfc:      regs.S(parameters.P_UNICODEFORM) == parameters.FormNFC,
	}
	if n.tabWidth < 1 {
		n.tabWidth = 4
	}
	if regs.S(parameters.P_TABCOLUMNS) == parameters.ColumnsGraphemes {
		setupGraphemes.Do(grapheme.SetupGraphemeClasses)
		n.columns = graphemeCount
	}
	return n
}

// Cleanup normalizes text with default settings and a given tab width.
// A tab width < 1 selects the default width of 4.
func Cleanup(text string, tabWidth int) string {
	regs := parameters.NewConversionRegisters()
	if tabWidth > 0 {
		regs.Push(parameters.P_TABWIDTH, tabWidth)
	}
	return NewNormalizer(regs).Cleanup(text)
}

// Cleanup normalizes text, in this order:
//
//	▪︎ a leading byte-order mark and every substitute character (0x1A) are removed
//	▪︎ "\r\n" and lone "\r" become "\n"
//	▪︎ (if configured) text is brought into Unicode normalization form NFC
//	▪︎ tabs are expanded to the next tab stop
//	▪︎ lines consisting of spaces only are emptied
//
// Cleanup never fails. Malformed input is passed through.
func (n *Normalizer) Cleanup(text string) string {
	text = strings.TrimPrefix(text, byteOrderMark)
	text = strings.ReplaceAll(text, substitute, "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if n.nfc {
		text = norm.NFC.String(text)
	}
	if text == "" {
		return text
	}
	b := cords.NewBuilder()
	detabbed, blanked := 0, 0
	for start := 0; start < len(text); {
		end := strings.IndexByte(text[start:], '\n')
		if end < 0 {
			end = len(text)
		} else {
			end += start
		}
		line := text[start:end]
		var leaf lineLeaf
		switch {
		case strings.IndexByte(line, '\t') >= 0:
			line = n.Detab(line)
			detabbed++
			if isSpaces(line) {
				line = ""
				blanked++
			}
			leaf.content = line + text[end:min(end+1, len(text))]
		case isSpaces(line):
			leaf.content = text[end:min(end+1, len(text))]
			blanked++
		default: // unchanged line: borrow from text
			leaf.content = text[start:min(end+1, len(text))]
		}
		if len(leaf.content) > 0 {
			b.Append(leaf)
		}
		start = end + 1
	}
	tracer().Debugf("cleanup: %d lines detabbed, %d lines blanked", detabbed, blanked)
	return b.Cord().String()
}

// Detab expands the tabs of a single line (without newline) to spaces. Each
// tab is replaced by the number of spaces needed to reach the next column
// which is a multiple of the tab width.
func (n *Normalizer) Detab(line string) string {
	var sb strings.Builder
	col := 0
	for {
		i := strings.IndexByte(line, '\t')
		if i < 0 {
			sb.WriteString(line)
			return sb.String()
		}
		sb.WriteString(line[:i])
		col += n.columns(line[:i])
		pad := n.tabWidth - col%n.tabWidth
		sb.WriteString(strings.Repeat(" ", pad))
		col += pad
		line = line[i+1:]
	}
}

func isSpaces(line string) bool {
	if line == "" {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' {
			return false
		}
	}
	return true
}

func graphemeCount(s string) int {
	if s == "" {
		return 0
	}
	return grapheme.StringFromString(s).Len()
}

// --- Cord leafs ------------------------------------------------------------

// lineLeaf is the leaf type of the cord assembled by Cleanup. It holds a line
// including its terminating newline.
type lineLeaf struct {
	content string
}

// Weight of a leaf is its string length in bytes.
func (l lineLeaf) Weight() uint64 {
	return uint64(len(l.content))
}

func (l lineLeaf) String() string {
	return l.content
}

// Split splits a leaf at position i, resulting in 2 new leafs.
func (l lineLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return lineLeaf{content: l.content[:i]}, lineLeaf{content: l.content[i:]}
}

// Substring returns a string segment of the leaf's text fragment.
func (l lineLeaf) Substring(i, j uint64) []byte {
	return []byte(l.content[i:j])
}

var _ cords.Leaf = lineLeaf{}
