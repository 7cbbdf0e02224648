package markdown

import (
	"strings"

	"github.com/npillmayer/mdxe/engine/mdtree"
)

// parseHeading tries a Setext heading first, then an ATX heading.
// Setext has to go first: "# foo\n---" is a level-2 heading with text "# foo".
func parseHeading(s *segmenter, pos int) (mdtree.Block, bool) {
	if h, ok := s.parseSetext(pos); ok {
		return h, true
	}
	return s.parseATX(pos)
}

// parseSetext looks ahead line by line for an underline of '=' or '-'. A blank
// line ends the search: the text before it belongs to a paragraph. An
// underline directly at pos has no heading text and does not count.
//
// The heading covers its text lines and the underline, including whitespace
// trailing the underline, but not the newline after it.
//
// A lookahead ending at a blank line or at the end of input rules out every
// block starting before that point, so each line is inspected at most once
// by a failing lookahead.
func (s *segmenter) parseSetext(pos int) (mdtree.Block, bool) {
	if pos < s.noUnderlineBefore {
		return nil, false
	}
	src := s.src
	for start := pos; start < len(src); {
		end := lineEnd(src, start)
		line := src[start:end]
		s.scanned++
		if isBlank(line) {
			s.noUnderlineBefore = start
			return nil, false
		}
		if level, n, ok := setextUnderline(line); ok {
			if start == pos {
				return nil, false
			}
			text := src[pos : start-1]
			tracer().Debugf("setext heading %s: %q", level, text)
			return &mdtree.Heading{
				Level:        level,
				Style:        mdtree.Setext,
				UnderlineLen: n,
				Text:         s.parseInlines(text, 0),
				Span:         mdtree.Span{Start: pos, End: end},
			}, true
		}
		start = end + 1
	}
	s.noUnderlineBefore = len(src)
	return nil, false
}

// setextUnderline checks if line is a run of '=' (level 1) or '-' (level 2),
// optionally surrounded by horizontal whitespace. It returns the length of
// the run.
func setextUnderline(line string) (mdtree.Level, int, bool) {
	run := strings.Trim(line, " \t")
	if run == "" {
		return 0, 0, false
	}
	var level mdtree.Level
	switch run[0] {
	case '=':
		level = mdtree.H1
	case '-':
		level = mdtree.H2
	default:
		return 0, 0, false
	}
	if strings.Trim(run, run[:1]) != "" {
		return 0, 0, false
	}
	return level, len(run), true
}

// parseATX recognizes a single line heading "### text". The run of '#' must
// have a length of 1 to 6 and must be followed by at least one character.
// Trailing whitespace is removed from the heading text, as is a closing run
// of '#', if separated from the text by whitespace.
func (s *segmenter) parseATX(pos int) (mdtree.Block, bool) {
	end := lineEnd(s.src, pos)
	line := s.src[pos:end]
	i := 0
	for i < len(line) && isHSpace(line[i]) {
		i++
	}
	j := i
	for j < len(line) && line[j] == '#' {
		j++
	}
	n := j - i
	if n < 1 || n > 6 {
		return nil, false
	}
	for j < len(line) && isHSpace(line[j]) {
		j++
	}
	if j == len(line) {
		return nil, false
	}
	text := trimClosingHashes(line[j:])
	tracer().Debugf("atx heading H%d: %q", n, text)
	return &mdtree.Heading{
		Level: mdtree.Level(n),
		Style: mdtree.ATX,
		Text:  s.parseInlines(text, 0),
		Span:  mdtree.Span{Start: pos, End: end},
	}, true
}

func trimClosingHashes(text string) string {
	text = strings.TrimRight(text, " \t")
	t := strings.TrimRight(text, "#")
	if t == text {
		return text
	}
	if t == "" {
		return ""
	}
	if isHSpace(t[len(t)-1]) {
		return strings.TrimRight(t, " \t")
	}
	return text // '#' is part of the text, as in "C#"
}
