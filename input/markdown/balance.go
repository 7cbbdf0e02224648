package markdown

// balanced scans s, which starts just inside an opening delimiter, for the
// matching close delimiter. It returns the number of bytes preceding the
// matching close, i.e. the length of the enclosed text. Nested pairs of
// open/close are part of the enclosed text.
//
// For unbalanced input, where no matching close exists, balanced returns
// len(s). The same holds if nesting gets deeper than maxDepth.
//
// If stopAtSpace is set, whitespace outside of nested pairs ends the enclosed
// text as well. This is used for link destinations, which are followed by an
// optional title.
func balanced(s string, open, close byte, maxDepth int, stopAtSpace bool) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == open:
			depth++
			if depth > maxDepth {
				tracer().Infof("nesting of %q exceeds %d levels", open, maxDepth)
				return len(s)
			}
		case c == close:
			if depth == 0 {
				return i
			}
			depth--
		case stopAtSpace && depth == 0 && isSpace(c):
			return i
		}
	}
	return len(s)
}

func balancedBrackets(s string, maxDepth int) int {
	return balanced(s, '[', ']', maxDepth, false)
}

func balancedDestination(s string, maxDepth int) int {
	return balanced(s, '(', ')', maxDepth, true)
}

// isSpace is true for the whitespace which may separate parts of a link.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// skipSpace returns the position of the first non-whitespace byte at or after i.
func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}
