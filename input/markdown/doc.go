/*
Package markdown parses PHP-Markdown-Extra-Extended text into a document tree.

Processing is done in two steps. Cleanup normalizes the raw input: it removes
byte-order marks and substitute characters, unifies line endings, expands tabs
and blanks out lines consisting of spaces only. Parse then segments the
normalized text into blocks (separators, headings, paragraphs) and parses the
content of headings and paragraphs into inline spans (text, soft breaks, code
spans, links, images and autolinks).

	text := markdown.Cleanup(raw, 4)
	doc, err := markdown.Parse(text)

The parser is a hand-written recursive-descent parser working on substrings of
the normalized text; nodes of the resulting tree refer to that text without
copying it. Parsing never fails for Markdown input, as everything not
recognized as markup is taken as literal text. Errors are reported for
violated limits only (see package parameters), or if the block segmenter
cannot make progress, which would be a bug.

Blocks are recognized in this order: a run of newlines is a separator,
then a Setext heading is tried (it needs a look ahead for an underline), then
an ATX heading, and finally a paragraph, which accepts everything else.

Grammars we consulted:

	https://michelf.ca/projects/php-markdown/extra/
	https://github.com/egil/php-markdown-extra-extended
	https://www.markdownguide.org/basic-syntax

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdxe.markdown'.
func tracer() tracing.Trace {
	return tracing.Select("mdxe.markdown")
}
