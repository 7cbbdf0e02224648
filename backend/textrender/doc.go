/*
Package textrender writes a document tree back out as Markdown text.

Output uses the same surface syntax the parser understands, so re-parsing the
output of Render results in an equivalent tree. Markup is written in a
canonical form: ATX headings get a single space after the '#' run and lose a
closing '#' run, soft breaks are written as a single newline, and the
whitespace within link and image markup is dropped. Rendering the re-parsed
tree once more reproduces the text exactly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textrender

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdxe.render'.
func tracer() tracing.Trace {
	return tracing.Select("mdxe.render")
}
