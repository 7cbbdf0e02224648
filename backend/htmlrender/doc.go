/*
Package htmlrender writes a document tree as HTML.

Every block is converted to a tree of golang.org/x/net/html nodes, which is
then serialized with html.Render. Text and attribute values are escaped on
the way. Blocks are written one at a time, so partial output may remain in the
sink if writing fails.

Reference-style links and images need a table of link definitions to be
turned into anchors and images. Clients supply one with WithReferences.
Unresolved references are written as literal text, in their Markdown form.

RenderPage wraps the rendered blocks into a complete HTML document, including
a title and a style sheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlrender

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdxe.render'.
func tracer() tracing.Trace {
	return tracing.Select("mdxe.render")
}
