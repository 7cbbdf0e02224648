/*
Package mdtree holds the document model produced by the Markdown parser.

A Document is an ordered sequence of blocks (separators, headings and
paragraphs), each built from an ordered sequence of inline spans. All text
held by the tree is a substring of the (normalized) source buffer, except for
values which have to be synthesized, such as the mailto: target of an e-mail
autolink. Go strings share their backing array, so a Document keeps the
source alive, and the source must not be changed while the Document is in use
(it cannot be, as Go strings are immutable).

Trees are built in one pass by the parser and are not mutated afterwards.
They may be walked by any number of goroutines concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mdtree
