/*
Package option provides an optional value type.

Markdown link and image titles may or may not be present, and an empty title
(`[a](b "")`) is different from no title at all. Maybe[T] carries that
distinction without resorting to pointers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option
