package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/aymerick/douceur/inliner"
	"github.com/k0kubun/pp"
	"github.com/npillmayer/mdxe/backend/htmlrender"
	"github.com/npillmayer/mdxe/backend/textrender"
	"github.com/npillmayer/mdxe/core"
	"github.com/npillmayer/mdxe/core/parameters"
	"github.com/npillmayer/mdxe/engine/mdtree"
	"github.com/npillmayer/mdxe/engine/mdtree/mdtreedebug"
	"github.com/npillmayer/mdxe/engine/mdtree/xpathadapter"
	"github.com/npillmayer/mdxe/input/markdown"
)

// Output formats.
const (
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

// options are the settings of a conversion, as given on the command line.
type options struct {
	input     string // path of the input file
	output    string // path of the output file, "-" for stdout
	format    string // formatMarkdown or formatHTML
	page      bool   // complete HTML document instead of a fragment
	title     string // page title
	cssPath   string // stylesheet for page mode
	noStyle   bool   // page without a stylesheet
	inlineCSS bool   // move page styles into style attributes
	hardBreak bool   // soft breaks as <br/>
	dump      bool   // print the document tree instead of rendering it
	dot       bool   // print the document tree in GraphViz format
	query     string // XPath expression to evaluate instead of rendering
}

// converter runs the normalize/parse/render pipeline for a set of options.
type converter struct {
	opts       options
	normalizer *markdown.Normalizer
	parser     *markdown.Parser
	stylesheet string
}

// stats summarizes a conversion.
type stats struct {
	bytesIn, bytesOut uint64
	blocks            int
}

func newConverter(opts options, regs *parameters.ConversionRegisters) (*converter, error) {
	if opts.format == "" {
		opts.format = formatMarkdown
	}
	if opts.format != formatMarkdown && opts.format != formatHTML {
		return nil, core.Error(core.EINVALID, "unknown output type %q, use %q or %q",
			opts.format, formatMarkdown, formatHTML)
	}
	c := &converter{
		opts:       opts,
		normalizer: markdown.NewNormalizer(regs),
		parser:     markdown.NewParser(regs),
	}
	if opts.cssPath != "" {
		css, err := readFile(opts.cssPath)
		if err != nil {
			return nil, err
		}
		c.stylesheet = css
	}
	return c, nil
}

// parse normalizes and parses raw Markdown text. name is used for messages.
func (c *converter) parse(name, raw string) (*mdtree.Document, error) {
	doc, err := c.parser.Parse(c.normalizer.Cleanup(raw))
	if err != nil {
		return nil, core.WrapError(err, core.Code(err), "%s: %s", name, core.UserMessage(err))
	}
	tracer().Debugf("%s: %d blocks", name, len(doc.Blocks))
	return doc, nil
}

// emit writes the document to w in the form selected by the options.
func (c *converter) emit(w io.Writer, doc *mdtree.Document) error {
	switch {
	case c.opts.query != "":
		matches, err := xpathadapter.Query(doc, c.opts.query)
		if err != nil {
			return err
		}
		return writeMatches(w, matches)
	case c.opts.dump:
		if _, err := pp.Fprintln(w, doc); err != nil {
			return core.WrapError(err, core.EIO, "cannot write tree")
		}
		return nil
	case c.opts.dot:
		return mdtreedebug.ToGraphViz(doc, w)
	case c.opts.format == formatMarkdown:
		return textrender.Render(w, doc)
	}
	var renderOpts []htmlrender.Option
	if c.opts.hardBreak {
		renderOpts = append(renderOpts, htmlrender.WithHardBreaks())
	}
	if !c.opts.page {
		return htmlrender.Render(w, doc, renderOpts...)
	}
	page := htmlrender.PageOptions{
		Title:      c.opts.title,
		Stylesheet: c.stylesheet,
		NoStyle:    c.opts.noStyle,
	}
	if !c.opts.inlineCSS {
		return htmlrender.RenderPage(w, doc, page, renderOpts...)
	}
	var buf bytes.Buffer
	if err := htmlrender.RenderPage(&buf, doc, page, renderOpts...); err != nil {
		return err
	}
	styled, err := inliner.Inline(buf.String())
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot inline stylesheet: %v", err)
	}
	if _, err = io.WriteString(w, styled); err != nil {
		return core.WrapError(err, core.EIO, "cannot write page")
	}
	return nil
}

// run converts the input file to the output file.
func (c *converter) run() (stats, error) {
	var st stats
	raw, err := readFile(c.opts.input)
	if err != nil {
		return st, err
	}
	st.bytesIn = uint64(len(raw))
	doc, err := c.parse(c.opts.input, raw)
	if err != nil {
		return st, err
	}
	st.blocks = len(doc.Blocks)
	out, closeOut, err := openOutput(c.opts.output)
	if err != nil {
		return st, err
	}
	cw := &countingWriter{w: out}
	err = c.emit(cw, doc)
	st.bytesOut = cw.n
	if cerr := closeOut(); err == nil && cerr != nil {
		err = core.WrapError(cerr, core.EIO, "%s: %v", c.opts.output, cerr)
	}
	if err != nil {
		return st, core.WrapError(err, core.Code(err), "%s: %s", c.opts.output, core.UserMessage(err))
	}
	return st, nil
}

func writeMatches(w io.Writer, matches []xpathadapter.Match) error {
	for _, m := range matches {
		var err error
		if m.Name == "" {
			_, err = fmt.Fprintln(w, m.Value)
		} else {
			_, err = fmt.Fprintf(w, "%s\t%s\n", m.Name, m.Value)
		}
		if err != nil {
			return core.WrapError(err, core.EIO, "cannot write query result")
		}
	}
	return nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", core.WrapError(err, core.EMISSING, "%s: file not found", path)
	} else if err != nil {
		return "", core.WrapError(err, core.EIO, "%s: %v", path, err)
	}
	return string(data), nil
}

// openOutput opens a file for writing, creating or truncating it.
// "-" and "" denote stdout, which will not be closed.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, core.WrapError(err, core.EIO, "%s: cannot open for writing: %v", path, err)
	}
	return f, f.Close, nil
}

type countingWriter struct {
	w io.Writer
	n uint64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += uint64(n)
	return n, err
}
