/*
Command mdxe converts Markdown text to canonical Markdown or to HTML.

	mdxe -i README.md -t html -page -o README.html

Instead of rendering, the parsed document may be printed as a tree (-dump),
as a GraphViz graph (-dot), or queried with an XPath expression (-query).
With -repl, mdxe starts an interactive session.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"github.com/npillmayer/mdxe/core"
	"github.com/npillmayer/mdxe/core/parameters"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'mdxe.cli'
func tracer() tracing.Trace {
	return tracing.Select("mdxe.cli")
}

func main() {
	initDisplay()

	// command line flags
	var opts options
	flag.StringVar(&opts.input, "i", "", "Markdown input file")
	flag.StringVar(&opts.output, "o", "-", "Output file, '-' for stdout")
	tabWidth := flag.Int("w", 4, "Tab width")
	flag.StringVar(&opts.format, "t", formatMarkdown, "Output type [markdown|html]")
	flag.BoolVar(&opts.page, "page", false, "Output a complete HTML page")
	flag.StringVar(&opts.title, "title", "", "Title of the HTML page")
	flag.StringVar(&opts.cssPath, "css", "", "Stylesheet file for the HTML page")
	flag.BoolVar(&opts.noStyle, "nostyle", false, "HTML page without stylesheet")
	flag.BoolVar(&opts.inlineCSS, "inline-css", false, "Move page styles into style attributes")
	flag.BoolVar(&opts.hardBreak, "br", false, "Render line breaks as <br/>")
	flag.BoolVar(&opts.dump, "dump", false, "Print the document tree")
	flag.BoolVar(&opts.dot, "dot", false, "Print the document tree in GraphViz format")
	flag.StringVar(&opts.query, "query", "", "XPath expression to evaluate")
	schemes := flag.String("schemes", "", "Comma separated URL schemes for autolinks")
	graphemes := flag.Bool("graphemes", false, "Count tab columns in grapheme clusters")
	nfc := flag.Bool("nfc", false, "Normalize input to Unicode NFC")
	maxInput := flag.Int("max-input", 0, "Maximum input size in bytes, 0 for unlimited")
	repl := flag.Bool("repl", false, "Start interactive mode")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()

	// set up logging
	if err := initTracing(*tlevel); err != nil {
		fmt.Fprintf(os.Stderr, "error configuring tracing: %v\n", err)
		os.Exit(1)
	}

	regs, err := parameters.FromConfig(conversionConfig(*tabWidth, *maxInput, *schemes, *graphemes, *nfc))
	if err != nil {
		exit(err)
	}
	if *repl {
		rl, err := readline.New("md > ")
		if err != nil {
			exit(core.WrapError(err, core.EIO, "cannot start interactive mode: %v", err))
		}
		defer rl.Close()
		pterm.Info.Println("Welcome to mdxe. Enter Markdown, end input with a single '.' line")
		pterm.Info.Println("Quit with <ctrl>D or :quit")
		intp := newIntp(rl, rl.Stdout(), regs)
		intp.REPL()
		return
	}
	if opts.output != "" && opts.output != "-" {
		pp.ColoringEnabled = false // no escape sequences in files
	}
	if opts.input == "" {
		exit(core.Error(core.EINVALID, "no input file given, use -i <file> or -repl"))
	}
	conv, err := newConverter(opts, regs)
	if err != nil {
		exit(err)
	}
	st, err := conv.run()
	if err != nil {
		exit(err)
	}
	if opts.output != "" && opts.output != "-" {
		pterm.Success.Printfln("%s → %s: %d blocks, %s read, %s written", opts.input, opts.output,
			st.blocks, humanize.Bytes(st.bytesIn), humanize.Bytes(st.bytesOut))
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// initTracing routes all tracers of mdxe to Go's standard logger.
func initTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.mdxe.cli":      level,
		"trace.mdxe.markdown": level,
		"trace.mdxe.render":   level,
		"trace.mdxe.xpath":    level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// conversionConfig collects the conversion parameters given as flags, using
// the configuration keys of package parameters.
func conversionConfig(tabWidth, maxInput int, schemes string, graphemes, nfc bool) testconfig.Conf {
	conf := testconfig.Conf{
		parameters.P_TABWIDTH.String(): strconv.Itoa(tabWidth),
		parameters.P_MAXINPUT.String(): strconv.Itoa(maxInput),
	}
	if schemes != "" {
		conf[parameters.P_AUTOLINKSCHEMES.String()] = schemes
	}
	if graphemes {
		conf[parameters.P_TABCOLUMNS.String()] = parameters.ColumnsGraphemes
	}
	if nfc {
		conf[parameters.P_UNICODEFORM.String()] = parameters.FormNFC
	}
	return conf
}

func exit(err error) {
	tracer().Errorf("%v", err)
	core.UserError(err)
	os.Exit(core.ExitStatus(err))
}
