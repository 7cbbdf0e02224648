package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mdxe/core"
	"github.com/npillmayer/mdxe/core/parameters"
	"github.com/npillmayer/mdxe/engine/mdtree"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object. It collects lines of Markdown into a
// document until a line consisting of a single '.', then shows the document
// in the current output form. Lines starting with ':' are commands.
type Intp struct {
	repl  *readline.Instance // nil when driven by Line directly
	out   io.Writer
	conv  *converter
	lines []string
	doc   *mdtree.Document // last document entered
}

func newIntp(repl *readline.Instance, out io.Writer, regs *parameters.ConversionRegisters) *Intp {
	conv, err := newConverter(options{format: formatMarkdown}, regs)
	if err != nil { // cannot happen for markdown output
		panic(err)
	}
	return &Intp{repl: repl, out: out, conv: conv}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if intp.Line(line) {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Line processes a line of input. It returns true if the session should end.
func (intp *Intp) Line(line string) bool {
	if cmd, ok := parseCommand(line); ok {
		quit, err := intp.execute(cmd)
		if err != nil {
			tracer().Errorf("%v", err)
			pterm.Error.Println(core.UserMessage(err))
		}
		return quit
	}
	if strings.TrimSpace(line) != "." {
		intp.lines = append(intp.lines, line)
		intp.prompt("..  ")
		return false
	}
	text := strings.Join(intp.lines, "\n") + "\n"
	intp.lines = intp.lines[:0]
	intp.prompt("md > ")
	doc, err := intp.conv.parse("input", text)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return false
	}
	intp.doc = doc
	if err := intp.conv.emit(intp.out, doc); err != nil {
		pterm.Error.Println(core.UserMessage(err))
	}
	return false
}

func (intp *Intp) prompt(p string) {
	if intp.repl != nil {
		intp.repl.SetPrompt(p)
	}
}

// Command is a REPL command.
type Command struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	MARKDOWN
	HTML
	TREE
	DOT
	QUERY
	CLEAR
)

// parseCommand recognizes commands of the form ':name [argument]'. Unknown
// command names result in HELP.
func parseCommand(line string) (Command, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		return Command{}, false
	}
	name, arg, _ := strings.Cut(line[1:], " ")
	cmd := Command{arg: strings.TrimSpace(arg)}
	switch strings.ToLower(name) {
	case "quit", "q":
		cmd.code = QUIT
	case "markdown", "md":
		cmd.code = MARKDOWN
	case "html":
		cmd.code = HTML
	case "tree":
		cmd.code = TREE
	case "dot":
		cmd.code = DOT
	case "query", "xpath":
		cmd.code = QUERY
	case "clear":
		cmd.code = CLEAR
	default:
		cmd.code = HELP
	}
	tracer().Debugf("command %q = %v", name, cmd)
	return cmd, true
}

func (intp *Intp) execute(cmd Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help(intp.out)
		return false, nil
	case CLEAR:
		intp.lines, intp.doc = intp.lines[:0], nil
		return false, nil
	}
	opts := options{format: intp.conv.opts.format}
	switch cmd.code {
	case MARKDOWN:
		opts.format = formatMarkdown
	case HTML:
		opts.format = formatHTML
	case TREE:
		opts.dump = true
	case DOT:
		opts.dot = true
	case QUERY:
		if cmd.arg == "" {
			return false, core.Error(core.EINVALID, "usage: :query <xpath>")
		}
		opts.query = cmd.arg
	}
	if cmd.code == MARKDOWN || cmd.code == HTML {
		intp.conv.opts.format = opts.format // stays the output form for new documents
	}
	if intp.doc == nil {
		return false, nil
	}
	saved := intp.conv.opts
	intp.conv.opts = opts
	defer func() { intp.conv.opts = saved }()
	return false, intp.conv.emit(intp.out, intp.doc)
}

func help(w io.Writer) {
	fmt.Fprint(w, `Enter Markdown text, then a line with a single '.' to convert it.
Commands:
  :markdown       show the document as canonical Markdown (default)
  :html           show the document as HTML
  :tree           print the document tree
  :dot            print the document tree in GraphViz format
  :query <xpath>  evaluate an XPath expression against the document
  :clear          forget the document and pending input
  :help           this text
  :quit           end the session
`)
}
