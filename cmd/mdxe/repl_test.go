package main

import (
	"bytes"
	"testing"

	"github.com/npillmayer/mdxe/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(intp *Intp, lines ...string) (quit bool) {
	for _, line := range lines {
		if quit = intp.Line(line); quit {
			return
		}
	}
	return
}

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.cli")
	defer teardown()
	//
	for _, test := range []struct {
		line string
		code int
		arg  string
	}{
		{":quit", QUIT, ""},
		{" :q ", QUIT, ""},
		{":HTML", HTML, ""},
		{":md", MARKDOWN, ""},
		{":tree", TREE, ""},
		{":dot", DOT, ""},
		{":Query  //heading[@level=1] ", QUERY, "//heading[@level=1]"},
		{":clear", CLEAR, ""},
		{":what is this", HELP, "is this"},
	} {
		cmd, ok := parseCommand(test.line)
		require.True(t, ok, test.line)
		assert.Equal(t, test.code, cmd.code, test.line)
		assert.Equal(t, test.arg, cmd.arg, test.line)
	}
	_, ok := parseCommand("# Heading")
	assert.False(t, ok)
	_, ok = parseCommand(".")
	assert.False(t, ok)
}

func TestREPLSession(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.cli")
	defer teardown()
	//
	var out bytes.Buffer
	intp := newIntp(nil, &out, nil)
	assert.False(t, feed(intp, "#Hi", "", "text", "."))
	assert.Equal(t, "# Hi\n\ntext\n", out.String())
	//
	out.Reset()
	assert.False(t, feed(intp, ":html"))
	assert.Equal(t, "<h1>Hi</h1>\n<p>text\n</p>", out.String())
	//
	out.Reset()
	assert.False(t, feed(intp, "Next", "----", "."))
	assert.Equal(t, "<h2>Next</h2>\n", out.String(), "html stays the output form")
	//
	out.Reset()
	assert.False(t, feed(intp, ":query //heading/@style"))
	assert.Equal(t, "style\tsetext\n", out.String())
	//
	out.Reset()
	assert.False(t, feed(intp, ":dot"))
	assert.Contains(t, out.String(), "digraph g {")
	//
	out.Reset()
	assert.False(t, feed(intp, ":markdown"))
	assert.Equal(t, "Next\n----\n", out.String())
	//
	assert.True(t, feed(intp, ":quit", "never seen"))
	assert.Len(t, intp.lines, 0)
}

func TestREPLWithoutDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.cli")
	defer teardown()
	//
	var out bytes.Buffer
	intp := newIntp(nil, &out, nil)
	assert.False(t, feed(intp, ":html", ":tree", ":query //link"))
	assert.Zero(t, out.Len())
	assert.False(t, feed(intp, "a", ":clear", "b", "."))
	assert.Equal(t, "<p>b\n</p>", out.String())
	//
	out.Reset()
	assert.False(t, feed(intp, ":help"))
	assert.Contains(t, out.String(), ":query <xpath>")
	//
	_, err := intp.execute(Command{code: QUERY})
	assert.Equal(t, core.EINVALID, core.Code(err))
}
