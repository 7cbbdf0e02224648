package markdown

import (
	"strings"
	"testing"

	"github.com/npillmayer/mdxe/core/parameters"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestInlineSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.markdown")
	defer teardown()
	//
	p := NewParser(nil)
	for i, test := range []struct {
		input string
		spans string
	}{
		{"Hello, World!", `["Hello, World","!"]`},
		{"a\n  b", `["a",BR,"b"]`},
		{"a\n\t\n b", `["a",BR,"b"]`},
		{"`x := 1` here", `[Code("x := 1")," here"]`},
		{"a\n`b`", `["a",BR,Code("b")]`},
		{"use `x` here", "[\"use `x` here\"]"},
		{"`multi\nline`", `[Code("multi\nline")]`},
		{"``", "[\"`\",\"`\"]"},
		{"`abxy", "[\"`\",\"abxy\"]"},
		{"[text](http://x.org)", `[Link(["text"]→http://x.org)]`},
		{"[text]( http://x.org \"T\" )", `[Link(["text"]→http://x.org "T")]`},
		{"[text](x 'it \"is\"')", `[Link(["text"]→x "it \"is\"")]`},
		{"[text] (x)", `[Link(["text"]→x)]`},
		{"[text]()", `[Link(["text"]→)]`},
		{"[a](f(x)y)", `[Link(["a"]→f(x)y)]`},
		{"[a](b c)", `[Link(["a"]→b c)]`},
		{"[a]( b c )", `[Link(["a"]→b c)]`},
		{"[a](b\nc)", "[Link([\"a\"]→b\nc)]"},
		{"[a](b (c d) e)", `[Link(["a"]→b (c d) e)]`},
		{"[a](b \"c)", `[Link(["a"]→b "c)]`},
		{"[a](b \"T\" c)", `[Link(["a"]→b "T" c)]`},
		{"[a](b c", `["[","a","](b c"]`},
		{"![x](a b.png)", `[Img("x"→a b.png)]`},
		{"[text][id]", `[Link(["text"]→ref:id)]`},
		{"[text] [id]", `[Link(["text"]→ref:id)]`},
		{"[text]\n   [id]", `[Link(["text"]→ref:id)]`},
		{"[text][]", `[Link(["text"]→ref:)]`},
		{"[see [y](z) and `c`][r]", "[Link([\"see \",Link([\"y\"]→z),\" and `c`\"]→ref:r)]"},
		{"[nested [brackets]](u)", `[Link(["nested ","[","brackets","]"]→u)]`},
		{"[a]b", `["[","a","]b"]`},
		{"[unclosed", `["[","unclosed"]`},
		{"![alt [x]](i.png \"T\")", `[Img("alt [x]"→i.png "T")]`},
		{"![alt][logo]", `[Img("alt"→ref:logo)]`},
		{"!foo", `["!foo"]`},
		{"![foo", `["!","[","foo"]`},
		{"<http://x.org/a?b=c>", `[Auto(http://x.org/a?b=c|http://x.org/a?b=c)]`},
		{"<HTTPS://X.org>", `[Auto(HTTPS://X.org|HTTPS://X.org)]`},
		{"<dict:x>", `[Auto(dict:x|dict:x)]`},
		{"<gopher://x.org>", `["<","gopher://x.org",">"]`},
		{"<noreply@example.com>", `[Auto(mailto:noreply@example.com|noreply@example.com)]`},
		{"<mailto:me@x.org>", `[Auto(mailto:me@x.org|mailto:me@x.org)]`},
		{"<MailTo:me@x.org>", `[Auto(mailto:me@x.org|MailTo:me@x.org)]`},
		{"<noreply>", `["<","noreply",">"]`},
		{"<a b@c>", `[Auto(mailto:a b@c|a b@c)]`},
		{"<mailto:first last@x.org>", `[Auto(mailto:first last@x.org|mailto:first last@x.org)]`},
		{"<a@b c>", `["<","a@b c",">"]`},
		{"<http:>", `["<","http:",">"]`},
		{"a < b", `["a ","<"," b"]`},
	} {
		spans := p.parseInlines(test.input, 0)
		assert.Equal(t, test.spans, spansString(spans), "test #%d: %q", i, test.input)
	}
}

func TestInlinesConsumeEverything(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.markdown")
	defer teardown()
	//
	p := NewParser(nil)
	for _, input := range []string{
		"!", "[", "]", "<", ">", "`", "\n", "![", "[]", "[](", "<@>", "[x][",
		"a]b[c<d>e!f`g\nh",
	} {
		n := 0
		for _, span := range p.parseInlines(input, 0) {
			assert.NotNil(t, span)
			n++
		}
		assert.Greater(t, n, 0, "input %q", input)
	}
}

func TestBalancer(t *testing.T) {
	assert.Equal(t, 8, balancedBrackets("foo[bar]]", 10))
	assert.Equal(t, 3, balancedBrackets("foo]", 10))
	assert.Equal(t, 0, balancedBrackets("]", 10))
	assert.Equal(t, 7, balancedBrackets("foo[bar", 10), "unbalanced input is consumed completely")
	assert.Equal(t, 6, balancedBrackets("[[[]]]]", 3))
	assert.Equal(t, 7, balancedBrackets("[[[]]]]", 2), "too deep nesting counts as unbalanced")
	assert.Equal(t, 5, balancedDestination("a(b)c d)", 10))
	assert.Equal(t, 7, balancedDestination("a(b c)d e)", 10))
	assert.Equal(t, 3, balancedDestination("a()", 10))
	//
	for depth := 0; depth < 20; depth++ {
		s := strings.Repeat("[", depth) + "x" + strings.Repeat("]", depth) + "]rest"
		assert.Equal(t, 2*depth+1, balancedBrackets(s, 100))
	}
}

func TestNestingLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.markdown")
	defer teardown()
	//
	regs := parameters.NewConversionRegisters()
	regs.Push(parameters.P_MAXNESTING, 2)
	p := NewParser(regs)
	assert.Equal(t, `[Link([Link(["a"]→b)]→c)]`, spansString(p.parseInlines("[[a](b)](c)", 0)))
	assert.Equal(t, `[Link([Link(["[","a","](b)"]→c)]→d)]`,
		spansString(p.parseInlines("[[[a](b)](c)](d)", 0)))
	deep := strings.Repeat("[", 1000) + strings.Repeat("]", 1000)
	spans := NewParser(nil).parseInlines(deep, 0)
	assert.NotEmpty(t, spans)
}
