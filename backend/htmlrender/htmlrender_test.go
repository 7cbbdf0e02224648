package htmlrender

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/mdxe/core"
	"github.com/npillmayer/mdxe/engine/mdtree"
	"github.com/npillmayer/mdxe/input/markdown"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

func parse(t *testing.T, input string) *mdtree.Document {
	doc, err := markdown.Parse(markdown.Cleanup(input, 4))
	require.NoError(t, err)
	return doc
}

func renderString(t *testing.T, input string, opts ...Option) string {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, parse(t, input), opts...))
	return buf.String()
}

func TestRenderFragments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.render")
	defer teardown()
	//
	for _, test := range []struct {
		input, output string
	}{
		{"#Hello, World!\n", "<h1>Hello, World!</h1>\n"},
		{"Sub\n---", "<h2>Sub</h2>"},
		{"###### six", "<h6>six</h6>"},
		{"foo\n\nbar", "<p>foo</p>\n<p>bar</p>"},
		{"a\nb", "<p>a\nb</p>"},
		{"`x < y`", "<p><code>x &lt; y</code></p>"},
		{"[a & b](http://x.org?a=1&b=2 \"T\")", `<p><a href="http://x.org?a=1&amp;b=2" title="T">a &amp; b</a></p>`},
		{"![foo](https://example.com/x.ico)", `<p><img src="https://example.com/x.ico" alt="foo"/></p>`},
		{"<noreply@example.com>", `<p><a href="mailto:noreply@example.com">noreply@example.com</a></p>`},
		{"<http://x.org>", `<p><a href="http://x.org">http://x.org</a></p>`},
		{"[a][id] and ![b][img]", "<p>[a][id] and ![b][img]</p>"},
		{"say \"hi\"", "<p>say &#34;hi&#34;</p>"},
	} {
		assert.Equal(t, test.output, renderString(t, test.input), "input %q", test.input)
	}
}

func TestRenderReferences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.render")
	defer teardown()
	//
	refs := ReferenceMap{}
	refs.Add("The  Docs", "http://x.org/docs", "Docs")
	refs.Add("logo", "logo.png", "")
	out := renderString(t, "see [`docs`][the docs] ![Logo][LOGO] [x][y]", WithReferences(refs))
	dom, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	a := dom.Find("p > a")
	require.Equal(t, 1, a.Length())
	href, _ := a.Attr("href")
	assert.Equal(t, "http://x.org/docs", href)
	title, _ := a.Attr("title")
	assert.Equal(t, "Docs", title)
	assert.Equal(t, "docs", a.Find("code").Text())
	img := dom.Find("img")
	src, _ := img.Attr("src")
	assert.Equal(t, "logo.png", src)
	_, hasTitle := img.Attr("title")
	assert.False(t, hasTitle)
	assert.Contains(t, dom.Find("p").Text(), "[x][y]")
}

func TestRenderHardBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.render")
	defer teardown()
	//
	assert.Equal(t, "<p>a<br/>\nb</p>", renderString(t, "a\nb", WithHardBreaks()))
}

// Markup shared with CommonMark renders to the same elements and text as
// goldmark produces.
func TestRenderAgreesWithGoldmark(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.render")
	defer teardown()
	//
	for _, input := range []string{
		"# Title\n\nSome text.\n",
		"Title\n=====\n\nSub\n---\n\npara\n",
		"## Links\n\n[link](http://x.org) here and <http://y.org>\n",
		"`code` span\n\n### Three\n",
		"a\nb\n\nc & d\n",
	} {
		var ours, theirs bytes.Buffer
		require.NoError(t, Render(&ours, parse(t, input)))
		require.NoError(t, goldmark.Convert([]byte(input), &theirs))
		assert.Equal(t, outline(t, theirs.String()), outline(t, ours.String()), "input %q", input)
	}
}

// outline lists the elements of an HTML fragment with their trimmed text
// and link targets.
func outline(t *testing.T, fragment string) []string {
	dom, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	var items []string
	dom.Find("h1, h2, h3, h4, h5, h6, p, a, code").Each(func(_ int, s *goquery.Selection) {
		item := goquery.NodeName(s) + ":" + strings.TrimSpace(s.Text())
		if href, ok := s.Attr("href"); ok {
			item += "→" + href
		}
		items = append(items, item)
	})
	return items
}

func TestRenderPage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.render")
	defer teardown()
	//
	var buf bytes.Buffer
	doc := parse(t, "Intro\n---\n\n# `The` Title\n\ntext\n")
	require.NoError(t, RenderPage(&buf, doc, PageOptions{}))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html><html><head>"))
	root, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)
	title := cascadia.MustCompile("head > title").MatchFirst(root)
	require.NotNil(t, title)
	assert.Equal(t, "The Title", title.FirstChild.Data)
	style := cascadia.MustCompile("head > style").MatchFirst(root)
	require.NotNil(t, style)
	assert.Contains(t, style.FirstChild.Data, "font-family: sans-serif")
	meta := cascadia.MustCompile("meta[charset]").MatchFirst(root)
	require.NotNil(t, meta)
	assert.Len(t, cascadia.MustCompile("body > h1, body > h2, body > p").MatchAll(root), 3)
}

func TestRenderPageOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.render")
	defer teardown()
	//
	var buf bytes.Buffer
	doc := parse(t, "text only")
	err := RenderPage(&buf, doc, PageOptions{Title: "Mine", Stylesheet: "p { color: red }"})
	require.NoError(t, err)
	dom, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Mine", dom.Find("title").Text())
	assert.Contains(t, dom.Find("style").Text(), "color: red")
	//
	buf.Reset()
	require.NoError(t, RenderPage(&buf, doc, PageOptions{NoStyle: true}))
	assert.NotContains(t, buf.String(), "<style>")
	assert.Contains(t, buf.String(), "<title></title>")
	//
	buf.Reset()
	err = RenderPage(&buf, doc, PageOptions{Stylesheet: "} p { color: red }"})
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Zero(t, buf.Len())
}

func TestExtractTitle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.render")
	defer teardown()
	//
	assert.Equal(t, "Top", ExtractTitle(parse(t, "## Second\n\n# Top\n")))
	assert.Equal(t, "Second level", ExtractTitle(parse(t, "para\n\nSecond\nlevel\n---\n")))
	assert.Equal(t, "", ExtractTitle(parse(t, "no headings")))
}

func TestReferenceMap(t *testing.T) {
	refs := ReferenceMap{}
	refs.Add("  Foo\n Bar ", "u", "t")
	ref, ok := refs.Lookup("foo bar")
	require.True(t, ok)
	assert.Equal(t, "u", ref.Destination)
	assert.Equal(t, "t", ref.Title.Unwrap())
	_, ok = refs.Lookup("foobar")
	assert.False(t, ok)
}

type failingWriter struct{}

var errSinkFull = errors.New("sink full")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errSinkFull
}

func TestRenderPropagatesWriteErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.render")
	defer teardown()
	//
	doc := parse(t, "# a\n\nb")
	err := Render(failingWriter{}, doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errSinkFull))
	assert.Equal(t, core.EIO, core.Code(err))
	err = RenderPage(failingWriter{}, doc, PageOptions{})
	assert.True(t, errors.Is(err, errSinkFull))
	assert.Equal(t, core.EIO, core.Code(err))
}
