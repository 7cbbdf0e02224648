package xpathadapter

import (
	"testing"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/mdxe/core"
	"github.com/npillmayer/mdxe/engine/mdtree"
	"github.com/npillmayer/mdxe/input/markdown"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Intro
=====

see [the docs](http://x.org "Docs") and ![logo][l]
and <me@x.org>

## Next

[a [nested](y) link][r]
` + "`code`"

func parseSample(t *testing.T) *mdtree.Document {
	doc, err := markdown.Parse(sample)
	require.NoError(t, err)
	return doc
}

func values(matches []Match) []string {
	var v []string
	for _, m := range matches {
		v = append(v, m.Value)
	}
	return v
}

func TestQueryElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.xpath")
	defer teardown()
	//
	doc := parseSample(t)
	m, err := Query(doc, "//heading")
	require.NoError(t, err)
	assert.Equal(t, []string{"Intro", "Next"}, values(m))
	assert.Equal(t, "heading", m[0].Name)
	assert.Same(t, doc.Blocks[0], m[0].Block)
	//
	m, err = Query(doc, "//heading[@level=2]/text()")
	require.NoError(t, err)
	assert.Equal(t, []string{"Next"}, values(m))
	assert.Equal(t, "", m[0].Name)
	//
	m, err = Query(doc, "/document/paragraph")
	require.NoError(t, err)
	assert.Len(t, m, 2)
}

func TestQueryAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.xpath")
	defer teardown()
	//
	doc := parseSample(t)
	m, err := Query(doc, "//link/@href")
	require.NoError(t, err)
	assert.Equal(t, []string{"http://x.org", "y"}, values(m))
	assert.Equal(t, "href", m[0].Name)
	require.IsType(t, &mdtree.Link{}, m[0].Inline)
	//
	m, err = Query(doc, "//link[@ref]/@ref | //image/@ref")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"l", "r"}, values(m))
	//
	m, err = Query(doc, "//autolink/@href")
	require.NoError(t, err)
	assert.Equal(t, []string{"mailto:me@x.org"}, values(m))
	//
	m, err = Query(doc, "//heading[@style='setext']/@underline")
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, values(m))
	//
	m, err = Query(doc, "//separator/@count")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "2", "2"}, values(m))
}

func TestQueryNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.xpath")
	defer teardown()
	//
	doc := parseSample(t)
	m, err := Query(doc, "//link[@ref='r']/link")
	require.NoError(t, err)
	assert.Equal(t, []string{"nested"}, values(m))
	m, err = Query(doc, "//code/../link/@ref")
	require.NoError(t, err)
	assert.Equal(t, []string{"r"}, values(m))
	m, err = Query(doc, "//softbreak/preceding-sibling::image/@alt")
	require.NoError(t, err)
	assert.Equal(t, []string{"logo"}, values(m))
	m, err = Query(doc, "//image/following-sibling::*[1]")
	require.NoError(t, err)
	assert.Equal(t, "softbreak", m[0].Name)
}

func TestQueryValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.xpath")
	defer teardown()
	//
	doc := parseSample(t)
	m, err := Query(doc, "count(//link)")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, values(m))
	m, err = Query(doc, "string(//link/@title)")
	require.NoError(t, err)
	assert.Equal(t, []string{"Docs"}, values(m))
	m, err = Query(doc, "count(//paragraph) > 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"true"}, values(m))
}

func TestQueryErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.xpath")
	defer teardown()
	//
	_, err := Query(&mdtree.Document{}, "//link[")
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	m, err := Query(nil, "//heading")
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestNavigatorMoves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdxe.xpath")
	defer teardown()
	//
	doc := parseSample(t)
	nav := NewNavigator(doc)
	assert.Equal(t, xpath.RootNode, nav.NodeType())
	assert.False(t, nav.MoveToParent())
	assert.False(t, nav.MoveToNext())
	require.True(t, nav.MoveToChild())
	assert.Equal(t, "document", nav.LocalName())
	require.True(t, nav.MoveToChild())
	assert.Equal(t, "heading", nav.LocalName())
	assert.False(t, nav.MoveToPrevious())
	assert.False(t, nav.MoveToFirst())
	require.True(t, nav.MoveToNextAttribute())
	assert.Equal(t, xpath.AttributeNode, nav.NodeType())
	assert.Equal(t, "level", nav.LocalName())
	assert.Equal(t, "1", nav.Value())
	assert.False(t, nav.MoveToChild())
	require.True(t, nav.MoveToParent())
	assert.Equal(t, xpath.ElementNode, nav.NodeType())
	//
	c := nav.Copy()
	require.True(t, nav.MoveToNext())
	assert.Equal(t, "separator", nav.LocalName())
	require.True(t, nav.MoveToNext())
	assert.Equal(t, "paragraph", nav.LocalName())
	assert.Equal(t, "heading", c.LocalName(), "copies move independently")
	require.True(t, nav.MoveToPrevious())
	assert.Equal(t, "separator", nav.LocalName())
	require.True(t, nav.MoveToFirst())
	assert.Equal(t, "heading", nav.LocalName())
	//
	require.True(t, nav.MoveToNext())
	require.True(t, c.MoveTo(nav))
	assert.Equal(t, "separator", c.LocalName())
	nav.MoveToRoot()
	assert.Equal(t, xpath.RootNode, nav.NodeType())
	assert.Equal(t, "separator", c.LocalName())
	assert.False(t, c.MoveTo(NewNavigator(doc)), "navigators of different trees")
}
