package xpathadapter

import (
	"strconv"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/mdxe/core"
	"github.com/npillmayer/mdxe/engine/mdtree"
)

// Match is a result of a query.
type Match struct {
	Name   string        // element or attribute name, empty for text and values
	Value  string        // text content, attribute value or value of expression
	Block  mdtree.Block  // block containing the node, if any
	Inline mdtree.Inline // inline span of the node, if any
}

// Query evaluates an XPath expression against a document. Expressions
// selecting nodes result in one match per node, in document order. Other
// expressions, such as count(…), result in a single match holding the
// value.
//
// An expression which does not compile is reported as an error with
// code core.EINVALID.
func Query(doc *mdtree.Document, expr string) ([]Match, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		tracer().Errorf("xpath %q: %v", expr, err)
		return nil, core.WrapError(err, core.EINVALID, "invalid XPath expression %q", expr)
	}
	nav := NewNavigator(doc)
	var matches []Match
	switch v := compiled.Evaluate(nav).(type) {
	case *xpath.NodeIterator:
		for v.MoveNext() {
			n := v.Current().(*NodeNavigator)
			m := Match{
				Value:  n.Value(),
				Block:  n.CurrentBlock(),
				Inline: n.CurrentInline(),
			}
			if t := n.NodeType(); t == xpath.ElementNode || t == xpath.AttributeNode {
				m.Name = n.LocalName()
			}
			matches = append(matches, m)
		}
	case float64:
		matches = append(matches, Match{Value: strconv.FormatFloat(v, 'f', -1, 64)})
	case string:
		matches = append(matches, Match{Value: v})
	case bool:
		matches = append(matches, Match{Value: strconv.FormatBool(v)})
	}
	tracer().Debugf("xpath %q: %d matches", expr, len(matches))
	return matches, nil
}
