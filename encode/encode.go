// Package encode renders an accumulator tree to a writer as an indented
// key/value report, one line per child, with nested subtrees indented
// beneath their formatted totals.
package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tallyfmt/rollup/tree"
)

type EncState struct {
	depth, indent int
	raw           bool
	noTotals      bool

	Color func(ColorAttr, string) string
}

// Encode writes n to w. With defaults every leaf renders as
// "key: <formatted value>" and every nested node as
// "key: <formatted total>" followed by its children, indented.
func Encode(n *tree.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = plainColor
	}
	return encode(n, w, es)
}

func encode(n *tree.Node, w io.Writer, es *EncState) error {
	var err error
	n.Each(func(key string, v any) bool {
		pad := strings.Repeat(" ", es.depth*es.indent)
		field := es.Color(FieldColor, key)
		sep := es.Color(SepColor, ":")
		switch x := v.(type) {
		case *tree.Node:
			if es.noTotals {
				_, err = fmt.Fprintf(w, "%s%s%s\n", pad, field, sep)
			} else {
				total := es.Color(TotalColor, nodeTotal(x, es))
				_, err = fmt.Fprintf(w, "%s%s%s %s\n", pad, field, sep, total)
			}
			if err != nil {
				return false
			}
			es.depth++
			err = encode(x, w, es)
			es.depth--
			if err != nil {
				return false
			}
		case float64:
			val := es.Color(ValueColor, leafValue(n, x, es))
			if _, err = fmt.Fprintf(w, "%s%s%s %s\n", pad, field, sep, val); err != nil {
				return false
			}
		default:
			val := es.Color(ValueColor, fmt.Sprintf("%v", v))
			if _, err = fmt.Fprintf(w, "%s%s%s %s\n", pad, field, sep, val); err != nil {
				return false
			}
		}
		return true
	})
	return err
}

func nodeTotal(n *tree.Node, es *EncState) string {
	if es.raw {
		return strconv.FormatFloat(n.RawTotal(), 'f', -1, 64)
	}
	return n.Total()
}

func leafValue(parent *tree.Node, v float64, es *EncState) string {
	if es.raw {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return parent.FormatResult(v)
}
