package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/tallyfmt/rollup/encode"
	"github.com/tallyfmt/rollup/tree"
)

// Tree wraps a node so that %s renders the full subtree report.
type Tree struct{ *tree.Node }

func (t Tree) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t.Node, buf); err != nil {
		return fmt.Sprintf("[raw *tree.Node] %v", t.Node)
	}
	return buf.String()
}

// Logf writes a formatted message to stderr, rendering any *tree.Node
// arguments as indented reports.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *tree.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *tree.Node] %v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
