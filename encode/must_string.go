package encode

import (
	"bytes"

	"github.com/tallyfmt/rollup/tree"
)

// MustString renders n to a string, panicking on encode errors. Encoding
// to a bytes.Buffer cannot fail, so the panic only fires on option misuse.
func MustString(n *tree.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
