// Package tree provides the nested container behind an accumulator: one
// level of insertion-ordered children, a running total, and the formatting
// configuration used to render values for display.
//
// A child is either a leaf value (float64) or a nested *Node. The running
// total of a node equals the sum of every value ever accepted at or below
// it, however deeply nested.
package tree

import (
	"github.com/elliotchance/orderedmap"

	"github.com/tallyfmt/rollup/config"
	"github.com/tallyfmt/rollup/numfmt"
)

// Node is one subtree level. Nodes are not safe for concurrent use;
// callers sharing a tree across goroutines must serialize access.
type Node struct {
	cfg      *config.Config
	children *orderedmap.OrderedMap
	total    float64
	cursor   *orderedmap.Element
}

// New returns an empty node rendering through cfg. A nil cfg means
// config.Default. The config is shared by reference, never copied.
func New(cfg *config.Config) *Node {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Node{
		cfg:      cfg,
		children: orderedmap.NewOrderedMap(),
	}
}

func (n *Node) Config() *config.Config { return n.cfg }

// AddTotal increments the running total. The accumulator calls this while
// walking a write path; it is rarely useful to end users.
func (n *Node) AddTotal(v float64) {
	n.total += v
}

// RawTotal returns the running total without formatting.
func (n *Node) RawTotal() float64 { return n.total }

// Total returns the running total rendered through the node's config.
func (n *Node) Total() string {
	return numfmt.Result(n.total, n.cfg)
}

// Lookup reports the child stored at key, if any.
func (n *Node) Lookup(key string) (any, bool) {
	return n.children.Get(key)
}

// Get returns the raw child at key: a *Node, a float64 leaf, or float64(0)
// when the key is absent.
func (n *Node) Get(key string) any {
	v, ok := n.children.Get(key)
	if !ok {
		return float64(0)
	}
	return v
}

// Format returns the child at key rendered through the node's config:
// a formatted zero when absent, the formatted value for a leaf, and the
// formatted running total for a nested node. Use Get to obtain the node
// itself.
func (n *Node) Format(key string) string {
	v, ok := n.children.Get(key)
	if !ok {
		return numfmt.Result(0, n.cfg)
	}
	switch x := v.(type) {
	case float64:
		return numfmt.Result(x, n.cfg)
	case *Node:
		return x.Total()
	default:
		return numfmt.Result(0, n.cfg)
	}
}

// Set stores v at key, replacing any existing child. Keys keep their
// original insertion position on replacement.
func (n *Node) Set(key string, v any) {
	n.children.Set(key, v)
}

func (n *Node) Has(key string) bool {
	_, ok := n.children.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (n *Node) Delete(key string) bool {
	if n.cursor != nil && n.cursor.Key == key {
		n.cursor = n.cursor.Next()
	}
	return n.children.Delete(key)
}

// Count returns the number of direct children.
func (n *Node) Count() int {
	return n.children.Len()
}

// Keys returns the direct child keys in insertion order.
func (n *Node) Keys() []string {
	res := make([]string, 0, n.children.Len())
	for el := n.children.Front(); el != nil; el = el.Next() {
		k, _ := el.Key.(string)
		res = append(res, k)
	}
	return res
}

// FormatResult renders v through the node's config.
func (n *Node) FormatResult(v float64) string {
	return numfmt.Result(v, n.cfg)
}

// FormatResultWith renders v through cfg instead of the node's config,
// for per-call overrides.
func (n *Node) FormatResultWith(v float64, cfg *config.Config) string {
	return numfmt.Result(v, cfg)
}
