package rollup

import (
	"math"

	"github.com/tallyfmt/rollup/config"
	"github.com/tallyfmt/rollup/dpath"
	"github.com/tallyfmt/rollup/tree"
)

// Accumulator exposes a flat dotted-key interface over a nested node tree,
// hiding tree walking from callers.
type Accumulator struct {
	cfg  *config.Config
	root *tree.Node
}

// New returns an accumulator rendering through cfg. A nil cfg means
// config.Default.
func New(cfg *config.Config) *Accumulator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Accumulator{
		cfg:  cfg,
		root: tree.New(cfg),
	}
}

type SetOption func(*setState)

type setState struct {
	cfg *config.Config
}

// WithNodeConfig sets the configuration attached to nodes created by this
// write. Existing nodes keep the configuration they were created with.
func WithNodeConfig(cfg *config.Config) SetOption {
	return func(ss *setState) {
		if cfg != nil {
			ss.cfg = cfg
		}
	}
}

// Set adds v at the dotted key, creating missing nodes along the path and
// adding v to the running total of the root and of every traversed node.
// A leaf already present at the key accumulates: the stored value becomes
// existing + v.
//
// Set validates the whole path before mutating anything, so a failed write
// leaves every total untouched. It fails with ErrStructuralConflict when
// the path runs through an existing leaf or ends on an existing node, and
// with ErrInvalidValue for NaN or infinite v.
func (a *Accumulator) Set(key string, v float64, opts ...SetOption) error {
	segs, err := dpath.Parse(key)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &tree.ValueError{Path: key, Value: v}
	}
	ss := &setState{cfg: a.cfg}
	for _, opt := range opts {
		opt(ss)
	}
	if err := a.checkPath(segs); err != nil {
		return err
	}
	a.apply(segs, v, ss.cfg)
	return nil
}

// checkPath walks the existing structure looking for conflicts without
// touching it.
func (a *Accumulator) checkPath(segs []string) error {
	cur := a.root
	for i, seg := range segs {
		v, ok := cur.Lookup(seg)
		if !ok {
			return nil
		}
		last := i == len(segs)-1
		switch child := v.(type) {
		case *tree.Node:
			if last {
				return &tree.StructuralError{
					Path: dpath.String(segs[:i+1]),
					Key:  seg,
					Node: true,
				}
			}
			cur = child
		case float64:
			if !last {
				return &tree.StructuralError{
					Path: dpath.String(segs[:i+1]),
					Key:  seg,
				}
			}
			return nil
		}
	}
	return nil
}

// apply performs the write. checkPath has already ruled out conflicts.
func (a *Accumulator) apply(segs []string, v float64, cfg *config.Config) {
	a.root.AddTotal(v)
	cur := a.root
	for i, seg := range segs {
		last := i == len(segs)-1
		existing, ok := cur.Lookup(seg)
		if !ok {
			if last {
				cur.Set(seg, v)
				return
			}
			n := tree.New(cfg)
			n.AddTotal(v)
			cur.Set(seg, n)
			cur = n
			continue
		}
		switch child := existing.(type) {
		case *tree.Node:
			child.AddTotal(v)
			cur = child
		case float64:
			cur.Set(seg, child+v)
			return
		}
	}
}

// Get descends to the dotted key and returns the node there. Get never
// fails and never mutates the tree: a missing segment, a malformed key,
// or a path through an existing leaf all yield a fresh empty node sharing
// the accumulator's configuration. A leaf at the final segment yields a
// fresh childless node whose total is the leaf value, so
// Get("x.y").RawTotal() reads the stored leaf.
func (a *Accumulator) Get(key string) *tree.Node {
	segs, err := dpath.Parse(key)
	if err != nil {
		return tree.New(a.cfg)
	}
	cur := a.root
	for i, seg := range segs {
		v, ok := cur.Lookup(seg)
		if !ok {
			return tree.New(a.cfg)
		}
		switch child := v.(type) {
		case *tree.Node:
			cur = child
		case float64:
			if i == len(segs)-1 {
				leaf := tree.New(cur.Config())
				leaf.AddTotal(child)
				return leaf
			}
			return tree.New(a.cfg)
		}
	}
	return cur
}

// Total returns the grand total rendered through the configuration.
func (a *Accumulator) Total() string { return a.root.Total() }

// RawTotal returns the grand total without formatting.
func (a *Accumulator) RawTotal() float64 { return a.root.RawTotal() }

// Count returns the number of direct children of the root.
func (a *Accumulator) Count() int { return a.root.Count() }

// Each walks the root's direct children in insertion order.
func (a *Accumulator) Each(f func(key string, v any) bool) { a.root.Each(f) }

// Cursor iteration over the root's direct children.
func (a *Accumulator) Rewind()      { a.root.Rewind() }
func (a *Accumulator) Valid() bool  { return a.root.Valid() }
func (a *Accumulator) Key() string  { return a.root.Key() }
func (a *Accumulator) Current() any { return a.root.Current() }
func (a *Accumulator) Next()        { a.root.Next() }

func (a *Accumulator) Root() *tree.Node       { return a.root }
func (a *Accumulator) Config() *config.Config { return a.cfg }
