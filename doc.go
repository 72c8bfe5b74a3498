// Package rollup provides a nested totals accumulator: a dotted-key
// container that auto-sums values at every nesting level and renders
// results for display (fixed decimals with thousands separators, rounding,
// prefix/suffix).
//
// # Overview
//
// An Accumulator exposes a flat dotted-key interface over a tree of
// nodes. Writing "a.b.c" creates nodes at "a" and "a.b" with the value
// stored as a leaf at "a.b.c"; the written value is added to the running
// total of the root and of every node along the path. Reading works
// symmetrically and never fails: missing paths yield empty nodes and
// zero totals.
//
//	acc := rollup.New(config.New(config.Prefix("$"), config.Suffix(" USD")))
//	acc.Set("store.food", 30)
//	acc.Set("store.wine", 15)
//	acc.Total()                    // "$45.00 USD"
//	acc.Get("store").Total()       // "$45.00 USD"
//	acc.Get("store.food").Total()  // "$30.00 USD"
//
// Writing the same leaf twice accumulates rather than replaces:
//
//	acc.Set("x.y", 3)
//	acc.Set("x.y", 4)
//	acc.Get("x.y").RawTotal()      // 7
//
// # Structure
//
// Subpackages follow the split of concerns:
//
//   - tree: the nested node container (totals, counting, iteration)
//   - dpath: dotted-key parsing
//   - config: formatting configuration, YAML decoding of partial configs
//   - numfmt: scalar rendering per config
//   - encode: indented report rendering with optional colors
//   - query: expression filters over a tree
//
// The accumulator is an in-memory structure for single-request use; it is
// not safe for concurrent access.
package rollup
