// Package query compiles expr-lang expressions into filters over an
// accumulator tree.
//
// Expressions evaluate against one element at a time:
//
//	q, err := query.Compile(`total > 100 && !leaf`)
//	...
//	matches, err := q.Select(acc.Root())
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/tallyfmt/rollup/dpath"
	"github.com/tallyfmt/rollup/tree"
)

// Env is the evaluation environment for one tree element.
type Env struct {
	Key   string  `expr:"key"`   // child key
	Path  string  `expr:"path"`  // dotted path from the walk root
	Total float64 `expr:"total"` // leaf value, or a node's running total
	Count int     `expr:"count"` // direct child count, 0 for leaves
	Depth int     `expr:"depth"` // 1 for direct children of the walk root
	Leaf  bool    `expr:"leaf"`
}

type Query struct {
	src     string
	program *vm.Program
}

// Compile compiles a boolean expression evaluated against Env.
func Compile(src string) (*Query, error) {
	program, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling query %q: %w", src, err)
	}
	return &Query{src: src, program: program}, nil
}

func (q *Query) String() string { return q.src }

// Match evaluates the query against a single environment.
func (q *Query) Match(env Env) (bool, error) {
	res, err := expr.Run(q.program, env)
	if err != nil {
		return false, fmt.Errorf("error running query %q: %w", q.src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("query %q returned %T, not bool", q.src, res)
	}
	return b, nil
}

// Result is one selected element.
type Result struct {
	Path  string
	Total float64
	Node  *tree.Node // nil for leaves
}

// Select walks every element beneath n in insertion order and returns
// those whose environment satisfies the query. The walk does not disturb
// iteration cursors.
func (q *Query) Select(n *tree.Node) ([]Result, error) {
	return q.selectFrom(n, nil, 1)
}

func (q *Query) selectFrom(n *tree.Node, prefix []string, depth int) ([]Result, error) {
	var res []Result
	var walkErr error
	n.Each(func(key string, v any) bool {
		segs := append(prefix[:len(prefix):len(prefix)], key)
		env := Env{Key: key, Path: dpath.String(segs), Depth: depth}
		child, isNode := v.(*tree.Node)
		if isNode {
			env.Total = child.RawTotal()
			env.Count = child.Count()
		} else {
			f, _ := v.(float64)
			env.Total = f
			env.Leaf = true
		}
		ok, err := q.Match(env)
		if err != nil {
			walkErr = err
			return false
		}
		if ok {
			r := Result{Path: env.Path, Total: env.Total}
			if isNode {
				r.Node = child
			}
			res = append(res, r)
		}
		if isNode {
			sub, err := q.selectFrom(child, segs, depth+1)
			if err != nil {
				walkErr = err
				return false
			}
			res = append(res, sub...)
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return res, nil
}
