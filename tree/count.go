package tree

// RecursiveCount counts items reachable beneath n. depth limits descent:
// 1 counts direct children only, 0 or negative places no limit. A nested
// node at the depth boundary counts as a single item; below the boundary
// only terminal leaves are counted, so with no limit the result is the
// number of leaves in the subtree.
//
// The walk reads the child list directly and neither uses nor disturbs the
// node's iteration cursor.
func (n *Node) RecursiveCount(depth int) int {
	res := 0
	for el := n.children.Front(); el != nil; el = el.Next() {
		child, ok := el.Value.(*Node)
		if !ok || depth == 1 {
			res++
			continue
		}
		next := depth
		if next > 1 {
			next--
		}
		res += child.RecursiveCount(next)
	}
	return res
}
