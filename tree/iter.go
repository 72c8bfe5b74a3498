package tree

// Cursor iteration over direct children in insertion order. The cursor is
// part of the node; restart with Rewind, test with Valid, advance with
// Next. Adding keys during iteration is safe; Delete of the current key
// advances the cursor past it.

// Rewind resets the cursor to the first child.
func (n *Node) Rewind() {
	n.cursor = n.children.Front()
}

// Valid reports whether the cursor is on a child.
func (n *Node) Valid() bool {
	return n.cursor != nil
}

// Key returns the key under the cursor, or "" when exhausted.
func (n *Node) Key() string {
	if n.cursor == nil {
		return ""
	}
	k, _ := n.cursor.Key.(string)
	return k
}

// Current returns the value under the cursor, or nil when exhausted.
func (n *Node) Current() any {
	if n.cursor == nil {
		return nil
	}
	return n.cursor.Value
}

// Next advances the cursor.
func (n *Node) Next() {
	if n.cursor != nil {
		n.cursor = n.cursor.Next()
	}
}

// Each calls f for every direct child in insertion order until f returns
// false. Each walks its own element reference and leaves the cursor alone.
func (n *Node) Each(f func(key string, v any) bool) {
	for el := n.children.Front(); el != nil; el = el.Next() {
		k, _ := el.Key.(string)
		if !f(k, el.Value) {
			return
		}
	}
}
