package trees

import "iter"

// Nodes returns every node of the tree in preorder: a node appears before
// any of its descendants, and children appear in the order they were
// added. Each call materializes a fresh snapshot slice, so later
// structural changes do not affect a sequence already returned.
func (t *Tree[T]) Nodes() []*Node[T] {
	if t.root == nil {
		return nil
	}
	out := make([]*Node[T], 0, t.size)
	// explicit stack; children pushed in reverse so the leftmost pops first
	stack := []*Node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n)
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	return out
}

// All returns a preorder iterator over the tree's nodes, for use with
// range. The order is identical to Nodes, and each call yields an
// independent restartable sequence.
func (t *Tree[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for _, n := range t.Nodes() {
			if !yield(n) {
				return
			}
		}
	}
}
