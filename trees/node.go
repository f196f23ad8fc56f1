package trees

import "fmt"

// Node is a position in a Tree. Nodes are created only by their owning
// tree; all structural mutation goes through the Tree API so that the
// parent/child links and the size counter stay consistent.
type Node[T any] struct {
	owner    *Tree[T]
	element  T
	parent   *Node[T] // nil only for the root
	children []*Node[T]
}

// Element returns the element stored at this node.
func (n *Node[T]) Element() T {
	return n.element
}

// Parent returns the node's parent, or nil if it is the root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Children returns the node's children in insertion order. The returned
// slice is a copy; mutating it does not affect the tree.
func (n *Node[T]) Children() []*Node[T] {
	out := make([]*Node[T], len(n.children))
	copy(out, n.children)
	return out
}

// NumChildren returns the number of children without copying.
func (n *Node[T]) NumChildren() int {
	return len(n.children)
}

func (n *Node[T]) String() string {
	return fmt.Sprintf("%v", n.element)
}

// attach links child under n. Both sides of the relation are set here so
// no caller can observe one without the other.
func (n *Node[T]) attach(child *Node[T]) {
	child.parent = n
	n.children = append(n.children, child)
}
