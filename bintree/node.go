// Package bintree provides a positional binary tree of int values and a
// binary-search-tree variant layered on the same node shape.
package bintree

// Node is a binary tree node with at most one child per side.
type Node struct {
	value  int
	left   *Node
	right  *Node
	parent *Node
}

// NewNode returns a detached node holding v, suitable as the root of a
// hand-built tree.
func NewNode(v int) *Node {
	return &Node{value: v}
}

// Value returns the value stored at the node.
func (n *Node) Value() int {
	return n.value
}

// SetValue replaces the value stored at the node.
func (n *Node) SetValue(v int) {
	n.value = v
}

// Left returns the left child, or nil.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node) Right() *Node {
	return n.right
}

// Parent returns the parent, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *Node) addChild(v int, left bool) *Node {
	child := &Node{value: v, parent: n}
	if left {
		n.left = child
	} else {
		n.right = child
	}
	return child
}

// AddLeft attaches a new left child holding v. It reports false and makes
// no change if the left slot is already occupied.
func (n *Node) AddLeft(v int) (*Node, bool) {
	if n.left != nil {
		return nil, false
	}
	return n.addChild(v, true), true
}

// AddRight attaches a new right child holding v. It reports false and
// makes no change if the right slot is already occupied.
func (n *Node) AddRight(v int) (*Node, bool) {
	if n.right != nil {
		return nil, false
	}
	return n.addChild(v, false), true
}

// AddChild attaches v in the first free slot, trying left before right.
// It reports false if both slots are occupied. The left-first order is a
// policy of this type, not a property of binary trees.
func (n *Node) AddChild(v int) (*Node, bool) {
	if child, ok := n.AddLeft(v); ok {
		return child, true
	}
	return n.AddRight(v)
}
