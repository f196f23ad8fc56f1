package bintree

// SearchTree is an unbalanced binary search tree over int values.
// Duplicates are rejected rather than counted, and there is no
// rebalancing: adversarial insertion orders degrade to a list.
type SearchTree struct {
	root *Node
	size int
}

// NewSearchTree returns an empty search tree.
func NewSearchTree() *SearchTree {
	return &SearchTree{}
}

// Size returns the number of values in the tree.
func (t *SearchTree) Size() int {
	return t.size
}

// Root returns the root node, or nil if the tree is empty.
func (t *SearchTree) Root() *Node {
	return t.root
}

// Insert adds v to the tree, reporting whether it was added. Inserting a
// value already present reports false and leaves the tree unchanged.
// Cost is O(depth reached).
func (t *SearchTree) Insert(v int) bool {
	if t.root == nil {
		t.root = &Node{value: v}
		t.size = 1
		return true
	}
	node := t.root
	for {
		switch {
		case v == node.value:
			return false
		case v < node.value:
			if node.left == nil {
				node.addChild(v, true)
				t.size++
				return true
			}
			node = node.left
		default:
			if node.right == nil {
				node.addChild(v, false)
				t.size++
				return true
			}
			node = node.right
		}
	}
}

// Search returns the node holding v, or nil if v is not present.
func (t *SearchTree) Search(v int) *Node {
	node := t.root
	for node != nil && node.value != v {
		if v < node.value {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node
}

// Contains reports whether v is present.
func (t *SearchTree) Contains(v int) bool {
	return t.Search(v) != nil
}

// InOrder returns all values in ascending order.
func (t *SearchTree) InOrder() []int {
	return Inorder(t.root)
}
