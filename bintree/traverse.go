package bintree

// Preorder returns the values of the subtree rooted at n in preorder
// (node, left, right). A nil n yields an empty result.
func Preorder(n *Node) []int {
	var out []int
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		out = append(out, n.value)
		walk(n.left)
		walk(n.right)
	}
	walk(n)
	return out
}

// Inorder returns the values of the subtree rooted at n in inorder
// (left, node, right). For a search tree this is ascending order.
func Inorder(n *Node) []int {
	var out []int
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.value)
		walk(n.right)
	}
	walk(n)
	return out
}
