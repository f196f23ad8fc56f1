// Package trees provides a general-purpose linked representation of a
// rooted tree with arbitrary branching. The tree owns its nodes: handles
// returned by mutation calls are validated on every use, so a handle from
// one tree can never corrupt another.
package trees

// Tree is a rooted tree with an arbitrary number of children per node.
type Tree[T any] struct {
	root *Node[T]
	size int
}

// New returns an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Size returns the number of nodes in the tree.
func (t *Tree[T]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t.size == 0
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// validate checks that p is a usable handle into this tree.
func (t *Tree[T]) validate(p *Node[T]) error {
	if p == nil {
		return ErrNilNode
	}
	if p.owner != t {
		return ErrForeignNode
	}
	return nil
}

// AddRoot adds a root to an empty tree and returns it. It fails with
// ErrNotEmpty if the tree already has a root.
func (t *Tree[T]) AddRoot(e T) (*Node[T], error) {
	if !t.IsEmpty() {
		return nil, ErrNotEmpty
	}
	t.root = &Node[T]{owner: t, element: e}
	t.size = 1
	return t.root, nil
}

// AddChild creates a new child of p holding e and returns it.
func (t *Tree[T]) AddChild(p *Node[T], e T) (*Node[T], error) {
	if err := t.validate(p); err != nil {
		return nil, err
	}
	child := &Node[T]{owner: t, element: e}
	p.attach(child)
	t.size++
	return child, nil
}

// Replace swaps the element stored at p with e and returns the old
// element. The structure of the tree is unchanged.
func (t *Tree[T]) Replace(p *Node[T], e T) (T, error) {
	if err := t.validate(p); err != nil {
		var zero T
		return zero, err
	}
	old := p.element
	p.element = e
	return old, nil
}

// Parent returns the parent of p, or nil if p is the root.
func (t *Tree[T]) Parent(p *Node[T]) (*Node[T], error) {
	if err := t.validate(p); err != nil {
		return nil, err
	}
	return p.parent, nil
}

// Children returns the children of p in insertion order as a fresh slice.
func (t *Tree[T]) Children(p *Node[T]) ([]*Node[T], error) {
	if err := t.validate(p); err != nil {
		return nil, err
	}
	return p.Children(), nil
}

// NumChildren returns the number of children of p.
func (t *Tree[T]) NumChildren(p *Node[T]) (int, error) {
	if err := t.validate(p); err != nil {
		return 0, err
	}
	return len(p.children), nil
}

// IsRoot reports whether p is the root of this tree.
func (t *Tree[T]) IsRoot(p *Node[T]) (bool, error) {
	if err := t.validate(p); err != nil {
		return false, err
	}
	return p == t.root, nil
}

// IsExternal reports whether p has no children.
func (t *Tree[T]) IsExternal(p *Node[T]) (bool, error) {
	if err := t.validate(p); err != nil {
		return false, err
	}
	return len(p.children) == 0, nil
}

// IsInternal reports whether p has at least one child.
func (t *Tree[T]) IsInternal(p *Node[T]) (bool, error) {
	ext, err := t.IsExternal(p)
	if err != nil {
		return false, err
	}
	return !ext, nil
}

// Depth returns the number of edges between p and the root. The root has
// depth 0. Runs in O(depth).
func (t *Tree[T]) Depth(p *Node[T]) (int, error) {
	if err := t.validate(p); err != nil {
		return 0, err
	}
	depth := 0
	for p.parent != nil {
		p = p.parent
		depth++
	}
	return depth, nil
}

// Height returns the height of the subtree rooted at p: 0 for a leaf,
// otherwise 1 + the maximum height among the children. Runs in O(subtree
// size) with an explicit stack, so stack depth is not bound to the
// subtree's height.
func (t *Tree[T]) Height(p *Node[T]) (int, error) {
	if err := t.validate(p); err != nil {
		return 0, err
	}
	return heightOf(p), nil
}

// heightOf computes subtree height iteratively. Children are consumed in a
// postorder pass: a node is resolved once every child's height is known.
func heightOf[T any](p *Node[T]) int {
	type frame struct {
		node *Node[T]
		next int // index of the next child to visit
		max  int // max height among children seen so far
	}
	stack := []frame{{node: p, max: -1}}
	result := 0
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.children) {
			child := top.node.children[top.next]
			top.next++
			stack = append(stack, frame{node: child, max: -1})
			continue
		}
		// all children resolved; leaves contribute max == -1
		result = top.max + 1
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := &stack[len(stack)-1]
			if result > parent.max {
				parent.max = result
			}
		}
	}
	return result
}
