package trees

import "errors"

// Validation errors
var (
	// ErrNilNode indicates a nil node handle was passed where a node was required.
	ErrNilNode = errors.New("node must not be nil")

	// ErrForeignNode indicates a node handle belonging to a different tree instance.
	ErrForeignNode = errors.New("node does not belong to this tree")
)

// Structural errors
var (
	// ErrNotEmpty indicates an attempt to add a root to a non-empty tree.
	ErrNotEmpty = errors.New("tree already has a root")
)
