// Package stack provides a bounded LIFO stack and a small
// grouping-symbol matcher built on it. It has no dependency on the tree
// packages in this repository.
package stack

import "errors"

var (
	// ErrEmpty indicates a Pop or Peek on an empty stack.
	ErrEmpty = errors.New("stack is empty")

	// ErrFull indicates a Push on a stack at capacity.
	ErrFull = errors.New("stack is full")
)

// Stack is a fixed-capacity LIFO stack.
type Stack[E any] struct {
	items []E
	top   int // index of the top element, -1 when empty
}

// New returns an empty stack that can hold up to capacity elements.
func New[E any](capacity int) *Stack[E] {
	return &Stack[E]{
		items: make([]E, capacity),
		top:   -1,
	}
}

// Size returns the number of elements on the stack.
func (s *Stack[E]) Size() int {
	return s.top + 1
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[E]) IsEmpty() bool {
	return s.top == -1
}

// Push places e on top of the stack.
func (s *Stack[E]) Push(e E) error {
	if s.top == len(s.items)-1 {
		return ErrFull
	}
	s.top++
	s.items[s.top] = e
	return nil
}

// Pop removes and returns the top element.
func (s *Stack[E]) Pop() (E, error) {
	var zero E
	if s.IsEmpty() {
		return zero, ErrEmpty
	}
	e := s.items[s.top]
	s.items[s.top] = zero // drop the reference
	s.top--
	return e, nil
}

// Peek returns the top element without removing it.
func (s *Stack[E]) Peek() (E, error) {
	if s.IsEmpty() {
		var zero E
		return zero, ErrEmpty
	}
	return s.items[s.top], nil
}
