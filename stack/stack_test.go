package stack_test

import (
	"testing"

	"github.com/Kennaoui/COMP272-Spring2026/stack"
	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	s := stack.New[int](3)
	require.True(t, s.IsEmpty())
	require.Equal(t, 0, s.Size())

	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	require.NoError(t, s.Push(3))
	require.Equal(t, 3, s.Size())

	require.ErrorIs(t, s.Push(4), stack.ErrFull)

	top, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, 3, top)
	require.Equal(t, 3, s.Size())

	for want := 3; want >= 1; want-- {
		got, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.True(t, s.IsEmpty())

	_, err = s.Pop()
	require.ErrorIs(t, err, stack.ErrEmpty)
	_, err = s.Peek()
	require.ErrorIs(t, err, stack.ErrEmpty)
}

func TestStackReusableAfterDrain(t *testing.T) {
	s := stack.New[string](2)
	require.NoError(t, s.Push("a"))
	_, err := s.Pop()
	require.NoError(t, err)
	require.NoError(t, s.Push("b"))
	require.NoError(t, s.Push("c"))
	require.ErrorIs(t, s.Push("d"), stack.ErrFull)
}

func TestStackZeroCapacity(t *testing.T) {
	s := stack.New[int](0)
	require.True(t, s.IsEmpty())
	require.ErrorIs(t, s.Push(1), stack.ErrFull)
}
