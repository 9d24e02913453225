// Package util provides a collection of domain-agnostic utility functions and cross-platform helpers.
package util

import "github.com/sll-cli/sll/list"

// Stack implements a parameterized Last-In-First-Out (LIFO) data structure on top of list.List.
// Unlike the list itself, it reports emptiness through zero values.
type Stack[T any] struct {
	items list.List[T]
}

// Push places a new element on the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items.Push(item)
}

// Pop removes and returns the topmost element of the stack; returns the zero value if the stack is empty.
func (s *Stack[T]) Pop() (item T) {
	return s.items.Pop().OrEmpty()
}

// Peek returns the topmost element without removing it; returns the zero value if the stack is empty.
func (s *Stack[T]) Peek() (item T) {
	return s.items.Peek().OrEmpty()
}

// Len returns the total number of elements currently stored in the stack.
func (s *Stack[T]) Len() int {
	return s.items.Len()
}

// Clear removes all elements from the stack, resetting it to an empty state.
func (s *Stack[T]) Clear() {
	s.items.Drop()
}
