// Package list implements a generic singly linked LIFO list.
//
// The list owns every node it links to. Values leave the list either by Pop,
// by an owning iterator, or by Drop, which releases the remaining chain one
// node at a time.
package list

import (
	"fmt"
	"strings"

	"github.com/samber/mo"
)

// node holds one value and the link to the rest of the chain.
// A nil next means there is no next node.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a stack-ordered singly linked list. The zero value is an empty list.
//
// List is not safe for concurrent use.
type List[T any] struct {
	head *node[T]
	len  int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Push places value at the head of the list.
func (l *List[T]) Push(value T) {
	l.head = &node[T]{value: value, next: l.head}
	l.len++
}

// Pop detaches the head node and returns its value, or None if the list is empty.
func (l *List[T]) Pop() mo.Option[T] {
	n := l.take()
	if n == nil {
		return mo.None[T]()
	}

	return mo.Some(n.value)
}

// take detaches the head node, promoting its successor.
// The detached node no longer links into the chain.
func (l *List[T]) take() *node[T] {
	n := l.head
	if n == nil {
		return nil
	}

	l.head = n.next
	n.next = nil
	l.len--
	return n
}

// Peek returns a copy of the head value without removing it.
func (l *List[T]) Peek() mo.Option[T] {
	if l.head == nil {
		return mo.None[T]()
	}
	return mo.Some(l.head.value)
}

// PeekMut returns a pointer to the head value so it can be overwritten in place.
// The pointer stays valid until the head node is popped or dropped; no other
// access to the list may happen while it is in use.
func (l *List[T]) PeekMut() mo.Option[*T] {
	if l.head == nil {
		return mo.None[*T]()
	}
	return mo.Some(&l.head.value)
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Drop releases every node without recursion.
// Each node is cut from its successor before the loop moves on, so no
// released node keeps the rest of the chain reachable. Values are zeroed:
// an Iter or IterMut still in use yields at most one zero value and then ends.
func (l *List[T]) Drop() {
	current := l.head
	l.head = nil
	l.len = 0

	for current != nil {
		next := current.next
		current.next = nil

		var zero T
		current.value = zero

		current = next
	}
}

// String renders the list head first, e.g. [3 2 1].
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, n.value)
	}
	b.WriteByte(']')
	return b.String()
}
