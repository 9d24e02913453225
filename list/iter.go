package list

import (
	"iter"

	"github.com/samber/mo"
)

// IntoIter is an owning iterator. It holds the chain taken out of a list and
// pops one value per step.
type IntoIter[T any] struct {
	list List[T]
}

// IntoIter moves every element out of l into a new owning iterator.
// l is empty afterwards and can be reused.
func (l *List[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{list: List[T]{head: l.head, len: l.len}}
	l.head = nil
	l.len = 0
	return it
}

// Next pops the next value, or returns None once the iterator is exhausted.
func (it *IntoIter[T]) Next() mo.Option[T] {
	return it.list.Pop()
}

// Len returns the number of values left.
func (it *IntoIter[T]) Len() int {
	return it.list.Len()
}

// Seq adapts the iterator for range-over-func. Values left unconsumed when
// the loop breaks stay in the iterator.
func (it *IntoIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Iter is a read-only cursor over a list, head to tail.
type Iter[T any] struct {
	next *node[T]
}

// Iter returns a cursor positioned at the head of l.
// It must not be used after l is mutated.
func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{next: l.head}
}

// Next returns a copy of the next value, or None at the end of the list.
func (it *Iter[T]) Next() mo.Option[T] {
	n := it.next
	if n == nil {
		return mo.None[T]()
	}

	it.next = n.next
	return mo.Some(n.value)
}

// Seq adapts the cursor for range-over-func.
func (it *Iter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// IterMut is a cursor that hands out one pointer per element.
//
// At each step the cursor takes the remaining chain, replaces its own view
// with the tail, and only then returns a pointer to the taken node's value.
// The cursor never holds a pointer it has already handed out.
type IterMut[T any] struct {
	next *node[T]
}

// IterMut returns a mutable cursor positioned at the head of l.
// While it is in use, l must not be accessed through any other path.
func (l *List[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{next: l.head}
}

// Next returns a pointer to the next value, or None at the end of the list.
func (it *IterMut[T]) Next() mo.Option[*T] {
	n := it.next
	it.next = nil
	if n == nil {
		return mo.None[*T]()
	}

	it.next = n.next
	return mo.Some(&n.value)
}

// Seq adapts the cursor for range-over-func.
func (it *IterMut[T]) Seq() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for {
			p, ok := it.Next().Get()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// All ranges over copies of the values, head to tail.
// Every range statement starts a fresh cursor.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.Iter().Seq()(yield)
	}
}

// Mut ranges over pointers to the values, head to tail.
func (l *List[T]) Mut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		l.IterMut().Seq()(yield)
	}
}

// Drain moves every value out of l when the range starts and yields them in
// pop order. Values left when the loop breaks are dropped.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.IntoIter()
		defer it.list.Drop()
		it.Seq()(yield)
	}
}
