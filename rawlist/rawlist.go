// Package rawlist is a singly linked list parameterized over a storage
// backend, demonstrating how a collection stays agnostic of where its nodes
// live. With an inline backend the whole list sits in one fixed buffer;
// with an allocator backend it behaves like an ordinary heap list.
package rawlist

import "github.com/joshuapare/slotkit/storage"

type node[T any, H any] struct {
	next storage.Handle[node[T, H], H]
	ok   bool
	val  T
}

// List is a LIFO singly linked list whose nodes live in the given element
// storage. The zero value is not usable; create lists with New.
//
// List is not safe for concurrent use.
type List[T any, H any] struct {
	store storage.ElementStorage[H]
	head  storage.Handle[node[T, H], H]
	ok    bool
	len   int
}

// New creates an empty list whose nodes are allocated from store.
func New[T any, H any](store storage.ElementStorage[H]) *List[T, H] {
	return &List[T, H]{store: store}
}

// Len returns the number of elements.
func (l *List[T, H]) Len() int {
	return l.len
}

// Push prepends v. On storage exhaustion it returns
// storage.ErrAllocationFailed and the list is unchanged.
func (l *List[T, H]) Push(v T) error {
	h, err := storage.Create(l.store, node[T, H]{next: l.head, ok: l.ok, val: v})
	if err != nil {
		return err
	}
	l.head = h
	l.ok = true
	l.len++
	return nil
}

// Front returns a pointer to the most recently pushed element, valid until
// the next Pop or Clear. False when the list is empty.
func (l *List[T, H]) Front() (*T, bool) {
	if !l.ok {
		return nil, false
	}
	return &storage.Get(l.store, l.head).val, true
}

// Pop removes and returns the most recently pushed element.
func (l *List[T, H]) Pop() (T, bool) {
	var zero T
	if !l.ok {
		return zero, false
	}
	n := *storage.Get(l.store, l.head)
	storage.Deallocate(l.store, l.head)
	l.head = n.next
	l.ok = n.ok
	l.len--
	return n.val, true
}

// Clear removes every element, releasing each node back to the storage.
func (l *List[T, H]) Clear() {
	for l.ok {
		l.Pop()
	}
}
