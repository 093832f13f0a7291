// Package store holds the in-memory record lists every panel is built on.
package store

import "errors"

// ErrNotFound is returned when no record carries the requested id
var ErrNotFound = errors.New("record not found")

// Keyed is implemented by every record held in a List
type Keyed interface {
	Key() string
}

// List is an ordered, id-keyed collection of records.
// It is owned by a single goroutine (the UI update loop) and does no locking.
type List[T Keyed] struct {
	items []T
}

// NewList creates a list seeded with the given records
func NewList[T Keyed](seed ...T) *List[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &List[T]{items: items}
}

// Append adds a record at the end of the list
func (l *List[T]) Append(item T) {
	l.items = append(l.items, item)
}

// Prepend adds a record at the front of the list (newest first feeds)
func (l *List[T]) Prepend(item T) {
	l.items = append([]T{item}, l.items...)
}

// Get returns the record with the given id
func (l *List[T]) Get(id string) (T, bool) {
	for _, item := range l.items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Update replaces the record with the given id by fn(record).
// Every other record keeps its value and position. Returns false if no
// record matched.
func (l *List[T]) Update(id string, fn func(T) T) bool {
	for i, item := range l.items {
		if item.Key() == id {
			l.items[i] = fn(item)
			return true
		}
	}
	return false
}

// Delete removes the record with the given id.
// Returns false, leaving the list untouched, when the id is unknown.
func (l *List[T]) Delete(id string) bool {
	for i, item := range l.items {
		if item.Key() == id {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps the whole contents of the list
func (l *List[T]) Replace(items []T) {
	l.items = make([]T, len(items))
	copy(l.items, items)
}

// Items returns a copy of the records in order
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Filter returns the records for which keep returns true, in order
func (l *List[T]) Filter(keep func(T) bool) []T {
	var out []T
	for _, item := range l.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Count returns how many records satisfy match
func (l *List[T]) Count(match func(T) bool) int {
	n := 0
	for _, item := range l.items {
		if match(item) {
			n++
		}
	}
	return n
}

// Len returns the number of records
func (l *List[T]) Len() int {
	return len(l.items)
}
