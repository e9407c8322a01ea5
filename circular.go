package circular

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidCapacity is returned by New when the requested
	// capacity is less than one.
	ErrInvalidCapacity = errors.New("capacity must be at least 1")

	// ErrIndexOutOfRange is returned by At and Set when the logical
	// index falls outside the live range [0, Live()).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// CircularArray holds the most recent pushes into a fixed amount of
// storage. Logical index 0 is always the oldest live element.
type CircularArray[T any] struct {
	items []T
	// next is the physical slot the next push writes to. Once the
	// array has wrapped, it is also the slot holding the oldest
	// live element.
	next  int
	count int
}

// New returns an empty CircularArray with the given fixed capacity.
func New[T any](capacity int) (*CircularArray[T], error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	return &CircularArray[T]{
		items: make([]T, capacity),
	}, nil
}

// Push adds the given item as the most recent element, overwriting
// the oldest one once the array is full. Push never fails.
func (c *CircularArray[T]) Push(item T) {
	c.items[c.next] = item
	c.next = (c.next + 1) % len(c.items)
	c.count++
}

// physical translates a logical index into a storage slot. While the
// array is filling the mapping is the identity; once it has wrapped,
// the oldest element sits at next and the rest follow it.
func (c *CircularArray[T]) physical(index int) int {
	if c.count >= len(c.items) {
		return (c.next + index) % len(c.items)
	}
	return index
}

// At returns the element at the given logical index. Indexes at or
// beyond Live() fail with ErrIndexOutOfRange.
func (c *CircularArray[T]) At(index int) (T, error) {
	if index < 0 || index >= c.Live() {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d with %d live elements", index, c.Live())
	}
	return c.items[c.physical(index)], nil
}

// Set replaces the element at the given logical index in place,
// subject to the same range check as At.
func (c *CircularArray[T]) Set(index int, item T) error {
	if index < 0 || index >= c.Live() {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d with %d live elements", index, c.Live())
	}
	c.items[c.physical(index)] = item
	return nil
}

// ToArray returns a copy of all capacity slots rearranged into
// logical (oldest-to-newest) order. While the array is still filling,
// positions at and beyond Live() hold unspecified zero-value filler
// that callers must not treat as data; Slice avoids the filler.
func (c *CircularArray[T]) ToArray() []T {
	out := make([]T, len(c.items))
	if c.count >= len(c.items) && c.next > 0 {
		n := copy(out, c.items[c.next:])
		copy(out[n:], c.items[:c.next])
	} else {
		copy(out, c.items)
	}
	return out
}

// Slice returns only the live elements, oldest to newest. The result
// shares no storage with the array.
func (c *CircularArray[T]) Slice() []T {
	return c.ToArray()[:c.Live()]
}

// Last returns the most recently pushed element, or false when
// nothing has been pushed yet.
func (c *CircularArray[T]) Last() (T, bool) {
	if c.count == 0 {
		var zero T
		return zero, false
	}
	return c.items[c.physical(c.Live()-1)], true
}

// Len returns the cumulative number of pushes. It keeps counting past
// the capacity; use Live for the number of live elements.
func (c *CircularArray[T]) Len() int {
	return c.count
}

// Live returns the number of live elements, at most Cap.
func (c *CircularArray[T]) Live() int {
	if c.count < len(c.items) {
		return c.count
	}
	return len(c.items)
}

// Cap returns the fixed capacity.
func (c *CircularArray[T]) Cap() int {
	return len(c.items)
}

// Iter returns a fresh iterator over the live elements in logical
// order. The array must not be mutated while the iterator is in use.
func (c *CircularArray[T]) Iter() *Iterator[T] {
	return &Iterator[T]{arr: c}
}
