package circular

// Iterator walks the live elements of a CircularArray from oldest to
// newest. Each call to Iter produces a new one; an exhausted iterator
// stays exhausted.
type Iterator[T any] struct {
	arr   *CircularArray[T]
	index int
}

// Next returns the element at the cursor and advances it. Once the
// cursor passes the last live element, Next returns false on this and
// every later call.
func (it *Iterator[T]) Next() (T, bool) {
	if it.index >= it.arr.Live() {
		var zero T
		return zero, false
	}
	item := it.arr.items[it.arr.physical(it.index)]
	it.index++
	return item, true
}
