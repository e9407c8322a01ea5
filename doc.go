/*
Package circular provides a fixed-capacity circular array that accepts
unbounded sequential pushes while retaining only the most recent
elements.

Once the cumulative number of pushes reaches the capacity, every new
push silently overwrites the oldest live element. Pushes never block
and never fail. Live elements are addressed by logical index, where
index 0 is the oldest live element and higher indices are newer:

	arr, _ := circular.New[int](3)
	arr.Push(1)
	arr.Push(2)
	arr.Push(3)
	arr.Push(4)
	arr.ToArray() // [2, 3, 4]

Readers can index directly with At and Set, take a logical-order
snapshot with ToArray or Slice, or walk the live elements with Iter.

The structure is not safe for concurrent use. A single goroutine may
mutate it, or any number may read it, but never both at once; callers
needing shared access must guard the whole structure with one lock.
*/
package circular
