package circular

import (
	. "gopkg.in/check.v1"
)

type IterSuite struct{}

var _ = Suite(&IterSuite{})

// collect drains an iterator into a slice.
func collect(it *Iterator[int]) []int {
	out := []int{}
	for {
		item, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, item)
	}
}

func (*IterSuite) TestIterEmpty(c *C) {
	arr, err := New[int](3)
	c.Assert(err, IsNil)

	it := arr.Iter()
	_, ok := it.Next()
	c.Assert(ok, Equals, false)
}

func (*IterSuite) TestIterWhileFilling(c *C) {
	arr, err := New[int](3)
	c.Assert(err, IsNil)
	arr.Push(1)
	arr.Push(2)

	c.Assert(collect(arr.Iter()), DeepEquals, []int{1, 2})
}

func (*IterSuite) TestIterWhileWrapping(c *C) {
	arr, err := New[int](3)
	c.Assert(err, IsNil)
	for i := 1; i <= 4; i++ {
		arr.Push(i)
	}

	c.Assert(collect(arr.Iter()), DeepEquals, []int{2, 3, 4})
}

func (*IterSuite) TestIterExhaustionIsSticky(c *C) {
	arr, err := New[int](3)
	c.Assert(err, IsNil)
	arr.Push(1)

	it := arr.Iter()
	item, ok := it.Next()
	c.Assert(ok, Equals, true)
	c.Assert(item, Equals, 1)

	for i := 0; i < 5; i++ {
		_, ok := it.Next()
		c.Assert(ok, Equals, false)
	}
}

func (*IterSuite) TestIterIsFreshPerCall(c *C) {
	arr, err := New[int](3)
	c.Assert(err, IsNil)
	arr.Push(1)
	arr.Push(2)
	arr.Push(3)

	c.Assert(collect(arr.Iter()), DeepEquals, []int{1, 2, 3})
	c.Assert(collect(arr.Iter()), DeepEquals, []int{1, 2, 3})
}

func (*IterSuite) TestIterSum(c *C) {
	arr, err := New[int](3)
	c.Assert(err, IsNil)
	for i := 1; i <= 4; i++ {
		arr.Push(i)
	}

	sum := 0
	for it := arr.Iter(); ; {
		item, ok := it.Next()
		if !ok {
			break
		}
		sum += item
	}
	c.Assert(sum, Equals, 9)
}
