package bits128

import (
	"iter"

	"lukechampine.com/uint128"
)

// Iterator walks the bits of a snapshot, starting from the least significant
// one. It stops as soon as the remaining snapshot is zero, so bits above the
// highest set bit are never produced and an empty vector produces nothing.
type Iterator struct {
	rest  uint128.Uint128
	index uint
}

// Iterator returns an iterator over a copy of b. b itself is never consumed.
func (b Bits128) Iterator() *Iterator {
	return &Iterator{rest: b.value}
}

// Next returns the next bit and its index. ok is false once the iterator is
// exhausted, and stays false.
func (it *Iterator) Next() (ok bool, value bool, index uint) {
	if it.rest.IsZero() {
		return false, false, it.index
	}
	value = it.rest.Lo&1 == 1
	index = it.index
	it.rest = it.rest.Rsh(1)
	it.index++
	return true, value, index
}

// All returns the bits an Iterator would produce as a range-over-func
// sequence. The sequence consumes its own snapshot taken when All is called.
func (b Bits128) All() iter.Seq[bool] {
	it := b.Iterator()
	return func(yield func(bool) bool) {
		for {
			ok, value, _ := it.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}
