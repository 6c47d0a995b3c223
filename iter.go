package enumset

import (
	"iter"
	"math/bits"
)

// Iter iterates over the elements of a Set in ascending
// index order. It holds its own copy of the set's bits,
// so it is not affected by changes to the set it came from.
//
// Copying an Iter value (or calling Clone) produces an
// independent iterator that yields the same remaining elements.
type Iter[E any, C Codec[E]] struct {
	// bits holds the remaining members, shifted
	// so that bit 0 corresponds to index.
	bits  uint32
	index int
}

// Next returns the next element and true, or the zero
// value and false when there are no more elements.
// Calling Next after it has returned false is OK
// and will continue to return false.
func (it *Iter[E, C]) Next() (E, bool) {
	if it.bits == 0 {
		return *new(E), false
	}
	// Skip over unset bits.
	n := bits.TrailingZeros32(it.bits)
	it.index += n
	it.bits >>= n

	var c C
	e := c.Elem(it.index)
	it.index++
	it.bits >>= 1
	return e, true
}

// Len returns the number of elements remaining.
func (it *Iter[E, C]) Len() int {
	return bits.OnesCount32(it.bits)
}

// Clone returns a copy of the iterator that can be
// advanced independently.
func (it *Iter[E, C]) Clone() *Iter[E, C] {
	it1 := *it
	return &it1
}

// All returns the remaining elements as a sequence. Ranging over
// the sequence consumes the iterator.
func (it *Iter[E, C]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			e, ok := it.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}
