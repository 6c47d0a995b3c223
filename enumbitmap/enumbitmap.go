// Package enumbitmap converts between enumset sets and
// roaring bitmaps, so that enumeration sets can take part
// in bitmap posting lists and filters.
//
// Each element is represented in the bitmap by its
// codec index.
package enumbitmap

import (
	"math"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/rogpeppe/enumset"
)

// ToBitmap returns a new bitmap holding the indexes
// of all the elements in s.
func ToBitmap[E any, C enumset.Codec[E]](s enumset.Set[E, C]) *roaring.Bitmap {
	b := roaring.New()
	AddTo(b, s)
	return b
}

// AddTo adds the indexes of all the elements in s to b.
func AddTo[E any, C enumset.Codec[E]](b *roaring.Bitmap, s enumset.Set[E, C]) {
	for m := s.Bits(); m != 0; m &= m - 1 {
		b.Add(uint32(bits.TrailingZeros32(m)))
	}
}

// FromBitmap returns the set of elements whose indexes
// are held in b. Each index is decoded with C.Elem and
// inserted, so every value in b must be a valid index
// for the codec.
//
// If b holds a value that's too large to be an index,
// FromBitmap returns a *enumset.CapacityError.
func FromBitmap[E any, C enumset.Codec[E]](b *roaring.Bitmap) (enumset.Set[E, C], error) {
	var s enumset.Set[E, C]
	if b.IsEmpty() {
		return s, nil
	}
	if m := b.Maximum(); m >= enumset.Capacity {
		// Report a value that doesn't fit in an int as -1,
		// the same as an Index that wrapped around would.
		index := -1
		if uint64(m) <= math.MaxInt {
			index = int(m)
		}
		return s, &enumset.CapacityError{Index: index}
	}
	var c C
	it := b.Iterator()
	for it.HasNext() {
		s.Insert(c.Elem(int(it.Next())))
	}
	return s, nil
}
