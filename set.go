// Package enumset implements a set of enumeration values
// held as a single 32-bit mask.
//
// Each element type is paired with a [Codec] that maps its values
// to bit positions in [0, Capacity). All operations are O(1) and
// a Set is a plain comparable value: it can be copied, compared
// with == and used as a map key.
//
// Using an element whose index is out of range is a programming
// error and causes a panic with a *[CapacityError] value.
// The set is never modified when that happens.
package enumset

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"iter"
	"math/bits"
	"strings"
)

// Set holds a set of values of type E, each mapped
// to a bit position by the codec C.
//
// The zero value is an empty set.
type Set[E any, C Codec[E]] struct {
	_ [0]*E // disallow conversion between sets of different element types.

	// bits holds the characteristic vector of the set:
	// bit i is set iff the element with index i is a member.
	bits uint32
}

// New returns an empty set. It's equivalent to Set[E, C]{}
// but is sometimes more convenient when type inference
// is not available.
func New[E any, C Codec[E]]() Set[E, C] {
	return Set[E, C]{}
}

// Of returns a set containing all the given elements.
func Of[E any, C Codec[E]](elems ...E) Set[E, C] {
	var s Set[E, C]
	s.InsertAll(elems...)
	return s
}

// Collect returns a set containing all the elements
// produced by seq.
func Collect[E any, C Codec[E]](seq iter.Seq[E]) Set[E, C] {
	var s Set[E, C]
	s.Extend(seq)
	return s
}

func newSet[E any, C Codec[E]](bits uint32) Set[E, C] {
	return Set[E, C]{bits: bits}
}

// bit returns the mask for e. It panics without touching
// any set if e's index is out of range.
func bit[E any, C Codec[E]](e E) uint32 {
	var c C
	i := c.Index(e)
	if !inRange(i) {
		panic(&CapacityError{Index: i})
	}
	return 1 << i
}

// Len returns the number of elements in the set.
func (s Set[E, C]) Len() int {
	return bits.OnesCount32(s.bits)
}

// IsEmpty reports whether the set has no elements.
func (s Set[E, C]) IsEmpty() bool {
	return s.bits == 0
}

// Bits returns the bit mask representing the set.
func (s Set[E, C]) Bits() uint32 {
	return s.bits
}

// Clear removes all elements from the set.
func (s *Set[E, C]) Clear() {
	s.bits = 0
}

// Contains reports whether e is in the set.
func (s Set[E, C]) Contains(e E) bool {
	return s.bits&bit[E, C](e) != 0
}

// Insert adds e to the set and reports whether
// it was not already present.
func (s *Set[E, C]) Insert(e E) bool {
	b := bit[E, C](e)
	if s.bits&b != 0 {
		return false
	}
	s.bits |= b
	return true
}

// Remove removes e from the set and reports whether
// it was present.
func (s *Set[E, C]) Remove(e E) bool {
	b := bit[E, C](e)
	if s.bits&b == 0 {
		return false
	}
	s.bits &^= b
	return true
}

// InsertAll inserts each of elems in turn.
// If any element is out of range, the elements
// before it will already have been inserted.
func (s *Set[E, C]) InsertAll(elems ...E) {
	for _, e := range elems {
		s.Insert(e)
	}
}

// Extend inserts all the elements produced by seq.
func (s *Set[E, C]) Extend(seq iter.Seq[E]) {
	for e := range seq {
		s.Insert(e)
	}
}

// With returns a copy of s with the given elements added.
func (s Set[E, C]) With(elems ...E) Set[E, C] {
	s.InsertAll(elems...)
	return s
}

// Without returns a copy of s with the given elements removed.
func (s Set[E, C]) Without(elems ...E) Set[E, C] {
	for _, e := range elems {
		s.Remove(e)
	}
	return s
}

// IsDisjoint reports whether s and t have no elements in common.
func (s Set[E, C]) IsDisjoint(t Set[E, C]) bool {
	return s.bits&t.bits == 0
}

// IsSuperset reports whether every element of t is in s.
func (s Set[E, C]) IsSuperset(t Set[E, C]) bool {
	return s.bits&t.bits == t.bits
}

// IsSubset reports whether every element of s is in t.
func (s Set[E, C]) IsSubset(t Set[E, C]) bool {
	return t.IsSuperset(s)
}

// Union returns the set of elements in either s or t.
func (s Set[E, C]) Union(t Set[E, C]) Set[E, C] {
	return newSet[E, C](s.bits | t.bits)
}

// Intersection returns the set of elements in both s and t.
func (s Set[E, C]) Intersection(t Set[E, C]) Set[E, C] {
	return newSet[E, C](s.bits & t.bits)
}

// Difference returns the set of elements in s but not in t.
func (s Set[E, C]) Difference(t Set[E, C]) Set[E, C] {
	return newSet[E, C](s.bits &^ t.bits)
}

// SymmetricDifference returns the set of elements
// in exactly one of s and t.
func (s Set[E, C]) SymmetricDifference(t Set[E, C]) Set[E, C] {
	return newSet[E, C](s.bits ^ t.bits)
}

// Equal reports whether s and t hold the same elements.
// It's the same as s == t.
func (s Set[E, C]) Equal(t Set[E, C]) bool {
	return s.bits == t.bits
}

// Compare returns -1, 0 or +1 depending on whether the bit mask of s
// is numerically less than, equal to or greater than that of t.
// This is a total order suitable for sorting; it is not
// the subset order.
func (s Set[E, C]) Compare(t Set[E, C]) int {
	return cmp.Compare(s.bits, t.bits)
}

// Hash writes the bit mask of s to h. Sets that are
// equal produce the same hash.
func (s Set[E, C]) Hash(h *maphash.Hash) {
	maphash.WriteComparable(h, s.bits)
}

// Iter returns an iterator over a snapshot of the set.
// Subsequent changes to s do not affect it.
func (s Set[E, C]) Iter() *Iter[E, C] {
	return &Iter[E, C]{bits: s.bits}
}

// All returns an iterator over all the elements of the set
// in ascending index order.
func (s Set[E, C]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		it := s.Iter()
		for {
			e, ok := it.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// AppendTo appends the elements of s to dst in ascending
// index order and returns the resulting slice.
func (s Set[E, C]) AppendTo(dst []E) []E {
	for e := range s.All() {
		dst = append(dst, e)
	}
	return dst
}

// Elems returns the elements of s in ascending index order.
func (s Set[E, C]) Elems() []E {
	return s.AppendTo(make([]E, 0, s.Len()))
}

// String returns the elements of s formatted with %v,
// for example "{A, C}". The empty set is "{}".
func (s Set[E, C]) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	sep := ""
	for e := range s.All() {
		buf.WriteString(sep)
		fmt.Fprint(&buf, e)
		sep = ", "
	}
	buf.WriteByte('}')
	return buf.String()
}
