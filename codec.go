package enumset

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Capacity holds the maximum number of distinct elements
// a Set can hold. Valid indexes are in the range [0, Capacity).
const Capacity = 32

// A Codec defines a mapping between values of type E and bit
// positions within a Set.
//
// Index must return a distinct value in [0, Capacity) for each
// distinct element. Elem is the inverse of Index: Elem(Index(e)) must
// return e. Elem need only be defined for values returned by Index;
// a Set never calls it with anything else.
//
// Codecs are stateless: the Set calls methods on the zero value
// of C, in the same way that anyhash uses its Hasher type parameter.
type Codec[E any] interface {
	Index(e E) int
	Elem(i int) E
}

// Ints is a Codec for enumeration types declared over an integer
// kind, typically with iota:
//
//	type Color uint8
//
//	const (
//		Red Color = iota
//		Green
//		Blue
//	)
//
// The index of an element is its integer value.
type Ints[E constraints.Integer] struct {
	_ [0]func(E) // disallow conversion between Ints[X] and Ints[Y]
}

// Index returns the integer value of e. A value that does not
// survive conversion to int is reported as -1, so it can never
// be truncated into range.
func (Ints[E]) Index(e E) int {
	i := int(e)
	if E(i) != e || (i < 0) != (e < 0) {
		return -1
	}
	return i
}

func (Ints[E]) Elem(i int) E { return E(i) }

// CapacityError is returned or used as a panic value when an element
// maps to an index outside [0, Capacity).
type CapacityError struct {
	Index int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("enumset: element index %d out of range [0, %d)", e.Index, Capacity)
}

// Validate checks that the codec C is a correct mapping for
// all the given values, which should be every variant of E.
// It reports an error if any value maps outside [0, Capacity)
// (as a *CapacityError), if two different values share an index,
// or if Elem does not invert Index. Repeated values are OK.
//
// It's intended to be called once, for example from a test
// or an init function, when the element type is defined.
func Validate[E comparable, C Codec[E]](universe ...E) error {
	var c C
	var seen uint32
	var owner [Capacity]E
	for _, e := range universe {
		i := c.Index(e)
		if !inRange(i) {
			return &CapacityError{Index: i}
		}
		if seen&(1<<i) != 0 {
			if owner[i] == e {
				continue
			}
			return fmt.Errorf("enumset: %v: duplicate index %d", e, i)
		}
		seen |= 1 << i
		owner[i] = e
		if e1 := c.Elem(i); e1 != e {
			return fmt.Errorf("enumset: %v: index %d decodes to %v", e, i, e1)
		}
	}
	return nil
}

func inRange(i int) bool {
	return uint(i) < Capacity
}
