// Package enumsettest provides quicktest checkers for code
// that uses enumset.
package enumsettest

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/enumset"
)

// HasElems returns a checker that checks that iterating over s
// produces exactly the elements in want, in that order,
// and that s.Len agrees with the number of elements produced.
//
// For example:
//
//	qt.Assert(t, enumsettest.HasElems(s, A, C))
func HasElems[E comparable, C enumset.Codec[E]](s enumset.Set[E, C], want ...E) qt.Checker {
	return &elemsChecker[E, C]{
		argNames: []string{"got", "want"},
		got:      s,
		want:     want,
	}
}

type elemsChecker[E comparable, C enumset.Codec[E]] struct {
	argNames
	got  enumset.Set[E, C]
	want []E
}

func (c *elemsChecker[E, C]) Args() []qt.Arg {
	return c.args(c.got, c.want)
}

func (c *elemsChecker[E, C]) Check(note func(key string, value any)) error {
	got := slices.Collect(c.got.All())
	if n := c.got.Len(); n != len(got) {
		note("Len", n)
		note("iterated", got)
		return errors.New("length does not match number of iterated elements")
	}
	if !slices.Equal(got, c.want) {
		note("iterated", got)
		return errors.New("set elements are not as expected")
	}
	return nil
}

// PanicsWithCapacityError returns a checker that checks that f
// panics with an *enumset.CapacityError holding the given index.
func PanicsWithCapacityError(f func(), index int) qt.Checker {
	return &capacityChecker{
		argNames: []string{"function", "index"},
		f:        f,
		index:    index,
	}
}

type capacityChecker struct {
	argNames
	f     func()
	index int
}

func (c *capacityChecker) Args() []qt.Arg {
	return c.args(c.f, c.index)
}

func (c *capacityChecker) Check(note func(key string, value any)) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			err = errors.New("function did not panic")
			return
		}
		rerr, ok := r.(error)
		var cerr *enumset.CapacityError
		if !ok || !errors.As(rerr, &cerr) {
			note("panic value", r)
			err = errors.New("panic value is not a capacity error")
			return
		}
		if cerr.Index != c.index {
			note("panic value", r)
			err = fmt.Errorf("capacity error has index %d", cerr.Index)
		}
	}()
	c.f()
	return nil
}

// ValidCodec returns a checker that checks that the codec C
// is a correct mapping for the given universe of values.
// See enumset.Validate.
func ValidCodec[E comparable, C enumset.Codec[E]](universe ...E) qt.Checker {
	return &codecChecker[E, C]{
		argNames: []string{"universe"},
		universe: universe,
	}
}

type codecChecker[E comparable, C enumset.Codec[E]] struct {
	argNames
	universe []E
}

func (c *codecChecker[E, C]) Args() []qt.Arg {
	return c.args(c.universe)
}

func (c *codecChecker[E, C]) Check(note func(key string, value any)) error {
	if err := enumset.Validate[E, C](c.universe...); err != nil {
		note("codec", fmt.Sprintf("%T", *new(C)))
		return err
	}
	return nil
}

// argNames helps implement qt.Checker.Args.
type argNames []string

// args pairs the argument names with the given values.
func (a argNames) args(values ...any) []qt.Arg {
	args := make([]qt.Arg, len(a))
	for i, name := range a {
		args[i] = qt.Arg{
			Name:  name,
			Value: values[i],
		}
	}
	return args
}
