package enumbitmap_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/enumset"
	"github.com/rogpeppe/enumset/enumbitmap"
)

type Perm uint8

const (
	Read Perm = iota
	Write
	Exec
	_
	Admin
	Owner Perm = 31
)

type Perms = enumset.Set[Perm, enumset.Ints[Perm]]

func TestToBitmap(t *testing.T) {
	c := qt.New(t)
	b := enumbitmap.ToBitmap(Perms{}.With(Owner, Read, Exec))
	c.Assert(b.ToArray(), qt.DeepEquals, []uint32{0, 2, 31})

	b = enumbitmap.ToBitmap(Perms{})
	c.Assert(b.IsEmpty(), qt.IsTrue)
}

func TestAddTo(t *testing.T) {
	c := qt.New(t)
	b := roaring.BitmapOf(2, 1000)
	enumbitmap.AddTo(b, Perms{}.With(Write, Exec))
	c.Assert(b.ToArray(), qt.DeepEquals, []uint32{1, 2, 1000})
}

func TestFromBitmap(t *testing.T) {
	c := qt.New(t)
	s, err := enumbitmap.FromBitmap[Perm, enumset.Ints[Perm]](roaring.BitmapOf(4, 0, 31))
	c.Assert(err, qt.IsNil)
	c.Assert(s, qt.Equals, Perms{}.With(Read, Admin, Owner))

	s, err = enumbitmap.FromBitmap[Perm, enumset.Ints[Perm]](roaring.New())
	c.Assert(err, qt.IsNil)
	c.Assert(s.IsEmpty(), qt.IsTrue)
}

func TestFromBitmapOutOfRange(t *testing.T) {
	c := qt.New(t)
	s, err := enumbitmap.FromBitmap[Perm, enumset.Ints[Perm]](roaring.BitmapOf(1, 32))
	c.Assert(err, qt.ErrorMatches, `enumset: element index 32 out of range \[0, 32\)`)
	cerr, ok := err.(*enumset.CapacityError)
	c.Assert(ok, qt.IsTrue)
	c.Assert(cerr.Index, qt.Equals, 32)
	c.Assert(s.IsEmpty(), qt.IsTrue)
}

func TestRoundTrip(t *testing.T) {
	c := qt.New(t)
	for _, s := range []Perms{
		{},
		Perms{}.With(Read),
		Perms{}.With(Owner),
		Perms{}.With(Read, Write, Exec, Admin, Owner),
	} {
		s1, err := enumbitmap.FromBitmap[Perm, enumset.Ints[Perm]](enumbitmap.ToBitmap(s))
		c.Assert(err, qt.IsNil)
		c.Assert(s1, qt.Equals, s)
		c.Assert(enumbitmap.ToBitmap(s).GetCardinality(), qt.Equals, uint64(s.Len()))
	}
}

func TestBitmapAlgebraMatchesSet(t *testing.T) {
	c := qt.New(t)
	s1 := Perms{}.With(Read, Exec, Owner)
	s2 := Perms{}.With(Exec, Admin)

	and := roaring.And(enumbitmap.ToBitmap(s1), enumbitmap.ToBitmap(s2))
	got, err := enumbitmap.FromBitmap[Perm, enumset.Ints[Perm]](and)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, s1.Intersection(s2))

	or := roaring.Or(enumbitmap.ToBitmap(s1), enumbitmap.ToBitmap(s2))
	got, err = enumbitmap.FromBitmap[Perm, enumset.Ints[Perm]](or)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, s1.Union(s2))
}
