package partition

import (
	"fmt"
	"math"
)

// Iterator enumerates the subsets of one or more redundancy groups. Every
// subset is a tuple of per-group counts and is identified by an integer id
// in [0, NumSubsets()). ToTuple and FromTuple form a bijection between the
// two representations.
//
// Begin, Next and End implement a cursor over the ids in ascending order.
// Passing an id outside the id space or a tuple of the wrong shape is a
// programming error and panics.
type Iterator interface {
	Begin()
	Next()
	End() bool
	Current() int

	NumSubsets() int
	TupleSize() int
	ToTuple(id int, tuple []int)
	FromTuple(tuple []int) int
}

// cursor is the id cursor shared by all iterators
type cursor struct {
	pos int
	n   int
}

func (c *cursor) Begin()       { c.pos = 0 }
func (c *cursor) Next()        { c.pos++ }
func (c *cursor) End() bool    { return c.pos >= c.n }
func (c *cursor) Current() int { return c.pos }

func (c *cursor) NumSubsets() int { return c.n }

func checkID(id, n int) {
	if id < 0 || id >= n {
		panic(fmt.Sprintf("partition: id %d out of range [0, %d)", id, n))
	}
}

// NPart enumerates the counts 0..K of a single group
type NPart struct {
	cursor
	k int
}

// NewNPart creates an iterator over the counts 0..k
func NewNPart(k int) *NPart {
	if k < 0 {
		panic(fmt.Sprintf("partition: negative group size %d", k))
	}
	return &NPart{cursor: cursor{n: k + 1}, k: k}
}

// TupleSize is always 1 for a single group
func (p *NPart) TupleSize() int { return 1 }

func (p *NPart) ToTuple(id int, tuple []int) {
	checkID(id, p.n)
	if len(tuple) < 1 {
		panic("partition: tuple buffer too small")
	}
	tuple[0] = id
}

func (p *NPart) FromTuple(tuple []int) int {
	if len(tuple) != 1 {
		panic(fmt.Sprintf("partition: tuple length %d, want 1", len(tuple)))
	}
	if tuple[0] < 0 || tuple[0] > p.k {
		panic(fmt.Sprintf("partition: count %d out of range [0, %d]", tuple[0], p.k))
	}
	return tuple[0]
}

// Product is the Cartesian product of two iterators. Its tuple is the
// concatenation of the tuples of a and b; the last component varies fastest
// in id order.
type Product struct {
	cursor
	a, b Iterator
}

// NewProduct composes a and b into a single iterator
func NewProduct(a, b Iterator) *Product {
	na, nb := a.NumSubsets(), b.NumSubsets()
	if nb != 0 && na > math.MaxInt/nb {
		panic(fmt.Sprintf("partition: subset count overflows (%d x %d)", na, nb))
	}
	return &Product{cursor: cursor{n: na * nb}, a: a, b: b}
}

func (p *Product) TupleSize() int { return p.a.TupleSize() + p.b.TupleSize() }

func (p *Product) ToTuple(id int, tuple []int) {
	checkID(id, p.n)
	sa := p.a.TupleSize()
	if len(tuple) < p.TupleSize() {
		panic(fmt.Sprintf("partition: tuple buffer length %d, want %d", len(tuple), p.TupleSize()))
	}
	nb := p.b.NumSubsets()
	p.a.ToTuple(id/nb, tuple[:sa])
	p.b.ToTuple(id%nb, tuple[sa:p.TupleSize()])
}

func (p *Product) FromTuple(tuple []int) int {
	if len(tuple) != p.TupleSize() {
		panic(fmt.Sprintf("partition: tuple length %d, want %d", len(tuple), p.TupleSize()))
	}
	sa := p.a.TupleSize()
	return p.a.FromTuple(tuple[:sa])*p.b.NumSubsets() + p.b.FromTuple(tuple[sa:])
}

// Compose folds the iterators left to right into one product iterator.
// A single iterator is returned unchanged.
func Compose(its ...Iterator) Iterator {
	if len(its) == 0 {
		panic("partition: nothing to compose")
	}
	state := its[0]
	for _, it := range its[1:] {
		state = NewProduct(state, it)
	}
	return state
}

// Tuple decodes id into a freshly allocated tuple
func Tuple(it Iterator, id int) []int {
	tuple := make([]int, it.TupleSize())
	it.ToTuple(id, tuple)
	return tuple
}
