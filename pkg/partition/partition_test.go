package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPart(t *testing.T) {
	p := NewNPart(3)
	assert.Equal(t, 4, p.NumSubsets())
	assert.Equal(t, 1, p.TupleSize())

	var ids []int
	for p.Begin(); !p.End(); p.Next() {
		ids = append(ids, p.Current())
	}
	assert.Equal(t, []int{0, 1, 2, 3}, ids)

	assert.Equal(t, []int{2}, Tuple(p, 2))
	assert.Equal(t, 3, p.FromTuple([]int{3}))
}

func TestNPartZero(t *testing.T) {
	p := NewNPart(0)
	assert.Equal(t, 1, p.NumSubsets())
	assert.Equal(t, []int{0}, Tuple(p, 0))
}

func TestComposeCounting(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		want  int
	}{
		{name: "single group", sizes: []int{4}, want: 5},
		{name: "two groups", sizes: []int{2, 2}, want: 9},
		{name: "three groups", sizes: []int{1, 3, 2}, want: 24},
		{name: "degenerate group", sizes: []int{0, 5}, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var its []Iterator
			for _, k := range tt.sizes {
				its = append(its, NewNPart(k))
			}
			it := Compose(its...)
			assert.Equal(t, tt.want, it.NumSubsets())
			assert.Equal(t, len(tt.sizes), it.TupleSize())

			count := 0
			for it.Begin(); !it.End(); it.Next() {
				count++
			}
			assert.Equal(t, tt.want, count)
		})
	}
}

func TestBijection(t *testing.T) {
	sizes := []int{2, 1, 3}
	it := Compose(NewNPart(sizes[0]), NewNPart(sizes[1]), NewNPart(sizes[2]))

	seen := make(map[[3]int]bool)
	tuple := make([]int, it.TupleSize())
	for id := 0; id < it.NumSubsets(); id++ {
		it.ToTuple(id, tuple)
		for i, c := range tuple {
			require.GreaterOrEqual(t, c, 0)
			require.LessOrEqual(t, c, sizes[i])
		}
		key := [3]int{tuple[0], tuple[1], tuple[2]}
		assert.False(t, seen[key], "tuple %v decoded twice", key)
		seen[key] = true

		assert.Equal(t, id, it.FromTuple(tuple))
	}

	for a := 0; a <= sizes[0]; a++ {
		for b := 0; b <= sizes[1]; b++ {
			for c := 0; c <= sizes[2]; c++ {
				in := []int{a, b, c}
				assert.Equal(t, in, Tuple(it, it.FromTuple(in)))
			}
		}
	}
}

func TestProductOrder(t *testing.T) {
	it := NewProduct(NewNPart(1), NewNPart(2))
	assert.Equal(t, []int{0, 0}, Tuple(it, 0))
	assert.Equal(t, []int{0, 2}, Tuple(it, 2))
	assert.Equal(t, []int{1, 0}, Tuple(it, 3))
	assert.Equal(t, []int{1, 2}, Tuple(it, 5))
}

func TestInvalidInputPanics(t *testing.T) {
	it := Compose(NewNPart(2), NewNPart(2))

	assert.Panics(t, func() { Tuple(it, -1) })
	assert.Panics(t, func() { Tuple(it, 9) })
	assert.Panics(t, func() { it.FromTuple([]int{1}) })
	assert.Panics(t, func() { it.FromTuple([]int{3, 0}) })
	assert.Panics(t, func() { NewNPart(-1) })
	assert.Panics(t, func() { Compose() })
}
