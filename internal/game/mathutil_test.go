package game

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(11), NewRand(11)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.NextU64(), b.NextU64())
	}
	assert.NotEqual(t, NewRand(1).NextU64(), NewRand(2).NextU64())
}

func TestRandRanges(t *testing.T) {
	r := NewRand(0)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		assert.True(t, f >= 0 && f < 1)
		n := r.Intn(3)
		assert.True(t, n >= 0 && n < 3)
	}
	assert.Zero(t, r.Intn(0))
}

func TestShuffleLanesIsPermutation(t *testing.T) {
	r := NewRand(5)
	for n := 1; n <= 6; n++ {
		order := shuffleLanes(r, n)
		sorted := append([]int(nil), order...)
		sort.Ints(sorted)
		for i := range sorted {
			assert.Equal(t, i, sorted[i])
		}
	}
}

func TestEaseClampsFactor(t *testing.T) {
	assert.Equal(t, 10.0, ease(0, 10, 5))
	assert.Equal(t, 0.0, ease(0, 10, -1))
	assert.Equal(t, 5.0, ease(0, 10, 0.5))
}

// scriptedRand replays fixed draws.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func TestShuffleUsesSource(t *testing.T) {
	// Intn(3) -> 0 swaps 2<->0, Intn(2) -> 0 swaps 1<->0.
	r := &scriptedRand{ints: []int{0, 0}}
	assert.Equal(t, []int{1, 2, 0}, shuffleLanes(r, 3))
}
