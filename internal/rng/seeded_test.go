package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSeeded_Intn(t *testing.T) {
	a := assert.New(t)

	s1 := NewSeeded(42)
	s2 := NewSeeded(42)
	a.Equal(int64(42), s1.Seed())

	for i := 0; i < 100; i++ {
		n := s1.Intn(10)
		a.Equal(n, s2.Intn(10))
		a.True(n >= 0 && n < 10)
	}
}

func TestShuffle(t *testing.T) {
	a := assert.New(t)

	values := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	Shuffle(NewSeeded(1), len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	a.Len(values, 10)
	a.ElementsMatch([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, values)

	// nothing to do for zero or one element
	Shuffle(NewSeeded(1), 0, func(i, j int) { t.Error("swap should not be called") })
	Shuffle(NewSeeded(1), 1, func(i, j int) { t.Error("swap should not be called") })
}
