package rng

import (
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// every index of a small deck should come up, unlikely to fail
	for i := 0; i < 1000; i++ {
		found[c.Intn(4)] = true
	}

	a.Len(found, 4)
	a.False(found[4])
	a.Equal(0, c.Intn(1))

	a.PanicsWithValue("rng: n must be greater than zero", func() { c.Intn(0) })
}

func TestCrypto_concurrent(t *testing.T) {
	var g Generator = Crypto{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			values := []int{0, 1, 2, 3, 4}
			Shuffle(g, len(values), func(i, j int) {
				values[i], values[j] = values[j], values[i]
			})
			assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, values)
		}()
	}

	wg.Wait()
}
