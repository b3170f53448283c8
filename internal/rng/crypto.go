package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto draws from crypto/rand
// It is the default for live games: a shuffle can't be predicted from earlier deals,
// and it is safe to share between goroutines
type Crypto struct{}

// Intn returns a random number in [0, n)
// It panics if n <= 0
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic("rng: n must be greater than zero")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
