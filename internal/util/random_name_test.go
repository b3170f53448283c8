package util

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
	"uno-server/internal/rng"
)

func TestGetRandomName(t *testing.T) {
	a := assert.New(t)
	orig := random
	defer func() { random = orig }()

	random = rng.NewSeeded(0)
	first := GetRandomName()
	second := GetRandomName()

	parts := strings.Split(first, " ")
	a.Len(parts, 2)
	a.Contains(adjectives, parts[0])
	a.Contains(animals, parts[1])

	random = rng.NewSeeded(0)
	a.Equal(first, GetRandomName())
	a.Equal(second, GetRandomName())
}
