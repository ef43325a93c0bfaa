package dataset

import (
	"github.com/brianvoe/gofakeit/v6"
)

// DefaultSeed keeps runs reproducible when no seed is configured
const DefaultSeed int64 = 42

// Rand is the random source threaded through every generation stage.
// *gofakeit.Faker satisfies it.
type Rand interface {
	Float64() float64
	Number(min, max int) int
	RandomString(a []string) string
	RandomInt(i []int) int
}

// NewRand returns a seeded source. Two sources built from the same non-zero
// seed produce identical draws; seed 0 lets gofakeit pick a random seed.
func NewRand(seed int64) Rand {
	return gofakeit.New(seed)
}

// randomDate draws a day uniformly from [start, end]
func randomDate(rng Rand, start, end Date) Date {
	return start.AddDays(rng.Number(0, start.DaysUntil(end)))
}
