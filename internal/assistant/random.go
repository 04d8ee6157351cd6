package assistant

import "math/rand/v2"

// Random is the source behind phrasing and sampling. *rand.Rand satisfies it,
// so tests can pin outputs with a seeded generator.
type Random interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// globalRandom draws from the runtime-seeded top-level generator, which is
// safe for concurrent use.
type globalRandom struct{}

func (globalRandom) Float64() float64                   { return rand.Float64() }
func (globalRandom) IntN(n int) int                     { return rand.IntN(n) }
func (globalRandom) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

func pick(r Random, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[r.IntN(len(options))]
}
