package tomlrand

import (
	"math"
	"math/rand"
)

// rng is the deterministic PRNG façade every sampler in this package draws
// from. It wraps a seeded *rand.Rand rather than the package-level
// math/rand functions so that two Generators never share mutable global
// state and two runs with the same seed are bit-identical regardless of
// what else is running in the process.
type rng struct {
	r *rand.Rand
}

func newRNG(seed uint64) *rng {
	return &rng{r: rand.New(rand.NewSource(int64(seed)))}
}

// uniform returns a random float64 in [0,1).
func (g *rng) uniform() float64 {
	return g.r.Float64()
}

// intRange returns a uniform random integer in the inclusive range [a,b].
func (g *rng) intRange(a, b int) int {
	if a > b {
		panic("tomlrand: intRange requires a <= b")
	}
	return a + g.r.Intn(b-a+1)
}

// choice returns a uniformly random element of seq, whose length must be
// positive.
func choice[T any](g *rng, seq []T) T {
	return seq[g.r.Intn(len(seq))]
}

// weightedChoice returns a random index into weights, chosen with
// probability proportional to each weight. weights must be non-empty and
// sum to a positive value.
func (g *rng) weightedChoice(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := g.uniform() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}

// choicesWeighted draws k independent weighted samples from seq (with
// replacement), mirroring the façade's `choices(seq, weights, k)` primitive.
func choicesWeighted[T any](g *rng, seq []T, weights []float64, k int) []T {
	out := make([]T, k)
	for i := range out {
		out[i] = seq[g.weightedChoice(weights)]
	}
	return out
}

// randExp samples from a clamped ("semi-geometric") distribution with
// parameter p = 1/(1+mean), inverted via the standard geometric-CDF
// inversion and clamped to [min,max]. Used for every stochastic length in
// the generator (whitespace runs, comment/string/key lengths, expression
// counts).
func (g *rng) randExp(mean float64, minVal, maxVal int) int {
	p := 1.0 / (1.0 + mean)
	cdfMin := 1.0 - math.Pow(1.0-p, float64(minVal))
	cdfMax := 1.0 - math.Pow(1.0-p, float64(maxVal+1))
	r := cdfMin + g.uniform()*(cdfMax-cdfMin)
	v := math.Log(1.0-r) / math.Log(1.0-p)
	iv := int(math.Floor(v))
	if iv < minVal {
		iv = minVal
	}
	if iv > maxVal {
		iv = maxVal
	}
	return iv
}

// formatHex formats val as hexadecimal with minwidth digits (zero-padded),
// randomizing the letter case of each a-f digit independently.
func (g *rng) formatHex(val uint64, minwidth int) string {
	digits := []byte{}
	for len(digits) < minwidth || val > 0 {
		c := val % 16
		val /= 16
		var ch byte
		switch {
		case c < 10:
			ch = byte('0' + c)
		case g.intRange(0, 1) == 0:
			ch = byte('a' + c - 10)
		default:
			ch = byte('A' + c - 10)
		}
		digits = append([]byte{ch}, digits...)
	}
	return string(digits)
}
