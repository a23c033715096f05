package rng

import (
	"fmt"
	"math/rand"
)

var ErrZeroWeight = fmt.Errorf("rng: categorical sampler requires a non-empty, non-zero-sum weight vector")

// Sampler draws indices from a fixed discrete distribution in O(1) time
// using Vose's alias method. Construction is O(n); once built, a Sampler
// never mutates and is safe for concurrent use by independent RNGs.
type Sampler struct {
	prob  []float64
	alias []int
}

// NewSampler builds a Sampler over the given (unnormalized) weights.
func NewSampler(weights []float64) (*Sampler, error) {
	n := len(weights)
	if n == 0 {
		return nil, ErrZeroWeight
	}

	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return nil, ErrZeroWeight
	}

	scaled := make([]float64, n)
	for i, w := range weights {
		scaled[i] = w / sum * float64(n)
	}

	prob := make([]float64, n)
	alias := make([]int, n)

	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, p := range scaled {
		if p < 1.0 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		prob[s] = scaled[s]
		alias[s] = l

		scaled[l] = scaled[l] + scaled[s] - 1.0
		if scaled[l] < 1.0 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	for len(large) > 0 {
		l := large[len(large)-1]
		large = large[:len(large)-1]
		prob[l] = 1.0
	}
	for len(small) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		prob[s] = 1.0
	}

	return &Sampler{prob: prob, alias: alias}, nil
}

// Draw returns a single sample in [0, n) using r as the entropy source.
func (s *Sampler) Draw(r *rand.Rand) int {
	i := r.Intn(len(s.prob))
	if r.Float64() < s.prob[i] {
		return i
	}
	return s.alias[i]
}
