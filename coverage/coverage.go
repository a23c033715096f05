// Package coverage models how many oligo copies exist for each design at
// each stage of the pipeline: a log-normal synthesis bias followed by
// categorical resampling to a target total, all with replacement.
package coverage

import (
	"fmt"

	"adserr/rng"
)

var (
	ErrEmptyPool         = fmt.Errorf("coverage: pool is empty")
	ErrNonPositiveTarget = fmt.Errorf("coverage: target read count must be at least 1")
)

// sampleFromRelative draws n times with replacement from a probability
// vector and returns the resulting per-index histogram.
func sampleFromRelative(r *rng.RNG, relative []float64, n int) ([]int, error) {
	if n < 1 {
		return nil, ErrNonPositiveTarget
	}
	if len(relative) == 0 {
		return nil, ErrEmptyPool
	}
	sampler, err := rng.NewSampler(relative)
	if err != nil {
		return nil, ErrEmptyPool
	}
	counts := make([]int, len(relative))
	for i := 0; i < n; i++ {
		counts[r.Categorical(sampler)]++
	}
	return counts, nil
}

// InitialCoverage draws a log-normal synthesis bias for each of n
// designs and converts the resulting relative abundances into a discrete
// coverage vector totalling n*perDesignTarget oligos.
func InitialCoverage(r *rng.RNG, n int, logStd float64, perDesignTarget int) ([]int, error) {
	if n == 0 {
		return nil, ErrEmptyPool
	}
	if perDesignTarget < 1 {
		return nil, ErrNonPositiveTarget
	}

	rel := make([]float64, n)
	sum := 0.0
	for i := range rel {
		v := r.LogNormal(logStd)
		rel[i] = v
		sum += v
	}
	for i := range rel {
		rel[i] /= sum
	}

	return sampleFromRelative(r, rel, n*perDesignTarget)
}

// SampleByCount resamples an existing count vector to a new total while
// preserving relative abundances between entries.
func SampleByCount(r *rng.RNG, counts []int, total int) ([]int, error) {
	if len(counts) == 0 {
		return nil, ErrEmptyPool
	}
	if total < 1 {
		return nil, ErrNonPositiveTarget
	}

	sum := 0
	for _, c := range counts {
		sum += c
	}
	if sum <= 0 {
		return nil, ErrEmptyPool
	}

	rel := make([]float64, len(counts))
	for i, c := range counts {
		rel[i] = float64(c) / float64(sum)
	}

	return sampleFromRelative(r, rel, total)
}
