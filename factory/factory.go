// Package factory expands a single design sequence into the many derived
// oligos its target coverage calls for, running an independent trial of
// the mutator chain per copy.
package factory

import (
	"adserr/mutator"
	"adserr/oligo"
	"adserr/rng"
)

// Generate runs n independent trials of chain over copies of design and
// returns the concatenation of every trial's output pool. Because
// count-varying mutators can drop or split an oligo within a single
// trial, the result length need not equal n.
func Generate(design oligo.Oligo, n int, chain mutator.Chain, r *rng.RNG) []oligo.Oligo {
	if n <= 0 {
		return nil
	}
	if len(chain) == 0 {
		out := make([]oligo.Oligo, n)
		for i := range out {
			out[i] = design.Clone()
		}
		return out
	}

	result := make([]oligo.Oligo, 0, n)
	for i := 0; i < n; i++ {
		pool := []oligo.Oligo{design.Clone()}
		chain.Run(&pool, r)
		result = append(result, pool...)
	}
	return result
}
