// Package mutator implements the chain-of-mutators architecture: each
// concrete mutator models one physical error process (synthesis,
// decay, PCR, sequencing) as a pure function from one input oligo to
// zero, one, or many output oligos, driven by a shared RNG.
package mutator

import (
	"fmt"

	"adserr/oligo"
	"adserr/rng"
)

var ErrMutatorConfig = fmt.Errorf("mutator: invalid configuration")

// Mutator is the contract every stochastic transform implements.
// ManipulatesCount reports whether Process may change the size of the
// pool; count-preserving mutators only ever replace each oligo with
// exactly one result.
type Mutator interface {
	Name() string
	ManipulatesCount() bool
	Process(pool *[]oligo.Oligo, r *rng.RNG)
}

// Chain is an ordered, immutable sequence of mutators applied to a pool
// in order. A nil or empty Chain is a valid no-op.
type Chain []Mutator

// Run applies every mutator in c to pool in order.
func (c Chain) Run(pool *[]oligo.Oligo, r *rng.RNG) {
	for _, m := range c {
		m.Process(pool, r)
	}
}

// single is implemented by mutators that replace each oligo with exactly
// one output; runCountPreserving drives them.
type single interface {
	processSingle(o oligo.Oligo, r *rng.RNG) oligo.Oligo
}

// expanding is implemented by mutators that may drop or split an oligo;
// runCountVarying drives them.
type expanding interface {
	processSingleWithNew(o oligo.Oligo, r *rng.RNG, out *[]oligo.Oligo)
}

func runCountPreserving(m single, pool *[]oligo.Oligo, r *rng.RNG) {
	for i, o := range *pool {
		(*pool)[i] = m.processSingle(o, r)
	}
}

func runCountVarying(m expanding, pool *[]oligo.Oligo, r *rng.RNG) {
	next := make([]oligo.Oligo, 0, len(*pool))
	for _, o := range *pool {
		m.processSingleWithNew(o, r, &next)
	}
	*pool = next
}

// IsMutation is a single Bernoulli trial with success probability p.
func IsMutation(r *rng.RNG, p float64) bool {
	return r.Float() < p
}

// EventPositions runs one independent Bernoulli trial per entry of rates
// and returns the ascending indices of the successes.
func EventPositions(r *rng.RNG, rates []float64) []int {
	var positions []int
	for i, rate := range rates {
		if IsMutation(r, rate) {
			positions = append(positions, i)
		}
	}
	return positions
}

// Normalize scales weights in place so they sum to 1. A zero or negative
// sum is a configuration error.
func Normalize(weights []float64) error {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return ErrMutatorConfig
	}
	for i := range weights {
		weights[i] /= sum
	}
	return nil
}
