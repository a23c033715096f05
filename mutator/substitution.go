package mutator

import (
	"adserr/oligo"
	"adserr/rng"
)

// SubstitutionEvents replaces bases within randomly chosen event runs
// with a mismatched base drawn from a per-source-base conditional
// distribution. The number of replacement bases needed for each source
// base is counted up front from the event runs, then that many targets
// are drawn per source base and consumed as the runs are walked again in
// position order.
//
// When two event runs overlap, a run's second pass can see a base that
// an earlier run in the same pass already substituted, so it may draw
// from the wrong source base's pool and exhaust it early; that
// occurrence is then left unsubstituted and the pool's offset wraps to
// 0, so later occurrences of that source base reuse its earlier draws.
// This is the reference model's behaviour and must be preserved rather
// than "fixed".
type SubstitutionEvents struct {
	rate     float64
	marginal [4]float64
	cond     [4]*rng.Sampler
	lengths  *rng.Sampler
}

// NewSubstitutionEvents builds a SubstitutionEvents mutator. p12 is the
// 12-entry joint preference over (source,target) pairs in the order
// A->C,A->G,A->T,C->A,C->G,C->T,G->A,G->C,G->T,T->A,T->C,T->G.
func NewSubstitutionEvents(rate float64, p12 []float64, lengthP []float64) (*SubstitutionEvents, error) {
	if len(p12) != 12 {
		return nil, ErrMutatorConfig
	}
	joint := append([]float64(nil), p12...)
	if err := Normalize(joint); err != nil {
		return nil, err
	}

	var marginal [4]float64
	for from := 0; from < 4; from++ {
		for j := 0; j < 3; j++ {
			marginal[from] += joint[from*3+j]
		}
	}
	margin := marginal[:]
	if err := Normalize(margin); err != nil {
		return nil, err
	}

	var cond [4]*rng.Sampler
	for from := 0; from < 4; from++ {
		row := append([]float64(nil), joint[from*3:from*3+3]...)
		if err := Normalize(row); err != nil {
			return nil, err
		}
		s, err := rng.NewSampler(row)
		if err != nil {
			return nil, ErrMutatorConfig
		}
		cond[from] = s
	}

	var lenSampler *rng.Sampler
	if len(lengthP) > 0 {
		lp := append([]float64(nil), lengthP...)
		if err := Normalize(lp); err != nil {
			return nil, err
		}
		s, err := rng.NewSampler(lp)
		if err != nil {
			return nil, ErrMutatorConfig
		}
		lenSampler = s
	}

	return &SubstitutionEvents{rate: rate, marginal: marginal, cond: cond, lengths: lenSampler}, nil
}

func (m *SubstitutionEvents) Name() string           { return "SubstitutionEvents" }
func (m *SubstitutionEvents) ManipulatesCount() bool { return false }
func (m *SubstitutionEvents) Process(pool *[]oligo.Oligo, r *rng.RNG) {
	runCountPreserving(m, pool, r)
}

func (m *SubstitutionEvents) processSingle(o oligo.Oligo, r *rng.RNG) oligo.Oligo {
	rates := make([]float64, len(o))
	for i, nt := range o {
		rates[i] = 4 * m.rate * m.marginal[nt-1]
	}
	positions := EventPositions(r, rates)
	if len(positions) == 0 {
		return o
	}

	out := o.Clone()

	lengths := make([]int, len(positions))
	for i, pos := range positions {
		l := 1
		if m.lengths != nil {
			l = r.Categorical(m.lengths) + 1
		}
		if pos+l > len(out) {
			l = len(out) - pos
		}
		lengths[i] = l
	}

	var need [4]int
	for i, pos := range positions {
		for j := 0; j < lengths[i]; j++ {
			need[out[pos+j]-1]++
		}
	}

	var pool [4]oligo.Oligo
	for src := 0; src < 4; src++ {
		n := need[src]
		if n == 0 {
			continue
		}
		pool[src] = make(oligo.Oligo, n)
		for k := 0; k < n; k++ {
			t := r.Categorical(m.cond[src])
			target := t + 1
			if target >= src+1 {
				target++
			}
			pool[src][k] = oligo.Nucleotide(target)
		}
	}

	var offset [4]int
	for i, pos := range positions {
		for j := 0; j < lengths[i]; j++ {
			src := int(out[pos+j] - 1)
			if offset[src] >= len(pool[src]) {
				offset[src] = 0
				continue
			}
			out[pos+j] = pool[src][offset[src]]
			offset[src]++
		}
	}

	return out
}
