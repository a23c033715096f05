package mutator

import (
	"adserr/oligo"
	"adserr/rng"
)

// InsertionEvents inserts random-length runs of randomly drawn bases
// after independently-chosen positions, modelling synthesis and
// lithography insertion errors. Positions are selected with a uniform
// per-position rate; run lengths default to 1 unless a length-preference
// vector is supplied.
type InsertionEvents struct {
	rate    float64
	lengths *rng.Sampler
	bases   *rng.Sampler
}

// NewInsertionEvents builds an InsertionEvents mutator. baseP is the
// preference over the four inserted bases in A,C,G,T order; lengthP, if
// non-empty, is the preference over run lengths (index 0 = length 1).
func NewInsertionEvents(rate float64, baseP []float64, lengthP []float64) (*InsertionEvents, error) {
	if len(baseP) != 4 {
		return nil, ErrMutatorConfig
	}
	bp := append([]float64(nil), baseP...)
	if err := Normalize(bp); err != nil {
		return nil, err
	}
	baseSampler, err := rng.NewSampler(bp)
	if err != nil {
		return nil, ErrMutatorConfig
	}

	var lenSampler *rng.Sampler
	if len(lengthP) > 0 {
		lp := append([]float64(nil), lengthP...)
		if err := Normalize(lp); err != nil {
			return nil, err
		}
		lenSampler, err = rng.NewSampler(lp)
		if err != nil {
			return nil, ErrMutatorConfig
		}
	}

	return &InsertionEvents{rate: rate, lengths: lenSampler, bases: baseSampler}, nil
}

func (m *InsertionEvents) Name() string           { return "InsertionEvents" }
func (m *InsertionEvents) ManipulatesCount() bool { return false }
func (m *InsertionEvents) Process(pool *[]oligo.Oligo, r *rng.RNG) {
	runCountPreserving(m, pool, r)
}

func (m *InsertionEvents) processSingle(o oligo.Oligo, r *rng.RNG) oligo.Oligo {
	rates := make([]float64, len(o))
	for i := range rates {
		rates[i] = m.rate
	}
	positions := EventPositions(r, rates)
	if len(positions) == 0 {
		return o
	}

	lengths := make([]int, len(positions))
	total := 0
	for i := range lengths {
		l := 1
		if m.lengths != nil {
			l = r.Categorical(m.lengths) + 1
		}
		lengths[i] = l
		total += l
	}

	newBases := make(oligo.Oligo, total)
	for i := range newBases {
		newBases[i] = oligo.A + oligo.Nucleotide(r.Categorical(m.bases))
	}

	// Insertions are applied from the highest position down so that
	// earlier insertions don't shift the indices of positions still to
	// be processed. The drawn bases are consumed in that same
	// descending-position order, not in position order.
	out := o.Clone()
	offset := 0
	for i := len(positions) - 1; i >= 0; i-- {
		length := lengths[i]
		insertAt := positions[i] + 1
		chunk := newBases[offset : offset+length]

		merged := make(oligo.Oligo, 0, len(out)+length)
		merged = append(merged, out[:insertAt]...)
		merged = append(merged, chunk...)
		merged = append(merged, out[insertAt:]...)
		out = merged

		offset += length
	}
	return out
}
