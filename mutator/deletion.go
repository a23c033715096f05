package mutator

import (
	"adserr/oligo"
	"adserr/rng"
)

// DeletionEvents removes random-length runs starting at independently
// chosen positions. The per-position rate is biased by the base
// currently at that position, via a 4-entry preference vector normalized
// so the average per-position rate over a uniform sequence equals rate.
type DeletionEvents struct {
	rate    float64
	baseP   []float64
	lengths *rng.Sampler
}

func NewDeletionEvents(rate float64, baseP []float64, lengthP []float64) (*DeletionEvents, error) {
	if len(baseP) != 4 {
		return nil, ErrMutatorConfig
	}
	bp := append([]float64(nil), baseP...)
	if err := Normalize(bp); err != nil {
		return nil, err
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

	return &DeletionEvents{rate: rate, baseP: bp, lengths: lenSampler}, nil
}

func (m *DeletionEvents) Name() string           { return "DeletionEvents" }
func (m *DeletionEvents) ManipulatesCount() bool { return false }
func (m *DeletionEvents) Process(pool *[]oligo.Oligo, r *rng.RNG) {
	runCountPreserving(m, pool, r)
}

func (m *DeletionEvents) processSingle(o oligo.Oligo, r *rng.RNG) oligo.Oligo {
	rates := make([]float64, len(o))
	for i, nt := range o {
		rates[i] = 4 * m.rate * m.baseP[nt-1]
	}
	positions := EventPositions(r, rates)
	if len(positions) == 0 {
		return o
	}

	lengths := make([]int, len(positions))
	for i := range lengths {
		l := 1
		if m.lengths != nil {
			l = r.Categorical(m.lengths) + 1
		}
		lengths[i] = l
	}

	// Applied from the highest position down so a deletion never shifts
	// the index of a position still to be processed.
	out := o.Clone()
	for i := len(positions) - 1; i >= 0; i-- {
		pos := positions[i]
		length := lengths[i]
		if pos+length > len(out) {
			length = len(out) - pos
		}
		out = append(out[:pos], out[pos+length:]...)
	}
	return out
}
