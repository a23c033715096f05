package mutator

import (
	"adserr/oligo"
	"adserr/rng"
)

// SizeSelection models a size-selective purification step: fragments at
// or below lower are always discarded, fragments at or above upper are
// always kept, and lengths in between are kept with probability rising
// linearly from 0 to 1 across the window.
type SizeSelection struct {
	lower, upper int
}

func NewSizeSelection(lower, upper int) (*SizeSelection, error) {
	if lower > upper {
		return nil, ErrMutatorConfig
	}
	return &SizeSelection{lower: lower, upper: upper}, nil
}

func (m *SizeSelection) Name() string           { return "SizeSelection" }
func (m *SizeSelection) ManipulatesCount() bool { return true }
func (m *SizeSelection) Process(pool *[]oligo.Oligo, r *rng.RNG) {
	runCountVarying(m, pool, r)
}

func (m *SizeSelection) processSingleWithNew(o oligo.Oligo, r *rng.RNG, out *[]oligo.Oligo) {
	n := len(o)
	switch {
	case n <= m.lower:
		return
	case n >= m.upper:
		*out = append(*out, o)
	default:
		p := float64(n-m.lower) / float64(m.upper-m.lower)
		if IsMutation(r, p) {
			*out = append(*out, o)
		}
	}
}
