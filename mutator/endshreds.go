package mutator

import (
	"adserr/oligo"
	"adserr/rng"
)

// EndShreds trims a randomly drawn number of bases from the 3' end and,
// independently, from the 5' end, modelling exonuclease-style decay from
// both ends of a fragment. Lengths are drawn as raw sampler indices, so a
// draw of 0 leaves that end untouched.
type EndShreds struct {
	lengths *rng.Sampler
}

func NewEndShreds(lengthP []float64) (*EndShreds, error) {
	if len(lengthP) == 0 {
		return nil, ErrMutatorConfig
	}
	lp := append([]float64(nil), lengthP...)
	if err := Normalize(lp); err != nil {
		return nil, err
	}
	s, err := rng.NewSampler(lp)
	if err != nil {
		return nil, ErrMutatorConfig
	}
	return &EndShreds{lengths: s}, nil
}

func (m *EndShreds) Name() string           { return "EndShreds" }
func (m *EndShreds) ManipulatesCount() bool { return false }
func (m *EndShreds) Process(pool *[]oligo.Oligo, r *rng.RNG) {
	runCountPreserving(m, pool, r)
}

func (m *EndShreds) processSingle(o oligo.Oligo, r *rng.RNG) oligo.Oligo {
	threePrime := r.Categorical(m.lengths)
	fivePrime := r.Categorical(m.lengths)

	out := o
	if threePrime > 0 {
		if threePrime > len(out) {
			threePrime = len(out)
		}
		out = out[:len(out)-threePrime]
	}
	if fivePrime > 0 {
		if fivePrime > len(out) {
			fivePrime = len(out)
		}
		out = out[fivePrime:]
	}
	return out.Clone()
}
