package mutator

import (
	"adserr/oligo"
	"adserr/rng"
)

// Tailing appends a homopolymer-like run of uniformly-drawn bases from a
// fixed alphabet (typically poly-A or poly-C/T) to the 3' end, of a
// length drawn uniformly from [nMin, nMax].
type Tailing struct {
	bases      oligo.Oligo
	nMin, nMax int
}

func NewTailing(tailBases string, nMin, nMax int) (*Tailing, error) {
	encoded, err := oligo.Encode(tailBases)
	if err != nil || len(encoded) == 0 {
		return nil, ErrMutatorConfig
	}
	if nMin < 0 || nMin > nMax {
		return nil, ErrMutatorConfig
	}
	return &Tailing{bases: encoded, nMin: nMin, nMax: nMax}, nil
}

func (m *Tailing) Name() string           { return "Tailing" }
func (m *Tailing) ManipulatesCount() bool { return false }
func (m *Tailing) Process(pool *[]oligo.Oligo, r *rng.RNG) {
	runCountPreserving(m, pool, r)
}

func (m *Tailing) processSingle(o oligo.Oligo, r *rng.RNG) oligo.Oligo {
	length := r.Int(m.nMin, m.nMax)
	tail := make(oligo.Oligo, length)
	for i := range tail {
		tail[i] = m.bases[r.Int(0, len(m.bases)-1)]
	}
	out := o.Clone()
	return append(out, tail...)
}
