package mutator

import (
	"adserr/oligo"
	"adserr/rng"
)

// AddReverseComplement doubles the pool: every oligo is kept, and its
// reverse complement is added alongside it, modelling the double-stranded
// nature of a synthesized pool.
type AddReverseComplement struct{}

func NewAddReverseComplement() *AddReverseComplement { return &AddReverseComplement{} }

func (m *AddReverseComplement) Name() string           { return "AddReverseComplement" }
func (m *AddReverseComplement) ManipulatesCount() bool { return true }
func (m *AddReverseComplement) Process(pool *[]oligo.Oligo, r *rng.RNG) {
	runCountVarying(m, pool, r)
}

func (m *AddReverseComplement) processSingleWithNew(o oligo.Oligo, r *rng.RNG, out *[]oligo.Oligo) {
	*out = append(*out, o, oligo.ReverseComplement(o))
}
