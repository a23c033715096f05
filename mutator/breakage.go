package mutator

import (
	"adserr/oligo"
	"adserr/rng"
)

// BreakageEvents fragments an oligo at independently chosen cut points,
// modelling strand breakage during storage decay. The base at a cut
// point is consumed by the break and appears in neither resulting
// fragment; two adjacent cuts produce no zero-length fragment between
// them. An oligo with no cuts passes through unchanged.
type BreakageEvents struct {
	rate  float64
	baseP []float64
}

func NewBreakageEvents(rate float64, baseP []float64) (*BreakageEvents, error) {
	if len(baseP) != 4 {
		return nil, ErrMutatorConfig
	}
	bp := append([]float64(nil), baseP...)
	if err := Normalize(bp); err != nil {
		return nil, err
	}
	return &BreakageEvents{rate: rate, baseP: bp}, nil
}

func (m *BreakageEvents) Name() string           { return "BreakageEvents" }
func (m *BreakageEvents) ManipulatesCount() bool { return true }
func (m *BreakageEvents) Process(pool *[]oligo.Oligo, r *rng.RNG) {
	runCountVarying(m, pool, r)
}

func (m *BreakageEvents) processSingleWithNew(o oligo.Oligo, r *rng.RNG, out *[]oligo.Oligo) {
	rates := make([]float64, len(o))
	for i, nt := range o {
		rates[i] = 4 * m.rate * m.baseP[nt-1]
	}
	positions := EventPositions(r, rates)
	if len(positions) == 0 {
		*out = append(*out, o)
		return
	}

	last := 0
	for _, pos := range positions {
		if pos == last {
			last = pos + 1
			continue
		}
		*out = append(*out, o[last:pos].Clone())
		last = pos + 1
	}
	if last < len(o) {
		*out = append(*out, o[last:].Clone())
	}
}
