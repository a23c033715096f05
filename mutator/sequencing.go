package mutator

import (
	"adserr/oligo"
	"adserr/rng"
)

// SequencingAddAdapter appends a fixed adapter sequence to the 3' end of
// every read, modelling the sequencing adapter ligated on before
// amplification.
type SequencingAddAdapter struct {
	adapter oligo.Oligo
}

func NewSequencingAddAdapter(adapter string) (*SequencingAddAdapter, error) {
	enc, err := oligo.Encode(adapter)
	if err != nil {
		return nil, ErrMutatorConfig
	}
	return &SequencingAddAdapter{adapter: enc}, nil
}

func (m *SequencingAddAdapter) Name() string           { return "SequencingAddAdapter" }
func (m *SequencingAddAdapter) ManipulatesCount() bool { return false }
func (m *SequencingAddAdapter) Process(pool *[]oligo.Oligo, r *rng.RNG) {
	runCountPreserving(m, pool, r)
}

func (m *SequencingAddAdapter) processSingle(o oligo.Oligo, r *rng.RNG) oligo.Oligo {
	out := o.Clone()
	return append(out, m.adapter...)
}

// SequencingPadTrim forces every read to exactly readLength bases: reads
// shorter than readLength are padded with uniformly random bases, longer
// reads are truncated, matching the fixed-length reads a sequencer
// actually emits.
type SequencingPadTrim struct {
	readLength int
}

func NewSequencingPadTrim(readLength int) (*SequencingPadTrim, error) {
	if readLength < 1 {
		return nil, ErrMutatorConfig
	}
	return &SequencingPadTrim{readLength: readLength}, nil
}

func (m *SequencingPadTrim) Name() string           { return "SequencingPadTrim" }
func (m *SequencingPadTrim) ManipulatesCount() bool { return false }
func (m *SequencingPadTrim) Process(pool *[]oligo.Oligo, r *rng.RNG) {
	runCountPreserving(m, pool, r)
}

func (m *SequencingPadTrim) processSingle(o oligo.Oligo, r *rng.RNG) oligo.Oligo {
	switch {
	case len(o) < m.readLength:
		out := o.Clone()
		for len(out) < m.readLength {
			out = append(out, oligo.A+oligo.Nucleotide(r.Int(0, 3)))
		}
		return out
	case len(o) > m.readLength:
		return o[:m.readLength].Clone()
	default:
		return o
	}
}
