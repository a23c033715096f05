// Package scenario builds the named, pre-tuned pipeline configurations:
// physical decay of a stored pool and photolithographic array synthesis,
// each pairing a coverage/rate profile with a concrete mutator chain, and
// the shared sequencing tail every scenario appends before writing reads.
package scenario

import (
	"fmt"

	"adserr/mutator"
	"adserr/pipeline"
)

var ErrUnknownScenario = fmt.Errorf("scenario: unknown name")

// Illumina general read adapter, already reverse-complemented as
// appended to the 3' end of a synthesis-oriented read.
const illuminaAdapter = "AGATCGGAAGAGC"

// sequencingErrorRate and sequencingBias model an iSeq 100 run, averaged
// over both reads of a pair.
const sequencingErrorRate = 0.0018115

var sequencingBias = []float64{
	0.0029, 0.2065, 0.1684, 0.0246, 0.0139, 0.1594,
	0.1761, 0.0184, 0.0377, 0.0203, 0.1060, 0.0657,
}

// Sequencing appends the shared sequencing tail (adapter, pad/trim,
// sequencer error) to chain, matching the reference implementation's
// unconditional per-read sequencing error model.
func Sequencing(chain mutator.Chain, addAdapters, padAndTrim bool, readLength int) (mutator.Chain, error) {
	if addAdapters {
		m, err := mutator.NewSequencingAddAdapter(illuminaAdapter)
		if err != nil {
			return nil, err
		}
		chain = append(chain, m)
	}
	if padAndTrim {
		m, err := mutator.NewSequencingPadTrim(readLength)
		if err != nil {
			return nil, err
		}
		chain = append(chain, m)
	}
	m, err := mutator.NewSubstitutionEvents(sequencingErrorRate, sequencingBias, nil)
	if err != nil {
		return nil, err
	}
	return append(chain, m), nil
}

// taqPolymeraseSubstitutionRate models 15 cycles of PCR amplification
// with Taq polymerase, shared by both challenges' recovery step.
const taqPolymeraseSubstitutionRate = 0.000109 * 15

var taqPolymeraseBias = []float64{
	0.0147, 0.3028, 0.0630, 0.0150, 0.0071, 0.0975,
	0.0975, 0.0071, 0.0150, 0.0630, 0.3028, 0.0147,
}

func pcrRecoveryChain() (mutator.Chain, error) {
	m, err := mutator.NewSubstitutionEvents(taqPolymeraseSubstitutionRate, taqPolymeraseBias, nil)
	if err != nil {
		return nil, err
	}
	return mutator.Chain{m}, nil
}

// Decay builds the pipeline.Config for storage-decay simulation: DNA
// synthesized once, then aged in storage before recovery. read_length is
// returned for the caller to feed into Sequencing.
func Decay() (pipeline.Config, int, error) {
	const readLength = 150

	sub, err := mutator.NewSubstitutionEvents(
		taqPolymeraseSubstitutionRate,
		taqPolymeraseBias, nil,
	)
	if err != nil {
		return pipeline.Config{}, 0, err
	}

	del, err := mutator.NewDeletionEvents(
		0.0005695, // Twist synthesis deletion rate
		[]float64{0.2468, 0.2362, 0.2669, 0.2500},
		[]float64{
			0.8602, 0.0612, 0.0178, 0.0111, 0.0083, 0.0072, 0.0062, 0.0054,
			0.0048, 0.0041, 0.0037, 0.0030, 0.0023, 0.0020, 0.0016, 0.0010,
		},
	)
	if err != nil {
		return pipeline.Config{}, 0, err
	}

	rc := mutator.NewAddReverseComplement()

	breakage, err := mutator.NewBreakageEvents(
		0.023, // aging for five half-lives at 150 nt, expressed as a per-base rate
		[]float64{0.3902, 0.0488, 0.4878, 0.0732},
	)
	if err != nil {
		return pipeline.Config{}, 0, err
	}

	// Bead-based purification at a bead ratio of 1.8, accounting for the
	// 33 nt adapter plus 8 nt tail added by the single-stranded workflow.
	sizeSelect, err := mutator.NewSizeSelection(60-33-8, 140-33-8)
	if err != nil {
		return pipeline.Config{}, 0, err
	}

	tail, err := mutator.NewTailing("CT", 6, 8)
	if err != nil {
		return pipeline.Config{}, 0, err
	}

	recovery, err := pcrRecoveryChain()
	if err != nil {
		return pipeline.Config{}, 0, err
	}

	return pipeline.Config{
		InitialCoverageBias:    0.30,
		MeanPhysicalCoverage:   10,
		MeanSequencingCoverage: 30,
		InitialMutators:        mutator.Chain{sub, del, rc, breakage, sizeSelect, tail},
		RecoveryMutators:       recovery,
	}, readLength, nil
}

// Photolithography builds the pipeline.Config for array-synthesized DNA
// read shortly after synthesis, dominated by shred and substitution
// errors rather than long-term decay.
func Photolithography() (pipeline.Config, int, error) {
	const readLength = 150

	shred, err := mutator.NewEndShreds([]float64{
		0.4882, 0.1189, 0.0635, 0.0342, 0.0202, 0.0137, 0.0117, 0.0110, 0.0096, 0.0091,
	})
	if err != nil {
		return pipeline.Config{}, 0, err
	}

	sub, err := mutator.NewSubstitutionEvents(
		0.0212, // synthesis substitution rate
		[]float64{0.085, 0.058, 0.063, 0.088, 0.081, 0.063, 0.095, 0.073, 0.183, 0.081, 0.063, 0.094},
		[]float64{0.8420, 0.1277, 0.0232, 0.0071},
	)
	if err != nil {
		return pipeline.Config{}, 0, err
	}

	del, err := mutator.NewDeletionEvents(
		0.0683, // synthesis deletion rate
		[]float64{0.25, 0.25, 0.25, 0.25},
		[]float64{0.8556, 0.1026, 0.0227, 0.0191},
	)
	if err != nil {
		return pipeline.Config{}, 0, err
	}

	ins, err := mutator.NewInsertionEvents(
		0.0136, // synthesis insertion rate
		[]float64{0.25, 0.25, 0.25, 0.25},
		[]float64{0.9275, 0.0453, 0.0126, 0.0146},
	)
	if err != nil {
		return pipeline.Config{}, 0, err
	}

	recovery, err := pcrRecoveryChain()
	if err != nil {
		return pipeline.Config{}, 0, err
	}

	return pipeline.Config{
		InitialCoverageBias:    0.44,
		MeanPhysicalCoverage:   200,
		MeanSequencingCoverage: 50,
		InitialMutators:        mutator.Chain{shred, sub, del, ins},
		RecoveryMutators:       recovery,
	}, readLength, nil
}

// Overrides holds the numeric parameters a caller wants to replace after
// resolving a named scenario; a nil field keeps the scenario's default.
// --strict on the command line means every field stays nil.
type Overrides struct {
	CoverageBias       *float64
	PhysicalCoverage   *float64
	SequencingCoverage *float64
	ReadLength         *int
}

// Build resolves a scenario by name, applies any non-strict overrides,
// and finishes wiring its sequencing tail, so the returned Config is
// ready for pipeline.Run.
func Build(name string, addAdapters, padAndTrim bool, ov Overrides) (pipeline.Config, error) {
	var (
		cfg        pipeline.Config
		readLength int
		err        error
	)

	switch name {
	case "decay":
		cfg, readLength, err = Decay()
	case "photolithography":
		cfg, readLength, err = Photolithography()
	default:
		return pipeline.Config{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	if err != nil {
		return pipeline.Config{}, err
	}

	if ov.CoverageBias != nil {
		cfg.InitialCoverageBias = *ov.CoverageBias
	}
	if ov.PhysicalCoverage != nil {
		cfg.MeanPhysicalCoverage = *ov.PhysicalCoverage
	}
	if ov.SequencingCoverage != nil {
		cfg.MeanSequencingCoverage = *ov.SequencingCoverage
	}
	if ov.ReadLength != nil {
		readLength = *ov.ReadLength
	}

	cfg.SequencingMutators, err = Sequencing(nil, addAdapters, padAndTrim, readLength)
	if err != nil {
		return pipeline.Config{}, err
	}
	return cfg, nil
}
