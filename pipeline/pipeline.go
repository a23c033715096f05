// Package pipeline drives the two-pass simulation: synthesis and
// physical sampling into an intermediate binary pool file, then recovery
// and sequencing into the paired output files.
package pipeline

import (
	"fmt"
	"io"
	"os"

	"adserr/collector"
	"adserr/coverage"
	"adserr/factory"
	"adserr/logging"
	"adserr/mutator"
	"adserr/rng"
	"adserr/seqio"
)

var ErrCountMismatch = fmt.Errorf("pipeline: processed sequence count disagrees with the expected coverage vector")

var log = logging.New("pipeline")

// synthesisOligosPerDesign is the target number of physical copies drawn
// per design before physical-coverage sampling, matching the scale used
// by the reference photolithography and decay challenges.
const synthesisOligosPerDesign = 100

// Config fixes every numeric parameter and mutator chain for one run.
type Config struct {
	InitialCoverageBias    float64
	MeanPhysicalCoverage   float64
	MeanSequencingCoverage float64

	InitialMutators    mutator.Chain
	RecoveryMutators   mutator.Chain
	SequencingMutators mutator.Chain

	OutputFormat seqio.WriteFormat
}

// Run executes both passes of the pipeline end to end. The intermediate
// pool file is removed whether the run succeeds or fails partway
// through.
func Run(cfg Config, r *rng.RNG, inputPath, intermediatePath, outputR1, outputR2 string) error {
	inputReader, err := seqio.OpenReader(inputPath, seqio.ModeText)
	if err != nil {
		return err
	}
	defer inputReader.Close()

	nDesigns, err := inputReader.Count()
	if err != nil {
		return err
	}

	intermediateWriter, err := seqio.CreateWriter(intermediatePath, seqio.FormatBinary)
	if err != nil {
		return err
	}

	if err := synthesisAndSampling(cfg, r, inputReader, intermediateWriter, nDesigns); err != nil {
		log.Critical("synthesis and sampling failed: %v", err)
		intermediateWriter.Remove()
		return err
	}
	if err := intermediateWriter.Close(); err != nil {
		os.Remove(intermediatePath)
		return err
	}

	intermediateReader, err := seqio.OpenReader(intermediatePath, seqio.ModeBinary)
	if err != nil {
		os.Remove(intermediatePath)
		return err
	}

	fwWriter, err := seqio.CreateWriter(outputR1, cfg.OutputFormat)
	if err != nil {
		intermediateReader.Close()
		os.Remove(intermediatePath)
		return err
	}
	rvWriter, err := seqio.CreateWriter(outputR2, cfg.OutputFormat)
	if err != nil {
		fwWriter.Close()
		intermediateReader.Close()
		os.Remove(intermediatePath)
		return err
	}

	runErr := recoveryAndSequencing(cfg, r, intermediateReader, fwWriter, rvWriter, nDesigns)
	intermediateReader.Close()
	if runErr != nil {
		log.Critical("recovery and sequencing failed: %v", runErr)
		fwWriter.Close()
		rvWriter.Close()
		os.Remove(intermediatePath)
		return runErr
	}

	if err := fwWriter.Close(); err != nil {
		os.Remove(intermediatePath)
		return err
	}
	if err := rvWriter.Close(); err != nil {
		os.Remove(intermediatePath)
		return err
	}
	return os.Remove(intermediatePath)
}

func synthesisAndSampling(cfg Config, r *rng.RNG, reader *seqio.Reader, writer *seqio.Writer, nDesigns int) error {
	log.Info("generating synthesis coverage with bias %.4f", cfg.InitialCoverageBias)
	initial, err := coverage.InitialCoverage(r, nDesigns, cfg.InitialCoverageBias, synthesisOligosPerDesign)
	if err != nil {
		return err
	}

	nSampled := int(float64(nDesigns) * cfg.MeanPhysicalCoverage)
	log.Info("sampling for a mean physical coverage of %.4f", cfg.MeanPhysicalCoverage)
	physical, err := coverage.SampleByCount(r, initial, nSampled)
	if err != nil {
		return err
	}

	log.Info("processing errors for synthesis and sampling")
	if err := reader.Rewind(); err != nil {
		return err
	}

	i := 0
	for {
		design, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if i >= len(physical) {
			return ErrCountMismatch
		}
		for _, o := range factory.Generate(design, physical[i], cfg.InitialMutators, r) {
			if err := writer.Write(o); err != nil {
				return err
			}
		}
		i++
	}
	if i != len(physical) {
		return ErrCountMismatch
	}
	log.Info("finished synthesis and sampling: %d designs processed", i)
	return nil
}

func recoveryAndSequencing(cfg Config, r *rng.RNG, reader *seqio.Reader, fwWriter, rvWriter *seqio.Writer, nOriginalDesigns int) error {
	m, err := reader.Count()
	if err != nil {
		return err
	}

	if m == 0 {
		// Nothing survived pass 1 (e.g. size selection dropped every
		// oligo), so there is nothing to sequence and the outputs stay empty.
		log.Warning("intermediate pool is empty; writing no reads")
		return nil
	}

	nReads := int(cfg.MeanSequencingCoverage * float64(nOriginalDesigns))
	log.Info("sampling for a mean sequencing coverage of %.4f", cfg.MeanSequencingCoverage)

	uniform := make([]int, m)
	for i := range uniform {
		uniform[i] = 1
	}
	sequencing, err := coverage.SampleByCount(r, uniform, nReads)
	if err != nil {
		return err
	}

	log.Info("processing errors for recovery and sequencing")
	coll := collector.New(fwWriter, rvWriter, cfg.SequencingMutators)

	j := 0
	for {
		pooled, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if j >= len(sequencing) {
			return ErrCountMismatch
		}
		for _, read := range factory.Generate(pooled, sequencing[j], cfg.RecoveryMutators, r) {
			if err := coll.Collect(read, r); err != nil {
				return err
			}
		}
		j++
	}
	if j != len(sequencing) {
		return ErrCountMismatch
	}
	log.Info("finished recovery and sequencing: %d pooled oligos processed", j)
	return nil
}
