// Package cmd wires the adserr command-line surface: a single command
// that resolves a named error scenario, applies any flag overrides, and
// runs the two-pass pipeline against an input file of design sequences.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"adserr/config"
	"adserr/logging"
	"adserr/pipeline"
	"adserr/rng"
	"adserr/scenario"
	"adserr/seqio"
)

var log = logging.New("cli")

var rootCmd = &cobra.Command{
	Use:   "adserr challenge input_file output_file_r1 output_file_r2",
	Short: "Simulate DNA data storage errors across a synthesis-decay-sequencing pipeline",
	Long: `adserr replays one of two pre-tuned error scenarios -- storage decay or
photolithographic array synthesis -- against a file of design sequences
in plain text, FASTA, or FASTQ, and writes the resulting paired-end reads.`,
	Args:          cobra.ExactArgs(4),
	RunE:          runPipeline,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	flags := rootCmd.Flags()
	flags.Bool("strict", false, "lock all numeric parameters to the challenge defaults")
	flags.StringP("intermediate_file", "i", "", "path for the intermediate binary pool (default: a generated temp file)")
	flags.StringP("format", "f", "txt", "output format: txt, fasta, or fastq")
	flags.Float64P("coverage_bias", "b", 0, "log-normal sigma for synthesis coverage bias")
	flags.Float64P("physical_redundancy", "p", 0, "mean physical oligos per design")
	flags.Float64P("sequencing_depth", "s", 0, "mean reads per design")
	flags.IntP("read_length", "l", 0, "sequencing read length")
	flags.Int64("seed", 0, "PRNG seed (default: wall-clock seconds)")
	flags.Bool("no_adapter", false, "omit the sequencing adapter")
	flags.Bool("no_padtrim", false, "omit the pad/trim step")

	for _, name := range []string{
		"strict", "intermediate_file", "format", "coverage_bias",
		"physical_redundancy", "sequencing_depth", "read_length",
		"seed", "no_adapter", "no_padtrim",
	} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			log.Critical("binding flag %s: %v", name, err)
			os.Exit(1)
		}
	}
}

// Execute runs the root command. Argument parse failures and pipeline
// errors both terminate the process with a nonzero exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPipeline(cmd *cobra.Command, args []string) error {
	challenge, inputFile, outputR1, outputR2 := args[0], args[1], args[2], args[3]

	flags, err := config.FromViper()
	if err != nil {
		return fmt.Errorf("cli: reading flags: %w", err)
	}

	seed := flags.Seed
	if seed == 0 {
		seed = time.Now().Unix()
	}
	log.Info("using seed %d", seed)
	r := rng.New(seed)

	var overrides scenario.Overrides
	if !flags.Strict {
		if cmd.Flags().Changed("coverage_bias") {
			overrides.CoverageBias = &flags.CoverageBias
		}
		if cmd.Flags().Changed("physical_redundancy") {
			overrides.PhysicalCoverage = &flags.PhysicalRedundancy
		}
		if cmd.Flags().Changed("sequencing_depth") {
			overrides.SequencingCoverage = &flags.SequencingDepth
		}
		if cmd.Flags().Changed("read_length") {
			overrides.ReadLength = &flags.ReadLength
		}
	}

	pcfg, err := scenario.Build(challenge, !flags.NoAdapter, !flags.NoPadTrim, overrides)
	if err != nil {
		return err
	}

	format, err := parseFormat(flags.Format)
	if err != nil {
		return err
	}
	pcfg.OutputFormat = format

	intermediate := flags.IntermediateFile
	if intermediate == "" {
		f, err := os.CreateTemp("", "adserr-pool-*.bin")
		if err != nil {
			return fmt.Errorf("cli: creating intermediate file: %w", err)
		}
		intermediate = f.Name()
		f.Close()
	}

	return pipeline.Run(pcfg, r, inputFile, intermediate, outputR1, outputR2)
}

func parseFormat(s string) (seqio.WriteFormat, error) {
	switch s {
	case "txt", "":
		return seqio.FormatText, nil
	case "fasta":
		return seqio.FormatFasta, nil
	case "fastq":
		return seqio.FormatFastq, nil
	default:
		return 0, fmt.Errorf("cli: unknown output format %q", s)
	}
}
