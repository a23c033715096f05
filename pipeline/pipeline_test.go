package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"adserr/mutator"
	"adserr/oligo"
	"adserr/rng"
	"adserr/seqio"
)

func writeInput(t *testing.T, dir string, seqs []string) string {
	t.Helper()
	path := filepath.Join(dir, "input.txt")
	content := ""
	for _, s := range seqs {
		content += s + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func readAllText(t *testing.T, path string) []string {
	t.Helper()
	r, err := seqio.OpenReader(path, seqio.ModeText)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()

	var out []string
	for {
		o, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, o.String())
	}
	return out
}

func TestNoOpPipelineIsIdentity(t *testing.T) {
	dir := t.TempDir()
	designs := []string{"ACGT", "AAAA", "CCCC"}
	input := writeInput(t, dir, designs)
	intermediate := filepath.Join(dir, "pool.bin")
	r1 := filepath.Join(dir, "r1.txt")
	r2 := filepath.Join(dir, "r2.txt")

	cfg := Config{
		MeanPhysicalCoverage:   1,
		MeanSequencingCoverage: 1,
		OutputFormat:           seqio.FormatText,
	}

	if err := Run(cfg, rng.New(42), input, intermediate, r1, r2); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := readAllText(t, r1)
	if len(got) != 3 {
		t.Fatalf("R1 has %d lines, want 3", len(got))
	}
	for _, s := range got {
		found := false
		for _, d := range designs {
			if s == d {
				found = true
			}
		}
		if !found {
			t.Errorf("R1 line %q is not one of the input designs", s)
		}
	}

	gotR2 := readAllText(t, r2)
	if len(gotR2) != 3 {
		t.Fatalf("R2 has %d lines, want 3", len(gotR2))
	}
	for _, s := range gotR2 {
		found := false
		for _, d := range designs {
			enc, err := oligo.Encode(d)
			if err != nil {
				t.Fatalf("Encode(%q): %v", d, err)
			}
			rc, err := oligo.Decode(oligo.ReverseComplement(enc))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if s == rc {
				found = true
			}
		}
		if !found {
			t.Errorf("R2 line %q is not the reverse complement of any input design", s)
		}
	}

	if _, err := os.Stat(intermediate); !os.IsNotExist(err) {
		t.Errorf("intermediate file %s should have been removed", intermediate)
	}
}

func TestSizeSelectionHardCutoffEmptiesOutput(t *testing.T) {
	dir := t.TempDir()
	design := make([]byte, 50)
	for i := range design {
		design[i] = 'A'
	}
	input := writeInput(t, dir, []string{string(design)})
	intermediate := filepath.Join(dir, "pool.bin")
	r1 := filepath.Join(dir, "r1.txt")
	r2 := filepath.Join(dir, "r2.txt")

	sizeSel, err := mutator.NewSizeSelection(60, 140)
	if err != nil {
		t.Fatalf("NewSizeSelection: %v", err)
	}

	cfg := Config{
		MeanPhysicalCoverage:   5,
		MeanSequencingCoverage: 5,
		InitialMutators:        mutator.Chain{sizeSel},
		OutputFormat:           seqio.FormatText,
	}

	if err := Run(cfg, rng.New(1), input, intermediate, r1, r2); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := readAllText(t, r1)
	if len(got) != 0 {
		t.Errorf("R1 has %d lines, want 0", len(got))
	}
}

func TestDeterministicReproducibility(t *testing.T) {
	dir := t.TempDir()
	designs := make([]string, 10)
	base := make([]byte, 150)
	for i := range base {
		base[i] = "ACGT"[i%4]
	}
	for i := range designs {
		designs[i] = string(base)
	}

	runOnce := func(suffix string) ([]string, []string) {
		input := writeInput(t, dir, designs)
		intermediate := filepath.Join(dir, "pool"+suffix+".bin")
		r1 := filepath.Join(dir, "r1"+suffix+".txt")
		r2 := filepath.Join(dir, "r2"+suffix+".txt")

		sub, err := mutator.NewSubstitutionEvents(0.01, []float64{
			1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		}, nil)
		if err != nil {
			t.Fatalf("NewSubstitutionEvents: %v", err)
		}
		cfg := Config{
			InitialCoverageBias:    0.3,
			MeanPhysicalCoverage:   2,
			MeanSequencingCoverage: 2,
			InitialMutators:        mutator.Chain{sub},
			OutputFormat:           seqio.FormatText,
		}
		if err := Run(cfg, rng.New(42), input, intermediate, r1, r2); err != nil {
			t.Fatalf("Run: %v", err)
		}
		return readAllText(t, r1), readAllText(t, r2)
	}

	r1a, r2a := runOnce("a")
	r1b, r2b := runOnce("b")

	if diff := cmp.Diff(r1a, r1b); diff != "" {
		t.Errorf("R1 differs between runs with the same seed (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(r2a, r2b); diff != "" {
		t.Errorf("R2 differs between runs with the same seed (-a +b):\n%s", diff)
	}
}

func TestAdapterAppendScenario(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, []string{"AAAA"})
	intermediate := filepath.Join(dir, "pool.bin")
	r1 := filepath.Join(dir, "r1.txt")
	r2 := filepath.Join(dir, "r2.txt")

	adapter, err := mutator.NewSequencingAddAdapter("GGG")
	if err != nil {
		t.Fatalf("NewSequencingAddAdapter: %v", err)
	}

	cfg := Config{
		MeanPhysicalCoverage:   1,
		MeanSequencingCoverage: 1,
		SequencingMutators:     mutator.Chain{adapter},
		OutputFormat:           seqio.FormatText,
	}
	if err := Run(cfg, rng.New(1), input, intermediate, r1, r2); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := readAllText(t, r1)
	for _, s := range got {
		if s != "AAAAGGG" {
			t.Errorf("R1 line = %q, want %q", s, "AAAAGGG")
		}
	}
}

func TestPadTrimExactnessScenario(t *testing.T) {
	dir := t.TempDir()
	l10 := make([]byte, 10)
	l150 := make([]byte, 150)
	l300 := make([]byte, 300)
	for _, b := range [][]byte{l10, l150, l300} {
		for i := range b {
			b[i] = "ACGT"[i%4]
		}
	}
	input := writeInput(t, dir, []string{string(l10), string(l150), string(l300)})
	intermediate := filepath.Join(dir, "pool.bin")
	r1 := filepath.Join(dir, "r1.txt")
	r2 := filepath.Join(dir, "r2.txt")

	padtrim, err := mutator.NewSequencingPadTrim(150)
	if err != nil {
		t.Fatalf("NewSequencingPadTrim: %v", err)
	}
	// High coverage makes it overwhelmingly likely every design is
	// represented at least once in the output; the checks below rely on
	// the 150- and 300-length designs both appearing.
	cfg := Config{
		MeanPhysicalCoverage:   20,
		MeanSequencingCoverage: 20,
		SequencingMutators:     mutator.Chain{padtrim},
		OutputFormat:           seqio.FormatText,
	}
	if err := Run(cfg, rng.New(1), input, intermediate, r1, r2); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := readAllText(t, r1)
	if len(got) == 0 {
		t.Fatalf("R1 is empty")
	}
	sawUnchanged150 := false
	sawTruncated300 := false
	for i, s := range got {
		if len(s) != 150 {
			t.Errorf("R1 line %d has length %d, want 150", i, len(s))
		}
		if s == string(l150) {
			sawUnchanged150 = true
		}
		if s == string(l300)[:150] {
			sawTruncated300 = true
		}
	}
	if !sawUnchanged150 {
		t.Errorf("never saw the already-150-length design pass through unchanged")
	}
	if !sawTruncated300 {
		t.Errorf("never saw the 300-length design truncated to its first 150 bases")
	}
}
