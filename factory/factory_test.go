package factory

import (
	"testing"

	"adserr/mutator"
	"adserr/oligo"
	"adserr/rng"
)

func TestGenerateEmptyChainClonesDesign(t *testing.T) {
	design, _ := oligo.Encode("ACGT")
	r := rng.New(1)
	out := Generate(design, 5, nil, r)
	if len(out) != 5 {
		t.Fatalf("len(out) = %d, want 5", len(out))
	}
	for i, o := range out {
		if o.String() != "ACGT" {
			t.Errorf("out[%d] = %q, want %q", i, o.String(), "ACGT")
		}
	}
}

func TestGenerateZeroCountIsEmpty(t *testing.T) {
	design, _ := oligo.Encode("ACGT")
	r := rng.New(1)
	out := Generate(design, 0, nil, r)
	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0", len(out))
	}
}

func TestGenerateRunsChainIndependentlyPerTrial(t *testing.T) {
	design, _ := oligo.Encode("AAAA")
	adapter, err := mutator.NewSequencingAddAdapter("GG")
	if err != nil {
		t.Fatalf("NewSequencingAddAdapter: %v", err)
	}
	chain := mutator.Chain{adapter}

	r := rng.New(1)
	out := Generate(design, 3, chain, r)
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}
	for i, o := range out {
		if o.String() != "AAAAGG" {
			t.Errorf("out[%d] = %q, want %q", i, o.String(), "AAAAGG")
		}
	}
}

func TestGenerateCountVaryingChainCanChangeTotal(t *testing.T) {
	design, _ := oligo.Encode("ACGT")
	rc := mutator.NewAddReverseComplement()
	chain := mutator.Chain{rc}

	r := rng.New(1)
	out := Generate(design, 4, chain, r)
	if len(out) != 8 {
		t.Fatalf("len(out) = %d, want 8 (each of 4 trials doubles)", len(out))
	}
}
