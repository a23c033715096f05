package collector

import (
	"io"
	"path/filepath"
	"testing"

	"adserr/oligo"
	"adserr/rng"
	"adserr/seqio"
)

func TestCollectWritesForwardAndReverseComplement(t *testing.T) {
	dir := t.TempDir()
	fwPath := filepath.Join(dir, "r1.txt")
	rvPath := filepath.Join(dir, "r2.txt")

	fw, err := seqio.CreateWriter(fwPath, seqio.FormatText)
	if err != nil {
		t.Fatalf("CreateWriter: %v", err)
	}
	rv, err := seqio.CreateWriter(rvPath, seqio.FormatText)
	if err != nil {
		t.Fatalf("CreateWriter: %v", err)
	}

	c := New(fw, rv, nil)
	o, _ := oligo.Encode("ACGTACGT")
	r := rng.New(1)
	if err := c.Collect(o, r); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	fw.Close()
	rv.Close()

	fwReader, err := seqio.OpenReader(fwPath, seqio.ModeText)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer fwReader.Close()
	got, err := fwReader.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got.String() != "ACGTACGT" {
		t.Errorf("forward = %q, want %q", got.String(), "ACGTACGT")
	}

	rvReader, err := seqio.OpenReader(rvPath, seqio.ModeText)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer rvReader.Close()
	gotRv, err := rvReader.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	want := oligo.ReverseComplement(o)
	if gotRv.String() != want.String() {
		t.Errorf("reverse = %q, want %q", gotRv.String(), want.String())
	}
}

func TestCollectSingleEndedSkipsReverseWriter(t *testing.T) {
	dir := t.TempDir()
	fwPath := filepath.Join(dir, "r1.txt")

	fw, err := seqio.CreateWriter(fwPath, seqio.FormatText)
	if err != nil {
		t.Fatalf("CreateWriter: %v", err)
	}

	c := New(fw, nil, nil)
	o, _ := oligo.Encode("ACGT")
	r := rng.New(1)
	if err := c.Collect(o, r); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	fw.Close()

	fwReader, err := seqio.OpenReader(fwPath, seqio.ModeText)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer fwReader.Close()

	count := 0
	for {
		if _, err := fwReader.Next(); err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("Next: %v", err)
		}
		count++
	}
	if count != 1 {
		t.Errorf("wrote %d records, want 1", count)
	}
}
