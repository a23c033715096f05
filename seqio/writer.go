package seqio

import (
	"bufio"
	"fmt"
	"os"

	"adserr/oligo"
)

// WriteFormat selects the on-disk representation Writer emits.
type WriteFormat int

const (
	FormatText WriteFormat = iota
	FormatFasta
	FormatFastq
	FormatBinary
)

// Writer streams oligos to a file in one of four formats, incrementing a
// per-file counter used for FASTA/FASTQ record headers.
type Writer struct {
	path    string
	format  WriteFormat
	file    *os.File
	buf     *bufio.Writer
	counter int
}

// CreateWriter truncates or creates path and prepares it for streaming
// writes in the given format.
func CreateWriter(path string, format WriteFormat) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: creating %s: %w", path, err)
	}
	return &Writer{path: path, format: format, file: f, buf: bufio.NewWriter(f)}, nil
}

// Write appends one record in the writer's configured format.
func (w *Writer) Write(o oligo.Oligo) error {
	switch w.format {
	case FormatBinary:
		return w.writeBinary(o)
	case FormatFasta:
		return w.writeText(o, fastaRecord)
	case FormatFastq:
		return w.writeText(o, fastqRecord)
	default:
		return w.writeText(o, textRecord)
	}
}

func (w *Writer) writeBinary(o oligo.Oligo) error {
	for _, nt := range o {
		if err := w.buf.WriteByte(byte(nt)); err != nil {
			return fmt.Errorf("seqio: writing %s: %w", w.path, err)
		}
	}
	if err := w.buf.WriteByte(byte(oligo.Sentinel)); err != nil {
		return fmt.Errorf("seqio: writing %s: %w", w.path, err)
	}
	w.counter++
	return nil
}

type recordFormatter func(index int, seq string) string

func textRecord(_ int, seq string) string {
	return seq + "\n"
}

func fastaRecord(index int, seq string) string {
	return fmt.Sprintf(">Oligo_%09d\n%s\n", index, seq)
}

func fastqRecord(index int, seq string) string {
	quality := make([]byte, len(seq))
	for i := range quality {
		quality[i] = 'F'
	}
	return fmt.Sprintf("@Oligo_%09d\n%s\n+\n%s\n", index, seq, quality)
}

func (w *Writer) writeText(o oligo.Oligo, f recordFormatter) error {
	seq, err := oligo.Decode(o)
	if err != nil {
		return fmt.Errorf("seqio: writing %s: %w", w.path, err)
	}
	if _, err := w.buf.WriteString(f(w.counter, seq)); err != nil {
		return fmt.Errorf("seqio: writing %s: %w", w.path, err)
	}
	w.counter++
	return nil
}

// Close flushes buffered output and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("seqio: flushing %s: %w", w.path, err)
	}
	return w.file.Close()
}

// Remove closes the writer and deletes its file, used to discard a
// partially-written intermediate or output file after a failed run.
func (w *Writer) Remove() error {
	w.Close()
	return os.Remove(w.path)
}
