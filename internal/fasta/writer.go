package fasta

import (
	"bufio"
	"io"
)

// LineWidth is the number of bases written per sequence line.
const LineWidth = 80

// Writer writes a FASTA record with a single header line.
type Writer struct {
	w     *bufio.Writer
	width int
}

// NewWriter creates a FASTA writer that wraps sequence lines at LineWidth.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), width: LineWidth}
}

// Write writes ">header" followed by seq split into lines of at most LineWidth bases.
func (fw *Writer) Write(header, seq string) error {
	if _, err := fw.w.WriteString(">" + header + "\n"); err != nil {
		return err
	}
	for i := 0; i < len(seq); i += fw.width {
		end := min(i+fw.width, len(seq))
		if _, err := fw.w.WriteString(seq[i:end] + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes any buffered data to the underlying writer.
func (fw *Writer) Flush() error {
	return fw.w.Flush()
}
