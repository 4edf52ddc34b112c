package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/inodb/vibe-orf/internal/duckdb"
)

// SequenceTabWriter writes one tab-delimited row per stored sequence.
type SequenceTabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewSequenceTabWriter creates a new tab-delimited writer for stored sequences.
func NewSequenceTabWriter(w io.Writer) *SequenceTabWriter {
	return &SequenceTabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#ID",
			"Origin",
			"Length",
			"GC_content",
			"A",
			"C",
			"G",
			"T",
			"Genes",
			"Analyzed_at",
		},
	}
}

// WriteHeader writes the header line.
func (sw *SequenceTabWriter) WriteHeader() error {
	_, err := sw.w.WriteString(strings.Join(sw.columns, "\t") + "\n")
	return err
}

// WriteRecord writes a single sequence row.
func (sw *SequenceTabWriter) WriteRecord(rec duckdb.SequenceRecord) error {
	n := rec.Nucleotides
	values := []string{
		rec.ID,
		rec.Origin,
		strconv.Itoa(rec.Length),
		strconv.FormatFloat(rec.GCContent, 'f', 2, 64),
		strconv.Itoa(n.A),
		strconv.Itoa(n.C),
		strconv.Itoa(n.G),
		strconv.Itoa(n.T),
		strconv.Itoa(rec.GeneCount),
		rec.AnalyzedAt.UTC().Format(time.RFC3339),
	}

	_, err := sw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (sw *SequenceTabWriter) Flush() error {
	return sw.w.Flush()
}
