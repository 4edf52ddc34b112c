// Package output provides analysis report formatters.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/vibe-orf/internal/analyze"
	"github.com/inodb/vibe-orf/internal/gene"
)

// TabWriter writes one tab-delimited row per gene.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Origin",
			"Start",
			"Stop",
			"End",
			"Start_codon",
			"Stop_codon",
			"Length",
			"Codons",
			"GC_content",
			"Protein",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a row for every gene in the summary.
func (tw *TabWriter) Write(s *analyze.Summary) error {
	origin := s.Origin
	if origin == "" {
		origin = "-"
	}
	for _, g := range s.Genes {
		if err := tw.WriteGene(origin, g); err != nil {
			return err
		}
	}
	return nil
}

// WriteGene writes a single gene row.
func (tw *TabWriter) WriteGene(origin string, g gene.Gene) error {
	values := []string{
		origin,
		strconv.Itoa(g.Start),
		strconv.Itoa(g.Stop),
		strconv.Itoa(g.End()),
		g.StartCodon,
		g.StopCodon,
		strconv.Itoa(g.Len()),
		strconv.Itoa(g.CodonCount()),
		strconv.FormatFloat(g.GCContent(), 'f', 2, 64),
		g.Protein(),
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
