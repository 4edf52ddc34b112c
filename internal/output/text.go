package output

import (
	"bufio"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/inodb/vibe-orf/internal/analyze"
	"github.com/inodb/vibe-orf/internal/gene"
	"github.com/inodb/vibe-orf/internal/sequence"
)

const (
	banner = "╔═══════════════════════════════════════════════════════════════╗\n" +
		"║              DNA SEQUENCE ANALYSIS REPORT                     ║\n" +
		"╚═══════════════════════════════════════════════════════════════╝\n"
	rule = "─────────────────────────────────────────────────────────────────\n"
)

// TextWriter renders a human-readable report per sequence.
type TextWriter struct {
	w         *bufio.Writer
	p         *message.Printer
	listGenes bool
	preview   int
}

// NewTextWriter creates a report writer. Numbers are grouped for English.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{
		w:       bufio.NewWriter(w),
		p:       message.NewPrinter(language.English),
		preview: 30,
	}
}

// SetListGenes configures whether every gene is described after the summary.
func (tw *TextWriter) SetListGenes(list bool) {
	tw.listGenes = list
}

// SetPreview sets how many bases of each sequence end are shown.
func (tw *TextWriter) SetPreview(n int) {
	tw.preview = n
}

// WriteHeader is a no-op; each report carries its own banner.
func (tw *TextWriter) WriteHeader() error {
	return nil
}

// Write renders one report.
func (tw *TextWriter) Write(s *analyze.Summary) error {
	p := tw.p
	w := tw.w

	p.Fprint(w, "\n"+banner+"\n")

	p.Fprint(w, "SEQUENCE INFORMATION:\n"+rule)
	if s.Origin != "" {
		p.Fprintf(w, "  Source:           %s\n", s.Origin)
	}
	p.Fprintf(w, "  Preview:          %s\n", sequence.Abbreviate(s.Sequence, tw.preview))
	p.Fprintf(w, "  Total Length:     %d base pairs\n", s.Length)
	p.Fprintf(w, "  GC Content:       %.2f%%\n", s.GCContent)

	n := s.Nucleotides
	p.Fprint(w, "\n  Nucleotide Composition:\n")
	p.Fprintf(w, "    A: %7d (%.2f%%)    T: %7d (%.2f%%)\n", n.A, s.Percent(n.A), n.T, s.Percent(n.T))
	p.Fprintf(w, "    G: %7d (%.2f%%)    C: %7d (%.2f%%)\n", n.G, s.Percent(n.G), n.C, s.Percent(n.C))

	p.Fprint(w, "\nCODON STATISTICS:\n"+rule)
	p.Fprintf(w, "  Start Codons (%s): %d occurrences\n", gene.StartCodon, s.Codons[gene.StartCodon])
	p.Fprint(w, "  Stop Codons:\n")
	for _, c := range gene.StopCodons {
		p.Fprintf(w, "    %s: %d occurrences\n", c, s.Codons[c])
	}

	p.Fprint(w, "\nGENE ANALYSIS:\n"+rule)
	p.Fprintf(w, "  Total Genes Found: %d\n", len(s.Genes))
	if s.Longest != nil {
		p.Fprintf(w, "  Coding Regions:    %.2f%% of sequence\n", s.CodingPercent)
		p.Fprintf(w, "  Average Gene Size: %.0f base pairs\n", s.AverageGeneSize)
		p.Fprintf(w, "  Longest Gene:     %d base pairs (at position %d)\n", s.Longest.Len(), s.Longest.Start)
	}

	if tw.listGenes {
		for _, g := range s.Genes {
			if _, err := w.WriteString("\n" + g.Describe()); err != nil {
				return err
			}
		}
	}

	_, err := w.WriteString("\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}
