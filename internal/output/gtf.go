package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/vibe-orf/internal/analyze"
	"github.com/inodb/vibe-orf/internal/gene"
)

const gtfSource = "vibe-orf"

// GTFWriter writes genes as GTF feature lines. Coordinates are 1-based and
// inclusive of the stop codon, all genes are on the + strand in frame 0.
// Gene IDs are "<seqname>.orf_<n>", numbered per sequence in start order.
type GTFWriter struct {
	w *bufio.Writer
}

// NewGTFWriter creates a new GTF writer.
func NewGTFWriter(w io.Writer) *GTFWriter {
	return &GTFWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the GTF version pragma.
func (gw *GTFWriter) WriteHeader() error {
	_, err := gw.w.WriteString("##gtf-version 2.2\n")
	return err
}

// Write writes a CDS feature for every gene in the summary.
func (gw *GTFWriter) Write(s *analyze.Summary) error {
	seqname := gtfSeqname(s.Origin)
	for i, g := range s.Genes {
		if err := gw.writeFeature(seqname, i+1, g); err != nil {
			return err
		}
	}
	return nil
}

func (gw *GTFWriter) writeFeature(seqname string, n int, g gene.Gene) error {
	id := fmt.Sprintf("%s.orf_%d", seqname, n)
	attrs := fmt.Sprintf(`gene_id "%s"; transcript_id "%s"; start_codon "%s"; stop_codon "%s"; gc_content "%.2f";`,
		id, id, g.StartCodon, g.StopCodon, g.GCContent())

	values := []string{
		seqname,
		gtfSource,
		"CDS",
		strconv.Itoa(g.Start + 1),
		strconv.Itoa(g.End() + 1),
		".",
		"+",
		"0",
		attrs,
	}
	_, err := gw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (gw *GTFWriter) Flush() error {
	return gw.w.Flush()
}

// gtfSeqname derives a whitespace-free sequence name from an origin label.
func gtfSeqname(origin string) string {
	name := strings.TrimPrefix(origin, "File: ")
	if name == "" {
		return "sequence"
	}
	return strings.Join(strings.Fields(name), "_")
}
