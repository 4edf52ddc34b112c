// Package gene defines open reading frames found by the analyzer and the
// codon helpers used to find them.
package gene

import (
	"fmt"
	"strings"
)

// Gene is an open reading frame: a start codon, whole codons, and the first
// in-frame stop codon. Positions are 0-based offsets into the source sequence.
type Gene struct {
	Start      int    // first base of the start codon
	Stop       int    // first base of the stop codon
	StartCodon string // always "ATG"
	StopCodon  string // TAA, TAG or TGA
	Sequence   string // start codon through stop codon inclusive
}

// Len returns the length of the gene in bases. Always a multiple of 3.
func (g Gene) Len() int {
	return len(g.Sequence)
}

// End returns the position of the last base of the stop codon.
func (g Gene) End() int {
	return g.Stop + 2
}

// CodonCount returns the number of codons including start and stop.
func (g Gene) CodonCount() int {
	return g.Len() / 3
}

// GCContent returns the GC percentage of the gene sequence.
func (g Gene) GCContent() float64 {
	return GCContent(g.Sequence)
}

// Protein translates the gene, ending with '*' for the stop codon.
func (g Gene) Protein() string {
	return Translate(g.Sequence)
}

// Contains reports whether pos lies within the gene, stop codon included.
func (g Gene) Contains(pos int) bool {
	return pos >= g.Start && pos <= g.End()
}

func (g Gene) String() string {
	return fmt.Sprintf("Gene[%d-%d] %s...%s (%d bp, %.1f%% GC)",
		g.Start, g.End(), g.StartCodon, g.StopCodon, g.Len(), g.GCContent())
}

const (
	describeFull   = 60
	describePrefix = 30
	describeSuffix = 27
	describeRule   = "═══════════════════════════════════════════════════════════════"
)

// Describe returns a multi-line description of the gene. Bodies longer than
// 60 bases are shortened around the middle.
func (g Gene) Describe() string {
	var sb strings.Builder
	sb.WriteString(describeRule + "\n")
	fmt.Fprintf(&sb, "  Gene Position: %d - %d\n", g.Start, g.End())
	fmt.Fprintf(&sb, "  Start Codon:   %s (at position %d)\n", g.StartCodon, g.Start)
	fmt.Fprintf(&sb, "  Stop Codon:    %s (at position %d)\n", g.StopCodon, g.Stop)
	fmt.Fprintf(&sb, "  Length:        %d base pairs (%d codons)\n", g.Len(), g.CodonCount())
	fmt.Fprintf(&sb, "  GC Content:    %.2f%%\n", g.GCContent())
	sb.WriteString("  Sequence:      ")
	if g.Len() <= describeFull {
		sb.WriteString(g.Sequence)
	} else {
		sb.WriteString(g.Sequence[:describePrefix] + "..." + g.Sequence[g.Len()-describeSuffix:])
	}
	sb.WriteString("\n" + describeRule + "\n")
	return sb.String()
}
