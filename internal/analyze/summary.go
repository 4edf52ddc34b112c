package analyze

import "github.com/inodb/vibe-orf/internal/gene"

// Summary is the structured result of analyzing one sequence.
// Report formatting is left to SummaryWriter implementations.
type Summary struct {
	Origin          string
	Sequence        string
	Length          int
	GCContent       float64
	Nucleotides     Counts
	Codons          map[string]int
	Genes           []gene.Gene
	Longest         *gene.Gene // nil when no gene was found
	CodingPercent   float64    // sum of gene lengths over sequence length, overlaps counted
	AverageGeneSize float64
}

// Summarize computes every statistic exposed by the analyzer.
func (a *Analyzer) Summarize() *Summary {
	s := &Summary{
		Origin:      a.origin,
		Sequence:    a.seq,
		Length:      len(a.seq),
		GCContent:   a.GCContent(),
		Nucleotides: a.NucleotideCounts(),
		Codons:      a.CodonStatistics(),
		Genes:       a.FindGenes(),
	}

	if longest, ok := a.LongestGene(); ok {
		s.Longest = &longest
	}

	if len(s.Genes) > 0 {
		total := 0
		for _, g := range s.Genes {
			total += g.Len()
		}
		s.CodingPercent = float64(total) * 100 / float64(s.Length)
		s.AverageGeneSize = float64(total) / float64(len(s.Genes))
	}

	return s
}

// Percent returns count as a percentage of the sequence length.
func (s *Summary) Percent(count int) float64 {
	if s.Length == 0 {
		return 0
	}
	return float64(count) * 100 / float64(s.Length)
}

// SummaryWriter defines the interface for writing analysis results.
type SummaryWriter interface {
	WriteHeader() error
	Write(s *Summary) error
	Flush() error
}
