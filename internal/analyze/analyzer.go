// Package analyze finds open reading frames in a nucleotide sequence and
// derives composition statistics from it.
package analyze

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/inodb/vibe-orf/internal/gene"
	"github.com/inodb/vibe-orf/internal/sequence"
)

// Analyzer scans one sequence. The gene list is computed on first use and
// reused afterwards; an Analyzer is safe for concurrent use.
type Analyzer struct {
	seq    string
	origin string
	logger *zap.Logger

	once  sync.Once
	genes []gene.Gene
	index *gene.Index
}

// New creates an analyzer for seq. The text is uppercased but not validated;
// use sequence.New to reject bad input first.
func New(seq string) *Analyzer {
	return &Analyzer{
		seq:    strings.ToUpper(seq),
		logger: zap.NewNop(),
	}
}

// ForSequence creates an analyzer for a validated sequence and keeps its origin.
func ForSequence(s *sequence.Sequence) *Analyzer {
	a := New(s.Bases())
	a.origin = s.Origin()
	return a
}

// SetLogger sets the logger for debug messages.
func (a *Analyzer) SetLogger(l *zap.Logger) {
	a.logger = l
}

// Sequence returns the analyzed text.
func (a *Analyzer) Sequence() string {
	return a.seq
}

// Origin returns the provenance label, empty for analyzers built with New.
func (a *Analyzer) Origin() string {
	return a.origin
}

// FindGenes returns every gene in the sequence sorted by start position.
// Each ATG yields at most one gene, ending at the first in-frame stop codon,
// so genes may overlap or share a stop codon. The returned slice is a copy.
func (a *Analyzer) FindGenes() []gene.Gene {
	a.scan()
	out := make([]gene.Gene, len(a.genes))
	copy(out, a.genes)
	return out
}

// GenesAt returns the genes covering base position pos, in start order.
func (a *Analyzer) GenesAt(pos int) []gene.Gene {
	a.scan()
	return a.index.At(pos)
}

func (a *Analyzer) scan() {
	a.once.Do(func() {
		starts := findCodonPositions(a.seq, gene.StartCodon)

		genes := make([]gene.Gene, 0, len(starts))
		for _, s := range starts {
			if g, ok := a.geneFromStart(s); ok {
				genes = append(genes, g)
			}
		}

		sort.SliceStable(genes, func(i, j int) bool {
			return genes[i].Start < genes[j].Start
		})

		a.genes = genes
		a.index = gene.NewIndex(genes)

		a.logger.Debug("scanned sequence",
			zap.String("origin", a.origin),
			zap.Int("length", len(a.seq)),
			zap.Int("start_codons", len(starts)),
			zap.Int("genes", len(genes)))
	})
}

// geneFromStart reads whole codons after the start codon at start and stops
// at the first stop codon. The frame is relative to start, not to position 0.
func (a *Analyzer) geneFromStart(start int) (gene.Gene, bool) {
	for pos := start + 3; pos+3 <= len(a.seq); pos += 3 {
		codon := a.seq[pos : pos+3]
		if gene.IsStopCodon(codon) {
			return gene.Gene{
				Start:      start,
				Stop:       pos,
				StartCodon: gene.StartCodon,
				StopCodon:  codon,
				Sequence:   a.seq[start : pos+3],
			}, true
		}
	}
	return gene.Gene{}, false
}

// findCodonPositions returns every index where codon occurs, overlapping
// occurrences included.
func findCodonPositions(seq, codon string) []int {
	var positions []int
	for from := 0; from < len(seq); {
		i := strings.Index(seq[from:], codon)
		if i < 0 {
			break
		}
		positions = append(positions, from+i)
		from += i + 1
	}
	return positions
}

// GCContent returns the percentage of G and C bases. NaN for an empty sequence.
func (a *Analyzer) GCContent() float64 {
	return gene.GCContent(a.seq)
}

// Counts holds per-nucleotide occurrence counts.
type Counts struct {
	A, C, G, T int
}

// Total returns the sum of the four counts.
func (c Counts) Total() int {
	return c.A + c.C + c.G + c.T
}

// Get returns the count for base, or 0 for a byte outside the alphabet.
func (c Counts) Get(base byte) int {
	switch base {
	case 'A':
		return c.A
	case 'C':
		return c.C
	case 'G':
		return c.G
	case 'T':
		return c.T
	}
	return 0
}

// NucleotideCounts counts each of A, C, G and T.
func (a *Analyzer) NucleotideCounts() Counts {
	var c Counts
	for i := 0; i < len(a.seq); i++ {
		switch a.seq[i] {
		case 'A':
			c.A++
		case 'C':
			c.C++
		case 'G':
			c.G++
		case 'T':
			c.T++
		}
	}
	return c
}

// ReverseComplement returns the reverse complement of the sequence.
func (a *Analyzer) ReverseComplement() string {
	return gene.ReverseComplement(a.seq)
}

// LongestGene returns the longest gene. Among genes of equal length the one
// with the lowest start wins. ok is false when no gene was found.
func (a *Analyzer) LongestGene() (g gene.Gene, ok bool) {
	a.scan()
	for _, candidate := range a.genes {
		if !ok || candidate.Len() > g.Len() {
			g, ok = candidate, true
		}
	}
	return g, ok
}

// CodonStatistics counts literal occurrences of the start and stop codons
// anywhere in the sequence, ignoring reading frames.
func (a *Analyzer) CodonStatistics() map[string]int {
	stats := make(map[string]int, 1+len(gene.StopCodons))
	stats[gene.StartCodon] = len(findCodonPositions(a.seq, gene.StartCodon))
	for _, c := range gene.StopCodons {
		stats[c] = len(findCodonPositions(a.seq, c))
	}
	return stats
}
