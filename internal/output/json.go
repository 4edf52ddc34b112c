package output

import (
	"bufio"
	"io"

	json "github.com/goccy/go-json"

	"github.com/inodb/vibe-orf/internal/analyze"
)

type jsonGene struct {
	Start      int     `json:"start"`
	Stop       int     `json:"stop"`
	StartCodon string  `json:"start_codon"`
	StopCodon  string  `json:"stop_codon"`
	Length     int     `json:"length"`
	Codons     int     `json:"codon_count"`
	GCContent  float64 `json:"gc_content"`
	Sequence   string  `json:"sequence"`
}

type jsonSummary struct {
	Origin          string         `json:"origin,omitempty"`
	Length          int            `json:"length"`
	GCContent       float64        `json:"gc_content"`
	Nucleotides     map[string]int `json:"nucleotides"`
	Codons          map[string]int `json:"codons"`
	Genes           []jsonGene     `json:"genes"`
	Longest         *jsonGene      `json:"longest_gene"`
	CodingPercent   float64        `json:"coding_percent"`
	AverageGeneSize float64        `json:"average_gene_size"`
}

// JSONWriter writes one JSON object per sequence, newline-delimited.
type JSONWriter struct {
	w   *bufio.Writer
	enc *json.Encoder
}

// NewJSONWriter creates a JSON Lines writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	bw := bufio.NewWriter(w)
	return &JSONWriter{w: bw, enc: json.NewEncoder(bw)}
}

// WriteHeader is a no-op for JSON Lines.
func (jw *JSONWriter) WriteHeader() error {
	return nil
}

// Write encodes one summary.
func (jw *JSONWriter) Write(s *analyze.Summary) error {
	out := jsonSummary{
		Origin:    s.Origin,
		Length:    s.Length,
		GCContent: s.GCContent,
		Nucleotides: map[string]int{
			"A": s.Nucleotides.A,
			"C": s.Nucleotides.C,
			"G": s.Nucleotides.G,
			"T": s.Nucleotides.T,
		},
		Codons:          s.Codons,
		Genes:           make([]jsonGene, 0, len(s.Genes)),
		CodingPercent:   s.CodingPercent,
		AverageGeneSize: s.AverageGeneSize,
	}
	for _, g := range s.Genes {
		out.Genes = append(out.Genes, jsonGene{
			Start:      g.Start,
			Stop:       g.Stop,
			StartCodon: g.StartCodon,
			StopCodon:  g.StopCodon,
			Length:     g.Len(),
			Codons:     g.CodonCount(),
			GCContent:  g.GCContent(),
			Sequence:   g.Sequence,
		})
	}
	if s.Longest != nil {
		for i := range out.Genes {
			if out.Genes[i].Start == s.Longest.Start {
				out.Longest = &out.Genes[i]
				break
			}
		}
	}
	return jw.enc.Encode(out)
}

// Flush flushes any buffered data to the underlying writer.
func (jw *JSONWriter) Flush() error {
	return jw.w.Flush()
}
