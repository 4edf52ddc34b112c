package gene

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateCodon(t *testing.T) {
	tests := []struct {
		name  string
		codon string
		want  byte
	}{
		{"ATG -> Met (start)", "ATG", 'M'},
		{"GGT -> Gly", "GGT", 'G'},
		{"AAA -> Lys", "AAA", 'K'},
		{"TAA -> Stop", "TAA", '*'},
		{"TAG -> Stop", "TAG", '*'},
		{"TGA -> Stop", "TGA", '*'},
		{"too short", "AT", 'X'},
		{"too long", "ATGG", 'X'},
		{"lowercase", "atg", 'X'},
		{"empty", "", 'X'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, string(tt.want), string(TranslateCodon(tt.codon)))
		})
	}
}

func TestStopAndStartCodons(t *testing.T) {
	for _, c := range StopCodons {
		assert.True(t, IsStopCodon(c), c)
		assert.False(t, IsStartCodon(c), c)
	}
	assert.True(t, IsStartCodon("ATG"))
	assert.False(t, IsStopCodon("ATG"))
	assert.False(t, IsStopCodon("TGG"))
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "MK*", Translate("ATGAAATAG"))
	assert.Equal(t, "MK", Translate("ATGAAATA"), "partial codon dropped")
	assert.Equal(t, "", Translate(""))
}

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{"ATGC", "GCAT"},
		{"A", "T"},
		{"ATAT", "ATAT"},
		{"AAAA", "TTTT"},
		{"GCGC", "GCGC"},
		{"ATGAAATAG", "CTATTTCAT"},
		{"", ""},
		{"ANG", "CNT"},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			got := ReverseComplement(tt.seq)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.seq, ReverseComplement(got), "involution")
		})
	}
}

func TestGCContent(t *testing.T) {
	assert.InDelta(t, 100.0, GCContent("GCGC"), 1e-9)
	assert.InDelta(t, 50.0, GCContent("ATGC"), 1e-9)
	assert.InDelta(t, 0.0, GCContent("ATAT"), 1e-9)
	assert.True(t, math.IsNaN(GCContent("")))
}

func TestGene_Derived(t *testing.T) {
	g := Gene{Start: 0, Stop: 6, StartCodon: "ATG", StopCodon: "TAG", Sequence: "ATGAAATAG"}

	assert.Equal(t, 9, g.Len())
	assert.Equal(t, 3, g.CodonCount())
	assert.Equal(t, 8, g.End())
	assert.InDelta(t, 200.0/9, g.GCContent(), 1e-9)
	assert.Equal(t, "MK*", g.Protein())
	assert.True(t, g.Contains(0))
	assert.True(t, g.Contains(8))
	assert.False(t, g.Contains(9))
}

func TestGene_String(t *testing.T) {
	g := Gene{Start: 3, Stop: 9, StartCodon: "ATG", StopCodon: "TAG", Sequence: "ATGAAATAG"}
	assert.Equal(t, "Gene[3-11] ATG...TAG (9 bp, 22.2% GC)", g.String())
}

func TestGene_Describe(t *testing.T) {
	short := Gene{Start: 0, Stop: 6, StartCodon: "ATG", StopCodon: "TAA", Sequence: "ATGCCCTAA"}
	desc := short.Describe()
	assert.Contains(t, desc, "Gene Position: 0 - 8")
	assert.Contains(t, desc, "Stop Codon:    TAA (at position 6)")
	assert.Contains(t, desc, "Length:        9 base pairs (3 codons)")
	assert.Contains(t, desc, "Sequence:      ATGCCCTAA\n")

	body := "ATG" + strings.Repeat("GCA", 30) + "TGA"
	long := Gene{Start: 0, Stop: len(body) - 3, StartCodon: "ATG", StopCodon: "TGA", Sequence: body}
	want := body[:30] + "..." + body[len(body)-27:]
	assert.Contains(t, long.Describe(), "Sequence:      "+want+"\n")
}

func startsOf(genes []Gene) []int {
	var out []int
	for _, g := range genes {
		out = append(out, g.Start)
	}
	return out
}

func TestIndex_Empty(t *testing.T) {
	x := NewIndex(nil)
	assert.Equal(t, 0, x.Len())
	assert.Empty(t, x.At(10))
}

func TestIndex_Nested(t *testing.T) {
	genes := []Gene{
		{Start: 0, Stop: 9, Sequence: strings.Repeat("A", 12)},
		{Start: 3, Stop: 9, Sequence: strings.Repeat("A", 9)},
		{Start: 20, Stop: 23, Sequence: strings.Repeat("A", 6)},
	}
	x := NewIndex(genes)

	assert.Equal(t, []int{0}, startsOf(x.At(1)))
	assert.Equal(t, []int{0, 3}, startsOf(x.At(5)))
	assert.Equal(t, []int{0, 3}, startsOf(x.At(11)), "end inclusive")
	assert.Empty(t, x.At(12))
	assert.Equal(t, []int{20}, startsOf(x.At(25)))
	assert.Empty(t, x.At(26))
}

func TestIndex_LongGeneBeforeShortOne(t *testing.T) {
	genes := []Gene{
		{Start: 50, Stop: 57, Sequence: strings.Repeat("A", 10)},
		{Start: 0, Stop: 97, Sequence: strings.Repeat("A", 100)},
	}
	x := NewIndex(genes)

	assert.Equal(t, []int{0}, startsOf(x.At(80)))
	assert.Equal(t, []int{0, 50}, startsOf(x.At(55)))
}
