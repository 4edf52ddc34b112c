package duckdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-orf/internal/analyze"
	"github.com/inodb/vibe-orf/internal/sequence"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func summaryFor(t *testing.T, text, origin string) *analyze.Summary {
	t.Helper()
	seq, err := sequence.New(text, origin)
	require.NoError(t, err)
	return analyze.ForSequence(seq).Summarize()
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.Empty(t, s.Path())

	recs, err := s.Sequences()
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "orf.duckdb")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopen keeps the schema.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, path, s.Path())
}

func TestSequenceID(t *testing.T) {
	assert.Equal(t, SequenceID("ATGC"), SequenceID("ATGC"))
	assert.NotEqual(t, SequenceID("ATGC"), SequenceID("ATGG"))
	assert.Len(t, SequenceID("ATGC"), 16)
}

func TestWriteAndLookup(t *testing.T) {
	s := openInMemory(t)
	sum := summaryFor(t, "ATGATGAAATAGCCC", "test.fa")

	id, err := s.WriteSummary(sum)
	require.NoError(t, err)
	assert.Equal(t, SequenceID("ATGATGAAATAGCCC"), id)

	ok, err := s.HasSequence(id)
	require.NoError(t, err)
	assert.True(t, ok)

	rec, err := s.LookupSequence(id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "test.fa", rec.Origin)
	assert.Equal(t, 15, rec.Length)
	assert.Equal(t, 2, rec.GeneCount)
	assert.Equal(t, sum.Nucleotides, rec.Nucleotides)
	assert.InDelta(t, sum.GCContent, rec.GCContent, 1e-9)
	assert.False(t, rec.AnalyzedAt.IsZero())

	genes, err := s.LookupGenes(id)
	require.NoError(t, err)
	assert.Equal(t, sum.Genes, genes)
}

func TestLookup_Missing(t *testing.T) {
	s := openInMemory(t)

	ok, err := s.HasSequence("nope")
	require.NoError(t, err)
	assert.False(t, ok)

	rec, err := s.LookupSequence("nope")
	require.NoError(t, err)
	assert.Nil(t, rec)

	genes, err := s.LookupGenes("nope")
	require.NoError(t, err)
	assert.Empty(t, genes)
}

func TestWriteSummary_ReplacesSameContent(t *testing.T) {
	s := openInMemory(t)

	_, err := s.WriteSummary(summaryFor(t, "ATGAAATAG", "first"))
	require.NoError(t, err)
	id, err := s.WriteSummary(summaryFor(t, "atg aaa tag", "second"))
	require.NoError(t, err)

	recs, err := s.Sequences()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "second", recs[0].Origin)

	genes, err := s.LookupGenes(id)
	require.NoError(t, err)
	assert.Len(t, genes, 1)
}

func TestWriteSummary_NoGenes(t *testing.T) {
	s := openInMemory(t)

	id, err := s.WriteSummary(summaryFor(t, "CCCGGG", "empty"))
	require.NoError(t, err)

	rec, err := s.LookupSequence(id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Zero(t, rec.GeneCount)
}

func TestSearchByStopCodon(t *testing.T) {
	s := openInMemory(t)

	idA, err := s.WriteSummary(summaryFor(t, "ATGAAATAG", "a"))
	require.NoError(t, err)
	_, err = s.WriteSummary(summaryFor(t, "ATGCCCTAA", "b"))
	require.NoError(t, err)

	recs, err := s.SearchByStopCodon("TAG")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, idA, recs[0].SequenceID)
	assert.Equal(t, "ATGAAATAG", recs[0].Gene.Sequence)

	recs, err = s.SearchByStopCodon("TGA")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestSearchByLength(t *testing.T) {
	s := openInMemory(t)

	_, err := s.WriteSummary(summaryFor(t, "ATGATGAAATAG", "a"))
	require.NoError(t, err)

	recs, err := s.SearchByLength(10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 0, recs[0].Gene.Start)

	recs, err = s.SearchByLength(0)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 12, recs[0].Gene.Len())
}

func TestClearSequence(t *testing.T) {
	s := openInMemory(t)

	id, err := s.WriteSummary(summaryFor(t, "ATGAAATAG", "a"))
	require.NoError(t, err)
	require.NoError(t, s.ClearSequence(id))

	ok, err := s.HasSequence(id)
	require.NoError(t, err)
	assert.False(t, ok)

	genes, err := s.LookupGenes(id)
	require.NoError(t, err)
	assert.Empty(t, genes)
}

func TestWriter(t *testing.T) {
	s := openInMemory(t)

	items := []analyze.WorkItem{}
	for _, text := range []string{"ATGAAATAG", "ATGCCCTGA"} {
		seq, err := sequence.FromString(text)
		require.NoError(t, err)
		items = append(items, analyze.WorkItem{Sequence: seq})
	}

	require.NoError(t, analyze.AnalyzeAll(items, NewWriter(s), 2, nil))

	recs, err := s.Sequences()
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}
