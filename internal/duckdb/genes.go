package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/vibe-orf/internal/analyze"
	"github.com/inodb/vibe-orf/internal/gene"
)

// SequenceRecord is the stored summary of one analyzed sequence.
type SequenceRecord struct {
	ID          string
	Origin      string
	Length      int
	GCContent   float64
	Nucleotides analyze.Counts
	GeneCount   int
	AnalyzedAt  time.Time
}

// GeneRecord is a stored gene with the sequence it belongs to.
type GeneRecord struct {
	SequenceID string
	Gene       gene.Gene
}

// WriteSummary stores a summary and its genes, replacing any earlier result
// for the same sequence content. Returns the sequence ID.
func (s *Store) WriteSummary(sum *analyze.Summary) (string, error) {
	id := SequenceID(sum.Sequence)

	if err := s.ClearSequence(id); err != nil {
		return "", err
	}

	n := sum.Nucleotides
	if _, err := s.db.Exec(`INSERT INTO sequences VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, sum.Origin, int64(sum.Length), sum.GCContent,
		int64(n.A), int64(n.C), int64(n.G), int64(n.T),
		int64(len(sum.Genes)), time.Now().UTC(),
	); err != nil {
		return "", fmt.Errorf("insert sequence: %w", err)
	}

	if err := s.appendGenes(id, sum.Genes); err != nil {
		return "", err
	}
	return id, nil
}

// appendGenes batch-inserts genes using the Appender API.
func (s *Store) appendGenes(id string, genes []gene.Gene) error {
	if len(genes) == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "genes")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, g := range genes {
		if err := appender.AppendRow(
			id, int64(g.Start), int64(g.Stop), g.StartCodon, g.StopCodon,
			int64(g.Len()), g.GCContent(), g.Sequence,
		); err != nil {
			return fmt.Errorf("append gene: %w", err)
		}
	}

	return appender.Flush()
}

// ClearSequence removes a sequence and its genes.
func (s *Store) ClearSequence(id string) error {
	if _, err := s.db.Exec("DELETE FROM genes WHERE sequence_id=?", id); err != nil {
		return fmt.Errorf("delete genes: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sequences WHERE id=?", id); err != nil {
		return fmt.Errorf("delete sequence: %w", err)
	}
	return nil
}

// HasSequence reports whether a sequence with this ID has been stored.
func (s *Store) HasSequence(id string) (bool, error) {
	var count int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM sequences WHERE id=?", id).Scan(&count); err != nil {
		return false, fmt.Errorf("count sequences: %w", err)
	}
	return count > 0, nil
}

const sequenceColumns = `id, origin, length, gc_content, count_a, count_c, count_g, count_t, gene_count, analyzed_at`

// LookupSequence returns the stored summary for id, or nil if absent.
func (s *Store) LookupSequence(id string) (*SequenceRecord, error) {
	row := s.db.QueryRow(`SELECT `+sequenceColumns+` FROM sequences WHERE id=?`, id)
	rec, err := scanSequence(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Sequences returns every stored sequence ordered by origin.
func (s *Store) Sequences() ([]SequenceRecord, error) {
	rows, err := s.db.Query(`SELECT ` + sequenceColumns + ` FROM sequences ORDER BY origin, id`)
	if err != nil {
		return nil, fmt.Errorf("query sequences: %w", err)
	}
	defer rows.Close()

	var recs []SequenceRecord
	for rows.Next() {
		rec, err := scanSequence(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sequences: %w", err)
	}
	return recs, nil
}

func scanSequence(row interface{ Scan(dest ...any) error }) (*SequenceRecord, error) {
	var rec SequenceRecord
	if err := row.Scan(
		&rec.ID, &rec.Origin, &rec.Length, &rec.GCContent,
		&rec.Nucleotides.A, &rec.Nucleotides.C, &rec.Nucleotides.G, &rec.Nucleotides.T,
		&rec.GeneCount, &rec.AnalyzedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan sequence: %w", err)
	}
	return &rec, nil
}

const geneColumns = `sequence_id, start_index, stop_index, start_codon, stop_codon, sequence`

// LookupGenes returns the stored genes of a sequence in start order.
func (s *Store) LookupGenes(id string) ([]gene.Gene, error) {
	rows, err := s.db.Query(`SELECT `+geneColumns+`
		FROM genes WHERE sequence_id=? ORDER BY start_index`, id)
	if err != nil {
		return nil, fmt.Errorf("query genes: %w", err)
	}
	defer rows.Close()

	recs, err := scanGeneRecords(rows)
	if err != nil {
		return nil, err
	}
	genes := make([]gene.Gene, len(recs))
	for i, r := range recs {
		genes[i] = r.Gene
	}
	return genes, nil
}

// SearchByStopCodon returns stored genes ending in the given stop codon.
func (s *Store) SearchByStopCodon(codon string) ([]GeneRecord, error) {
	rows, err := s.db.Query(`SELECT `+geneColumns+`
		FROM genes WHERE stop_codon=? ORDER BY sequence_id, start_index`, codon)
	if err != nil {
		return nil, fmt.Errorf("query by stop codon: %w", err)
	}
	defer rows.Close()

	return scanGeneRecords(rows)
}

// SearchByLength returns stored genes of at least minLength bases, longest first.
func (s *Store) SearchByLength(minLength int) ([]GeneRecord, error) {
	rows, err := s.db.Query(`SELECT `+geneColumns+`
		FROM genes WHERE length>=? ORDER BY length DESC, sequence_id, start_index`, int64(minLength))
	if err != nil {
		return nil, fmt.Errorf("query by length: %w", err)
	}
	defer rows.Close()

	return scanGeneRecords(rows)
}

// scanGeneRecords scans rows into GeneRecord slices.
func scanGeneRecords(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]GeneRecord, error) {
	var results []GeneRecord
	for rows.Next() {
		var r GeneRecord
		g := &r.Gene
		if err := rows.Scan(&r.SequenceID, &g.Start, &g.Stop, &g.StartCodon, &g.StopCodon, &g.Sequence); err != nil {
			return nil, fmt.Errorf("scan gene: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genes: %w", err)
	}
	return results, nil
}
