package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/vibe-orf/internal/duckdb"
	"github.com/inodb/vibe-orf/internal/gene"
	"github.com/inodb/vibe-orf/internal/output"
)

func newGenesCmd(a *app) *cobra.Command {
	var (
		dbPath    string
		id        string
		stop      string
		minLength int
	)

	cmd := &cobra.Command{
		Use:   "genes",
		Short: "Query genes stored by 'analyze --db'",
		Example: `  vibe-orf genes --db results.duckdb
  vibe-orf genes --db results.duckdb --stop TAG
  vibe-orf genes --db results.duckdb --min-length 300
  vibe-orf genes --db results.duckdb --id 3f2a9c0d11e4b765 --stop TAA`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := storePath(dbPath)
			if err != nil {
				return err
			}
			stop = strings.ToUpper(stop)
			if stop != "" && !slices.Contains(gene.StopCodons[:], stop) {
				return usageErrorf("unknown stop codon %q (want TAA, TAG or TGA)", stop)
			}

			store, err := duckdb.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			var recs []duckdb.GeneRecord
			switch {
			case id != "":
				ok, err := store.HasSequence(id)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("no stored sequence with ID %q", id)
				}
				genes, err := store.LookupGenes(id)
				if err != nil {
					return err
				}
				for _, g := range genes {
					recs = append(recs, duckdb.GeneRecord{SequenceID: id, Gene: g})
				}
			case stop != "":
				recs, err = store.SearchByStopCodon(stop)
			default:
				recs, err = store.SearchByLength(minLength)
			}
			if err != nil {
				return err
			}

			// Filters combine: --id and --stop narrow each other, --min-length applies to both.
			recs = slices.DeleteFunc(recs, func(r duckdb.GeneRecord) bool {
				return r.Gene.Len() < minLength || (stop != "" && r.Gene.StopCodon != stop)
			})
			a.logger.Debug("queried genes", zap.String("store", store.Path()), zap.Int("count", len(recs)))

			w := output.NewTabWriter(cmd.OutOrStdout())
			if err := w.WriteHeader(); err != nil {
				return err
			}
			for _, r := range recs {
				if err := w.WriteGene(r.SequenceID, r.Gene); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB file written by 'analyze --db' (default: store.path)")
	cmd.Flags().StringVar(&id, "id", "", "Only genes of this sequence ID")
	cmd.Flags().StringVar(&stop, "stop", "", "Only genes ending in this stop codon")
	cmd.Flags().IntVar(&minLength, "min-length", 0, "Only genes of at least this many bases")

	return cmd
}
