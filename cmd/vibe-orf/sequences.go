package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-orf/internal/duckdb"
	"github.com/inodb/vibe-orf/internal/output"
)

// storePath resolves the --db flag, falling back to store.path.
func storePath(flagValue string) (string, error) {
	if flagValue == "" {
		flagValue = viper.GetString("store.path")
	}
	if flagValue == "" {
		return "", usageErrorf("--db is required (or set store.path)")
	}
	return flagValue, nil
}

func newSequencesCmd(a *app) *cobra.Command {
	var (
		dbPath string
		id     string
	)

	cmd := &cobra.Command{
		Use:   "sequences",
		Short: "List sequences stored by 'analyze --db'",
		Long: `List stored sequences with their content IDs. Pass an ID to
'vibe-orf genes --id' to see the genes of one sequence.`,
		Example: `  vibe-orf sequences --db results.duckdb
  vibe-orf sequences --db results.duckdb --id 3f2a9c0d11e4b765`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := storePath(dbPath)
			if err != nil {
				return err
			}

			store, err := duckdb.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			var recs []duckdb.SequenceRecord
			if id != "" {
				rec, err := store.LookupSequence(id)
				if err != nil {
					return err
				}
				if rec == nil {
					return fmt.Errorf("no stored sequence with ID %q", id)
				}
				recs = append(recs, *rec)
			} else {
				recs, err = store.Sequences()
				if err != nil {
					return err
				}
			}
			a.logger.Debug("listed sequences", zap.String("store", store.Path()), zap.Int("count", len(recs)))

			w := output.NewSequenceTabWriter(cmd.OutOrStdout())
			if err := w.WriteHeader(); err != nil {
				return err
			}
			for _, rec := range recs {
				if err := w.WriteRecord(rec); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB file written by 'analyze --db' (default: store.path)")
	cmd.Flags().StringVar(&id, "id", "", "Only this sequence ID")

	return cmd
}
