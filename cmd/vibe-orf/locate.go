package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/vibe-orf/internal/analyze"
	"github.com/inodb/vibe-orf/internal/output"
)

func newLocateCmd(a *app) *cobra.Command {
	var (
		text string
		pos  int
	)

	cmd := &cobra.Command{
		Use:   "locate --pos N [flags] [file]",
		Short: "List the genes covering a base position",
		Long: `List every gene whose span (start codon through stop codon) covers the
0-based position given by --pos, in start order. Overlapping and nested
genes are all reported.`,
		Example: `  vibe-orf locate --pos 1200 genome.fa
  vibe-orf locate --pos 4 --sequence ATGATGAAATAG`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("pos") {
				return usageErrorf("--pos is required")
			}
			seq, err := loadSequence(text, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if pos < 0 || pos >= seq.Len() {
				return usageErrorf("position %d is outside the sequence (0-%d)", pos, seq.Len()-1)
			}

			an := analyze.ForSequence(seq)
			an.SetLogger(a.logger)
			genes := an.GenesAt(pos)
			a.logger.Debug("located genes",
				zap.String("origin", seq.Origin()),
				zap.Int("pos", pos),
				zap.Int("genes", len(genes)))

			w := output.NewTabWriter(cmd.OutOrStdout())
			if err := w.WriteHeader(); err != nil {
				return err
			}
			for _, g := range genes {
				if err := w.WriteGene(seq.Origin(), g); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&text, "sequence", "s", "", "Use this sequence text instead of a file")
	cmd.Flags().IntVarP(&pos, "pos", "p", 0, "0-based base position")

	return cmd
}
