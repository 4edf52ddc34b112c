package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/vibe-orf/internal/fasta"
)

func newNormalizeCmd(a *app) *cobra.Command {
	var (
		text       string
		outputFile string
		header     string
	)

	cmd := &cobra.Command{
		Use:   "normalize [flags] [file]",
		Short: "Validate a sequence and rewrite it as FASTA",
		Long: `Strip whitespace, digits, '-' and '_', check that only A, T, G and C remain,
and write the uppercase sequence as FASTA wrapped at 80 columns.`,
		Example: `  vibe-orf normalize -o clean.fa --header sample messy.txt
  vibe-orf normalize --sequence "atg aaa tag"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := loadSequence(text, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if header == "" {
				header = seq.Origin()
			}

			a.logger.Debug("normalized sequence",
				zap.String("origin", seq.Origin()),
				zap.String("preview", seq.Preview(10)),
				zap.Int("length", seq.Len()))

			if outputFile == "" {
				w := fasta.NewWriter(cmd.OutOrStdout())
				if err := w.Write(header, seq.Bases()); err != nil {
					return err
				}
				return w.Flush()
			}

			if err := seq.SaveFASTA(outputFile, header); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s to %s\n", seq, outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "sequence", "s", "", "Use this sequence text instead of a file")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write FASTA to this file (default: stdout)")
	cmd.Flags().StringVar(&header, "header", "", "FASTA header (default: the input's origin)")

	return cmd
}
