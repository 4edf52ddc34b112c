package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/vibe-orf/internal/analyze"
	"github.com/inodb/vibe-orf/internal/fasta"
	"github.com/inodb/vibe-orf/internal/sequence"
)

func newRevCompCmd(a *app) *cobra.Command {
	var (
		text       string
		outputFile string
		header     string
	)

	cmd := &cobra.Command{
		Use:   "revcomp [flags] [file]",
		Short: "Print or save the reverse complement of a sequence",
		Example: `  vibe-orf revcomp --sequence ATGAAATAG
  vibe-orf revcomp -o rc.fa --header "sample rc" sample.fa`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := loadSequence(text, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			rc := analyze.ForSequence(seq).ReverseComplement()
			a.logger.Debug("reverse complemented", zap.String("origin", seq.Origin()), zap.Int("length", len(rc)))

			if header == "" {
				header = "reverse complement of " + seq.Origin()
			}

			if outputFile == "" {
				w := fasta.NewWriter(cmd.OutOrStdout())
				if err := w.Write(header, rc); err != nil {
					return err
				}
				return w.Flush()
			}

			rcSeq, err := sequence.New(rc, header)
			if err != nil {
				return fmt.Errorf("reverse complement: %w", err)
			}
			if err := rcSeq.SaveFASTA(outputFile, header); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d bases to %s\n", rcSeq.Len(), outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "sequence", "s", "", "Use this sequence text instead of a file")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write FASTA to this file (default: stdout)")
	cmd.Flags().StringVar(&header, "header", "", "FASTA header (default: derived from the input)")

	return cmd
}
