package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-orf/internal/analyze"
	"github.com/inodb/vibe-orf/internal/duckdb"
	"github.com/inodb/vibe-orf/internal/output"
	"github.com/inodb/vibe-orf/internal/sequence"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		text       string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "analyze [flags] [file...]",
		Short: "Find genes and composition statistics",
		Long: `Find open reading frames and report GC content, nucleotide counts and
start/stop codon occurrences. Each input file holds one sequence; lines
starting with '>' or ';' are ignored. Use '-' to read from stdin.`,
		Example: `  vibe-orf analyze genome.fa
  vibe-orf analyze --sequence ATGAAATAG
  vibe-orf analyze -f tab -o genes.tsv a.fa b.fa.gz
  vibe-orf analyze --db results.duckdb sample.fa
  cat sample.fa | vibe-orf analyze -`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			items, err := analyzeItems(text, args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if outputFile != "" {
				f := &lazyFile{path: outputFile}
				defer func() {
					if cerr := f.Close(); err == nil {
						err = cerr
					}
				}()
				out = f
			}

			writer, err := reportWriter(viper.GetString("output.format"), out)
			if err != nil {
				return err
			}

			if dbPath := viper.GetString("store.path"); dbPath != "" {
				store, err := duckdb.Open(dbPath)
				if err != nil {
					return err
				}
				defer store.Close()
				a.logger.Debug("persisting results", zap.String("store", dbPath))

				dbWriter := duckdb.NewWriter(store)
				dbWriter.SetLogger(a.logger)
				writer = output.NewMultiWriter(writer, dbWriter)
			}

			if err := analyze.AnalyzeAll(items, writer, viper.GetInt("analyze.workers"), a.logger); err != nil {
				return err
			}
			if f, ok := out.(*lazyFile); ok {
				return f.create()
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&text, "sequence", "s", "", "Analyze this sequence text instead of a file")
	flags.StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	flags.StringP("format", "f", "text", "Output format: text, tab, json, gtf")
	flags.Bool("genes", false, "List every gene in the text report")
	flags.Int("preview", 30, "Bases shown from each end of the sequence in the text report")
	flags.IntP("workers", "j", 0, "Parallel workers for multiple inputs (0 = number of CPUs)")
	flags.String("db", "", "DuckDB file to store results in")

	viper.BindPFlag("output.format", flags.Lookup("format"))
	viper.BindPFlag("output.genes", flags.Lookup("genes"))
	viper.BindPFlag("output.preview", flags.Lookup("preview"))
	viper.BindPFlag("analyze.workers", flags.Lookup("workers"))
	viper.BindPFlag("store.path", flags.Lookup("db"))

	return cmd
}

func analyzeItems(text string, args []string, stdin io.Reader) ([]analyze.WorkItem, error) {
	if text != "" || len(args) == 0 || (len(args) == 1 && args[0] == stdinPath) {
		seq, err := loadSequence(text, args, stdin)
		if err != nil {
			return nil, err
		}
		return []analyze.WorkItem{{Sequence: seq}}, nil
	}

	items := make([]analyze.WorkItem, 0, len(args))
	for _, path := range args {
		if path == stdinPath {
			return nil, usageErrorf("stdin cannot be combined with other inputs")
		}
		if err := sequence.CheckFile(path); err != nil {
			return nil, err
		}
		items = append(items, analyze.WorkItem{Path: path})
	}
	return items, nil
}

// reportWriter creates the writer for an output format name.
func reportWriter(format string, out io.Writer) (analyze.SummaryWriter, error) {
	switch format {
	case "text":
		w := output.NewTextWriter(out)
		w.SetListGenes(viper.GetBool("output.genes"))
		w.SetPreview(viper.GetInt("output.preview"))
		return w, nil
	case "tab":
		return output.NewTabWriter(out), nil
	case "json":
		return output.NewJSONWriter(out), nil
	case "gtf":
		return output.NewGTFWriter(out), nil
	default:
		return nil, usageErrorf("unknown output format %q", format)
	}
}


// lazyFile defers creating path until output is written or the run succeeds.
type lazyFile struct {
	path string
	f    *os.File
}

func (l *lazyFile) create() error {
	if l.f != nil {
		return nil
	}
	f, err := os.Create(l.path)
	if err != nil {
		return err
	}
	l.f = f
	return nil
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if err := l.create(); err != nil {
		return 0, err
	}
	return l.f.Write(p)
}

func (l *lazyFile) Close() error {
	if l.f == nil {
		return nil
	}
	return l.f.Close()
}
