// Package main provides the vibe-orf command-line tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/inodb/vibe-orf/internal/sequence"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const configName = ".vibe-orf"

// app carries state shared by subcommands once flags are parsed.
type app struct {
	cfgFile string
	verbose bool
	logger  *zap.Logger
}

// usageError marks errors caused by bad arguments or flags.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// usageArgs wraps a positional-argument validator so failures exit with ExitUsage.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{logger: zap.NewNop()}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	a.logger.Sync()
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	var ue *usageError
	switch {
	case errors.As(err, &ue):
		fmt.Fprintf(stderr, "Run 'vibe-orf --help' for usage.\n")
		return ExitUsage
	case errors.Is(err, sequence.ErrNotFound):
		fmt.Fprintf(stderr, "Hint: Check that the file path is correct\n")
	case errors.Is(err, sequence.ErrInvalidInput):
		fmt.Fprintf(stderr, "Hint: Sequences may only contain A, T, G and C\n")
	}
	return ExitError
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "vibe-orf",
		Short: "Open reading frame finder",
		Long: `vibe-orf finds candidate genes (ATG through the first in-frame stop codon)
in a nucleotide sequence and reports composition statistics.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(a.cfgFile); err != nil {
				return err
			}
			level := viper.GetString("log.level")
			if a.verbose {
				level = "debug"
			}
			logger, err := newLogger(level, cmd.ErrOrStderr())
			if err != nil {
				return &usageError{err: err}
			}
			a.logger = logger
			return nil
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (default: ~/"+configName+".yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	viper.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newAnalyzeCmd(a))
	root.AddCommand(newRevCompCmd(a))
	root.AddCommand(newNormalizeCmd(a))
	root.AddCommand(newLocateCmd(a))
	root.AddCommand(newGenesCmd(a))
	root.AddCommand(newSequencesCmd(a))
	root.AddCommand(newConfigCmd())

	return root
}

// initConfig loads defaults, the config file and VIBE_ORF_* environment variables.
func initConfig(cfgFile string) error {
	viper.SetDefault("output.format", "text")
	viper.SetDefault("output.genes", false)
	viper.SetDefault("output.preview", 30)
	viper.SetDefault("analyze.workers", 0)
	viper.SetDefault("store.path", "")
	viper.SetDefault("log.level", "info")

	viper.SetEnvPrefix("VIBE_ORF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// defaultConfigPath returns the config file written by "config set".
func defaultConfigPath() (string, error) {
	if f := viper.ConfigFileUsed(); f != "" {
		return f, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, configName+".yaml"), nil
}

// newLogger builds a console logger on w at the given level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(zapcore.AddSync(w)), lvl)
	return zap.New(core), nil
}
