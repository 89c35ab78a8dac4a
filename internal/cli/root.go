// Package cli is for command line interactions with genetag.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"genetag/internal/config"
	"genetag/internal/version"
)

// RunFunc receives the merged, validated configuration.
type RunFunc func(cmd *cobra.Command, c config.Config) error

// UsageError marks errors caused by how the command was invoked.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// IsUsage reports whether err stems from bad flags, arguments or settings.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

func usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// NewRootCommand builds the genetag command. Flags are bound to v so that
// flags beat GENETAG_* environment variables, which beat the config file.
func NewRootCommand(v *viper.Viper, run RunFunc) *cobra.Command {
	var (
		configPath string
		examples   bool
	)

	cmd := &cobra.Command{
		Use:   "genetag [flags] [INPUT [OUTPUT]]",
		Short: "Tag FASTA records with a gene identifier derived from the record ID",
		Long: `genetag rewrites the description of every record in a FASTA file to
"gene:<G>", where <G> is the record identifier up to its first '.'
(the whole identifier when it has none). Identifiers and sequences are
copied unchanged and records keep their order.

  >LjG123.1 chromosome 1     becomes     >LjG123.1 gene:LjG123`,
		Example: `  genetag Lotus_japonicus.fa Lotus_japonicus_corrected.fa
  genetag -i proteins.fa.gz -o - --prefix locus= | head`,
		Version:       version.Version,
		Args:          maxArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if examples {
				PrintExamples(cmd.OutOrStdout(), cmd.Name())
				return nil
			}
			if err := config.ReadFile(v, configPath); err != nil {
				return &UsageError{Err: err}
			}
			if err := positionals(cmd.Flags(), v, args); err != nil {
				return err
			}
			c, err := config.Load(v)
			if err != nil {
				return &UsageError{Err: err}
			}
			return run(cmd, c)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	f := cmd.Flags()
	f.StringP(config.KeyIn, "i", "", "input FASTA ('-' = stdin; gzip is detected)")
	f.StringP(config.KeyOut, "o", "", "output FASTA ('-' = stdout)")
	f.String(config.KeyPrefix, "gene:", "description prefix")
	f.String(config.KeyDelimiter, ".", "identifier is cut at the first occurrence of this")
	f.IntP(config.KeyWidth, "w", 60, "residues per output line")
	f.String(config.KeyLogLevel, "info", "log level: debug | info | warn | error")
	f.BoolP(config.KeyQuiet, "q", false, "only log errors")
	f.Bool(config.KeyVerbose, false, "log every rewritten record")
	f.StringVar(&configPath, "config", "", "config file (default ./genetag.yaml if present)")
	f.BoolVar(&examples, "examples", false, "print quickstart examples and exit")

	for _, key := range []string{
		config.KeyIn, config.KeyOut, config.KeyPrefix, config.KeyDelimiter,
		config.KeyWidth, config.KeyLogLevel,
		config.KeyQuiet, config.KeyVerbose,
	} {
		_ = v.BindPFlag(key, f.Lookup(key))
	}
	return cmd
}

func maxArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > n {
			return usagef("accepts at most %d arg(s), received %d", n, len(args))
		}
		return nil
	}
}

// positionals maps INPUT and OUTPUT onto --in and --out.
func positionals(f *pflag.FlagSet, v *viper.Viper, args []string) error {
	keys := []string{config.KeyIn, config.KeyOut}
	for i, arg := range args {
		if f.Changed(keys[i]) {
			return usagef("%s given both as --%s and as argument %d", keys[i], keys[i], i+1)
		}
		v.Set(keys[i], arg)
	}
	return nil
}
