// Package config is for run settings that are unmarshalled from Viper
// (see: internal/cli). Values come from flags, GENETAG_* environment
// variables, an optional config file and the defaults below, in that order.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"genetag/internal/fasta"
	"genetag/internal/rewrite"
)

// EnvPrefix is the prefix of environment overrides, e.g. GENETAG_OUT.
const EnvPrefix = "GENETAG"

// Viper keys.
const (
	KeyIn        = "in"
	KeyOut       = "out"
	KeyPrefix    = "prefix"
	KeyDelimiter = "delimiter"
	KeyWidth     = "width"
	KeyLogLevel  = "log-level"
	KeyQuiet     = "quiet"
	KeyVerbose   = "verbose"
)

// Config is the root-level settings struct.
type Config struct {
	// input FASTA path, "-" for stdin
	In string `mapstructure:"in"`
	// output FASTA path, "-" for stdout
	Out string `mapstructure:"out"`

	// prepended to the gene identifier in each description
	Prefix string `mapstructure:"prefix"`
	// the identifier is cut at the first occurrence of this
	Delimiter string `mapstructure:"delimiter"`

	// residues per output line
	Width int `mapstructure:"width"`

	LogLevel string `mapstructure:"log-level"`
	Quiet    bool   `mapstructure:"quiet"`
	Verbose  bool   `mapstructure:"verbose"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyIn, "")
	v.SetDefault(KeyOut, "")
	v.SetDefault(KeyPrefix, rewrite.DefaultPrefix)
	v.SetDefault(KeyDelimiter, rewrite.DefaultDelimiter)
	v.SetDefault(KeyWidth, fasta.DefaultWidth)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyVerbose, false)
}

// New returns a Viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges settings from a config file. An empty path looks for
// genetag.{yaml,yml,json,toml} in the working directory and is not an error
// when none exists.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}
	v.SetConfigName("genetag")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if errors.As(err, &nf) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode config: %w", err)
	}
	return c, c.Validate()
}

// Validate applies the invariants every run relies on.
func (c Config) Validate() error {
	if c.In == "" {
		return errors.New("an input FASTA is required (--in or first argument)")
	}
	if c.Out == "" {
		return errors.New("an output FASTA is required (--out or second argument)")
	}
	if fasta.SameFile(c.In, c.Out) {
		return fmt.Errorf("input %q and output %q are the same file", c.In, c.Out)
	}
	if c.Delimiter == "" {
		return errors.New("--delimiter must not be empty")
	}
	if c.Width < 1 {
		return errors.New("--width must be ≥ 1")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel accepts debug | info | warn | error.
func ParseLevel(s string) (string, error) {
	switch l := strings.ToLower(strings.TrimSpace(s)); l {
	case "debug", "info", "warn", "error":
		return l, nil
	case "":
		return "info", nil
	}
	return "", fmt.Errorf("invalid --log-level %q (want debug | info | warn | error)", s)
}

// FileOptions converts c into rewrite options. c must be valid.
func (c Config) FileOptions() rewrite.FileOptions {
	return rewrite.FileOptions{
		Input:   c.In,
		Output:  c.Out,
		Width:   c.Width,
		Options: rewrite.Options{Prefix: c.Prefix, Delimiter: c.Delimiter},
	}
}
