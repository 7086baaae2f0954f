// Package config resolves run settings from defaults, an optional .env file,
// the process environment and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/colourcount/internal/report"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "COLOURCOUNT_"

// DefaultEnvFile is the dotenv file consulted by the CLI.
const DefaultEnvFile = ".env"

// Flag names bound by ApplyFlags.
const (
	FlagFormat  = "format"
	FlagPreview = "preview"
	FlagVerbose = "verbose"
)

// PreviewMode controls when colour swatches are printed.
type PreviewMode string

const (
	PreviewNever  PreviewMode = "never"
	PreviewAuto   PreviewMode = "auto" // only when stdout is a terminal
	PreviewAlways PreviewMode = "always"
)

// ValidPreviewModes returns all supported preview modes.
func ValidPreviewModes() []PreviewMode {
	return []PreviewMode{PreviewNever, PreviewAuto, PreviewAlways}
}

// Config holds the resolved settings for one run.
type Config struct {
	Format  report.Format
	Preview PreviewMode
	Verbose bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:  report.FormatText,
		Preview: PreviewNever,
	}
}

// Load returns the defaults overridden by COLOURCOUNT_FORMAT,
// COLOURCOUNT_PREVIEW and COLOURCOUNT_VERBOSE. Values are taken from the
// process environment first and from envFile second. A missing envFile is
// not an error; pass "" to skip it.
func Load(envFile string) (Config, error) {
	cfg := Default()

	var fileVars map[string]string
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return cfg, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	lookup := func(name string) (string, bool) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			return v, true
		}
		v, ok := fileVars[EnvPrefix+name]
		return v, ok
	}

	if v, ok := lookup("FORMAT"); ok {
		if err := cfg.setFormat(v); err != nil {
			return cfg, fmt.Errorf("%sFORMAT: %w", EnvPrefix, err)
		}
	}
	if v, ok := lookup("PREVIEW"); ok {
		if err := cfg.setPreview(v); err != nil {
			return cfg, fmt.Errorf("%sPREVIEW: %w", EnvPrefix, err)
		}
	}
	if v, ok := lookup("VERBOSE"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%sVERBOSE: invalid boolean %q", EnvPrefix, v)
		}
		cfg.Verbose = b
	}

	return cfg, nil
}

// RegisterFlags adds the flags read by ApplyFlags.
// A bare --preview means "auto".
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP(FlagFormat, "f", string(report.FormatText), "output format (text, table, json)")
	flags.String(FlagPreview, string(PreviewNever), "show colour swatches (never, auto, always)")
	flags.Lookup(FlagPreview).NoOptDefVal = string(PreviewAuto)
	flags.BoolP(FlagVerbose, "v", false, "enable verbose output")
}

// ApplyFlags overrides settings with the flags explicitly set on the command line.
func (c *Config) ApplyFlags(flags *pflag.FlagSet) error {
	if flags.Changed(FlagFormat) {
		v, err := flags.GetString(FlagFormat)
		if err != nil {
			return err
		}
		if err := c.setFormat(v); err != nil {
			return err
		}
	}
	if flags.Changed(FlagPreview) {
		v, err := flags.GetString(FlagPreview)
		if err != nil {
			return err
		}
		if err := c.setPreview(v); err != nil {
			return err
		}
	}
	if flags.Changed(FlagVerbose) {
		v, err := flags.GetBool(FlagVerbose)
		if err != nil {
			return err
		}
		c.Verbose = v
	}
	return nil
}

func (c *Config) setFormat(v string) error {
	f, err := report.ParseFormat(v)
	if err != nil {
		return err
	}
	c.Format = f
	return nil
}

func (c *Config) setPreview(v string) error {
	mode := PreviewMode(strings.ToLower(strings.TrimSpace(v)))
	if !slices.Contains(ValidPreviewModes(), mode) {
		return fmt.Errorf("invalid preview mode: %s (valid: never, auto, always)", v)
	}
	c.Preview = mode
	return nil
}
