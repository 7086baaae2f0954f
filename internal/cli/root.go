// Package cli provides the command-line interface for colourcount.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/colourcount/internal/config"
	"github.com/jmylchreest/colourcount/internal/inifile"
	"github.com/jmylchreest/colourcount/internal/report"
	"github.com/jmylchreest/colourcount/internal/tally"
	"github.com/jmylchreest/colourcount/internal/version"
)

// NewRootCmd builds the colourcount command. Each call returns an
// independent command, so tests can execute it repeatedly.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colourcount <path>",
		Short: "Count hex colours used in a key-value config file",
		Long: `colourcount scans a key-value configuration file (INI-style themes,
lexer style sheets) for #RRGGBB colour literals and reports how often each
colour is used and by which keys.

Lines starting with ';', '#' or '[' are ignored. Files ending in .xz are
decompressed before scanning.

Colours are ordered by descending use, then alphabetically. Each colour line
is followed by the keys that reference it:

  #00FF00	2
  	1	border
  	1	foreground

Examples:
  # Count colours in a theme
  colourcount themes/Default.ini

  # Aligned table with colour swatches
  colourcount --format table --preview themes/Default.ini

  # Machine-readable output
  colourcount -f json themes/Default.ini

Environment:
  COLOURCOUNT_FORMAT, COLOURCOUNT_PREVIEW and COLOURCOUNT_VERBOSE set the
  defaults for the matching flags; they may also be placed in a .env file
  in the working directory.`,
		Version:      version.Short(),
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         runCount,
	}

	cmd.SetVersionTemplate(version.String() + "\n")
	config.RegisterFlags(cmd.Flags())

	return cmd
}

// runCount executes the root command.
func runCount(cmd *cobra.Command, args []string) error {
	// Anything but an existing regular file gets the usage line, not an error.
	if len(args) == 0 || !inifile.IsRegularFile(args[0]) {
		fmt.Fprintf(cmd.OutOrStdout(), "Usage: %s path\n", programName())
		return nil
	}
	path := args[0]

	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	data, err := inifile.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded input", "path", path, "size", humanize.Bytes(uint64(len(data))))

	t := tally.Scan(data, logger)

	out := cmd.OutOrStdout()
	opts := report.Options{
		Format:  cfg.Format,
		Preview: previewEnabled(cfg.Preview, out),
	}
	logger.Debug("writing report", "format", opts.Format, "preview", opts.Preview)

	return report.Write(out, t.Sorted(), opts)
}

// programName returns the name the program was invoked as.
func programName() string {
	if len(os.Args) > 0 && os.Args[0] != "" {
		return os.Args[0]
	}
	return "colourcount"
}

// newLogger returns a debug logger writing to w when verbose, or a silent one.
func newLogger(w io.Writer, verbose bool) hclog.Logger {
	if !verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "colourcount",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colourcount",
		Output: w,
		Level:  hclog.Debug,
	})
}

// previewEnabled resolves a preview mode against the output writer.
func previewEnabled(mode config.PreviewMode, out io.Writer) bool {
	switch mode {
	case config.PreviewAlways:
		return true
	case config.PreviewAuto:
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	default:
		return false
	}
}
