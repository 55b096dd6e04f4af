// Package cli provides the command-line interface for darkslide.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/darkslide/internal/host"
	"github.com/jmylchreest/darkslide/internal/logging"
	"github.com/jmylchreest/darkslide/internal/version"
)

// EnvVault names the environment variable that provides the default vault.
const EnvVault = "DARKSLIDE_VAULT"

// Preview modes for the --preview flag.
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

// rootOptions holds the persistent flags shared by all commands.
type rootOptions struct {
	vault      string
	configDir  string
	background string
	verbose    bool
	quiet      bool
	preview    string
	jsonOutput bool
}

// NewRootCmd builds the darkslide command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "darkslide",
		Short: "Per-theme brightness and contrast overlays",
		Long: `darkslide lightens, darkens or re-contrasts an application theme without
editing it.

It blends a translucent overlay derived from the active theme's background
colour, stores brightness and contrast per theme, and writes the result as a
CSS snippet that the application's style engine picks up.`,
		Version:      version.Get().Version,
		SilenceUsage: true,
	}

	addGlobalFlags(rootCmd.PersistentFlags(), opts)
	rootCmd.SetVersionTemplate(version.Get().String() + "\n")

	rootCmd.AddCommand(newVersionCmd(opts))
	rootCmd.AddCommand(newComputeCmd(opts))
	rootCmd.AddCommand(newApplyCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newSetCmd(opts))
	rootCmd.AddCommand(newResetCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// addGlobalFlags registers the flags every command understands.
func addGlobalFlags(fs *pflag.FlagSet, opts *rootOptions) {
	defaultVault := os.Getenv(EnvVault)
	if defaultVault == "" {
		defaultVault = "."
	}

	fs.StringVar(&opts.vault, "vault", defaultVault, "vault root directory (env "+EnvVault+")")
	fs.StringVar(&opts.configDir, "config-dir", host.DefaultConfigDir, "configuration directory inside the vault")
	fs.StringVar(&opts.background, "background", "", "background colour to blend from instead of sampling the theme")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	fs.StringVar(&opts.preview, "preview", previewAuto, "show colour swatches (auto, always, never)")
	fs.BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")
}

// logger builds the logger for a command invocation.
func (o *rootOptions) logger(cmd *cobra.Command) hclog.Logger {
	return logging.New(logging.Options{
		Verbose: o.verbose,
		Quiet:   o.quiet,
		Output:  cmd.ErrOrStderr(),
	})
}

// showPreview decides whether to print ANSI swatches to w.
func (o *rootOptions) showPreview(w io.Writer) (bool, error) {
	switch o.preview {
	case previewAlways:
		return true, nil
	case previewNever:
		return false, nil
	case previewAuto, "":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid --preview %q (want %s, %s or %s)", o.preview, previewAuto, previewAlways, previewNever)
	}
}

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if opts.jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Fprintln(cmd.OutOrStdout(), info)
			return nil
		},
	}
}
