package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/darkslide/internal/engine"
	"github.com/jmylchreest/darkslide/internal/overlay"
)

func newSetCmd(opts *rootOptions) *cobra.Command {
	var (
		themeID    string
		brightness int
		contrast   int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store brightness or contrast for a theme",
		Long: `Store a brightness and/or contrast level for the active theme, or for the
theme named by --theme, then re-apply the overlay for the active theme.

The value also becomes the global default for themes without their own.

Examples:
  # Darken the active theme
  darkslide set --brightness -60

  # Raise contrast for a theme that is not active yet
  darkslide set --theme Minimal --contrast 130`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			setB := cmd.Flags().Changed("brightness")
			setC := cmd.Flags().Changed("contrast")
			if !setB && !setC {
				return fmt.Errorf("nothing to set: pass --brightness and/or --contrast")
			}

			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, s.close()) }()

			var st engine.State
			if themeID == "" || themeID == s.vault.ActiveThemeID() {
				st = s.engine.Start()
				if setB {
					st = s.engine.SetBrightness(brightness)
				}
				if setC {
					st = s.engine.SetContrast(contrast)
				}
			} else {
				if setB {
					s.store.SetBrightness(themeID, brightness)
				}
				if setC {
					s.store.SetContrast(themeID, contrast)
				}
				s.persister.Submit(s.store.Snapshot())
				st = s.engine.Start()
			}

			s.logger.Debug("settings updated", "theme", themeID, "brightness", brightness, "contrast", contrast)

			preview, err := opts.showPreview(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return printState(cmd.OutOrStdout(), st, opts.jsonOutput, preview)
		},
	}

	cmd.Flags().StringVar(&themeID, "theme", "", "theme id to configure (default: active theme)")
	cmd.Flags().IntVarP(&brightness, "brightness", "b", 0,
		fmt.Sprintf("brightness level (%d to %d, 0 = no change)", overlay.MinBrightness, overlay.MaxBrightness))
	cmd.Flags().IntVarP(&contrast, "contrast", "c", overlay.DefaultContrast,
		fmt.Sprintf("contrast level (%d to %d, 100 = no change)", overlay.MinContrast, overlay.MaxContrast))

	return cmd
}

func newResetCmd(opts *rootOptions) *cobra.Command {
	var themeID string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove a theme's own brightness and contrast",
		Long: `Remove the brightness and contrast stored for the active theme, or for the
theme named by --theme. The theme falls back to the global values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, s.close()) }()

			var st engine.State
			if themeID == "" || themeID == s.vault.ActiveThemeID() {
				s.engine.Start()
				st = s.engine.ResetCurrentTheme()
			} else {
				if !s.store.HasOverride(themeID) {
					s.logger.Warn("theme has no stored values", "theme", themeID)
				}
				s.store.ResetTheme(themeID)
				s.persister.Submit(s.store.Snapshot())
				st = s.engine.Start()
			}

			preview, err := opts.showPreview(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return printState(cmd.OutOrStdout(), st, opts.jsonOutput, preview)
		},
	}

	cmd.Flags().StringVar(&themeID, "theme", "", "theme id to reset (default: active theme)")
	return cmd
}
