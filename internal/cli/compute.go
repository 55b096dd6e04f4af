package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/darkslide/internal/colour"
	"github.com/jmylchreest/darkslide/internal/engine"
	"github.com/jmylchreest/darkslide/internal/overlay"
)

func newComputeCmd(opts *rootOptions) *cobra.Command {
	var (
		brightness int
		contrast   int
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Calculate an overlay without touching a vault",
		Long: `Calculate the overlay colour, opacity and contrast filter for a brightness
and contrast level. No files are read or written.

Examples:
  # Darken a light grey background fully
  darkslide compute --brightness -100 --background "#c8c8c8"

  # Brighten with no sample (white overlay) and raise contrast
  darkslide compute --brightness 30 --contrast 130`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := engine.State{
				Theme:      "",
				Brightness: brightness,
				Contrast:   overlay.ClampContrast(contrast),
				Sample:     opts.background,
			}
			if opts.background != "" {
				base, ok := colour.ParseColour(opts.background)
				if !ok {
					return fmt.Errorf("invalid --background %q: expected #RGB, #RRGGBB, rgb() or rgba()", opts.background)
				}
				st.Base = &base
			}
			st.Overlay = overlay.Compute(st.Brightness, st.Base)
			st.Filter = overlay.Contrast(contrast)

			preview, err := opts.showPreview(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return printState(cmd.OutOrStdout(), st, opts.jsonOutput, preview)
		},
	}

	cmd.Flags().IntVarP(&brightness, "brightness", "b", 0,
		fmt.Sprintf("brightness level (%d to %d, 0 = no change)", overlay.MinBrightness, overlay.MaxBrightness))
	cmd.Flags().IntVarP(&contrast, "contrast", "c", overlay.DefaultContrast,
		fmt.Sprintf("contrast level (%d to %d, 100 = no change)", overlay.MinContrast, overlay.MaxContrast))

	return cmd
}
