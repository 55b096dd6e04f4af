package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jmylchreest/darkslide/internal/colour"
	"github.com/jmylchreest/darkslide/internal/engine"
)

const swatchWidth = 10

// printState writes a computed state as text or JSON.
func printState(w io.Writer, st engine.State, asJSON, preview bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	themeName := st.Theme
	if themeName == "" {
		themeName = "(built-in)"
	}

	fmt.Fprintf(w, "Theme:       %s\n", themeName)
	fmt.Fprintf(w, "Brightness:  %d\n", st.Brightness)
	fmt.Fprintf(w, "Contrast:    %d\n", st.Contrast)
	if st.Base != nil {
		fmt.Fprintf(w, "Background:  %s (%s)\n", st.Base.Hex(), st.Sample)
	} else if st.Brightness == 0 {
		fmt.Fprintln(w, "Background:  unavailable")
	} else {
		fmt.Fprintf(w, "Background:  unavailable, using %s fallback\n", fallbackName(st))
	}
	fmt.Fprintf(w, "Overlay:     %s\n", st.Overlay.CSS())
	fmt.Fprintf(w, "Filter:      %s\n", st.Filter.Filter())

	if preview {
		base := effectiveBase(st)
		fmt.Fprintf(w, "\n%s %s %s\n",
			colour.SwatchWithText(base, "before", swatchWidth),
			colour.SwatchWithText(st.Overlay.Colour, "overlay", swatchWidth),
			colour.SwatchWithText(colour.Blend(base, st.Overlay.Colour, st.Overlay.Opacity), "after", swatchWidth))
	}
	return nil
}

// effectiveBase is the colour the overlay is blended over in previews.
// Without a sample, light overlays are previewed on black and dark ones on white.
func effectiveBase(st engine.State) colour.RGB {
	if st.Base != nil {
		return *st.Base
	}
	if st.Brightness > 0 {
		return colour.Black
	}
	return colour.White
}

func fallbackName(st engine.State) string {
	if st.Brightness > 0 {
		return "white"
	}
	return "black"
}
