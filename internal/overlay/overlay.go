// Package overlay computes the translucent overlay and contrast filter that
// lighten, darken or re-contrast a theme without editing it.
//
// Darkening scales the sampled background towards black and raises opacity
// with magnitude. Brightening uses the multiplicative strategy: the sampled
// background is scaled up by 1 + 1.5*(brightness/100) so that a light overlay
// keeps the theme's hue instead of laying plain white over the content.
package overlay

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jmylchreest/darkslide/internal/colour"
)

// Brightness bounds accepted by the user interface. Values outside the range
// are not rejected; the formulas saturate.
const (
	MinBrightness = -200
	MaxBrightness = 100
)

const (
	// darkFactor is the channel multiplier applied to the base colour when
	// darkening by up to 100.
	darkFactor = 0.3
	// darkFactorDecay shrinks darkFactor per unit past 100, reaching 0 at 200.
	darkFactorDecay = 0.003
	// brightGain is the extra multiplier reached at brightness 100 (2.5x).
	brightGain = 1.5
)

// Result describes a semi-transparent layer of Colour composited over the
// background with the given Opacity (0-1).
type Result struct {
	Colour  colour.RGB `json:"colour"`
	Opacity float64    `json:"opacity"`
}

// None is the fully transparent overlay.
var None = Result{Colour: colour.Black, Opacity: 0}

// IsNoop reports whether the overlay is visually absent.
func (r Result) IsNoop() bool {
	return r.Opacity <= 0
}

// CSS renders the overlay as a CSS rgba() value.
func (r Result) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r.Colour.R, r.Colour.G, r.Colour.B,
		strconv.FormatFloat(r.Opacity, 'f', -1, 64))
}

// Compute returns the overlay for a brightness level. base is the sampled
// background colour, or nil when sampling failed, in which case the overlay
// is black (darkening) or white (brightening) with the same opacity.
func Compute(brightness int, base *colour.RGB) Result {
	if brightness == 0 {
		return None
	}

	factor := Factor(brightness)

	if brightness < 0 {
		c := colour.Black
		if base != nil {
			c = base.Scale(factor)
		}
		return Result{Colour: c, Opacity: darkOpacity(magnitude(brightness))}
	}

	c := colour.White
	if base != nil {
		c = base.Scale(factor)
	}
	return Result{Colour: c, Opacity: math.Min(1, float64(brightness)/100)}
}

// Factor returns the multiplier applied to the base colour for brightness.
// It is 1 for zero brightness.
func Factor(brightness int) float64 {
	switch {
	case brightness < 0:
		abs := magnitude(brightness)
		if abs <= 100 {
			return darkFactor
		}
		return math.Max(0, darkFactor-(abs-100)*darkFactorDecay)
	case brightness > 0:
		return 1 + (float64(brightness)/100)*brightGain
	default:
		return 1
	}
}

// darkOpacity grows linearly to 1 at magnitude 100 and stays capped there.
func darkOpacity(abs float64) float64 {
	if abs <= 100 {
		return abs / 100
	}
	return math.Min(1, 1+(abs-100)/200)
}

// magnitude is |brightness| in float64; negating math.MinInt overflows int.
func magnitude(brightness int) float64 {
	return math.Abs(float64(brightness))
}
