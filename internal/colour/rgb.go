// Package colour provides the RGB colour model and CSS colour parsing used to
// sample a theme's background.
package colour

import (
	"fmt"
	"math"

	"github.com/jmylchreest/darkslide/internal/security"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Black and White are the fallback overlay colours used when no background
// sample is available.
var (
	Black = RGB{R: 0, G: 0, B: 0}
	White = RGB{R: 255, G: 255, B: 255}
)

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Scale multiplies each channel by factor. Results are floored and clamped
// to [0, 255].
func (rgb RGB) Scale(factor float64) RGB {
	return RGB{
		R: scaleChannel(rgb.R, factor),
		G: scaleChannel(rgb.G, factor),
		B: scaleChannel(rgb.B, factor),
	}
}

func scaleChannel(c uint8, factor float64) uint8 {
	v := math.Floor(float64(c) * factor)
	if math.IsNaN(v) {
		return 0
	}
	// Clamp before converting so huge factors cannot overflow int.
	v = math.Max(0, math.Min(255, v))
	return security.SafeUint8(int(v))
}
