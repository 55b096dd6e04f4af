package colour

import "math"

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// IsDark reports whether text on this colour should be light.
func IsDark(rgb RGB) bool {
	return Luminance(rgb) < 0.5
}

// Blend composites top over base with the given opacity (0-1) and returns the
// visible colour. Opacity outside [0, 1] is clamped.
func Blend(base, top RGB, opacity float64) RGB {
	a := math.Max(0, math.Min(1, opacity))
	mix := func(b, t uint8) uint8 {
		return uint8(math.Round(float64(b)*(1-a) + float64(t)*a))
	}
	return RGB{
		R: mix(base.R, top.R),
		G: mix(base.G, top.G),
		B: mix(base.B, top.B),
	}
}
