package overlay

import "fmt"

// Contrast filter bounds. Outside this band the interface washes out or
// crushes, so raw values are clamped rather than rejected.
const (
	MinContrast     = 20
	MaxContrast     = 200
	DefaultContrast = 100
)

// ContrastResult is the percentage fed to a CSS contrast() filter.
type ContrastResult struct {
	Percent int `json:"percent"`
}

// Contrast clamps raw into [MinContrast, MaxContrast].
func Contrast(raw int) ContrastResult {
	return ContrastResult{Percent: ClampContrast(raw)}
}

// ClampContrast constrains a contrast level to the supported band.
func ClampContrast(raw int) int {
	return max(MinContrast, min(MaxContrast, raw))
}

// IsNoop reports whether the filter leaves rendering unchanged.
func (c ContrastResult) IsNoop() bool {
	return c.Percent == DefaultContrast
}

// Filter renders the result as a CSS filter function.
func (c ContrastResult) Filter() string {
	return fmt.Sprintf("contrast(%d%%)", c.Percent)
}
