// Package settings holds the persisted brightness and contrast levels.
//
// A legacy global value is overridden by a per-theme table. Writes go to both
// so that older single-value consumers keep working without a migration.
package settings

import (
	"maps"
	"slices"

	"github.com/jmylchreest/darkslide/internal/overlay"
)

// Settings is the persisted plugin state.
type Settings struct {
	// BrightnessLevel is the legacy global brightness (-200 to 100, 0 = no change).
	BrightnessLevel int `json:"brightnessLevel"`
	// PerThemeBrightness overrides BrightnessLevel for individual themes.
	PerThemeBrightness map[string]int `json:"perThemeBrightness"`
	// ContrastLevel is the legacy global contrast (20 to 200, 100 = no change).
	ContrastLevel int `json:"contrastLevel"`
	// PerThemeContrast overrides ContrastLevel for individual themes.
	PerThemeContrast map[string]int `json:"perThemeContrast"`
	// ShowStatusBar controls the quick-access control.
	ShowStatusBar bool `json:"showStatusBar"`
}

// Default returns settings for a first run.
func Default() Settings {
	return Settings{
		BrightnessLevel:    0,
		PerThemeBrightness: map[string]int{},
		ContrastLevel:      overlay.DefaultContrast,
		PerThemeContrast:   map[string]int{},
		ShowStatusBar:      true,
	}
}

// normalise fills maps missing from settings written by older versions.
func (s *Settings) normalise() {
	if s.PerThemeBrightness == nil {
		s.PerThemeBrightness = map[string]int{}
	}
	if s.PerThemeContrast == nil {
		s.PerThemeContrast = map[string]int{}
	}
}

// Clone returns a deep copy.
func (s Settings) Clone() Settings {
	c := s
	c.PerThemeBrightness = maps.Clone(s.PerThemeBrightness)
	c.PerThemeContrast = maps.Clone(s.PerThemeContrast)
	c.normalise()
	return c
}

// Store provides per-theme access to a Settings value.
// It is not safe for concurrent use.
type Store struct {
	s Settings
}

// NewStore wraps s. Missing per-theme maps are initialised.
func NewStore(s Settings) *Store {
	s.normalise()
	return &Store{s: s}
}

// Brightness returns the brightness for theme: the per-theme override if
// present, else the legacy global value.
func (st *Store) Brightness(theme string) int {
	if v, ok := st.s.PerThemeBrightness[theme]; ok {
		return v
	}
	return st.s.BrightnessLevel
}

// SetBrightness stores value for theme and as the legacy global value.
func (st *Store) SetBrightness(theme string, value int) {
	st.s.normalise()
	st.s.PerThemeBrightness[theme] = value
	st.s.BrightnessLevel = value
}

// Contrast returns the contrast for theme, falling back to the legacy global
// value, clamped to the supported band.
func (st *Store) Contrast(theme string) int {
	if v, ok := st.s.PerThemeContrast[theme]; ok {
		return overlay.ClampContrast(v)
	}
	return overlay.ClampContrast(st.s.ContrastLevel)
}

// SetContrast stores value for theme and as the legacy global value.
// Clamping happens on read.
func (st *Store) SetContrast(theme string, value int) {
	st.s.normalise()
	st.s.PerThemeContrast[theme] = value
	st.s.ContrastLevel = value
}

// ResetTheme drops both overrides for theme. The legacy values are kept.
func (st *Store) ResetTheme(theme string) {
	delete(st.s.PerThemeBrightness, theme)
	delete(st.s.PerThemeContrast, theme)
}

// HasOverride reports whether theme has its own brightness or contrast.
func (st *Store) HasOverride(theme string) bool {
	_, b := st.s.PerThemeBrightness[theme]
	_, c := st.s.PerThemeContrast[theme]
	return b || c
}

// Themes returns the sorted ids of themes with any override.
func (st *Store) Themes() []string {
	seen := maps.Clone(st.s.PerThemeBrightness)
	if seen == nil {
		seen = map[string]int{}
	}
	for k := range st.s.PerThemeContrast {
		seen[k] = 0
	}
	return slices.Sorted(maps.Keys(seen))
}

// ShowStatusBar reports whether the quick-access control is shown.
func (st *Store) ShowStatusBar() bool {
	return st.s.ShowStatusBar
}

// SetShowStatusBar toggles the quick-access control.
func (st *Store) SetShowStatusBar(show bool) {
	st.s.ShowStatusBar = show
}

// Legacy returns the global brightness and contrast levels as stored.
func (st *Store) Legacy() (brightness, contrast int) {
	return st.s.BrightnessLevel, st.s.ContrastLevel
}

// Snapshot returns a deep copy suitable for handing to a persister.
func (st *Store) Snapshot() Settings {
	return st.s.Clone()
}
