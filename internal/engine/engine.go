// Package engine recomputes and applies the overlay whenever the settings or
// the active theme change.
package engine

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/darkslide/internal/colour"
	"github.com/jmylchreest/darkslide/internal/logging"
	"github.com/jmylchreest/darkslide/internal/overlay"
	"github.com/jmylchreest/darkslide/internal/settings"
	"github.com/jmylchreest/darkslide/internal/theme"
)

// Sampler returns the live background colour of a theme as a CSS colour
// string.
type Sampler interface {
	SampleBackground(themeID string) string
}

// Renderer applies computed values. Opacity 0 must render as no overlay and
// contrast 100 as no filter.
type Renderer interface {
	ApplyOverlay(c colour.RGB, opacity float64)
	ApplyContrastFilter(percent int)
	// Refresh asks the host to redraw controls that show per-theme values.
	Refresh()
}

// Host is everything the engine needs from its environment.
type Host interface {
	theme.Source
	Sampler
	Renderer
}

// Saver persists settings without blocking. *settings.Persister satisfies it.
type Saver interface {
	Submit(settings.Settings)
}

// State is the outcome of one recompute.
type State struct {
	Theme      string                 `json:"theme"`
	Brightness int                    `json:"brightness"`
	Contrast   int                    `json:"contrast"`
	Sample     string                 `json:"sample"`
	Base       *colour.RGB            `json:"base,omitempty"`
	Overlay    overlay.Result         `json:"overlay"`
	Filter     overlay.ContrastResult `json:"filter"`
}

// Engine ties the settings store, theme tracker and host together.
// All methods must be called from a single goroutine.
type Engine struct {
	store   *settings.Store
	host    Host
	saver   Saver
	logger  hclog.Logger
	tracker *theme.Tracker
}

// Option configures an Engine.
type Option func(*Engine)

// WithSaver persists every user edit through s.
func WithSaver(s Saver) Option {
	return func(e *Engine) { e.saver = s }
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an engine. Call Start before handling events.
func New(store *settings.Store, host Host, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		host:  host,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.OrNull(e.logger).Named("engine")
	return e
}

// Start queries the active theme and applies its settings.
func (e *Engine) Start() State {
	e.tracker = theme.NewTracker(e.host)
	e.logger.Debug("started", "theme", e.tracker.Current())
	return e.apply(e.tracker.Current())
}

// Stop resets the rendering to a no-op and discards the tracked theme.
func (e *Engine) Stop() {
	e.host.ApplyOverlay(overlay.None.Colour, 0)
	e.host.ApplyContrastFilter(overlay.DefaultContrast)
	e.tracker = nil
	e.logger.Debug("stopped")
}

// Theme returns the tracked theme id.
func (e *Engine) Theme() string {
	if e.tracker == nil {
		return e.host.ActiveThemeID()
	}
	return e.tracker.Current()
}

// latestTheme re-queries the host and returns the active theme id. A switch
// that has not been notified yet is handled here.
func (e *Engine) latestTheme() string {
	if e.tracker == nil {
		return e.host.ActiveThemeID()
	}
	if e.tracker.Refresh() {
		e.logger.Info("theme changed", "theme", e.tracker.Current())
		e.host.Refresh()
	}
	return e.tracker.Current()
}

// HandleThemeChanged handles a theme-change notification. The host is
// re-queried; if the id is unchanged nothing happens. Returns whether a
// recompute ran.
func (e *Engine) HandleThemeChanged() bool {
	if e.tracker == nil {
		e.Start()
		e.host.Refresh()
		return true
	}
	if !e.tracker.Refresh() {
		e.logger.Trace("theme notification ignored", "theme", e.tracker.Current())
		return false
	}

	e.logger.Info("theme changed", "theme", e.tracker.Current())
	e.apply(e.tracker.Current())
	e.host.Refresh()
	return true
}

// HandleSettingsChanged recomputes after the store was modified elsewhere.
func (e *Engine) HandleSettingsChanged() State {
	return e.apply(e.latestTheme())
}

// SetBrightness stores a brightness for the current theme, applies it and
// queues the settings for saving.
func (e *Engine) SetBrightness(value int) State {
	id := e.latestTheme()
	e.store.SetBrightness(id, value)
	return e.commit(id)
}

// SetContrast stores a contrast for the current theme, applies it and queues
// the settings for saving.
func (e *Engine) SetContrast(value int) State {
	id := e.latestTheme()
	e.store.SetContrast(id, value)
	return e.commit(id)
}

// ResetCurrentTheme removes the current theme's overrides.
func (e *Engine) ResetCurrentTheme() State {
	id := e.latestTheme()
	e.store.ResetTheme(id)
	return e.commit(id)
}

func (e *Engine) commit(id string) State {
	st := e.apply(id)
	if e.saver != nil {
		e.saver.Submit(e.store.Snapshot())
	}
	return st
}

// Apply computes the overlay and filter from the latest theme and settings
// and hands them to the host.
func (e *Engine) Apply() State {
	return e.apply(e.latestTheme())
}

func (e *Engine) apply(id string) State {
	st := e.compute(id)
	e.host.ApplyOverlay(st.Overlay.Colour, st.Overlay.Opacity)
	e.host.ApplyContrastFilter(st.Filter.Percent)
	e.logger.Debug("applied",
		"theme", st.Theme,
		"brightness", st.Brightness,
		"contrast", st.Contrast,
		"sample", st.Sample,
		"overlay", st.Overlay.CSS(),
		"filter", st.Filter.Filter())
	return st
}

// Compute returns what Apply would render without touching the host's
// renderer.
func (e *Engine) Compute() State {
	return e.compute(e.Theme())
}

func (e *Engine) compute(id string) State {
	st := State{
		Theme:      id,
		Brightness: e.store.Brightness(id),
		Contrast:   e.store.Contrast(id),
	}

	st.Sample = e.host.SampleBackground(id)
	if base, ok := colour.ParseColour(st.Sample); ok {
		st.Base = &base
	} else if st.Brightness != 0 {
		e.logger.Debug("background sample unusable, using fallback overlay", "sample", st.Sample)
	}

	st.Overlay = overlay.Compute(st.Brightness, st.Base)
	st.Filter = overlay.Contrast(st.Contrast)
	return st
}
