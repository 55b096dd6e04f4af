// Package theme tracks the host's active theme id.
package theme

// Source reports the id of the theme the host is currently showing.
// "" and "default" denote the built-in theme.
type Source interface {
	ActiveThemeID() string
}

// SourceFunc adapts a function to Source.
type SourceFunc func() string

// ActiveThemeID calls f.
func (f SourceFunc) ActiveThemeID() string {
	return f()
}

// Tracker remembers the last theme id seen so redundant change notifications
// can be ignored. It is not safe for concurrent use.
type Tracker struct {
	source  Source
	current string
}

// NewTracker queries source once to establish the initial theme.
func NewTracker(source Source) *Tracker {
	return &Tracker{
		source:  source,
		current: source.ActiveThemeID(),
	}
}

// Current returns the last theme id observed.
func (t *Tracker) Current() string {
	return t.current
}

// Refresh re-queries the source and reports whether the theme changed.
func (t *Tracker) Refresh() bool {
	id := t.source.ActiveThemeID()
	if id == t.current {
		return false
	}
	t.current = id
	return true
}
