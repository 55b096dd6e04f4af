package settings

import (
	"slices"
	"testing"
)

// TestBrightnessFallback tests per-theme override, legacy value, then zero.
func TestBrightnessFallback(t *testing.T) {
	st := NewStore(Default())

	if got := st.Brightness("Minimal"); got != 0 {
		t.Errorf("Brightness on fresh store = %d, want 0", got)
	}

	legacy := NewStore(Settings{BrightnessLevel: -40})
	if got := legacy.Brightness("dark-theme"); got != -40 {
		t.Errorf("Brightness with legacy only = %d, want -40", got)
	}
	if got := legacy.Brightness("default"); got != legacy.Brightness("other") {
		t.Errorf("Unset themes should share the legacy value, got %d", got)
	}
}

// TestSetBrightnessDualWrite tests that a set updates the theme and the legacy value.
func TestSetBrightnessDualWrite(t *testing.T) {
	st := NewStore(Default())
	st.SetBrightness("Minimal", -80)
	st.SetBrightness("Things", 25)

	if got := st.Brightness("Minimal"); got != -80 {
		t.Errorf("Brightness(Minimal) = %d, want -80", got)
	}
	if got := st.Brightness("Things"); got != 25 {
		t.Errorf("Brightness(Things) = %d, want 25", got)
	}
	// Never-configured themes follow the last value written.
	if got := st.Brightness("default"); got != 25 {
		t.Errorf("Brightness(default) = %d, want legacy 25", got)
	}
	if b, _ := st.Legacy(); b != 25 {
		t.Errorf("legacy brightness = %d, want 25", b)
	}
}

func TestSetBrightnessLeavesOtherThemes(t *testing.T) {
	st := NewStore(Default())
	st.SetBrightness("a", 10)
	st.SetBrightness("b", -10)
	st.SetBrightness("a", 50)

	if got := st.Brightness("b"); got != -10 {
		t.Errorf("Brightness(b) = %d, want -10", got)
	}
}

func TestContrast(t *testing.T) {
	st := NewStore(Default())
	if got := st.Contrast("any"); got != 100 {
		t.Errorf("Contrast on fresh store = %d, want 100", got)
	}

	st.SetContrast("Minimal", 150)
	if got := st.Contrast("Minimal"); got != 150 {
		t.Errorf("Contrast(Minimal) = %d, want 150", got)
	}
	if got := st.Contrast("other"); got != 150 {
		t.Errorf("Contrast(other) = %d, want legacy 150", got)
	}
}

// TestContrastClampedOnRead tests that out-of-band stored values are clamped when read, not written.
func TestContrastClampedOnRead(t *testing.T) {
	st := NewStore(Settings{
		ContrastLevel:    5,
		PerThemeContrast: map[string]int{"loud": 900},
	})

	if got := st.Contrast("loud"); got != 200 {
		t.Errorf("Contrast(loud) = %d, want 200", got)
	}
	if got := st.Contrast("other"); got != 20 {
		t.Errorf("Contrast(other) = %d, want 20", got)
	}

	st.SetContrast("x", 1000)
	if _, c := st.Legacy(); c != 1000 {
		t.Errorf("stored contrast = %d, want raw 1000", c)
	}
	if snap := st.Snapshot(); snap.PerThemeContrast["x"] != 1000 {
		t.Errorf("per-theme contrast = %d, want raw 1000", snap.PerThemeContrast["x"])
	}
}

// TestNilMapsTolerated tests settings from a version without per-theme maps.
func TestNilMapsTolerated(t *testing.T) {
	st := NewStore(Settings{BrightnessLevel: 30, ContrastLevel: 110})

	if got := st.Brightness("t"); got != 30 {
		t.Errorf("Brightness = %d, want 30", got)
	}
	st.SetBrightness("t", 40)
	st.SetContrast("t", 120)
	if got := st.Contrast("t"); got != 120 {
		t.Errorf("Contrast = %d, want 120", got)
	}
}

func TestResetTheme(t *testing.T) {
	st := NewStore(Default())
	st.SetBrightness("a", -50)
	st.SetContrast("a", 130)
	st.SetBrightness("b", 20)

	st.ResetTheme("a")

	if st.HasOverride("a") {
		t.Error("Expected overrides for a to be removed")
	}
	// Falls back to the legacy value, which is the last write.
	if got := st.Brightness("a"); got != 20 {
		t.Errorf("Brightness(a) after reset = %d, want 20", got)
	}
	if got := st.Contrast("a"); got != 130 {
		t.Errorf("Contrast(a) after reset = %d, want legacy 130", got)
	}
}

func TestThemes(t *testing.T) {
	st := NewStore(Default())
	st.SetBrightness("Things", 10)
	st.SetContrast("Minimal", 120)
	st.SetBrightness("Minimal", -10)

	want := []string{"Minimal", "Things"}
	if got := st.Themes(); !slices.Equal(got, want) {
		t.Errorf("Themes() = %v, want %v", got, want)
	}
}

// TestSnapshotIsDeepCopy tests that later edits do not leak into a snapshot.
func TestSnapshotIsDeepCopy(t *testing.T) {
	st := NewStore(Default())
	st.SetBrightness("a", 10)
	snap := st.Snapshot()

	st.SetBrightness("a", 90)
	st.SetShowStatusBar(false)

	if snap.PerThemeBrightness["a"] != 10 {
		t.Errorf("snapshot changed: %d", snap.PerThemeBrightness["a"])
	}
	if !snap.ShowStatusBar {
		t.Error("snapshot ShowStatusBar changed")
	}
	if st.ShowStatusBar() {
		t.Error("Expected status bar to be hidden")
	}
}
