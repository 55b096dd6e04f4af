package settings

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "data.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.ContrastLevel != 100 || s.BrightnessLevel != 0 || !s.ShowStatusBar {
		t.Errorf("Expected defaults, got %+v", s)
	}
	if s.PerThemeBrightness == nil || s.PerThemeContrast == nil {
		t.Error("Expected per-theme maps to be initialised")
	}
}

// TestLoadLegacyFormat tests a file written before per-theme settings existed.
func TestLoadLegacyFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`{"brightnessLevel": -35}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.BrightnessLevel != -35 {
		t.Errorf("BrightnessLevel = %d, want -35", s.BrightnessLevel)
	}
	if s.ContrastLevel != 100 {
		t.Errorf("ContrastLevel = %d, want default 100", s.ContrastLevel)
	}
	if !s.ShowStatusBar {
		t.Error("Expected ShowStatusBar default to survive merge")
	}

	st := NewStore(s)
	if got := st.Brightness("dark-theme"); got != -35 {
		t.Errorf("Brightness(dark-theme) = %d, want -35", got)
	}
}

func TestLoadNullMaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	data := `{"perThemeBrightness": null, "perThemeContrast": null, "showStatusBar": false}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.PerThemeBrightness == nil || s.PerThemeContrast == nil {
		t.Error("Expected null maps to be replaced")
	}
	if s.ShowStatusBar {
		t.Error("Expected showStatusBar false from file")
	}
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Load() error = %v, want ErrMalformed", err)
	}
	if s.ContrastLevel != 100 {
		t.Errorf("Expected defaults alongside error, got %+v", s)
	}
}

// TestLoadSkipsMalformedFields tests that one bad value does not discard the rest.
func TestLoadSkipsMalformedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	data := `{
		"brightnessLevel": -37.5,
		"contrastLevel": "high",
		"perThemeBrightness": {"Minimal": -120, "Broken": true},
		"perThemeContrast": {"Minimal": 140.2},
		"showStatusBar": 1
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("Load() error = %v, want *FieldError", err)
	}
	if !errors.Is(err, ErrMalformed) {
		t.Error("Expected FieldError to match ErrMalformed")
	}
	want := []string{"contrastLevel", "perThemeBrightness.Broken", "showStatusBar"}
	if !slices.Equal(fe.Fields, want) {
		t.Errorf("Fields = %v, want %v", fe.Fields, want)
	}

	if s.BrightnessLevel != -38 {
		t.Errorf("BrightnessLevel = %d, want -38", s.BrightnessLevel)
	}
	if s.ContrastLevel != 100 {
		t.Errorf("ContrastLevel = %d, want default 100", s.ContrastLevel)
	}
	if s.PerThemeBrightness["Minimal"] != -120 {
		t.Errorf("PerThemeBrightness = %v", s.PerThemeBrightness)
	}
	if _, ok := s.PerThemeBrightness["Broken"]; ok {
		t.Error("Expected malformed per-theme entry to be dropped")
	}
	if s.PerThemeContrast["Minimal"] != 140 {
		t.Errorf("PerThemeContrast = %v", s.PerThemeContrast)
	}
	if !s.ShowStatusBar {
		t.Error("Expected showStatusBar default to survive")
	}
}

// TestLoadSaturatesHugeLevels tests values far outside the int range.
func TestLoadSaturatesHugeLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	data := `{"brightnessLevel": -9223372036854775808, "contrastLevel": 1e30}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.BrightnessLevel != math.MinInt32 || s.ContrastLevel != math.MaxInt32 {
		t.Errorf("Expected saturated levels, got %+v", s)
	}
	if got := NewStore(s).Contrast("any"); got != 200 {
		t.Errorf("Contrast() = %d, want 200", got)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugins", "darkslide", "data.json")

	st := NewStore(Default())
	st.SetBrightness("Minimal", -120)
	st.SetContrast("Minimal", 140)

	if err := Save(path, st.Snapshot()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got := NewStore(loaded)
	if got.Brightness("Minimal") != -120 || got.Contrast("Minimal") != 140 {
		t.Errorf("round trip lost values: %+v", loaded)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only data.json after save, found %d entries", len(entries))
	}
}
