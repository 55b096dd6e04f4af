package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrMalformed is wrapped by Load errors caused by the file's content rather
// than by reading it. The returned settings are still usable.
var ErrMalformed = errors.New("malformed settings")

// FieldError lists fields that could not be decoded and kept their defaults.
type FieldError struct {
	Path   string
	Fields []string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("settings %s: ignored malformed fields: %s", e.Path, strings.Join(e.Fields, ", "))
}

func (e *FieldError) Unwrap() error { return ErrMalformed }

// Load reads settings from path and merges them over Default().
// A missing file yields the defaults. Fields with the wrong type are skipped
// and reported in a *FieldError; fractional levels are rounded.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings: %w", err)
	}

	bad, err := decode(data, &s)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse settings %s: %w: %w", path, ErrMalformed, err)
	}

	// Older versions did not write the per-theme maps, and an explicit null
	// replaces the default map.
	s.normalise()

	if len(bad) > 0 {
		return s, &FieldError{Path: path, Fields: bad}
	}
	return s, nil
}

// decode merges the known fields of data into s one at a time. It fails only
// when data is not a JSON object.
func decode(data []byte, s *Settings) ([]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var bad []string

	level := func(key string, dst *int) {
		msg, ok := raw[key]
		if !ok {
			return
		}
		if v, ok := decodeLevel(msg); ok {
			*dst = v
		} else {
			bad = append(bad, key)
		}
	}
	levels := func(key string, dst *map[string]int) {
		msg, ok := raw[key]
		if !ok {
			return
		}
		var m map[string]json.RawMessage
		if err := json.Unmarshal(msg, &m); err != nil {
			bad = append(bad, key)
			return
		}
		out := make(map[string]int, len(m))
		for id, v := range m {
			n, ok := decodeLevel(v)
			if !ok {
				bad = append(bad, key+"."+id)
				continue
			}
			out[id] = n
		}
		*dst = out
	}

	level("brightnessLevel", &s.BrightnessLevel)
	levels("perThemeBrightness", &s.PerThemeBrightness)
	level("contrastLevel", &s.ContrastLevel)
	levels("perThemeContrast", &s.PerThemeContrast)

	if msg, ok := raw["showStatusBar"]; ok {
		var b *bool
		if err := json.Unmarshal(msg, &b); err != nil || b == nil {
			bad = append(bad, "showStatusBar")
		} else {
			s.ShowStatusBar = *b
		}
	}

	slices.Sort(bad)
	return bad, nil
}

// decodeLevel reads a JSON number as an int, rounding fractions and
// saturating at the int32 range.
func decodeLevel(msg json.RawMessage) (int, bool) {
	var f *float64
	if err := json.Unmarshal(msg, &f); err != nil || f == nil {
		return 0, false
	}
	v := math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Round(*f)))
	return int(v), true
}

// Save writes settings to path, replacing the previous file atomically.
func Save(path string, s Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write settings: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace settings: %w", err)
	}

	return nil
}
