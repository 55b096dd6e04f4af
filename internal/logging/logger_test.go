package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantDebug bool
		wantInfo  bool
	}{
		{name: "default", opts: Options{}, wantDebug: false, wantInfo: true},
		{name: "verbose", opts: Options{Verbose: true}, wantDebug: true, wantInfo: true},
		{name: "quiet", opts: Options{Quiet: true}, wantDebug: false, wantInfo: false},
		{name: "verbose wins", opts: Options{Verbose: true, Quiet: true}, wantDebug: true, wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.opts.Output = &buf
			logger := New(tt.opts)

			logger.Debug("debug message")
			logger.Info("info message")
			logger.Warn("warn message")

			out := buf.String()
			if got := strings.Contains(out, "debug message"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(out, "info message"); got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v", got, tt.wantInfo)
			}
			if !strings.Contains(out, "warn message") {
				t.Error("Expected warnings to always be logged")
			}
			if !strings.Contains(out, Name) {
				t.Errorf("Expected logger name %q in output: %s", Name, out)
			}
		})
	}
}

func TestOrNull(t *testing.T) {
	if OrNull(nil) == nil {
		t.Fatal("OrNull(nil) returned nil")
	}
	var buf bytes.Buffer
	l := New(Options{Output: &buf})
	if OrNull(l) != l {
		t.Error("OrNull should return a non-nil logger unchanged")
	}
}
