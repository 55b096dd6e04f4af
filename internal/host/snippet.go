package host

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/darkslide/internal/colour"
	"github.com/jmylchreest/darkslide/internal/logging"
	"github.com/jmylchreest/darkslide/internal/overlay"
)

// CSS custom properties written to the snippet. A static stylesheet decides
// where they are used.
const (
	OverlayProperty  = "--darkslide-overlay"
	ContrastProperty = "--darkslide-contrast"
)

// SnippetRenderer writes the current overlay and contrast to a CSS file.
// Identical output is not rewritten.
type SnippetRenderer struct {
	path   string
	logger hclog.Logger

	overlay  overlay.Result
	contrast overlay.ContrastResult

	last      []byte
	refreshes int
	err       error
}

// NewSnippetRenderer renders to path, starting from a no-op state.
func NewSnippetRenderer(path string, logger hclog.Logger) *SnippetRenderer {
	return &SnippetRenderer{
		path:     path,
		logger:   logging.OrNull(logger).Named("snippet"),
		overlay:  overlay.None,
		contrast: overlay.Contrast(overlay.DefaultContrast),
	}
}

// ApplyOverlay records the overlay and rewrites the snippet.
func (r *SnippetRenderer) ApplyOverlay(c colour.RGB, opacity float64) {
	r.overlay = overlay.Result{Colour: c, Opacity: opacity}
	r.write()
}

// ApplyContrastFilter records the contrast and rewrites the snippet.
func (r *SnippetRenderer) ApplyContrastFilter(percent int) {
	r.contrast = overlay.Contrast(percent)
	r.write()
}

// Refresh records a UI refresh request. The snippet has no controls to redraw.
func (r *SnippetRenderer) Refresh() {
	r.refreshes++
	r.logger.Debug("refresh requested", "count", r.refreshes)
}

// Refreshes returns the number of refresh requests seen.
func (r *SnippetRenderer) Refreshes() int {
	return r.refreshes
}

// Err returns the last write error, if any. Rendering never fails the caller.
func (r *SnippetRenderer) Err() error {
	return r.err
}

// Render returns the snippet content for the current state.
func (r *SnippetRenderer) Render() []byte {
	var b bytes.Buffer
	b.WriteString("/* Generated by darkslide. Changes are overwritten. */\n")
	b.WriteString("body {\n")
	fmt.Fprintf(&b, "  %s: %s;\n", OverlayProperty, r.overlay.CSS())
	fmt.Fprintf(&b, "  %s: %s;\n", ContrastProperty, r.contrast.Filter())
	b.WriteString("}\n")
	return b.Bytes()
}

func (r *SnippetRenderer) write() {
	content := r.Render()
	if bytes.Equal(content, r.last) {
		return
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		r.fail(fmt.Errorf("failed to create snippet directory: %w", err))
		return
	}
	if err := os.WriteFile(r.path, content, 0644); err != nil {
		r.fail(fmt.Errorf("failed to write snippet: %w", err))
		return
	}

	r.last = content
	r.err = nil
	r.logger.Trace("snippet written", "path", r.path)
}

func (r *SnippetRenderer) fail(err error) {
	r.err = err
	r.logger.Error("render failed", "path", r.path, "error", err)
}
