package host

import (
	"os"
	"regexp"
	"strings"
)

var (
	backgroundVarRegex  = regexp.MustCompile(`--background-primary\s*:\s*([^;}]+)[;}]`)
	backgroundPropRegex = regexp.MustCompile(`(?:^|[\s{;])background-color\s*:\s*([^;}]+)[;}]`)
	commentRegex        = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// SampleBackground returns the configured override, or the background colour
// declared by the stylesheet of theme id. The result may be empty or not a
// parseable colour; the engine falls back in that case.
func (v *Vault) SampleBackground(id string) string {
	if v.Background != "" {
		return v.Background
	}

	path, err := v.ThemeStylesheetPath(id)
	if err != nil {
		v.logger.Debug("no stylesheet to sample", "theme", id, "reason", err)
		return ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		v.logger.Debug("failed to read theme stylesheet", "path", path, "error", err)
		return ""
	}

	return ExtractBackground(string(data))
}

// ExtractBackground finds the background colour in a stylesheet: the first
// --background-primary custom property, else the first background-color
// declaration. Returns "" when neither is present.
func ExtractBackground(css string) string {
	css = commentRegex.ReplaceAllString(css, "")

	if m := backgroundVarRegex.FindStringSubmatch(css); m != nil {
		return cleanValue(m[1])
	}
	if m := backgroundPropRegex.FindStringSubmatch(css); m != nil {
		return cleanValue(m[1])
	}
	return ""
}

func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "!important")
	return strings.TrimSpace(v)
}
