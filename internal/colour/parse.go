package colour

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmylchreest/darkslide/internal/security"
)

var (
	hexRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbRegex = regexp.MustCompile(`^rgba?\s*\((.*)\)$`)
	intRegex = regexp.MustCompile(`^-?\d+$`)
)

// ParseColour parses a CSS colour string into an RGB value.
// Supports: #RGB, #RRGGBB, rgb(r, g, b) and rgba(r, g, b, a). The alpha
// channel is ignored. Returns false for anything else, including named
// colours and empty strings.
func ParseColour(text string) (RGB, bool) {
	value := strings.ToLower(strings.TrimSpace(text))
	if value == "" {
		return RGB{}, false
	}

	if strings.HasPrefix(value, "#") {
		rgb, err := ParseHex(value)
		return rgb, err == nil
	}

	if m := rgbRegex.FindStringSubmatch(value); m != nil {
		return parseRGBFunctional(m[1])
	}

	return RGB{}, false
}

// ParseHex parses a hex colour string into an RGB struct.
// Supports formats: #RRGGBB and #RGB.
func ParseHex(hex string) (RGB, error) {
	hex = strings.TrimSpace(hex)
	if !hexRegex.MatchString(hex) {
		return RGB{}, fmt.Errorf("invalid hex colour %q: expected #RGB or #RRGGBB", hex)
	}
	hex = strings.TrimPrefix(hex, "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid red component: %w", err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid green component: %w", err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid blue component: %w", err)
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// parseRGBFunctional reads the first three integers of an rgb()/rgba()
// argument list. Fractional, percentage or missing components are rejected.
func parseRGBFunctional(args string) (RGB, bool) {
	parts := strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/' || r == '\t'
	})
	if len(parts) < 3 {
		return RGB{}, false
	}

	var channels [3]uint8
	for i := range channels {
		if !intRegex.MatchString(parts[i]) {
			return RGB{}, false
		}
		v, err := strconv.Atoi(parts[i])
		if err != nil {
			return RGB{}, false
		}
		channels[i] = security.SafeUint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}
