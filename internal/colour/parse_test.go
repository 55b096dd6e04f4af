package colour

import (
	"strings"
	"testing"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   RGB
		wantOK bool
	}{
		{name: "six digit hex", input: "#1a2b3c", want: RGB{R: 0x1a, G: 0x2b, B: 0x3c}, wantOK: true},
		{name: "six digit hex upper case", input: "#FFAA00", want: RGB{R: 255, G: 170, B: 0}, wantOK: true},
		{name: "three digit hex duplicates nibbles", input: "#abc", want: RGB{R: 0xaa, G: 0xbb, B: 0xcc}, wantOK: true},
		{name: "surrounding whitespace", input: "  #000000 ", want: RGB{}, wantOK: true},
		{name: "rgb", input: "rgb(30, 30, 46)", want: RGB{R: 30, G: 30, B: 46}, wantOK: true},
		{name: "rgba ignores alpha", input: "rgba(200, 100, 50, 0.5)", want: RGB{R: 200, G: 100, B: 50}, wantOK: true},
		{name: "rgb without spaces", input: "rgb(1,2,3)", want: RGB{R: 1, G: 2, B: 3}, wantOK: true},
		{name: "space separated rgb", input: "rgb(10 20 30 / 50%)", want: RGB{R: 10, G: 20, B: 30}, wantOK: true},
		{name: "rgb clamps out of range", input: "rgb(300, -5, 128)", want: RGB{R: 255, G: 0, B: 128}, wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "named colour", input: "white", wantOK: false},
		{name: "transparent", input: "transparent", wantOK: false},
		{name: "bad hex digit", input: "#gggggg", wantOK: false},
		{name: "four digit hex", input: "#abcd", wantOK: false},
		{name: "missing hash", input: "aabbcc", wantOK: false},
		{name: "too few components", input: "rgb(1, 2)", wantOK: false},
		{name: "malformed number", input: "rgb(1x, 2, 3)", wantOK: false},
		{name: "fractional component", input: "rgb(10.5, 2, 3)", wantOK: false},
		{name: "percentage component", input: "rgb(50%, 2, 3)", wantOK: false},
		{name: "hsl unsupported", input: "hsl(120, 50%, 50%)", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColour(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseColour(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseColour(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestParseHexError tests that ParseHex describes what was wrong.
func TestParseHexError(t *testing.T) {
	_, err := ParseHex("#12")
	if err == nil {
		t.Fatal("Expected error for short hex")
	}
	if !strings.Contains(err.Error(), "#12") {
		t.Errorf("Expected error to mention input, got %v", err)
	}
}

func TestRGBFormatting(t *testing.T) {
	c := RGB{R: 26, G: 43, B: 60}
	if got := c.Hex(); got != "#1a2b3c" {
		t.Errorf("Hex() = %s, want #1a2b3c", got)
	}
	if got := c.String(); got != "rgb(26, 43, 60)" {
		t.Errorf("String() = %s, want rgb(26, 43, 60)", got)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name   string
		in     RGB
		factor float64
		want   RGB
	}{
		{name: "dark factor floors", in: RGB{R: 200, G: 101, B: 1}, factor: 0.3, want: RGB{R: 60, G: 30, B: 0}},
		{name: "zero factor", in: RGB{R: 200, G: 200, B: 200}, factor: 0, want: RGB{}},
		{name: "bright factor", in: RGB{R: 100, G: 100, B: 100}, factor: 1.75, want: RGB{R: 175, G: 175, B: 175}},
		{name: "clamps at 255", in: RGB{R: 200, G: 120, B: 10}, factor: 2.5, want: RGB{R: 255, G: 255, B: 25}},
		{name: "negative factor clamps at 0", in: RGB{R: 10, G: 10, B: 10}, factor: -1, want: RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Scale(tt.factor); got != tt.want {
				t.Errorf("Scale(%v) = %v, want %v", tt.factor, got, tt.want)
			}
		})
	}
}
