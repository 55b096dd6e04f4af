// DarkSlide - per-theme brightness and contrast overlays
//
// DarkSlide lightens, darkens or re-contrasts an application theme without
// editing it, by writing a translucent overlay derived from the theme's own
// background colour.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/darkslide/internal/cli"

func main() {
	cli.Execute()
}
