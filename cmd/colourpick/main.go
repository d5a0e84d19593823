// colourpick - sample and classify on-screen colours
//
// colourpick reads pixels from X11 windows and reports their colour
// properties for theming and contrast decisions.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/colourpick/internal/cli"

func main() {
	cli.Execute()
}
