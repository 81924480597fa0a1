// Command walkview shows the walking stick figure in a window with an
// orbit camera: drag to rotate, scroll to zoom.
package main

import (
	"flag"
	"fmt"
	"os"

	"skelwalk/internal/scene"
	"skelwalk/internal/viewer"
)

func main() {
	width := flag.Int("width", 1280, "Window width in pixels")
	height := flag.Int("height", 720, "Window height in pixels")
	stacks := flag.Int("stacks", 0, "Head sphere stacks (default: 16)")
	slices := flag.Int("slices", 0, "Head sphere slices (default: 24)")
	flag.Parse()

	sc := scene.New()
	if *stacks > 0 {
		sc.Stacks = *stacks
	}
	if *slices > 0 {
		sc.Slices = *slices
	}

	if err := viewer.Run(sc, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
