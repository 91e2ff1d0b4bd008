// Easelscript replays a JSON test script against a polygon editor without
// opening a window and writes the script's screenshots as PNGs.
//
// Usage:
//
//	easelscript -script steps.json -out shots
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/phanxgames/easel"
)

// maxFrames bounds a run so a script that never finishes cannot hang.
const maxFrames = 100000

func main() {
	var (
		scriptPath = flag.String("script", "", "path to a JSON test script (required)")
		outDir     = flag.String("out", "screenshots", "directory for screenshots")
		width      = flag.Int("width", 800, "surface width in pixels")
		height     = flag.Int("height", 520, "surface height in pixels")
		debug      = flag.Bool("debug", false, "log editor activity to stderr")
	)
	flag.Parse()
	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*scriptPath, *outDir, *width, *height, *debug); err != nil {
		log.Fatal(err)
	}
}

func run(scriptPath, outDir string, width, height int, debug bool) error {
	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	runner, err := easel.LoadTestScript(data)
	if err != nil {
		return err
	}
	runner.ScreenshotDir = outDir

	surf := easel.NewSurface(width, height)
	ed := easel.NewEditor(surf, easel.DefaultSettings())
	ed.SetDebugMode(debug)
	in := easel.NewInput(ed, easel.IdentityMapper(width, height))

	frames := 0
	for !runner.Done() {
		if frames >= maxFrames {
			return fmt.Errorf("script did not finish within %d frames", maxFrames)
		}
		runner.Step(in, ed, surf)
		in.Step()
		frames++
	}
	log.Printf("script finished in %d frames: %s", frames, ed.Status())
	return runner.Err()
}
