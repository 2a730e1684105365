// Command pixed is a pixel-art editor.
//
// Usage:
//
//	pixed [-config pixed.toml] [-out drawing.png] [-scale 8] [-debug]
//
// Keys 1 to 5 select the pencil, eraser, bucket, line and rectangle
// tools. X swaps the primary and secondary colors. S saves the canvas
// to the -out file with each cell -scale pixels wide. P saves a
// snapshot of the whole window next to it. The mouse wheel zooms toward
// the pointer.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML settings file")
		output     = flag.String("out", "pixed.png", "file written by the save key")
		scale      = flag.Int("scale", 1, "pixels per cell in the saved file")
		debug      = flag.Bool("debug", false, "log debug messages")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	pixed.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			pixed.Logger().Error("pixed: settings rejected", "err", err)
			os.Exit(1)
		}
	}

	run(cfg, *output, *scale)
}

// snapshotPath derives the window snapshot file name from the canvas
// output name: "art.png" becomes "art-window.png".
func snapshotPath(output string) string {
	base := strings.TrimSuffix(output, ".png")
	return base + "-window.png"
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return fmt.Errorf("pixed: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("pixed: encode %s: %w", path, err)
	}
	return f.Close()
}
