package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vearutop/pixedit"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "apply":
		if err := runApply(os.Args[2:]); err != nil {
			fail(err)
		}
	case "presets":
		if err := runPresets(); err != nil {
			fail(err)
		}
	case "detect":
		if err := runDetect(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: pixedit <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  apply -in input.jpg [-out output.png] [-preset name] [-brightness 100] [-contrast 100] [-saturation 100]")
	fmt.Fprintln(os.Stderr, "        [-blur 0] [-sharpen 0] [-hue 0] [-sepia 0] [-grayscale 0] [-max-w 0] [-max-h 0] [-v]")
	fmt.Fprintln(os.Stderr, "  presets")
	fmt.Fprintln(os.Stderr, "  detect -in input.img")
}

func runApply(args []string) error {
	id := pixedit.Identity()
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output PNG, defaults to edited-image-<timestamp>.png")
	preset := fs.String("preset", "", "preset name, overrides individual adjustments")
	brightness := fs.Float64("brightness", id.Brightness, "brightness percent (0-200)")
	contrast := fs.Float64("contrast", id.Contrast, "contrast percent (0-200)")
	saturation := fs.Float64("saturation", id.Saturation, "saturation percent (0-200)")
	blur := fs.Float64("blur", id.Blur, "blur radius px (0-10)")
	sharpen := fs.Float64("sharpen", id.Sharpen, "sharpen percent (0-100)")
	hue := fs.Float64("hue", id.Hue, "hue rotation degrees (-180-180)")
	sepia := fs.Float64("sepia", id.Sepia, "sepia percent (0-100)")
	grayscale := fs.Float64("grayscale", id.Grayscale, "grayscale percent (0-100)")
	maxW := fs.Uint("max-w", 0, "downscale to fit width")
	maxH := fs.Uint("max-h", 0, "downscale to fit height")
	verbose := fs.Bool("v", false, "debug logging")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	pixedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	f, err := os.Open(filepath.Clean(*inPath))
	if err != nil {
		return err
	}
	defer f.Close()

	ctx := context.Background()
	ed := pixedit.NewEditor(func(o *pixedit.EditorOptions) {
		o.PreviewWidth = *maxW
		o.PreviewHeight = *maxH
	})
	if _, err := ed.Open(ctx, f); err != nil {
		return err
	}

	if *preset != "" {
		if _, err := ed.ApplyPreset(ctx, *preset); err != nil {
			return err
		}
	} else {
		_, err := ed.SetAdjustments(ctx, pixedit.Adjustments{
			Brightness: *brightness,
			Contrast:   *contrast,
			Saturation: *saturation,
			Blur:       *blur,
			Sharpen:    *sharpen,
			Hue:        *hue,
			Sepia:      *sepia,
			Grayscale:  *grayscale,
		})
		if err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	name, err := ed.Download(&buf)
	if err != nil {
		return err
	}
	target := *outPath
	if target == "" {
		target = name
	}
	if err := os.WriteFile(filepath.Clean(target), buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, target)
	return nil
}

func runPresets() error {
	payload, err := json.MarshalIndent(pixedit.Presets(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(payload))
	return nil
}

func runDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}
	data, err := os.ReadFile(filepath.Clean(*inPath))
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, pixedit.DetectFormat(data))
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
