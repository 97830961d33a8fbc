// Package main provides the CLI entry point for fontkit.
//
// Usage:
//
//	fontkit info <font-path>
//	fontkit shape [--size N] [--max-width N] <font-path> <text>
//	fontkit render -o output.png [--size N] [--max-width N] <font-path> <text>
//
// Flags must come before the positional arguments; flag parsing stops at
// the first non-flag argument.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/boergens/fontkit/font"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "info":
		err = runInfo(os.Args[2:])
	case "shape":
		err = runShape(os.Args[2:])
	case "render":
		err = runRender(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	case "version", "-v", "--version":
		printVersion()
		return
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fontkit - font container parsing, shaping, and layout

Usage:
  fontkit info <font-path>
  fontkit shape [--size N] [--max-width N] <font-path> <text>
  fontkit render -o <output.png> [--size N] [--max-width N] <font-path> <text>
  fontkit help
  fontkit version

Options (must come before <font-path>):
  --size        Pixel size (default 16)
  --max-width   Paragraph max width in pixels (default 400)
  --justify     left | right | center | full (default left)
  -o, --output  Output PNG path (render only)`)
}

func printVersion() {
	fmt.Println("fontkit version 0.1.0")
}

// loadSingleFace loads the first face from path into a fresh Registry and
// returns both, since every subcommand here operates on exactly one font
// file rather than a full system registry.
func loadSingleFace(path string) (*font.Registry, font.FaceID, error) {
	reg := font.NewRegistry()
	ids, err := reg.LoadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot load font: %w", err)
	}
	if len(ids) == 0 {
		return nil, 0, fmt.Errorf("font file contains no faces")
	}
	return reg, ids[0], nil
}

func parseJustify(s string) (justification, error) {
	switch s {
	case "", "left":
		return justifyLeft, nil
	case "right":
		return justifyRight, nil
	case "center":
		return justifyCenter, nil
	case "full":
		return justifyFull, nil
	default:
		return 0, fmt.Errorf("unknown justification %q", s)
	}
}

// justification mirrors textlayout.Justification without importing it
// into this file's flag-parsing helper, keeping the flag vocabulary
// (left/right/center/full) decoupled from the package's own enum naming.
type justification int

const (
	justifyLeft justification = iota
	justifyRight
	justifyCenter
	justifyFull
)

func newFlagSet(name string) (*flag.FlagSet, *float64, *float64, *string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	size := fs.Float64("size", 16, "pixel size")
	maxWidth := fs.Float64("max-width", 400, "paragraph max width in pixels")
	justify := fs.String("justify", "left", "left|right|center|full")
	return fs, size, maxWidth, justify
}
