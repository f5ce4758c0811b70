package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ebook-thumbnailer/internal/booktypes"
	"ebook-thumbnailer/internal/extract"
	"ebook-thumbnailer/internal/thumbnail"
)

const (
	defaultSize = 256
	minSize     = 16
	maxSize     = 1024
)

func main() {
	size := flag.Int("size", defaultSize, "thumbnail bounding box in pixels")
	out := flag.String("out", "", "output PNG path (default: <book-file>.png)")
	overlay := flag.String("overlay", "", "overlay icon PNG (default: embedded icon)")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(2)
	}
	bookPath := flag.Arg(0)

	if err := run(bookPath, *out, *overlay, clamp(*size)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(bookPath, outPath, overlayPath string, size int) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(bookPath), "."))
	format := booktypes.FormatForExtension(ext)
	if format == booktypes.FormatUnknown {
		return fmt.Errorf("%w: %q", extract.ErrUnsupportedFormat, ext)
	}

	cover, err := extract.Cover(bookPath, format, size)
	if err != nil {
		return err
	}

	composer := thumbnail.NewComposer(overlayPath)
	thumb, err := composer.Render(cover, size)
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = bookPath + ".png"
	}
	if err := os.WriteFile(outPath, thumb, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote %s (%d bytes, %dpx)\n", outPath, len(thumb), size)
	return nil
}

func clamp(size int) int {
	if size < minSize {
		return minSize
	}
	if size > maxSize {
		return maxSize
	}
	return size
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Cover Thumbnail Generator")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage: coverthumb [flags] <book-file>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}
