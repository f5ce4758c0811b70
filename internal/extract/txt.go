package extract

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// txtProbeSize is how much of the file is read to confirm it opens; the
// content itself is unused.
const txtProbeSize = 4096

var (
	txtFill   = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	txtBorder = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
)

// TextCover synthesizes a flat placeholder cover for plain text files,
// size×size pixels with a single-pixel border, encoded as PNG. Plain text
// has no real cover, so this always succeeds once the file proves
// readable.
func TextCover(r io.Reader, size int) ([]byte, error) {
	probe := make([]byte, txtProbeSize)
	if _, err := r.Read(probe); err != nil && err != io.EOF {
		return nil, fmt.Errorf("read txt: %w", err)
	}

	if size < 2 {
		size = 2 // border needs two distinct rows
	}

	img := imaging.New(size, size, txtFill)
	for x := 0; x < size; x++ {
		img.SetNRGBA(x, 0, txtBorder)
		img.SetNRGBA(x, size-1, txtBorder)
	}
	for y := 0; y < size; y++ {
		img.SetNRGBA(0, y, txtBorder)
		img.SetNRGBA(size-1, y, txtBorder)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}
