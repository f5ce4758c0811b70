package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Raster decoders for cover bytes pulled out of containers.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	// overlayMargin is the pixel gap between the overlay and the
	// bottom-right corner.
	overlayMargin = 4
	// Overlay edge length is requested_size/5, clamped to this range.
	overlayMinSize = 24
	overlayMaxSize = 48
)

// Composer turns raw cover bytes into branded PNG thumbnails. The overlay
// icon is loaded once at construction; a Composer with a nil overlay still
// produces unbranded thumbnails.
type Composer struct {
	overlay image.Image
}

// NewComposer loads the overlay icon (explicit path, embedded resource,
// filesystem fallbacks, in that order) and returns a ready Composer.
func NewComposer(overlayPath string) *Composer {
	return &Composer{overlay: LoadOverlay(overlayPath)}
}

// Render decodes cover bytes (JPEG/PNG/GIF/WebP/BMP), fits the image
// within size×size preserving aspect ratio, stamps the overlay icon onto
// the bottom-right corner, and re-encodes the result as PNG.
func (c *Composer) Render(cover []byte, size int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(cover))
	if err != nil {
		return nil, fmt.Errorf("decode cover: %w", err)
	}

	thumb := imaging.Fit(img, size, size, imaging.Lanczos)

	if c.overlay != nil {
		edge := overlayEdge(size)
		b := c.overlay.Bounds()
		var ov *image.NRGBA
		if b.Dx() >= b.Dy() {
			ov = imaging.Resize(c.overlay, edge, 0, imaging.Lanczos)
		} else {
			ov = imaging.Resize(c.overlay, 0, edge, imaging.Lanczos)
		}
		stampOverlay(thumb, ov)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// overlayEdge returns the overlay edge length for a given thumbnail size.
func overlayEdge(size int) int {
	edge := size / 5
	if edge < overlayMinSize {
		return overlayMinSize
	}
	if edge > overlayMaxSize {
		return overlayMaxSize
	}
	return edge
}

// stampOverlay alpha-blends ov onto the bottom-right corner of dst with a
// fixed margin. Blending is src*alpha + dst*(1-alpha) per channel; the
// destination alpha is forced fully opaque wherever the overlay
// contributes. Fully transparent overlay pixels leave dst untouched.
func stampOverlay(dst, ov *image.NRGBA) {
	dw, dh := dst.Bounds().Dx(), dst.Bounds().Dy()
	ow, oh := ov.Bounds().Dx(), ov.Bounds().Dy()

	x0 := dw - ow - overlayMargin
	if x0 < 0 {
		x0 = 0
	}
	y0 := dh - oh - overlayMargin
	if y0 < 0 {
		y0 = 0
	}

	for oy := 0; oy < oh; oy++ {
		for ox := 0; ox < ow; ox++ {
			dx, dy := x0+ox, y0+oy
			if dx >= dw || dy >= dh {
				continue
			}
			sp := ov.NRGBAAt(ox, oy)
			if sp.A == 0 {
				continue
			}

			alpha := float32(sp.A) / 255
			dp := dst.NRGBAAt(dx, dy)
			dp.R = uint8(float32(sp.R)*alpha + float32(dp.R)*(1-alpha))
			dp.G = uint8(float32(sp.G)*alpha + float32(dp.G)*(1-alpha))
			dp.B = uint8(float32(sp.B)*alpha + float32(dp.B)*(1-alpha))
			dp.A = 255
			dst.SetNRGBA(dx, dy, dp)
		}
	}
}
