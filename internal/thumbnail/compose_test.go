package thumbnail

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
)

// encodeJPEG renders a solid-color image of the given dimensions as JPEG.
func encodeJPEG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := imaging.New(w, h, c)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encode jpeg fixture: %v", err)
	}
	return buf.Bytes()
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	return img
}

func TestRenderFitsWithinBounds(t *testing.T) {
	comp := &Composer{} // no overlay; geometry only

	tests := []struct {
		name         string
		srcW, srcH   int
		size         int
		wantW, wantH int
	}{
		{"Landscape scaled down", 400, 200, 256, 256, 128},
		{"Portrait scaled down", 200, 400, 256, 128, 256},
		{"Square scaled down", 512, 512, 128, 128, 128},
		{"Smaller than target stays put", 50, 40, 256, 50, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cover := encodeJPEG(t, tt.srcW, tt.srcH, color.NRGBA{80, 100, 120, 255})
			out, err := comp.Render(cover, tt.size)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			img := decodePNG(t, out)
			if img.Bounds().Dx() != tt.wantW || img.Bounds().Dy() != tt.wantH {
				t.Errorf("Render() produced %dx%d, want %dx%d",
					img.Bounds().Dx(), img.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderAlwaysPNG(t *testing.T) {
	comp := NewComposer("")
	cover := encodeJPEG(t, 100, 100, color.NRGBA{10, 20, 30, 255})

	out, err := comp.Render(cover, 64)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	decodePNG(t, out) // fails the test if not PNG
}

func TestRenderUndecodableCover(t *testing.T) {
	comp := NewComposer("")
	if _, err := comp.Render([]byte("not an image at all"), 64); err == nil {
		t.Error("Render() expected error for undecodable bytes")
	}
}

func TestRenderWithoutOverlayResource(t *testing.T) {
	// Overlay failure is never fatal; a nil overlay still renders.
	comp := &Composer{overlay: nil}
	cover := encodeJPEG(t, 128, 128, color.NRGBA{200, 50, 50, 255})

	out, err := comp.Render(cover, 64)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	img := decodePNG(t, out)
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Errorf("Render() produced %dx%d, want 64x64", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestOverlayEdgeClamp(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{64, 24},   // 64/5 = 12, clamped up
		{100, 24},  // 20, clamped up
		{200, 40},  // within range
		{256, 48},  // 51, clamped down
		{1024, 48}, // clamped down
	}

	for _, tt := range tests {
		if got := overlayEdge(tt.size); got != tt.want {
			t.Errorf("overlayEdge(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestStampOverlayAlphaBlending(t *testing.T) {
	dstColor := color.NRGBA{100, 100, 100, 255}
	dst := imaging.New(100, 100, dstColor)

	ov := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	ov.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 0})     // fully transparent
	ov.SetNRGBA(1, 0, color.NRGBA{255, 0, 0, 255})   // fully opaque
	ov.SetNRGBA(2, 0, color.NRGBA{200, 60, 20, 128}) // partial

	stampOverlay(dst, ov)

	// Overlay lands at (86,86) with the 4px margin.
	const x0, y0 = 86, 86

	if got := dst.NRGBAAt(x0, y0); got != dstColor {
		t.Errorf("alpha 0 pixel altered destination: got %v, want %v", got, dstColor)
	}

	if got := dst.NRGBAAt(x0+1, y0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("alpha 255 pixel = %v, want full source with opaque alpha", got)
	}

	got := dst.NRGBAAt(x0+2, y0)
	alpha := float32(128) / 255
	want := color.NRGBA{
		R: uint8(float32(200)*alpha + float32(100)*(1-alpha)),
		G: uint8(float32(60)*alpha + float32(100)*(1-alpha)),
		B: uint8(float32(20)*alpha + float32(100)*(1-alpha)),
		A: 255,
	}
	if got != want {
		t.Errorf("alpha 128 pixel = %v, want %v", got, want)
	}

	// Pixels outside the stamp area are untouched.
	if got := dst.NRGBAAt(10, 10); got != dstColor {
		t.Errorf("pixel outside overlay = %v, want %v", got, dstColor)
	}
}

func TestLoadOverlayEmbedded(t *testing.T) {
	if img := LoadOverlay(""); img == nil {
		t.Error("LoadOverlay() returned nil, embedded icon should always decode")
	}
}
