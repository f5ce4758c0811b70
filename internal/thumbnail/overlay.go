package thumbnail

import (
	"bytes"
	_ "embed"
	"image"
	"os"
	"path/filepath"

	"ebook-thumbnailer/internal/logging"

	"github.com/disintegration/imaging"
)

//go:embed icon.png
var embeddedOverlay []byte

// LoadOverlay returns the brand overlay icon. An explicit path (if given)
// wins, then the embedded resource, then a fallback chain of filesystem
// locations next to the executable. Returns nil when nothing loads;
// composition simply proceeds without an overlay in that case.
func LoadOverlay(path string) image.Image {
	if path != "" {
		if img, err := imaging.Open(path); err == nil {
			return img
		}
		logging.Warn("overlay icon not loadable from %s, trying embedded resource", path)
	}

	if img, _, err := image.Decode(bytes.NewReader(embeddedOverlay)); err == nil {
		return img
	}

	for _, candidate := range overlayFallbackPaths() {
		if img, err := imaging.Open(candidate); err == nil {
			logging.Debug("overlay icon loaded from %s", candidate)
			return img
		}
	}

	logging.Warn("no overlay icon available, thumbnails will not be branded")
	return nil
}

// overlayFallbackPaths lists filesystem locations searched when the
// embedded icon is unavailable.
func overlayFallbackPaths() []string {
	exe, err := os.Executable()
	if err != nil {
		return nil
	}
	dir := filepath.Dir(exe)
	return []string{
		filepath.Join(dir, "icon.png"),
		filepath.Join(dir, "resources", "icon.png"),
		filepath.Join(filepath.Dir(dir), "resources", "icon.png"),
	}
}
