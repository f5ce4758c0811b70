package booktypes

import (
	"path"
	"strings"
)

// Format identifies which container parser handles a book file.
type Format string

const (
	// FormatEPUB represents EPUB (zip container with OPF manifest).
	FormatEPUB Format = "epub"
	// FormatMOBI represents the MOBI/AZW family (Palm database container).
	FormatMOBI Format = "mobi"
	// FormatComic represents comic book archives (CBZ/CBR).
	FormatComic Format = "comic"
	// FormatFB2 represents FictionBook 2 XML documents.
	FormatFB2 Format = "fb2"
	// FormatText represents plain text files (placeholder cover only).
	FormatText Format = "txt"
	// FormatUnknown represents an unsupported extension.
	FormatUnknown Format = "unknown"
)

// mobiExtensions are the MOBI-container variants. AZW3/KF8 share the same
// record layout as classic MOBI for cover purposes, so they all route to
// the same binary parser.
var mobiExtensions = map[string]bool{
	"mobi": true,
	"azw":  true,
	"azw3": true,
	"kf8":  true,
	"prc":  true,
}

// coverImageExtensions lists the raster formats recognized when scanning
// archive entries for cover candidates.
var coverImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}

// FormatForExtension maps a lowercase extension (no leading dot) to the
// Format that parses it. Returns FormatUnknown for anything unrecognized.
func FormatForExtension(ext string) Format {
	switch {
	case ext == "epub":
		return FormatEPUB
	case mobiExtensions[ext]:
		return FormatMOBI
	case ext == "cbz" || ext == "cbr":
		return FormatComic
	case ext == "fb2":
		return FormatFB2
	case ext == "txt":
		return FormatText
	}
	return FormatUnknown
}

// IsSupported reports whether the extension routes to a known parser.
func IsSupported(ext string) bool {
	return FormatForExtension(ext) != FormatUnknown
}

// NormalizeExtension extracts the lowercase extension of a file name
// without the leading dot, the form FormatForExtension expects.
func NormalizeExtension(name string) string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
}

// IsImageName reports whether an archive entry name (already lowercased)
// carries a recognized raster image extension.
func IsImageName(name string) bool {
	for _, ext := range coverImageExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
