package booktypes

import "testing"

func TestFormatForExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want Format
	}{
		{"epub", FormatEPUB},
		{"mobi", FormatMOBI},
		{"azw", FormatMOBI},
		{"azw3", FormatMOBI},
		{"kf8", FormatMOBI},
		{"prc", FormatMOBI},
		{"cbz", FormatComic},
		{"cbr", FormatComic},
		{"fb2", FormatFB2},
		{"txt", FormatText},
		{"pdf", FormatUnknown},
		{"", FormatUnknown},
		{"EPUB", FormatUnknown}, // caller must lowercase first
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := FormatForExtension(tt.ext); got != tt.want {
				t.Errorf("FormatForExtension(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	for _, ext := range []string{"epub", "mobi", "azw3", "cbz", "fb2", "txt"} {
		if !IsSupported(ext) {
			t.Errorf("IsSupported(%q) = false, want true", ext)
		}
	}
	for _, ext := range []string{"pdf", "docx", "zip", ""} {
		if IsSupported(ext) {
			t.Errorf("IsSupported(%q) = true, want false", ext)
		}
	}
}

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"book.EPUB", "epub"},
		{"dir/novel.azw3", "azw3"},
		{"noext", ""},
		{"archive.tar.gz", "gz"},
	}

	for _, tt := range tests {
		if got := NormalizeExtension(tt.name); got != tt.want {
			t.Errorf("NormalizeExtension(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsImageName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"images/cover.jpg", true},
		{"cover.jpeg", true},
		{"page.png", true},
		{"anim.gif", true},
		{"photo.webp", true},
		{"old.bmp", true},
		{"content.xhtml", false},
		{"cover.svg", false},
		{"cover.jpg.bak", false},
	}

	for _, tt := range tests {
		if got := IsImageName(tt.name); got != tt.want {
			t.Errorf("IsImageName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
