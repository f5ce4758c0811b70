package thumbnail

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ebook-thumbnailer/internal/extract"
)

// writeBook drops a plain-text book into its own temp dir so the cache
// key stays stable across sub-checks within a test.
func writeBook(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestGetOrBuildCachesResult(t *testing.T) {
	dir := t.TempDir()
	cache := NewCache(dir, NewComposer(""), true)
	book := writeBook(t, "notes.txt", "some plain text content")

	first, err := cache.GetOrBuild(book, "txt", 128)
	if err != nil {
		t.Fatalf("GetOrBuild() first call error: %v", err)
	}
	if cache.Extractions() != 1 {
		t.Errorf("after first call extractions = %d, want 1", cache.Extractions())
	}

	second, err := cache.GetOrBuild(book, "txt", 128)
	if err != nil {
		t.Fatalf("GetOrBuild() second call error: %v", err)
	}
	if cache.Extractions() != 1 {
		t.Errorf("second call should hit the cache, extractions = %d, want 1", cache.Extractions())
	}
	if !bytes.Equal(first, second) {
		t.Error("cached bytes differ from freshly built bytes")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read cache dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("cache dir holds %d entries, want 1", len(entries))
	}
}

func TestGetOrBuildExtensionNormalization(t *testing.T) {
	cache := NewCache(t.TempDir(), NewComposer(""), true)
	book := writeBook(t, "notes.txt", "content")

	first, err := cache.GetOrBuild(book, ".TXT", 64)
	if err != nil {
		t.Fatalf("GetOrBuild(.TXT) error: %v", err)
	}
	second, err := cache.GetOrBuild(book, "txt", 64)
	if err != nil {
		t.Fatalf("GetOrBuild(txt) error: %v", err)
	}
	if cache.Extractions() != 1 {
		t.Errorf("case and dot variants should share one cache entry, extractions = %d", cache.Extractions())
	}
	if !bytes.Equal(first, second) {
		t.Error("normalized extensions produced different bytes")
	}
}

func TestGetOrBuildUnsupportedFormat(t *testing.T) {
	cache := NewCache(t.TempDir(), NewComposer(""), true)
	book := writeBook(t, "doc.pdf", "%PDF-1.4")

	_, err := cache.GetOrBuild(book, "pdf", 128)
	if !errors.Is(err, extract.ErrUnsupportedFormat) {
		t.Errorf("GetOrBuild() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestGetOrBuildDisabledCache(t *testing.T) {
	dir := t.TempDir()
	cache := NewCache(dir, NewComposer(""), false)
	book := writeBook(t, "notes.txt", "content")

	first, err := cache.GetOrBuild(book, "txt", 128)
	if err != nil {
		t.Fatalf("GetOrBuild() error: %v", err)
	}
	second, err := cache.GetOrBuild(book, "txt", 128)
	if err != nil {
		t.Fatalf("GetOrBuild() error: %v", err)
	}

	if cache.Extractions() != 2 {
		t.Errorf("disabled cache should rebuild every time, extractions = %d, want 2", cache.Extractions())
	}
	if !bytes.Equal(first, second) {
		t.Error("repeated builds of the same book should be byte-identical")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("disabled cache wrote %d entries, want 0", len(entries))
	}
}

func TestGetOrBuildPropagatesExtractionError(t *testing.T) {
	cache := NewCache(t.TempDir(), NewComposer(""), true)
	book := writeBook(t, "broken.cbz", "this is not a zip archive")

	_, err := cache.GetOrBuild(book, "cbz", 128)
	if !errors.Is(err, extract.ErrInvalidContainer) {
		t.Errorf("GetOrBuild() error = %v, want ErrInvalidContainer", err)
	}
}

func TestGetOrBuildMissingFile(t *testing.T) {
	cache := NewCache(t.TempDir(), NewComposer(""), true)
	if _, err := cache.GetOrBuild(filepath.Join(t.TempDir(), "gone.txt"), "txt", 128); err == nil {
		t.Error("GetOrBuild() expected error for missing file")
	}
}

func TestCacheStats(t *testing.T) {
	dir := t.TempDir()
	cache := NewCache(dir, NewComposer(""), true)

	count, size, err := cache.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty cache error: %v", err)
	}
	if count != 0 || size != 0 {
		t.Errorf("empty cache Stats() = (%d, %d), want (0, 0)", count, size)
	}

	bookA := writeBook(t, "a.txt", "first book")
	bookB := writeBook(t, "b.txt", "second book")
	if _, err := cache.GetOrBuild(bookA, "txt", 64); err != nil {
		t.Fatalf("GetOrBuild() error: %v", err)
	}
	if _, err := cache.GetOrBuild(bookB, "txt", 128); err != nil {
		t.Fatalf("GetOrBuild() error: %v", err)
	}

	count, size, err = cache.Stats()
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if count != 2 {
		t.Errorf("Stats() count = %d, want 2", count)
	}
	if size <= 0 {
		t.Errorf("Stats() total size = %d, want > 0", size)
	}
}

func TestCacheStatsDisabled(t *testing.T) {
	cache := NewCache(t.TempDir(), NewComposer(""), false)
	count, size, err := cache.Stats()
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if count != 0 || size != 0 {
		t.Errorf("disabled cache Stats() = (%d, %d), want (0, 0)", count, size)
	}
}
