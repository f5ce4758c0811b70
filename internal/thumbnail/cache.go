package thumbnail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"ebook-thumbnailer/internal/booktypes"
	"ebook-thumbnailer/internal/extract"
	"ebook-thumbnailer/internal/logging"
	"ebook-thumbnailer/internal/metrics"
)

// Cache is the single entry point of the thumbnail engine: it maps a
// (path, extension, size) request to branded PNG bytes, backed by a
// content-addressed disk store. Entries are never mutated in place; a
// changed source file fingerprints to a new key and the old entry is
// simply orphaned.
type Cache struct {
	dir      string
	composer *Composer
	enabled  bool

	// mu serializes builds so concurrent misses for the same key do not
	// duplicate extraction work in-process. Cross-process races are
	// harmless: identical keys produce byte-identical files.
	mu sync.Mutex

	extractions atomic.Int64
}

// NewCache prepares the thumbnail cache rooted at dir. If enabled is
// false (cache directory not writable), lookups and writes are skipped
// and every request is built fresh.
func NewCache(dir string, composer *Composer, enabled bool) *Cache {
	if enabled {
		logging.Debug("thumbnail cache: enabled, dir: %s", dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logging.Warn("thumbnail cache: failed to create dir: %v", err)
		}
	} else {
		logging.Debug("thumbnail cache: disabled")
	}
	return &Cache{
		dir:      dir,
		composer: composer,
		enabled:  enabled,
	}
}

// IsEnabled reports whether the disk store is in use.
func (c *Cache) IsEnabled() bool {
	return c.enabled
}

// GetOrBuild returns the branded PNG thumbnail for the book at path. The
// extension (with or without leading dot, any case) selects the container
// parser; size is the square bounding box in pixels. On a cache hit the
// stored bytes are returned directly; on a miss the cover is extracted,
// composited, persisted best-effort, and returned. A failed cache write
// is logged and ignored; the computed bytes still go back to the caller.
func (c *Cache) GetOrBuild(path, ext string, size int) ([]byte, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	format := booktypes.FormatForExtension(ext)
	if format == booktypes.FormatUnknown {
		return nil, fmt.Errorf("%w: %q", extract.ErrUnsupportedFormat, ext)
	}

	key, err := CacheKey(path, ext, size)
	if err != nil {
		return nil, err
	}
	cachePath := filepath.Join(c.dir, key)

	if c.enabled {
		if data, err := os.ReadFile(cachePath); err == nil {
			logging.Debug("thumbnail cache hit: %s", path)
			metrics.CacheHits.Inc()
			return data, nil
		}
	}
	metrics.CacheMisses.Inc()

	c.mu.Lock()
	defer c.mu.Unlock()

	// A concurrent request may have built this key while we waited.
	if c.enabled {
		if data, err := os.ReadFile(cachePath); err == nil {
			return data, nil
		}
	}

	logging.Debug("thumbnail building: %s (format: %s, size: %d)", path, format, size)

	extractStart := time.Now()
	cover, err := extract.Cover(path, format, size)
	c.extractions.Add(1)
	if err != nil {
		metrics.ExtractionsTotal.WithLabelValues(string(format), "error").Inc()
		return nil, err
	}
	metrics.ExtractionsTotal.WithLabelValues(string(format), "success").Inc()
	metrics.ExtractionDuration.WithLabelValues(string(format)).Observe(time.Since(extractStart).Seconds())

	buildStart := time.Now()
	thumb, err := c.composer.Render(cover, size)
	if err != nil {
		metrics.ThumbnailBuildsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("composite %s: %w", path, err)
	}
	metrics.ThumbnailBuildsTotal.WithLabelValues("success").Inc()
	metrics.ThumbnailBuildDuration.Observe(time.Since(buildStart).Seconds())

	if c.enabled {
		if err := os.WriteFile(cachePath, thumb, 0o644); err != nil {
			// Non-fatal: the freshly computed bytes are still returned.
			logging.Warn("failed to cache thumbnail %s: %v", cachePath, err)
			metrics.CacheWriteFailures.Inc()
		} else {
			logging.Debug("thumbnail cached: %s", cachePath)
		}
	}

	return thumb, nil
}

// Extractions reports how many times a container extractor has run, i.e.
// the number of cache misses that reached extraction.
func (c *Cache) Extractions() int64 {
	return c.extractions.Load()
}

// Stats walks the cache directory and returns entry count and total size
// in bytes, updating the corresponding gauges.
func (c *Cache) Stats() (count int, totalBytes int64, err error) {
	if !c.enabled {
		return 0, 0, nil
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, 0, fmt.Errorf("read cache dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".png") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		count++
		totalBytes += info.Size()
	}

	metrics.CacheEntryCount.Set(float64(count))
	metrics.CacheSizeBytes.Set(float64(totalBytes))
	return count, totalBytes, nil
}
