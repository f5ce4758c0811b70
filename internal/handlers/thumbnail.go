package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"ebook-thumbnailer/internal/extract"
	"ebook-thumbnailer/internal/logging"

	"github.com/gorilla/mux"
)

const (
	minThumbnailSize = 16
	maxThumbnailSize = 1024
)

// clampSize bounds a requested thumbnail size to the supported range.
func clampSize(size int) int {
	if size < minThumbnailSize {
		return minThumbnailSize
	}
	if size > maxThumbnailSize {
		return maxThumbnailSize
	}
	return size
}

// GetThumbnail serves a branded PNG thumbnail for the book at the request
// path, relative to the library directory. An optional size query parameter
// selects the bounding box; out-of-range values are clamped.
func (h *Handlers) GetThumbnail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookPath := vars["path"]

	if bookPath == "" {
		writeJSONError(w, "path is required", http.StatusBadRequest)
		return
	}

	size := h.defaultSize
	if s := r.URL.Query().Get("size"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			writeJSONError(w, "invalid size parameter", http.StatusBadRequest)
			return
		}
		size = parsed
	}
	size = clampSize(size)

	fullPath := filepath.Join(h.booksDir, bookPath)

	// Security check
	absPath, err := filepath.Abs(fullPath)
	if err != nil || !isSubPath(h.booksDir, absPath) {
		logging.Warn("thumbnail: path escapes library: %s", bookPath)
		writeJSONError(w, "invalid path", http.StatusBadRequest)
		return
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			writeJSONError(w, "book not found", http.StatusNotFound)
		} else {
			logging.Error("thumbnail: failed to stat %s: %v", fullPath, err)
			writeJSONError(w, "failed to access book", http.StatusInternalServerError)
		}
		return
	}
	if info.IsDir() {
		writeJSONError(w, "path is a directory", http.StatusBadRequest)
		return
	}

	thumb, err := h.cache.GetOrBuild(fullPath, filepath.Ext(fullPath), size)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedFormat):
			writeJSONError(w, "unsupported book format", http.StatusBadRequest)
		case errors.Is(err, extract.ErrNoCover):
			writeJSONError(w, "no cover found", http.StatusNotFound)
		case errors.Is(err, extract.ErrInvalidContainer):
			writeJSONError(w, "malformed book file", http.StatusUnprocessableEntity)
		default:
			logging.Error("thumbnail: build failed for %s: %v", bookPath, err)
			writeJSONError(w, "failed to build thumbnail", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := w.Write(thumb); err != nil {
		logging.Debug("thumbnail: write failed for %s: %v", bookPath, err)
	}
}
