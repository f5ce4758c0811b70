package handlers

import (
	"net/http"

	"ebook-thumbnailer/internal/logging"
)

// CacheStatsResponse describes the state of the thumbnail cache
type CacheStatsResponse struct {
	Enabled     bool  `json:"enabled"`
	Entries     int   `json:"entries"`
	TotalBytes  int64 `json:"totalBytes"`
	Extractions int64 `json:"extractions"`
}

// GetCacheStats reports thumbnail cache entry count, disk usage, and the
// number of extractions performed since startup.
func (h *Handlers) GetCacheStats(w http.ResponseWriter, _ *http.Request) {
	count, bytes, err := h.cache.Stats()
	if err != nil {
		logging.Error("cache stats: %v", err)
		writeJSONError(w, "failed to read cache directory", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, CacheStatsResponse{
		Enabled:     h.cache.IsEnabled(),
		Entries:     count,
		TotalBytes:  bytes,
		Extractions: h.cache.Extractions(),
	})
}
