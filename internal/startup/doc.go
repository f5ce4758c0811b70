// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig].
// The following environment variables are supported:
//
//   - BOOKS_DIR: Path to the e-book library directory (default: /books)
//   - CACHE_DIR: Path to cache directory for thumbnails (default: /cache)
//   - PORT: HTTP server port (default: 8080)
//   - METRICS_ENABLED: Enable or disable the /metrics endpoint (default: true)
//   - DEFAULT_SIZE: Default thumbnail bounding box in pixels (default: 256)
//   - OVERLAY_PATH: Explicit path to the overlay icon PNG (default: embedded icon)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//
// # Directory Setup
//
// The books directory is checked but not created (it should be mounted).
// The thumbnail cache directory under CACHE_DIR is optional: if it cannot
// be created or written, caching is disabled and every request is built
// fresh rather than failing.
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
// Version, Commit, BuildTime, and GoVersion.
package startup
