// Package handlers provides HTTP request handlers for the thumbnail API.
//
// It includes handlers for:
//   - Branded cover thumbnails for e-books under the library directory
//   - Cache statistics
//   - Health checks, version information, and Prometheus metrics
package handlers
