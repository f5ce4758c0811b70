// Command coverthumb generates a single branded cover thumbnail from the
// command line.
//
// Usage:
//
//	coverthumb [flags] <book-file>
//
// Flags:
//
//	-size N     Thumbnail bounding box in pixels (default 256, clamped to 16..1024)
//	-out PATH   Output PNG path (default: <book-file>.png next to the input)
//	-overlay P  Overlay icon PNG (default: embedded icon)
//
// The thumbnail is always written fresh; the disk cache used by the HTTP
// server is not consulted.
package main
