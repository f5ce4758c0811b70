// Package booktypes provides shared type definitions for e-book file
// handling across the thumbnailer.
//
// This package exists as a dependency-free foundation that can be imported by
// other packages without creating import cycles. It contains the Format enum,
// the extension dispatch table, and pure helper functions with no dependencies
// beyond the standard library.
//
// # Format Dispatch
//
// Use FormatForExtension to pick the container parser for a file:
//
//	ext := booktypes.NormalizeExtension(filename) // "epub", "mobi", ...
//	format := booktypes.FormatForExtension(ext)
//
//	switch format {
//	case booktypes.FormatEPUB:
//	    // zip container with OPF manifest
//	case booktypes.FormatMOBI:
//	    // Palm database binary (mobi, azw, azw3, kf8, prc)
//	}
//
// FormatUnknown is terminal: callers surface it as an unsupported-format
// error rather than falling back to content sniffing.
package booktypes
