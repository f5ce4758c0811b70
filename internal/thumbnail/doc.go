// Package thumbnail composites extracted cover images into branded PNG
// thumbnails and caches them on disk.
//
// The Composer decodes raw cover bytes, fits them within the requested
// square preserving aspect ratio, and alpha-blends the overlay icon onto
// the bottom-right corner. The Cache fronts the whole pipeline behind a
// single entry point, GetOrBuild, keyed by a partial-content fingerprint
// (extension + size + sampled byte windows) so large books never need a
// full read.
//
// The engine is synchronous and blocking by design: no background
// goroutines, no cancellation. Callers serialize requests per their own
// model; concurrent processes racing to write the same key write
// byte-identical content, so there is no corruption risk.
package thumbnail
