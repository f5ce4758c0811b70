package extract

import "errors"

// Sentinel errors returned by the extract package.
var (
	// ErrUnsupportedFormat indicates the file extension does not route to
	// any known container parser. Terminal; never retried.
	ErrUnsupportedFormat = errors.New("extract: unsupported format")

	// ErrNoCover indicates the container was opened successfully but no
	// image satisfied any extraction rule. Distinct from a corrupt file.
	ErrNoCover = errors.New("extract: no cover image found")

	// ErrInvalidContainer indicates the file could not be parsed as the
	// container its extension claims (not a zip, not a Palm database, a
	// truncated header). Fatal for the request.
	ErrInvalidContainer = errors.New("extract: invalid container")
)
