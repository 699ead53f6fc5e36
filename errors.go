package landing

import "errors"

// Sentinel errors for library operations.
var (
	ErrUnknownBlockKind = errors.New("unknown block kind")
	ErrNilBlockData     = errors.New("block data cannot be nil")
	ErrKindMismatch     = errors.New("block data does not match block kind")
	ErrArchiveWrite     = errors.New("archive assembly failed")

	// Export options validation errors.
	ErrInvalidMaxWidth = errors.New("invalid max width")
	ErrInvalidQuality  = errors.New("invalid quality")
)
