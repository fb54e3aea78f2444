package plotmark

import "errors"

// Sentinel errors returned by drawing operations.
var (
	// ErrInvalidScale is returned when a draw is requested with a zero or
	// negative scale factor. Scale is a caller contract violation rather
	// than a recoverable condition, so no degenerate output is produced.
	ErrInvalidScale = errors.New("plotmark: scale must be > 0")

	// ErrResourceAllocation is returned when an offscreen surface for the
	// raster cache cannot be created.
	ErrResourceAllocation = errors.New("plotmark: offscreen surface allocation failed")
)
