package barcode

import "github.com/jalphad/barcode/bitutil"

// RowProvider is the abstract image collaborator a 1D row-scan driver
// consumes: it exposes width, height, and per-row access to a black/white
// raster, without this module ever performing binarisation itself (that
// remains an external collaborator's job per this module's scope).
type RowProvider interface {
	Width() int
	Height() int

	// GetBlackRow returns row y as a BitArray of length Width(), reusing
	// row (if non-nil and correctly sized) to avoid an allocation per row.
	GetBlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error)

	// RotateCounterClockwise returns a new RowProvider representing this
	// image rotated 90 degrees counter-clockwise, or nil if rotation isn't
	// supported by the underlying source.
	RotateCounterClockwise() RowProvider
}

// Reader is the uniform capability every decoder (1D multi-format, Data
// Matrix) exposes to a top-level dispatcher.
type Reader interface {
	Decode(image RowProvider, hints *DecodeHints) (*Result, error)
}
