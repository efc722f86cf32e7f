package barcode

import "github.com/jalphad/barcode/bitutil"

// BitMatrixProvider adapts a bitutil.BitMatrix (e.g. a binarised raster
// image, built by a caller-supplied collaborator) to the RowProvider
// interface the 1D row-scan driver consumes.
type BitMatrixProvider struct {
	matrix *bitutil.BitMatrix
}

// NewBitMatrixProvider wraps matrix as a RowProvider.
func NewBitMatrixProvider(matrix *bitutil.BitMatrix) *BitMatrixProvider {
	return &BitMatrixProvider{matrix: matrix}
}

func (p *BitMatrixProvider) Width() int  { return p.matrix.Width() }
func (p *BitMatrixProvider) Height() int { return p.matrix.Height() }

func (p *BitMatrixProvider) GetBlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error) {
	return p.matrix.GetRow(y, row), nil
}

func (p *BitMatrixProvider) RotateCounterClockwise() RowProvider {
	return &BitMatrixProvider{matrix: p.matrix.RotateCounterClockwise90()}
}
