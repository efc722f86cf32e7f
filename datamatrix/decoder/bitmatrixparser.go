package decoder

import (
	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

// BitMatrixParser extracts the codeword stream from a Data Matrix symbol's
// bit matrix using the standard's "Utah" diagonal placement order, along
// with its four corner-case exceptions at the matrix boundaries.
type BitMatrixParser struct {
	mappingBitMatrix *bitutil.BitMatrix
	version          *Version
}

// NewBitMatrixParser validates matrix against the known Version table and
// strips its alignment-pattern border, leaving only the data region bits.
func NewBitMatrixParser(matrix *bitutil.BitMatrix) (*BitMatrixParser, error) {
	dimension := matrix.Height()
	if dimension < 8 || dimension > 144 || dimension%2 != 0 {
		return nil, barcode.ErrFormat
	}
	version, err := VersionForDimensions(matrix.Width(), dimension)
	if err != nil {
		return nil, err
	}
	return &BitMatrixParser{mappingBitMatrix: extractDataRegion(matrix, version), version: version}, nil
}

// extractDataRegion removes the alternating solid/dashed alignment pattern
// rows and columns between data regions, leaving the bits that actually
// carry codeword data.
func extractDataRegion(matrix *bitutil.BitMatrix, version *Version) *bitutil.BitMatrix {
	symbolDataWidth := version.DataRegionWidth
	symbolDataHeight := version.DataRegionHeight
	numDataRegionsRow := version.SymbolHeight / (symbolDataHeight + 2)
	if numDataRegionsRow == 0 {
		numDataRegionsRow = 1
	}
	numDataRegionsCol := version.SymbolWidth / (symbolDataWidth + 2)
	if numDataRegionsCol == 0 {
		numDataRegionsCol = 1
	}
	sizeDataRegionRow := numDataRegionsRow * symbolDataHeight
	sizeDataRegionCol := numDataRegionsCol * symbolDataWidth

	result := bitutil.NewBitMatrix(sizeDataRegionCol, sizeDataRegionRow)
	for dataRegionLayoutRow := 0; dataRegionLayoutRow < numDataRegionsRow; dataRegionLayoutRow++ {
		for dataRegionLayoutCol := 0; dataRegionLayoutCol < numDataRegionsCol; dataRegionLayoutCol++ {
			dataRegionRowOffset := dataRegionLayoutRow * (symbolDataHeight + 2)
			dataRegionColOffset := dataRegionLayoutCol * (symbolDataWidth + 2)
			for r := 0; r < symbolDataHeight; r++ {
				readRowOffset := dataRegionRowOffset + 1 + r
				writeRowOffset := dataRegionLayoutRow*symbolDataHeight + r
				for c := 0; c < symbolDataWidth; c++ {
					readColOffset := dataRegionColOffset + 1 + c
					if matrix.Get(readColOffset, readRowOffset) {
						writeColOffset := dataRegionLayoutCol*symbolDataWidth + c
						result.Set(writeColOffset, writeRowOffset)
					}
				}
			}
		}
	}
	return result
}

// ReadCodewords walks the mapping matrix in the standard's diagonal "Utah"
// pattern, reading 8 bits per codeword, handling the four corner special
// cases that occur when a diagonal run falls off the matrix edge.
func (p *BitMatrixParser) ReadCodewords() ([]byte, error) {
	result := make([]byte, p.version.TotalCodewords)
	resultOffset := 0

	row := 4
	col := 0
	numRows := p.mappingBitMatrix.Height()
	numCols := p.mappingBitMatrix.Width()

	corner1Read, corner2Read, corner3Read, corner4Read := false, false, false, false

	for row < numRows || col < numCols {
		if row == numRows && col == 0 && !corner1Read {
			result[resultOffset] = p.readCorner1(numRows, numCols)
			resultOffset++
			row -= 2
			col += 2
			corner1Read = true
		} else if row == numRows-2 && col == 0 && numCols%4 != 0 && !corner2Read {
			result[resultOffset] = p.readCorner2(numRows, numCols)
			resultOffset++
			row -= 2
			col += 2
			corner2Read = true
		} else if row == numRows+4 && col == 2 && numCols%8 == 0 && !corner3Read {
			result[resultOffset] = p.readCorner3(numRows, numCols)
			resultOffset++
			row -= 2
			col += 2
			corner3Read = true
		} else if row == numRows-2 && col == 0 && numCols%8 == 4 && !corner4Read {
			result[resultOffset] = p.readCorner4(numRows, numCols)
			resultOffset++
			row -= 2
			col += 2
			corner4Read = true
		} else {
			for {
				if row < numRows && col >= 0 {
					if b, ok := p.readUtah(row, col, numRows, numCols); ok {
						result[resultOffset] = b
						resultOffset++
					}
				}
				row -= 2
				col += 2
				if row < 0 || col >= numCols {
					break
				}
			}
			row += 1
			col += 3

			for {
				if row >= 0 && col < numCols {
					if b, ok := p.readUtah(row, col, numRows, numCols); ok {
						result[resultOffset] = b
						resultOffset++
					}
				}
				row += 2
				col -= 2
				if row >= numRows || col < 0 {
					break
				}
			}
			row += 3
			col += 1
		}
		if resultOffset >= len(result) {
			break
		}
	}

	if resultOffset != p.version.TotalCodewords {
		return nil, barcode.ErrFormat
	}
	return result, nil
}

// readUtah reads the 8 module positions of the standard "Utah" template
// anchored at (row, col), wrapping indices that fall outside the matrix
// back around to the opposite edge.
func (p *BitMatrixParser) readUtah(row, col, numRows, numCols int) (byte, bool) {
	currentByte := 0
	if p.readModule(row-2, col-2, numRows, numCols) {
		currentByte |= 1
	}
	currentByte <<= 1
	if p.readModule(row-2, col-1, numRows, numCols) {
		currentByte |= 1
	}
	currentByte <<= 1
	if p.readModule(row-1, col-2, numRows, numCols) {
		currentByte |= 1
	}
	currentByte <<= 1
	if p.readModule(row-1, col-1, numRows, numCols) {
		currentByte |= 1
	}
	currentByte <<= 1
	if p.readModule(row-1, col, numRows, numCols) {
		currentByte |= 1
	}
	currentByte <<= 1
	if p.readModule(row, col-2, numRows, numCols) {
		currentByte |= 1
	}
	currentByte <<= 1
	if p.readModule(row, col-1, numRows, numCols) {
		currentByte |= 1
	}
	currentByte <<= 1
	if p.readModule(row, col, numRows, numCols) {
		currentByte |= 1
	}
	return byte(currentByte), true
}

func (p *BitMatrixParser) readModule(row, col, numRows, numCols int) bool {
	if row < 0 {
		row += numRows
		col += 4 - ((numRows + 4) % 8)
	}
	if col < 0 {
		col += numCols
		row += 4 - ((numCols + 4) % 8)
	}
	return p.mappingBitMatrix.Get(col, row)
}

func (p *BitMatrixParser) readCorner1(numRows, numCols int) byte {
	currentByte := 0
	bits := []struct{ r, c int }{
		{numRows - 1, 0}, {numRows - 1, 1}, {numRows - 1, 2},
		{0, numCols - 2}, {0, numCols - 1}, {1, numCols - 1},
		{2, numCols - 1}, {3, numCols - 1},
	}
	for _, b := range bits {
		currentByte <<= 1
		if p.mappingBitMatrix.Get(b.c, b.r) {
			currentByte |= 1
		}
	}
	return byte(currentByte)
}

func (p *BitMatrixParser) readCorner2(numRows, numCols int) byte {
	currentByte := 0
	bits := []struct{ r, c int }{
		{numRows - 3, 0}, {numRows - 2, 0}, {numRows - 1, 0},
		{0, numCols - 4}, {0, numCols - 3}, {0, numCols - 2}, {0, numCols - 1}, {1, numCols - 1},
	}
	for _, b := range bits {
		currentByte <<= 1
		if p.mappingBitMatrix.Get(b.c, b.r) {
			currentByte |= 1
		}
	}
	return byte(currentByte)
}

func (p *BitMatrixParser) readCorner3(numRows, numCols int) byte {
	currentByte := 0
	bits := []struct{ r, c int }{
		{numRows - 1, 0}, {numRows - 1, numCols - 1},
		{0, numCols - 3}, {0, numCols - 2}, {0, numCols - 1},
		{1, numCols - 3}, {1, numCols - 2}, {1, numCols - 1},
	}
	for _, b := range bits {
		currentByte <<= 1
		if p.mappingBitMatrix.Get(b.c, b.r) {
			currentByte |= 1
		}
	}
	return byte(currentByte)
}

func (p *BitMatrixParser) readCorner4(numRows, numCols int) byte {
	currentByte := 0
	bits := []struct{ r, c int }{
		{numRows - 3, 0}, {numRows - 2, 0}, {numRows - 1, 0},
		{0, numCols - 2}, {0, numCols - 1},
		{1, numCols - 1}, {2, numCols - 1}, {3, numCols - 1},
	}
	for _, b := range bits {
		currentByte <<= 1
		if p.mappingBitMatrix.Get(b.c, b.r) {
			currentByte |= 1
		}
	}
	return byte(currentByte)
}
