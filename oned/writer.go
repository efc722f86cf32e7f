package oned

import (
	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

// defaultMargin is the quiet-zone module count applied when
// EncodeHints.Margin is zero.
const defaultMargin = 10

// RowEncoder is implemented by every 1D symbology writer: it turns contents
// into a module sequence (bars and spaces, start/stop included, no quiet
// zone), starting with a black module.
type RowEncoder interface {
	Encode(contents string) ([]bool, error)
}

// HintedRowEncoder is implemented by writers whose module sequence depends
// on more than Margin (e.g. Code128Writer's ForceCodeSet/Code128Compact).
// EncodeToMatrix prefers this over RowEncoder.Encode when available.
type HintedRowEncoder interface {
	EncodeWithHints(contents string, hints *barcode.EncodeHints) ([]bool, error)
}

// EncodeToMatrix renders enc's module sequence into a BitMatrix sized to at
// least (sequence length + margin) x height, centering the code and
// stretching modules by the integer multiple needed to fill any larger
// requested width.
func EncodeToMatrix(enc RowEncoder, contents string, width, height int, hints *barcode.EncodeHints) (*bitutil.BitMatrix, error) {
	var (
		code []bool
		err  error
	)
	if h, ok := enc.(HintedRowEncoder); ok {
		code, err = h.EncodeWithHints(contents, hints)
	} else {
		code, err = enc.Encode(contents)
	}
	if err != nil {
		return nil, err
	}
	return renderResult(code, width, height, hints)
}

func renderResult(code []bool, width, height int, hints *barcode.EncodeHints) (*bitutil.BitMatrix, error) {
	margin := defaultMargin
	if hints != nil && hints.Margin > 0 {
		margin = hints.Margin
	}

	sideMargin := margin
	fullWidth := len(code) + sideMargin
	outputWidth := width
	if fullWidth > outputWidth {
		outputWidth = fullWidth
	}
	outputHeight := height
	if outputHeight < 1 {
		outputHeight = 1
	}

	multiple := outputWidth / fullWidth
	if multiple < 1 {
		multiple = 1
	}
	leftPadding := (outputWidth - len(code)*multiple) / 2

	matrix := bitutil.NewBitMatrix(outputWidth, outputHeight)
	for inputBar, set := range code {
		if !set {
			continue
		}
		matrix.SetRegion(leftPadding+inputBar*multiple, 0, multiple, outputHeight)
	}
	return matrix, nil
}

// checkNumeric verifies contents contains only ASCII digits.
func checkNumeric(contents string) error {
	for i := 0; i < len(contents); i++ {
		if contents[i] < '0' || contents[i] > '9' {
			return barcode.WrapEncodeError("checkNumeric", barcode.ErrIllegalArgument)
		}
	}
	return nil
}

// appendPattern writes pattern's alternating-color runs into target
// starting at pos (color alternates each run, beginning with startColor),
// returning the number of modules written.
func appendPattern(target []bool, pos int, pattern []int, startColor bool) int {
	color := startColor
	numAdded := 0
	for _, width := range pattern {
		for j := 0; j < width; j++ {
			target[pos] = color
			pos++
		}
		numAdded += width
		color = !color
	}
	return numAdded
}

// patternLength returns the total module count of an int-run pattern.
func patternLength(pattern []int) int {
	sum := 0
	for _, w := range pattern {
		sum += w
	}
	return sum
}
