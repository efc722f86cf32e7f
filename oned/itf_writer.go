package oned

import "github.com/jalphad/barcode"

const itfMaxContentLength = 80

// ITFWriter encodes an even-length digit string into Interleaved 2 of 5:
// a start guard, each pair of digits interleaved bar-from-first/
// space-from-second across 5 positions, and an end guard.
type ITFWriter struct{}

// NewITFWriter creates an ITFWriter.
func NewITFWriter() *ITFWriter { return &ITFWriter{} }

func (ITFWriter) Encode(contents string) ([]bool, error) {
	if len(contents)%2 != 0 {
		return nil, barcode.WrapEncodeError("ITFWriter", barcode.ErrIllegalArgument)
	}
	if len(contents) > itfMaxContentLength {
		return nil, barcode.WrapEncodeError("ITFWriter", barcode.ErrIllegalArgument)
	}
	if err := checkNumeric(contents); err != nil {
		return nil, barcode.WrapEncodeError("ITFWriter", err)
	}

	result := make([]bool, 9+9*len(contents))
	pos := appendPattern(result, 0, itfStartPattern, true)

	var encoding [10]int
	for i := 0; i < len(contents); i += 2 {
		one := int(contents[i] - '0')
		two := int(contents[i+1] - '0')
		for j := 0; j < 5; j++ {
			encoding[2*j] = itfPatterns[one][j]
			encoding[2*j+1] = itfPatterns[two][j]
		}
		pos += appendPattern(result, pos, encoding[:], true)
	}

	appendPattern(result, pos, itfEndPattern, true)
	return result, nil
}
