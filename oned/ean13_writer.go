package oned

import "github.com/jalphad/barcode"

// EAN13Writer encodes 12 (check digit computed) or 13 (check digit
// verified) digit contents into the 95-module EAN-13 row: start guard,
// six parity-selected L/G digits, middle guard, six L digits, end guard.
type EAN13Writer struct{}

// NewEAN13Writer creates an EAN13Writer.
func NewEAN13Writer() *EAN13Writer { return &EAN13Writer{} }

func (EAN13Writer) Encode(contents string) ([]bool, error) {
	if err := checkNumeric(contents); err != nil {
		return nil, barcode.WrapEncodeError("EAN13Writer", err)
	}
	switch len(contents) {
	case 12:
		check := GetStandardUPCEANChecksum(contents)
		if check < 0 {
			return nil, barcode.WrapEncodeError("EAN13Writer", barcode.ErrIllegalArgument)
		}
		contents += string(byte('0' + check))
	case 13:
		if !CheckStandardUPCEANChecksum(contents) {
			return nil, barcode.WrapEncodeError("EAN13Writer", barcode.ErrChecksum)
		}
	default:
		return nil, barcode.WrapEncodeError("EAN13Writer", barcode.ErrIllegalArgument)
	}

	firstDigit := int(contents[0] - '0')
	parity := firstDigitEncodings[firstDigit]

	width := patternLength(startEndPattern) + 6*7 + patternLength(middlePattern) + 6*7 + patternLength(startEndPattern)
	result := make([]bool, width)
	pos := 0
	pos += appendPattern(result, pos, startEndPattern, true)

	for i := 1; i <= 6; i++ {
		digit := int(contents[i] - '0')
		if parity&(1<<uint(6-i)) != 0 {
			digit += 10
		}
		pos += appendPattern(result, pos, LAndGPatterns[digit][:], false)
	}
	pos += appendPattern(result, pos, middlePattern, false)

	for i := 7; i <= 12; i++ {
		digit := int(contents[i] - '0')
		pos += appendPattern(result, pos, LPatterns[digit][:], true)
	}
	appendPattern(result, pos, startEndPattern, true)

	return result, nil
}
