package oned

import "github.com/jalphad/barcode"

// EAN8Writer encodes 7 (check digit computed) or 8 (check digit verified)
// digit contents into the 67-module EAN-8 row: start guard, four L digits,
// middle guard, four L digits, end guard.
type EAN8Writer struct{}

// NewEAN8Writer creates an EAN8Writer.
func NewEAN8Writer() *EAN8Writer { return &EAN8Writer{} }

func (EAN8Writer) Encode(contents string) ([]bool, error) {
	if err := checkNumeric(contents); err != nil {
		return nil, barcode.WrapEncodeError("EAN8Writer", err)
	}
	switch len(contents) {
	case 7:
		check := GetStandardUPCEANChecksum(contents)
		if check < 0 {
			return nil, barcode.WrapEncodeError("EAN8Writer", barcode.ErrIllegalArgument)
		}
		contents += string(byte('0' + check))
	case 8:
		if !CheckStandardUPCEANChecksum(contents) {
			return nil, barcode.WrapEncodeError("EAN8Writer", barcode.ErrChecksum)
		}
	default:
		return nil, barcode.WrapEncodeError("EAN8Writer", barcode.ErrIllegalArgument)
	}

	width := patternLength(startEndPattern) + 4*7 + patternLength(middlePattern) + 4*7 + patternLength(startEndPattern)
	result := make([]bool, width)
	pos := 0
	pos += appendPattern(result, pos, startEndPattern, true)

	for i := 0; i < 4; i++ {
		digit := int(contents[i] - '0')
		pos += appendPattern(result, pos, LPatterns[digit][:], false)
	}
	pos += appendPattern(result, pos, middlePattern, false)

	for i := 4; i < 8; i++ {
		digit := int(contents[i] - '0')
		pos += appendPattern(result, pos, LPatterns[digit][:], true)
	}
	appendPattern(result, pos, startEndPattern, true)

	return result, nil
}
