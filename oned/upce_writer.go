package oned

import "github.com/jalphad/barcode"

// upceEndPattern is the six-narrow-module end guard (space first) UPC-E uses
// in place of the ordinary three-module startEndPattern.
var upceEndPattern = []int{1, 1, 1, 1, 1, 1}

// UPCEWriter encodes 7 (check digit computed) or 8 (check digit verified)
// digit UPC-E contents into its compressed 51-module row: start guard, six
// parity-selected L/G digits, six-module end guard.
type UPCEWriter struct{}

// NewUPCEWriter creates a UPCEWriter.
func NewUPCEWriter() *UPCEWriter { return &UPCEWriter{} }

func (UPCEWriter) Encode(contents string) ([]bool, error) {
	if err := checkNumeric(contents); err != nil {
		return nil, barcode.WrapEncodeError("UPCEWriter", err)
	}
	switch len(contents) {
	case 7:
		upca := ConvertUPCEtoUPCA(contents + "0")
		check := GetStandardUPCEANChecksum(upca[:11])
		if check < 0 {
			return nil, barcode.WrapEncodeError("UPCEWriter", barcode.ErrIllegalArgument)
		}
		contents += string(byte('0' + check))
	case 8:
		upca := ConvertUPCEtoUPCA(contents)
		if !CheckStandardUPCEANChecksum(upca) {
			return nil, barcode.WrapEncodeError("UPCEWriter", barcode.ErrChecksum)
		}
	default:
		return nil, barcode.WrapEncodeError("UPCEWriter", barcode.ErrIllegalArgument)
	}

	firstDigit := int(contents[0] - '0')
	if firstDigit != 0 && firstDigit != 1 {
		return nil, barcode.WrapEncodeError("UPCEWriter", barcode.ErrIllegalArgument)
	}
	checkDigit := int(contents[7] - '0')
	parity := numsysAndCheckDigitPatterns[firstDigit][checkDigit]

	width := patternLength(startEndPattern) + 6*7 + patternLength(upceEndPattern)
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
	appendPattern(result, pos, upceEndPattern, false)

	return result, nil
}
