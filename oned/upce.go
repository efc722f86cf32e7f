package oned

import (
	"strings"

	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

// numsysAndCheckDigitPatterns maps the 6-bit UPC-E parity pattern to
// [numberSystem][checkDigit].
var numsysAndCheckDigitPatterns = [2][10]int{
	{0x38, 0x34, 0x32, 0x31, 0x2C, 0x26, 0x23, 0x2A, 0x29, 0x25},
	{0x07, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A},
}

// UPCEReader decodes UPC-E barcodes.
type UPCEReader struct {
	decodeMiddleCounters [4]int
}

// NewUPCEReader creates a UPCEReader.
func NewUPCEReader() *UPCEReader { return &UPCEReader{} }

func (r *UPCEReader) format() barcode.Format { return barcode.FormatUPCE }

func (r *UPCEReader) DecodeRow(rowNumber int, row *bitutil.BitArray, hints *barcode.DecodeHints) (*barcode.Result, error) {
	if !barcode.WantsFormat(hints, barcode.FormatUPCE) {
		return nil, barcode.ErrNotFound
	}
	return decodeUPCEAN(rowNumber, row, r, hints)
}

func (r *UPCEReader) decodeMiddle(row *bitutil.BitArray, startRange [2]int, result *strings.Builder) (int, error) {
	counters := r.decodeMiddleCounters[:]
	rowOffset := startRange[1]
	lgPatternFound := 0

	for x := 0; x < 6 && rowOffset < row.Size(); x++ {
		bestMatch, err := decodeDigit(row, counters, rowOffset, LAndGPatterns[:])
		if err != nil {
			return 0, err
		}
		result.WriteByte(byte('0' + bestMatch%10))
		for _, c := range counters {
			rowOffset += c
		}
		if bestMatch >= 10 {
			lgPatternFound |= 1 << uint(5-x)
		}
	}

	numSys, checkDigit, err := determineNumSysAndCheckDigit(lgPatternFound)
	if err != nil {
		return 0, err
	}
	s := result.String()
	result.Reset()
	result.WriteByte(byte('0' + numSys))
	result.WriteString(s)
	result.WriteByte(byte('0' + checkDigit))
	return rowOffset, nil
}

func determineNumSysAndCheckDigit(lgPatternFound int) (numSys, checkDigit int, err error) {
	for ns := 0; ns < 2; ns++ {
		for cd := 0; cd < 10; cd++ {
			if numsysAndCheckDigitPatterns[ns][cd] == lgPatternFound {
				return ns, cd, nil
			}
		}
	}
	return 0, 0, barcode.ErrNotFound
}

// ConvertUPCEtoUPCA expands an 8-digit UPC-E string (numSys + 6 compressed
// digits + check digit) to its 12-digit UPC-A equivalent, per the standard
// zero-suppression rules.
func ConvertUPCEtoUPCA(upce string) string {
	if len(upce) != 8 {
		return upce
	}
	digits := []byte(upce)
	upcaChars := make([]byte, 0, 12)
	upcaChars = append(upcaChars, digits[0])
	lastChar := digits[6]

	switch lastChar {
	case '0', '1', '2':
		upcaChars = append(upcaChars, digits[1], digits[2], lastChar, '0', '0', '0', '0', digits[3], digits[4], digits[5])
	case '3':
		upcaChars = append(upcaChars, digits[1], digits[2], digits[3], '0', '0', '0', '0', '0', digits[4], digits[5])
	case '4':
		upcaChars = append(upcaChars, digits[1], digits[2], digits[3], digits[4], '0', '0', '0', '0', '0', digits[5])
	default:
		upcaChars = append(upcaChars, digits[1], digits[2], digits[3], digits[4], digits[5], '0', '0', '0', '0', lastChar)
	}
	upcaChars = append(upcaChars, digits[7])
	return string(upcaChars)
}
