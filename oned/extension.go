package oned

import (
	"fmt"
	"strings"

	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

// checkDigitEncodings maps the 5-digit EAN extension's odd/even parity
// pattern to the implicit check digit.
var checkDigitEncodings = [10]int{
	0x18, 0x14, 0x12, 0x11, 0x0C, 0x06, 0x03, 0x0A, 0x09, 0x05,
}

// decodeExtension looks for an EAN-2 or EAN-5 supplemental barcode
// immediately following the main symbol's end guard and, if found, attaches
// its digits and (for EAN-5) a suggested retail price to result. Failure to
// find an extension is not an error: the main result still stands.
func decodeExtension(row *bitutil.BitArray, rowOffset int, hints *barcode.DecodeHints, result *barcode.Result) {
	extRange, err := findGuardPattern(row, rowOffset, false, extensionStartPattern, make([]int, len(extensionStartPattern)))
	if err != nil {
		return
	}

	var sb strings.Builder
	counters := make([]int, 4)
	end := extRange[1]
	lgPatternFound := 0
	digits := 0

	for digits < 5 && end < row.Size() {
		bestMatch, derr := decodeDigit(row, counters, end, LAndGPatterns[:])
		if derr != nil {
			break
		}
		sb.WriteByte(byte('0' + bestMatch%10))
		for _, c := range counters {
			end += c
		}
		if bestMatch >= 10 {
			lgPatternFound |= 1 << uint(digits)
		}
		digits++
		if digits < 5 {
			sepRange, serr := findGuardPattern(row, end, true, []int{1, 1}, make([]int, 2))
			if serr != nil {
				break
			}
			end = sepRange[1]
		}
	}

	switch digits {
	case 2:
		if value := sb.String(); len(value) == 2 {
			n := int(value[0]-'0')*10 + int(value[1]-'0')
			if n%4 == lgPatternFound {
				result.PutMetadata(barcode.MetadataUPCEANExtension, value)
			}
		}
	case 5:
		value := sb.String()
		checkDigit := -1
		for d, pattern := range checkDigitEncodings {
			if pattern == lgPatternFound {
				checkDigit = d
				break
			}
		}
		if checkDigit < 0 {
			return
		}
		result.PutMetadata(barcode.MetadataUPCEANExtension, value)
		if price := suggestedPrice(value); price != "" {
			result.PutMetadata(barcode.MetadataSuggestedPrice, price)
		}
	}
}

// suggestedPrice implements the conventional EAN-5 price-extension decoding:
// the leading digit selects a currency, the remaining four encode the price
// in that currency's minor units. A leading 9 is reserved (no price).
func suggestedPrice(digits string) string {
	if len(digits) != 5 {
		return ""
	}
	rawAmount := 0
	for _, c := range digits[1:] {
		rawAmount = rawAmount*10 + int(c-'0')
	}
	whole := rawAmount / 100
	cents := rawAmount % 100
	amount := fmt.Sprintf("%d.%02d", whole, cents)
	switch digits[0] {
	case '0':
		return "£" + amount
	case '5':
		return "$" + amount
	default:
		return ""
	}
}
