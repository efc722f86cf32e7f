package oned

import (
	"strings"

	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

const (
	upceanMaxAvgVariance        = 0.48
	upceanMaxIndividualVariance = 0.7
)

// UPC/EAN guard patterns.
var (
	startEndPattern = []int{1, 1, 1}
	middlePattern   = []int{1, 1, 1, 1, 1}
	// extensionStartPattern is the EAN-2/EAN-5 extension lead-in.
	extensionStartPattern = []int{1, 1, 2}
)

// LPatterns are the ten 4-run width "L" (odd parity) digit encodings.
var LPatterns = [10][4]int{
	{3, 2, 1, 1}, {2, 2, 2, 1}, {2, 1, 2, 2}, {1, 4, 1, 1}, {1, 1, 3, 2},
	{1, 2, 3, 1}, {1, 1, 1, 4}, {1, 3, 1, 2}, {1, 2, 1, 3}, {3, 1, 1, 2},
}

// LAndGPatterns is LPatterns followed by each entry reversed (the "G",
// even-parity / mirror encoding).
var LAndGPatterns [20][4]int

func init() {
	for i := 0; i < 10; i++ {
		LAndGPatterns[i] = LPatterns[i]
	}
	for i := 10; i < 20; i++ {
		src := LPatterns[i-10]
		LAndGPatterns[i] = [4]int{src[3], src[2], src[1], src[0]}
	}
}

// middleDecoder is implemented by each UPC/EAN-family format to decode the
// symbology-specific middle section between start and end guards.
type middleDecoder interface {
	decodeMiddle(row *bitutil.BitArray, startRange [2]int, result *strings.Builder) (int, error)
	format() barcode.Format
}

// decodeUPCEAN implements the common UPC/EAN decode flow: start guard,
// format-specific middle, end guard, quiet zone, length and checksum
// validation, then EAN-2/EAN-5 extension lookup.
func decodeUPCEAN(rowNumber int, row *bitutil.BitArray, d middleDecoder, hints *barcode.DecodeHints) (*barcode.Result, error) {
	startRange, err := findStartGuardPattern(row)
	if err != nil {
		return nil, err
	}
	notifyResultPoint(hints, float64(startRange[0]+startRange[1])/2.0, float64(rowNumber))

	var sb strings.Builder
	endStart, err := d.decodeMiddle(row, startRange, &sb)
	if err != nil {
		return nil, err
	}

	endRange, err := findEndGuardPattern(row, endStart, d.format())
	if err != nil {
		return nil, err
	}
	notifyResultPoint(hints, float64(endRange[0]+endRange[1])/2.0, float64(rowNumber))

	end := endRange[1]
	quietEnd := end + (end - endRange[0])
	if quietEnd > row.Size() || !row.IsRange(end, min(quietEnd, row.Size()), false) {
		return nil, barcode.ErrNotFound
	}

	text := sb.String()
	if len(text) < 8 {
		return nil, barcode.ErrFormat
	}

	checksumStr := text
	if d.format() == barcode.FormatUPCE {
		checksumStr = ConvertUPCEtoUPCA(text)
	}
	if !CheckStandardUPCEANChecksum(checksumStr) {
		return nil, barcode.ErrChecksum
	}

	left := float64(startRange[0]+startRange[1]) / 2.0
	right := float64(endRange[0]+endRange[1]) / 2.0
	result := barcode.NewResult(text, nil, []barcode.ResultPoint{
		{X: left, Y: float64(rowNumber)},
		{X: right, Y: float64(rowNumber)},
	}, d.format())

	symbologyID := "0"
	if d.format() == barcode.FormatEAN8 {
		symbologyID = "4"
	}
	result.PutMetadata(barcode.MetadataSymbologyIdentifier, "]E"+symbologyID)

	if d.format() == barcode.FormatEAN13 || d.format() == barcode.FormatUPCA {
		if country := lookupCountry(text); country != "" {
			result.PutMetadata(barcode.MetadataPossibleCountry, country)
		}
	}

	decodeExtension(row, end, hints, result)

	return result, nil
}

func notifyResultPoint(hints *barcode.DecodeHints, x, y float64) {
	if hints != nil && hints.ResultPointCallback != nil {
		hints.ResultPointCallback(barcode.ResultPoint{X: x, Y: y})
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// CheckStandardUPCEANChecksum verifies that s's trailing digit is the
// correct UPC/EAN check digit for the digits preceding it.
func CheckStandardUPCEANChecksum(s string) bool {
	if len(s) == 0 {
		return false
	}
	check := int(s[len(s)-1] - '0')
	expected := GetStandardUPCEANChecksum(s[:len(s)-1])
	return expected >= 0 && expected == check
}

// GetStandardUPCEANChecksum computes the UPC/EAN check digit for digits
// (not including the check digit itself): sum the odd-indexed-from-the-right
// digits times 3 plus the even-indexed ones, then take (1000-sum) mod 10.
func GetStandardUPCEANChecksum(digits string) int {
	length := len(digits)
	sum := 0
	for i := length - 1; i >= 0; i -= 2 {
		d := int(digits[i] - '0')
		if d < 0 || d > 9 {
			return -1
		}
		sum += d
	}
	sum *= 3
	for i := length - 2; i >= 0; i -= 2 {
		d := int(digits[i] - '0')
		if d < 0 || d > 9 {
			return -1
		}
		sum += d
	}
	return (1000 - sum) % 10
}

func findStartGuardPattern(row *bitutil.BitArray) ([2]int, error) {
	counters := make([]int, len(startEndPattern))
	nextStart := 0
	for {
		for i := range counters {
			counters[i] = 0
		}
		startRange, err := findGuardPattern(row, nextStart, false, startEndPattern, counters)
		if err != nil {
			return [2]int{}, err
		}
		start := startRange[0]
		nextStart = startRange[1]
		quietStart := start - (nextStart - start)
		if quietStart >= 0 && row.IsRange(quietStart, start, false) {
			return startRange, nil
		}
	}
}

func findEndGuardPattern(row *bitutil.BitArray, endStart int, format barcode.Format) ([2]int, error) {
	if format == barcode.FormatUPCE {
		endPattern := []int{1, 1, 1, 1, 1, 1}
		return findGuardPattern(row, endStart, true, endPattern, make([]int, len(endPattern)))
	}
	return findGuardPattern(row, endStart, false, startEndPattern, make([]int, len(startEndPattern)))
}

func findGuardPattern(row *bitutil.BitArray, rowOffset int, whiteFirst bool, pattern, counters []int) ([2]int, error) {
	width := row.Size()
	if whiteFirst {
		rowOffset = row.GetNextUnset(rowOffset)
	} else {
		rowOffset = row.GetNextSet(rowOffset)
	}
	counterPosition := 0
	patternStart := rowOffset
	patternLength := len(pattern)
	isWhite := whiteFirst

	for x := rowOffset; x < width; x++ {
		if row.Get(x) != isWhite {
			counters[counterPosition]++
		} else {
			if counterPosition == patternLength-1 {
				if PatternMatchVariance(counters, pattern, upceanMaxIndividualVariance) < upceanMaxAvgVariance {
					return [2]int{patternStart, x}, nil
				}
				patternStart += counters[0] + counters[1]
				copy(counters, counters[2:counterPosition+1])
				counters[counterPosition-1] = 0
				counters[counterPosition] = 0
				counterPosition--
			} else {
				counterPosition++
			}
			counters[counterPosition] = 1
			isWhite = !isWhite
		}
	}
	return [2]int{}, barcode.ErrNotFound
}

// findMiddleGuardPattern finds the middle guard (five alternating runs,
// white-first) starting at rowOffset.
func findMiddleGuardPattern(row *bitutil.BitArray, rowOffset int) ([2]int, error) {
	return findGuardPattern(row, rowOffset, true, middlePattern, make([]int, len(middlePattern)))
}

// decodeDigit decodes a single encoded digit at rowOffset against the given
// candidate patterns, returning the matching index and the row offset just
// past the decoded digit.
func decodeDigit(row *bitutil.BitArray, counters []int, rowOffset int, patterns [][4]int) (int, error) {
	if err := RecordPattern(row, rowOffset, counters); err != nil {
		return 0, err
	}
	best := upceanMaxAvgVariance
	bestMatch := -1
	patternCounters := make([]int, 4)
	for i, pattern := range patterns {
		patternCounters[0], patternCounters[1], patternCounters[2], patternCounters[3] = pattern[0], pattern[1], pattern[2], pattern[3]
		variance := PatternMatchVariance(counters, patternCounters, upceanMaxIndividualVariance)
		if variance < best {
			best = variance
			bestMatch = i
		}
	}
	if bestMatch >= 0 {
		return bestMatch, nil
	}
	return 0, barcode.ErrNotFound
}

// countryRange is one entry of the country-prefix lookup table: the first
// three digits of an EAN-13/UPC-A payload, as a static sorted inclusive
// range.
type countryRange struct {
	lo, hi  int
	country string
}

var countryRanges = []countryRange{
	{0, 19, "US/CA"}, {30, 39, "US"}, {60, 139, "US/CA"}, {300, 379, "FR"},
	{400, 440, "DE"}, {450, 459, "JP"}, {460, 469, "RU"}, {490, 499, "JP"},
	{500, 509, "GB"}, {690, 699, "CN"}, {729, 729, "IL"}, {730, 739, "SE"},
	{754, 755, "CA"}, {760, 769, "CH"}, {840, 849, "ES"}, {850, 850, "CU"},
	{858, 858, "SK"}, {859, 859, "CZ"}, {860, 860, "YU"}, {867, 867, "KP"},
	{868, 869, "TR"}, {880, 880, "KR"}, {885, 885, "TH"}, {888, 888, "SG"},
	{890, 890, "IN"}, {893, 893, "VN"}, {899, 899, "ID"}, {900, 919, "AT"},
	{930, 939, "AU"}, {940, 949, "NZ"}, {955, 955, "MY"}, {977, 977, "SSI"},
	{978, 979, "BOOKLAND"}, {980, 980, "REFUND"}, {981, 984, "COMMON"},
	{990, 999, "COMMON"},
}

func lookupCountry(digits string) string {
	if len(digits) < 3 {
		return ""
	}
	prefix := 0
	for i := 0; i < 3; i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return ""
		}
		prefix = prefix*10 + int(c-'0')
	}
	for _, r := range countryRanges {
		if prefix >= r.lo && prefix <= r.hi {
			return r.country
		}
	}
	return ""
}
