package oned

import (
	"strings"

	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

const code93AlphabetString = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%abcd*"

// code93CharacterEncodings holds, per character in code93AlphabetString, its
// 9-module encoding as a 9-bit mask (bit set = black module), which makes up
// 6 runs (3 bars + 3 spaces). Entries 43-46 are the control characters
// ($=a,%=b,/=c,+=d) used only in extended mode; the last entry is the '*'
// start/stop guard.
var code93CharacterEncodings = [48]int{
	0x114, 0x148, 0x144, 0x142, 0x128, 0x124, 0x122, 0x150, 0x112, 0x10A,
	0x1A8, 0x1A4, 0x1A2, 0x194, 0x192, 0x18A, 0x168, 0x164, 0x162, 0x134,
	0x11A, 0x158, 0x14C, 0x146, 0x12C, 0x116, 0x1B4, 0x1B2, 0x1AC, 0x1A6,
	0x196, 0x19A, 0x16C, 0x166, 0x136, 0x13A, 0x12E, 0x1D4, 0x1D2, 0x1CA,
	0x16E, 0x176, 0x1AE, 0x126, 0x1DA, 0x1D6, 0x132, 0x15E,
}

// Code93Reader decodes Code 93 barcodes.
type Code93Reader struct {
	decodeRowCounters [6]int
}

// NewCode93Reader creates a Code93Reader.
func NewCode93Reader() *Code93Reader { return &Code93Reader{} }

func (r *Code93Reader) DecodeRow(rowNumber int, row *bitutil.BitArray, hints *barcode.DecodeHints) (*barcode.Result, error) {
	if !barcode.WantsFormat(hints, barcode.FormatCode93) {
		return nil, barcode.ErrNotFound
	}

	start, err := findCode93StartPattern(row)
	if err != nil {
		return nil, err
	}
	nextStart := start[1]

	counters := r.decodeRowCounters[:]
	var sb strings.Builder
	var lastStart int
	for {
		for i := range counters {
			counters[i] = 0
		}
		if err := RecordPattern(row, nextStart, counters); err != nil {
			return nil, err
		}
		pattern := code93ToPattern(counters)
		if pattern < 0 {
			return nil, barcode.ErrNotFound
		}
		decodedChar, derr := code93PatternToChar(pattern)
		if derr != nil {
			return nil, derr
		}
		lastStart = nextStart
		for _, c := range counters {
			nextStart += c
		}
		if decodedChar == '*' {
			break
		}
		sb.WriteByte(decodedChar)
	}

	// The stop guard is followed by a one-module termination bar.
	width := row.Size()
	if nextStart == width || !row.Get(nextStart) {
		return nil, barcode.ErrNotFound
	}

	rawText := sb.String()
	if len(rawText) < 2 {
		return nil, barcode.ErrNotFound
	}
	if err := checkCode93Checksums(rawText); err != nil {
		return nil, err
	}
	text := rawText[:len(rawText)-2]
	decoded, derr := decodeCode93ExtendedMode(text)
	if derr != nil {
		return nil, derr
	}

	left := float64(start[0]+start[1]) / 2.0
	right := float64(lastStart+nextStart) / 2.0
	return barcode.NewResult(decoded, nil, []barcode.ResultPoint{
		{X: left, Y: float64(rowNumber)},
		{X: right, Y: float64(rowNumber)},
	}, barcode.FormatCode93), nil
}

func findCode93StartPattern(row *bitutil.BitArray) ([2]int, error) {
	width := row.Size()
	rowOffset := row.GetNextSet(0)
	counterPosition := 0
	counters := make([]int, 6)
	patternStart := rowOffset
	isWhite := false

	for x := rowOffset; x < width; x++ {
		if row.Get(x) != isWhite {
			counters[counterPosition]++
		} else {
			if counterPosition == 5 {
				pattern := code93ToPattern(counters)
				if pattern >= 0 {
					if ch, cerr := code93PatternToChar(pattern); cerr == nil && ch == '*' {
						return [2]int{patternStart, x}, nil
					}
				}
				patternStart += counters[0] + counters[1]
				copy(counters, counters[2:6])
				counters[4] = 0
				counters[5] = 0
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

// code93ToPattern converts 6 run-length counters (each 1-4 narrow units)
// into the 9-bit pattern used to index code93CharacterEncodings, or -1 if
// any run is out of range.
func code93ToPattern(counters []int) int {
	total := 0
	for _, c := range counters {
		total += c
	}
	pattern := 0
	for i, c := range counters {
		scaled := (c*9 + total/2) / total
		if scaled < 1 || scaled > 4 {
			return -1
		}
		if i&1 == 0 {
			for j := 0; j < scaled; j++ {
				pattern = (pattern << 1) | 1
			}
		} else {
			pattern <<= uint(scaled)
		}
	}
	return pattern
}

func code93PatternToChar(pattern int) (byte, error) {
	for i, enc := range code93CharacterEncodings {
		if enc == pattern {
			return code93AlphabetString[i], nil
		}
	}
	return 0, barcode.ErrNotFound
}

func checkCode93Checksums(text string) error {
	if len(text) < 2 {
		return barcode.ErrFormat
	}
	check1 := code93CheckDigit(text[:len(text)-2], 20)
	if check1 != text[len(text)-2] {
		return barcode.ErrChecksum
	}
	check2 := code93CheckDigit(text[:len(text)-1], 15)
	if check2 != text[len(text)-1] {
		return barcode.ErrChecksum
	}
	return nil
}

// code93CheckDigit implements the weighted mod-47 check character used for
// both the C and K check digits (maxWeight differs between them).
func code93CheckDigit(text string, maxWeight int) byte {
	weight := 1
	total := 0
	for i := len(text) - 1; i >= 0; i-- {
		idx := strings.IndexByte(code93AlphabetString, text[i])
		total += idx * weight
		weight++
		if weight > maxWeight {
			weight = 1
		}
	}
	return code93AlphabetString[total%47]
}

func decodeCode93ExtendedMode(encoded string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c >= 'a' && c <= 'd' {
			if i+1 >= len(encoded) {
				return "", barcode.ErrFormat
			}
			next := encoded[i+1]
			decoded, err := code93ExtendedPair(c, next)
			if err != nil {
				return "", err
			}
			sb.WriteByte(decoded)
			i++
		} else {
			sb.WriteByte(c)
		}
	}
	return sb.String(), nil
}

func code93ExtendedPair(escape, next byte) (byte, error) {
	switch escape {
	case 'a':
		if next >= 'A' && next <= 'Z' {
			return next - 'A' + 1, nil
		}
	case 'b':
		switch {
		case next >= 'A' && next <= 'E':
			return next - 'A' + 27, nil
		case next >= 'F' && next <= 'J':
			return next - 'F' + 27, nil
		case next >= 'K' && next <= 'O':
			return next - 'K' + '!', nil
		case next == 'Z':
			return 127, nil
		}
	case 'c':
		if next >= 'A' && next <= 'O' {
			return next - 'A' + '!', nil
		}
	case 'd':
		if next >= 'A' && next <= 'Z' {
			return next + 32, nil
		}
	}
	return 0, barcode.ErrFormat
}
