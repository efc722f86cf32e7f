package oned

import (
	"strings"

	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

const (
	code39MaxAvgVariance        = 0.38
	code39MaxIndividualVariance = 0.5
	code39AlphabetString        = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%*"
)

// code39CharacterEncodings holds, per character in code39AlphabetString, the
// 9-bit pattern (5 bars + 4 spaces, narrow=0/wide=1) that encodes it. The
// last entry is the '*' start/stop guard.
var code39CharacterEncodings = [44]int{
	0x034, 0x121, 0x061, 0x160, 0x031, 0x130, 0x070, 0x025, 0x124, 0x064,
	0x109, 0x049, 0x148, 0x019, 0x118, 0x058, 0x00D, 0x10C, 0x04C, 0x01C,
	0x103, 0x043, 0x142, 0x013, 0x112, 0x052, 0x007, 0x106, 0x046, 0x016,
	0x181, 0x0C1, 0x1C0, 0x091, 0x190, 0x0D0, 0x085, 0x184, 0x0C4, 0x0A8,
	0x0A2, 0x08A, 0x02A, 0x094,
}

// Code39Reader decodes Code 39 barcodes.
type Code39Reader struct {
	usingCheckDigit, extendedMode bool
	decodeRowCounters             [9]int
}

// NewCode39Reader creates a Code39Reader. usingCheckDigit requires and
// strips a trailing Mod-43 check character; extendedMode decodes the
// $, %, / and + escape pairs into the full ASCII set.
func NewCode39Reader(usingCheckDigit, extendedMode bool) *Code39Reader {
	return &Code39Reader{usingCheckDigit: usingCheckDigit, extendedMode: extendedMode}
}

func (r *Code39Reader) DecodeRow(rowNumber int, row *bitutil.BitArray, hints *barcode.DecodeHints) (*barcode.Result, error) {
	if !barcode.WantsFormat(hints, barcode.FormatCode39) {
		return nil, barcode.ErrNotFound
	}

	start, err := findCode39AsteriskPattern(row)
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
		nextStart = row.GetNextSet(nextStart)
		if err := RecordPattern(row, nextStart, counters); err != nil {
			return nil, err
		}
		pattern, perr := code39ToNarrowWidePattern(counters)
		if perr != nil {
			return nil, perr
		}
		decodedChar, derr := code39PatternToChar(pattern)
		if derr != nil {
			return nil, derr
		}
		lastStart = nextStart
		for _, c := range counters {
			nextStart += c
		}
		if decodedChar == '*' {
			// Found end pattern.
			break
		}
		sb.WriteByte(decodedChar)
	}

	width := row.Size()
	lastPatternSize := nextStart - lastStart
	quietEnd := nextStart + lastPatternSize/2
	if quietEnd > width || !row.IsRange(nextStart, min(quietEnd, width), false) {
		return nil, barcode.ErrNotFound
	}

	text := sb.String()
	if r.usingCheckDigit {
		max := len(text) - 1
		total := 0
		for i := 0; i < max; i++ {
			total += strings.IndexByte(code39AlphabetString, text[i])
		}
		if max < 0 || text[max] != code39AlphabetString[total%43] {
			return nil, barcode.ErrChecksum
		}
		text = text[:max]
	}
	if len(text) == 0 {
		return nil, barcode.ErrNotFound
	}

	if r.extendedMode {
		decoded, derr := decodeCode39ExtendedMode(text)
		if derr != nil {
			return nil, derr
		}
		text = decoded
	}

	left := float64(start[0]+start[1]) / 2.0
	right := float64(lastStart+nextStart) / 2.0
	return barcode.NewResult(text, nil, []barcode.ResultPoint{
		{X: left, Y: float64(rowNumber)},
		{X: right, Y: float64(rowNumber)},
	}, barcode.FormatCode39), nil
}

func findCode39AsteriskPattern(row *bitutil.BitArray) ([2]int, error) {
	width := row.Size()
	rowOffset := row.GetNextSet(0)
	counterPosition := 0
	counters := make([]int, 9)
	patternStart := rowOffset
	isWhite := false

	for x := rowOffset; x < width; x++ {
		if row.Get(x) != isWhite {
			counters[counterPosition]++
		} else {
			if counterPosition == 8 {
				pattern, err := code39ToNarrowWidePattern(counters)
				if err == nil {
					if ch, cerr := code39PatternToChar(pattern); cerr == nil && ch == '*' {
						if PatternMatchVariance(counters, code39AsteriskCounters(), code39MaxIndividualVariance) < code39MaxAvgVariance {
							return [2]int{patternStart, x}, nil
						}
					}
				}
				patternStart += counters[0] + counters[1]
				copy(counters, counters[2:9])
				counters[7] = 0
				counters[8] = 0
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

// code39AsteriskCounters returns a representative narrow-wide unit pattern
// for the asterisk (start/stop) character, used only to size the variance
// comparison against the scanned counters.
func code39AsteriskCounters() []int {
	return code39PatternToWidths(code39AsteriskEncoding)
}

// code39ToNarrowWidePattern converts 9 run-length counters into a 9-bit
// narrow(0)/wide(1) pattern by raising the narrow threshold one distinct
// run width at a time until exactly 3 runs are wide (Code 39 is a 3-of-9
// code); it fails once fewer than 3 runs remain above the threshold.
func code39ToNarrowWidePattern(counters []int) (int, error) {
	numCounters := len(counters)
	maxNarrowCounter := 0
	for {
		minCounter := 1 << 30
		for _, c := range counters {
			if c < minCounter && c > maxNarrowCounter {
				minCounter = c
			}
		}
		maxNarrowCounter = minCounter
		wideCounters := 0
		pattern := 0
		for i, c := range counters {
			if c > maxNarrowCounter {
				pattern |= 1 << uint(numCounters-1-i)
				wideCounters++
			}
		}
		if wideCounters == 3 {
			return pattern, nil
		}
		if wideCounters < 3 {
			return 0, barcode.ErrNotFound
		}
	}
}

func code39PatternToChar(pattern int) (byte, error) {
	for i, enc := range code39CharacterEncodings {
		if enc == pattern {
			return code39AlphabetString[i], nil
		}
	}
	return 0, barcode.ErrNotFound
}

func decodeCode39ExtendedMode(encoded string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c == '+' || c == '$' || c == '%' || c == '/' {
			if i+1 >= len(encoded) {
				return "", barcode.ErrFormat
			}
			next := encoded[i+1]
			decoded, err := code39ExtendedPair(c, next)
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

func code39ExtendedPair(escape, next byte) (byte, error) {
	switch escape {
	case '+':
		if next >= 'A' && next <= 'Z' {
			return next + 32, nil
		}
	case '$':
		if next >= 'A' && next <= 'Z' {
			return next - 'A' + 1, nil
		}
	case '%':
		switch {
		case next >= 'A' && next <= 'E':
			return next - 'A' + 27, nil
		case next == 'F':
			return 27, nil
		case next == 'G':
			return 28, nil
		case next == 'H':
			return 29, nil
		case next == 'I':
			return 30, nil
		case next == 'J':
			return 31, nil
		case next >= 'K' && next <= 'O':
			return next - 'K' + '!', nil
		case next == 'P':
			return '@', nil
		case next >= 'U' && next <= 'Z':
			return next - 'U' + 127, nil
		}
	case '/':
		switch {
		case next >= 'A' && next <= 'O':
			return next - 'A' + '!', nil
		}
	}
	return 0, barcode.ErrFormat
}
