package oned

import (
	"strings"

	"github.com/jalphad/barcode"
)

const (
	codabarStartEndChars    = "ABCD"
	codabarAltStartEndChars = "TN*E"
	codabarDefaultGuard     = 'A'
)

// CodabarWriter encodes a row of Codabar: a start guard, each content
// character's 7-bit bar/space pattern separated by a single narrow gap, and
// an end guard. Contents lacking guard characters are wrapped with a
// default A/A guard pair; the T/N/*/E aliases are normalized to A/B/C/D.
type CodabarWriter struct{}

// NewCodabarWriter creates a CodabarWriter.
func NewCodabarWriter() *CodabarWriter { return &CodabarWriter{} }

func (CodabarWriter) Encode(contents string) ([]bool, error) {
	contents = strings.ToUpper(contents)
	if len(contents) < 2 {
		contents = string(codabarDefaultGuard) + contents + string(codabarDefaultGuard)
	} else {
		first, last := contents[0], contents[len(contents)-1]
		startsNormal := strings.IndexByte(codabarStartEndChars, first) >= 0
		endsNormal := strings.IndexByte(codabarStartEndChars, last) >= 0
		startsAlt := strings.IndexByte(codabarAltStartEndChars, first) >= 0
		endsAlt := strings.IndexByte(codabarAltStartEndChars, last) >= 0
		switch {
		case startsNormal:
			if !endsNormal {
				return nil, barcode.WrapEncodeError("CodabarWriter", barcode.ErrIllegalArgument)
			}
		case startsAlt:
			if !endsAlt {
				return nil, barcode.WrapEncodeError("CodabarWriter", barcode.ErrIllegalArgument)
			}
		default:
			if endsNormal || endsAlt {
				return nil, barcode.WrapEncodeError("CodabarWriter", barcode.ErrIllegalArgument)
			}
			contents = string(codabarDefaultGuard) + contents + string(codabarDefaultGuard)
		}
	}

	width := 0
	codes := make([]int, len(contents))
	for i := 0; i < len(contents); i++ {
		c := contents[i]
		if i == 0 || i == len(contents)-1 {
			if alt := strings.IndexByte(codabarAltStartEndChars, c); alt >= 0 {
				c = codabarStartEndChars[alt]
			}
		}
		idx := strings.IndexByte(codabarAlphabetString, c)
		if idx < 0 {
			return nil, barcode.WrapEncodeError("CodabarWriter", barcode.ErrIllegalArgument)
		}
		codes[i] = codabarCharacterEncodings[idx]
		width += patternLength(codabarPatternToWidths(codes[i]))
		if i < len(contents)-1 {
			width++
		}
	}

	result := make([]bool, width)
	pos := 0
	for i, code := range codes {
		pos += appendPattern(result, pos, codabarPatternToWidths(code), true)
		if i < len(contents)-1 {
			result[pos] = false
			pos++
		}
	}

	return result, nil
}

// codabarPatternToWidths expands the 7-bit narrow(0)/wide(1) pattern used
// by codabarCharacterEncodings into run widths (narrow=1, wide=2).
func codabarPatternToWidths(code int) []int {
	widths := make([]int, 7)
	for i := 0; i < 7; i++ {
		if code&(1<<uint(6-i)) == 0 {
			widths[i] = 1
		} else {
			widths[i] = 2
		}
	}
	return widths
}
