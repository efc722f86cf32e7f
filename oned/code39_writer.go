package oned

import (
	"strings"

	"github.com/jalphad/barcode"
)

// code39AsteriskEncoding is the 9-bit narrow/wide pattern for the '*'
// start/stop guard: the last entry of code39CharacterEncodings, reached
// through code39AlphabetString's own trailing '*'.
var code39AsteriskEncoding = code39CharacterEncodings[len(code39CharacterEncodings)-1]

const code39MaxContentLength = 80

// Code39Writer encodes a row of Code 39: an asterisk guard, a narrow gap,
// each content character's 9-bit pattern separated by a narrow gap, and a
// closing asterisk guard. Content outside the basic 43-character alphabet
// is transparently re-expressed through the $, %, / and + full-ASCII escape
// pairs.
type Code39Writer struct{}

// NewCode39Writer creates a Code39Writer.
func NewCode39Writer() *Code39Writer { return &Code39Writer{} }

func (Code39Writer) Encode(contents string) ([]bool, error) {
	if len(contents) > code39MaxContentLength {
		return nil, barcode.WrapEncodeError("Code39Writer", barcode.ErrIllegalArgument)
	}
	for i := 0; i < len(contents); i++ {
		if strings.IndexByte(code39AlphabetString, contents[i]) < 0 {
			extended, err := code39ToExtendedMode(contents)
			if err != nil {
				return nil, barcode.WrapEncodeError("Code39Writer", err)
			}
			contents = extended
			if len(contents) > code39MaxContentLength {
				return nil, barcode.WrapEncodeError("Code39Writer", barcode.ErrIllegalArgument)
			}
			break
		}
	}

	narrowWhite := []int{1}
	guardWidths := code39PatternToWidths(code39AsteriskEncoding)
	width := 2*patternLength(guardWidths) + len(contents)*12 + (len(contents)+1)*1
	result := make([]bool, width)

	pos := appendPattern(result, 0, guardWidths, true)
	pos += appendPattern(result, pos, narrowWhite, false)

	for i := 0; i < len(contents); i++ {
		idx := strings.IndexByte(code39AlphabetString, contents[i])
		if idx < 0 {
			return nil, barcode.WrapEncodeError("Code39Writer", barcode.ErrIllegalArgument)
		}
		widths := code39PatternToWidths(code39CharacterEncodings[idx])
		pos += appendPattern(result, pos, widths, true)
		pos += appendPattern(result, pos, narrowWhite, false)
	}
	appendPattern(result, pos, guardWidths, true)

	return result, nil
}

// code39PatternToWidths expands a 9-bit narrow(0)/wide(1) pattern into
// run widths (narrow=1 unit, wide=2 units), the writer-side dual of
// code39ToNarrowWidePattern.
func code39PatternToWidths(pattern int) []int {
	widths := make([]int, 9)
	for i := 0; i < 9; i++ {
		if pattern&(1<<uint(8-i)) == 0 {
			widths[i] = 1
		} else {
			widths[i] = 2
		}
	}
	return widths
}

// code39ToExtendedMode re-expresses contents through Code 39's full-ASCII
// escape pairs ($, %, /, +) so every byte becomes an encodable basic
// character, the encode-side dual of decodeCode39ExtendedMode.
func code39ToExtendedMode(contents string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(contents); i++ {
		c := contents[i]
		switch c {
		case 0:
			sb.WriteString("%U")
		case ' ', '-', '.':
			sb.WriteByte(c)
		case '@':
			sb.WriteString("%V")
		case '`':
			sb.WriteString("%W")
		default:
			switch {
			case c <= 26:
				sb.WriteByte('$')
				sb.WriteByte('A' + (c - 1))
			case c < ' ':
				sb.WriteByte('%')
				sb.WriteByte('A' + (c - 27))
			case c <= ',' || c == '/' || c == ':':
				sb.WriteByte('/')
				sb.WriteByte('A' + (c - 33))
			case c <= '9':
				sb.WriteByte('0' + (c - 48))
			case c <= '?':
				sb.WriteByte('%')
				sb.WriteByte('F' + (c - 59))
			case c <= 'Z':
				sb.WriteByte('A' + (c - 65))
			case c <= '_':
				sb.WriteByte('%')
				sb.WriteByte('K' + (c - 91))
			case c <= 'z':
				sb.WriteByte('+')
				sb.WriteByte('A' + (c - 97))
			case c <= 127:
				sb.WriteByte('%')
				sb.WriteByte('P' + (c - 123))
			default:
				return "", barcode.ErrIllegalArgument
			}
		}
	}
	return sb.String(), nil
}
