package oned

import (
	"strings"

	"github.com/jalphad/barcode"
)

const code93MaxContentLength = 80

// code93AsteriskEncoding is the 9-bit pattern for the '*' start/stop guard,
// the last entry of code93CharacterEncodings (index 47, unreachable through
// code93AlphabetString's own checksum-relevant 47-character prefix).
const code93AsteriskEncoding = 0x15E

// Code93Writer encodes a row of Code 93: a start guard, each content
// character's 9-bit pattern, two mod-47 check characters, an end guard and
// a single trailing termination bar. Content outside the basic alphabet is
// transparently re-expressed through the a/b/c/d full-ASCII escape pairs.
type Code93Writer struct{}

// NewCode93Writer creates a Code93Writer.
func NewCode93Writer() *Code93Writer { return &Code93Writer{} }

func (Code93Writer) Encode(contents string) ([]bool, error) {
	extended, err := code93ToExtendedMode(contents)
	if err != nil {
		return nil, barcode.WrapEncodeError("Code93Writer", err)
	}
	contents = extended
	if len(contents) > code93MaxContentLength {
		return nil, barcode.WrapEncodeError("Code93Writer", barcode.ErrIllegalArgument)
	}

	codeWidth := (len(contents)+2+2)*9 + 1
	result := make([]bool, codeWidth)
	pos := appendCode93Pattern(result, 0, code93AsteriskEncoding)

	for i := 0; i < len(contents); i++ {
		idx := strings.IndexByte(code93AlphabetString, contents[i])
		if idx < 0 {
			return nil, barcode.WrapEncodeError("Code93Writer", barcode.ErrIllegalArgument)
		}
		pos += appendCode93Pattern(result, pos, code93CharacterEncodings[idx])
	}

	check1 := code93CheckDigit(contents, 20)
	pos += appendCode93Pattern(result, pos, code93CharacterEncodings[strings.IndexByte(code93AlphabetString, check1)])
	contents += string(check1)
	check2 := code93CheckDigit(contents, 15)
	pos += appendCode93Pattern(result, pos, code93CharacterEncodings[strings.IndexByte(code93AlphabetString, check2)])

	pos += appendCode93Pattern(result, pos, code93AsteriskEncoding)
	result[pos] = true

	return result, nil
}

// appendCode93Pattern writes a 9-bit pattern's bits directly as module
// colors (bit set = black), unlike appendPattern's run-length alternation:
// Code 93's bit patterns already encode bar/space directly, one bit per
// module.
func appendCode93Pattern(target []bool, pos int, pattern int) int {
	for i := 0; i < 9; i++ {
		target[pos+i] = pattern&(1<<uint(8-i)) != 0
	}
	return 9
}

// code93ToExtendedMode re-expresses contents through Code 93's full-ASCII
// escape pairs (a=$, b=%, c=/, d=+) so every byte becomes an encodable
// basic character, the encode-side dual of decodeCode93ExtendedMode.
func code93ToExtendedMode(contents string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(contents); i++ {
		c := contents[i]
		switch {
		case c == 0:
			sb.WriteString("bU")
		case c <= 26:
			sb.WriteByte('a')
			sb.WriteByte('A' + (c - 1))
		case c <= 31:
			sb.WriteByte('b')
			sb.WriteByte('A' + (c - 27))
		case c == ' ' || c == '$' || c == '%' || c == '+':
			sb.WriteByte(c)
		case c <= ',':
			sb.WriteByte('c')
			sb.WriteByte('A' + (c - '!'))
		case c <= '9':
			sb.WriteByte(c)
		case c == ':':
			sb.WriteString("cZ")
		case c <= '?':
			sb.WriteByte('b')
			sb.WriteByte('F' + (c - ';'))
		case c == '@':
			sb.WriteString("bV")
		case c <= 'Z':
			sb.WriteByte(c)
		case c <= '_':
			sb.WriteByte('b')
			sb.WriteByte('K' + (c - '['))
		case c == '`':
			sb.WriteString("bW")
		case c <= 'z':
			sb.WriteByte('d')
			sb.WriteByte('A' + (c - 'a'))
		case c <= 127:
			sb.WriteByte('b')
			sb.WriteByte('P' + (c - '{'))
		default:
			return "", barcode.ErrIllegalArgument
		}
	}
	return sb.String(), nil
}
