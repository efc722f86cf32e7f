package decoder

import (
	"strings"

	"github.com/jalphad/barcode"
	"golang.org/x/text/encoding/charmap"
)

const (
	modePAD       = 0
	modeASCII     = 1
	modeC40       = 2
	modeText      = 3
	modeANSIX12   = 4
	modeEDIFACT   = 5
	modeBase256   = 6
	modeECI       = 7
)

// fnc1Positions records the rune offsets in the decoded text where an FNC1
// codeword (translated to ASCII GS, 29) was inserted, used afterward to pick
// the "]dN" symbology modifier.
type bitStreamState struct {
	fnc1Positions map[int]bool
	eciPresent    bool
}

// DecodeBitStream interprets a Data Matrix's decoded data codewords as a
// sequence of mode-switched segments (ASCII, C40, Text, ANSI X12, EDIFACT,
// Base 256, ECI), concatenating their decoded text.
func DecodeBitStream(bytes []byte, version *Version) (*barcode.Result, error) {
	var sb strings.Builder
	pos := 0
	mode := modeASCII
	state := &bitStreamState{fnc1Positions: make(map[int]bool)}

	for pos < len(bytes) && mode != modePAD {
		var err error
		switch mode {
		case modeASCII:
			mode, pos, err = decodeASCIISegment(bytes, pos, &sb, state)
		case modeC40:
			pos, err = decodeC40Segment(bytes, pos, &sb, state)
			mode = modeASCII
		case modeText:
			pos, err = decodeTextSegment(bytes, pos, &sb, state)
			mode = modeASCII
		case modeANSIX12:
			pos, err = decodeANSIX12Segment(bytes, pos, &sb)
			mode = modeASCII
		case modeEDIFACT:
			pos, err = decodeEdifactSegment(bytes, pos, &sb)
			mode = modeASCII
		case modeBase256:
			pos, err = decodeBase256Segment(bytes, pos, &sb)
			mode = modeASCII
		case modeECI:
			pos, err = decodeECISegment(bytes, pos, state)
			mode = modeASCII
		default:
			mode = modePAD
		}
		if err != nil {
			return nil, err
		}
	}

	result := barcode.NewResult(sb.String(), bytes, nil, barcode.FormatDataMatrix)
	result.PutMetadata(barcode.MetadataSymbologyIdentifier, symbologyModifier(state))
	return result, nil
}

// symbologyModifier picks "]dN" per the FNC1 positions observed while
// decoding and whether an ECI designator was seen: the base case is "]d1",
// FNC1 at text position 0 or 4 shifts to "]d2", at 1 or 5 to "]d3"; an ECI
// designator bumps each of those up to "]d4"/"]d5"/"]d6" respectively.
func symbologyModifier(state *bitStreamState) string {
	fnc1AtStart := state.fnc1Positions[0] || state.fnc1Positions[4]
	fnc1AtSecond := state.fnc1Positions[1] || state.fnc1Positions[5]
	switch {
	case state.eciPresent && fnc1AtStart:
		return "]d5"
	case state.eciPresent && fnc1AtSecond:
		return "]d6"
	case state.eciPresent:
		return "]d4"
	case fnc1AtStart:
		return "]d2"
	case fnc1AtSecond:
		return "]d3"
	default:
		return "]d1"
	}
}

// decodeASCIISegment consumes ASCII-mode codewords until it hits a
// mode-latch byte, returning the next mode to switch into. Byte 232 is
// FNC1 (emitted into the text as GS, ASCII 29), byte 235 is the upper shift
// codeword, applying to the single ASCII byte that follows it, and byte 241
// switches to ECI.
func decodeASCIISegment(bytes []byte, pos int, sb *strings.Builder, state *bitStreamState) (int, int, error) {
	upperShift := false
	for pos < len(bytes) {
		oneByte := int(bytes[pos])
		pos++
		switch {
		case oneByte == 0:
			return modePAD, pos, nil
		case oneByte <= 128:
			if upperShift {
				oneByte += 128
			}
			sb.WriteByte(byte(oneByte - 1))
			return modeASCII, pos, nil
		case oneByte == 129:
			return modePAD, pos, nil
		case oneByte <= 229:
			value := oneByte - 130
			sb.WriteByte(byte('0' + value/10))
			sb.WriteByte(byte('0' + value%10))
		case oneByte == 230:
			return modeC40, pos, nil
		case oneByte == 231:
			return modeBase256, pos, nil
		case oneByte == 232:
			state.fnc1Positions[sb.Len()] = true
			sb.WriteByte(29)
		case oneByte == 233, oneByte == 234:
			// structured append / reader programming, not carried into text.
		case oneByte == 235:
			upperShift = true
		case oneByte == 238:
			return modeANSIX12, pos, nil
		case oneByte == 239:
			return modeText, pos, nil
		case oneByte == 240:
			return modeEDIFACT, pos, nil
		case oneByte == 241:
			return modeECI, pos, nil
		default:
			return modePAD, pos, nil
		}
	}
	return modePAD, pos, nil
}

// decodeECISegment reads a single-byte ECI designator; multi-byte
// designators (values above 127) are recognized but not charset-switched,
// matching the ASCII/ISO-8859-1 text model this decoder otherwise assumes.
func decodeECISegment(bytes []byte, pos int, state *bitStreamState) (int, error) {
	if pos >= len(bytes) {
		return pos, barcode.ErrFormat
	}
	state.eciPresent = true
	c1 := int(bytes[pos])
	pos++
	if c1 <= 127 {
		return pos, nil
	}
	if c1 <= 191 {
		if pos >= len(bytes) {
			return pos, barcode.ErrFormat
		}
		pos++
		return pos, nil
	}
	if pos+1 >= len(bytes) {
		return pos, barcode.ErrFormat
	}
	pos += 2
	return pos, nil
}

// c40BasicSetChars/textBasicSetChars map shift-0 values 0-39; values 0-2 are
// shift codes, handled by the caller before falling into the basic set.
const (
	c40BasicSetChars  = "*** 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	textBasicSetChars = "*** 0123456789abcdefghijklmnopqrstuvwxyz"
)

// shift2SetChars is shared by C40 and Text modes (punctuation and symbols);
// value 27 is FNC1 and value 30 is the upper-shift latch, both handled
// outside this table.
const shift2SetChars = `!"#$%&'()*+,-./:;<=>?@[\]^_`

// C40's shift-3 set (ASCII 0x60-0x7F) has no table: value v maps to v+96.
// textShift3Chars is Text mode's shift-3 set: the backtick, the uppercase
// letters, and {|}~.
const textShift3Chars = "`ABCDEFGHIJKLMNOPQRSTUVWXYZ{|}~"

func decodeC40Segment(bytes []byte, pos int, sb *strings.Builder, state *bitStreamState) (int, error) {
	return decodeC40LikeSegment(bytes, pos, sb, state, c40BasicSetChars, false)
}

func decodeTextSegment(bytes []byte, pos int, sb *strings.Builder, state *bitStreamState) (int, error) {
	return decodeC40LikeSegment(bytes, pos, sb, state, textBasicSetChars, true)
}

// decodeC40LikeSegment implements the shared C40/Text triplet-packing
// scheme: three base-40 values packed into two bytes. shift values 1-3 select
// among the basic, direct-ASCII, punctuation, and extended character sets
// for the single value that follows; shift-2 value 27 is FNC1 (emitted as
// GS) and value 30 latches upper shift for the next emitted character.
func decodeC40LikeSegment(bytes []byte, pos int, sb *strings.Builder, state *bitStreamState, basicSet string, textMode bool) (int, error) {
	upperShift := false
	shift := 0
	for pos+1 < len(bytes) {
		if bytes[pos] == 254 {
			pos++
			break
		}
		firstByte := int(bytes[pos])
		secondByte := int(bytes[pos+1])
		pos += 2
		packed := firstByte*256 + secondByte - 1
		values := [3]int{(packed / 1600) % 40, (packed / 40) % 40, packed % 40}
		for _, cv := range values {
			switch shift {
			case 0:
				if cv < 3 {
					shift = cv + 1
					continue
				}
				writeShifted(sb, basicSet[cv], &upperShift)
			case 1:
				writeShifted(sb, byte(cv), &upperShift)
			case 2:
				switch {
				case cv < len(shift2SetChars):
					writeShifted(sb, shift2SetChars[cv], &upperShift)
				case cv == 27:
					state.fnc1Positions[sb.Len()] = true
					sb.WriteByte(29)
				case cv == 30:
					upperShift = true
				}
			case 3:
				if textMode {
					if cv >= len(textShift3Chars) {
						return pos, barcode.ErrFormat
					}
					writeShifted(sb, textShift3Chars[cv], &upperShift)
				} else {
					writeShifted(sb, byte(cv+96), &upperShift)
				}
			}
			shift = 0
		}
	}
	return pos, nil
}

func writeShifted(sb *strings.Builder, ch byte, upperShift *bool) {
	if *upperShift {
		ch += 128
		*upperShift = false
	}
	sb.WriteByte(ch)
}

func decodeANSIX12Segment(bytes []byte, pos int, sb *strings.Builder) (int, error) {
	for pos+1 < len(bytes) {
		if bytes[pos] == 254 {
			pos++
			break
		}
		firstByte := int(bytes[pos])
		secondByte := int(bytes[pos+1])
		pos += 2
		packed := firstByte*256 + secondByte - 1
		values := [3]int{(packed / 1600) % 40, (packed / 40) % 40, packed % 40}
		for _, cv := range values {
			switch {
			case cv == 0:
				sb.WriteByte('\r')
			case cv == 1:
				sb.WriteByte('*')
			case cv == 2:
				sb.WriteByte('>')
			case cv == 3:
				sb.WriteByte(' ')
			case cv < 14:
				sb.WriteByte(byte('0' + cv - 4))
			case cv < 40:
				sb.WriteByte(byte('A' + cv - 14))
			}
		}
	}
	return pos, nil
}

func decodeEdifactSegment(bytes []byte, pos int, sb *strings.Builder) (int, error) {
	for pos < len(bytes) {
		if len(bytes)-pos < 3 {
			break
		}
		b1, b2, b3 := bytes[pos], bytes[pos+1], bytes[pos+2]
		bits := uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
		pos += 3
		done := false
		for i := 0; i < 4; i++ {
			sixBits := byte((bits >> uint(18-6*i)) & 0x3F)
			if sixBits == 0x1F {
				done = true
				break
			}
			if sixBits < 32 {
				sb.WriteByte(sixBits)
			} else {
				sb.WriteByte(sixBits + 32)
			}
		}
		if done {
			break
		}
	}
	return pos, nil
}

// decodeBase256Segment decodes a length-prefixed run of byte-mode data,
// de-randomized per the standard's 255-state pseudorandom sequence, and
// interprets it as ISO-8859-1 text.
func decodeBase256Segment(bytes []byte, pos int, sb *strings.Builder) (int, error) {
	if pos >= len(bytes) {
		return pos, barcode.ErrFormat
	}
	codewordPosition := pos
	d1 := unrandomize255State(int(bytes[pos]), codewordPosition+1)
	pos++
	var count int
	if d1 == 0 {
		return pos, barcode.ErrFormat
	} else if d1 <= 249 {
		count = d1
	} else {
		if pos >= len(bytes) {
			return pos, barcode.ErrFormat
		}
		d2 := unrandomize255State(int(bytes[pos]), codewordPosition+2)
		pos++
		count = 250*(d1-249) + d2
	}
	if count < 0 || pos+count > len(bytes) {
		return pos, barcode.ErrFormat
	}

	raw := make([]byte, count)
	for i := 0; i < count; i++ {
		raw[i] = byte(unrandomize255State(int(bytes[pos]), pos+1))
		pos++
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return pos, barcode.ErrFormat
	}
	sb.Write(decoded)
	return pos, nil
}

func unrandomize255State(randomizedBase256Codeword, base256CodewordPosition int) int {
	pseudoRandom := ((149 * base256CodewordPosition) % 255) + 1
	tempVariable := randomizedBase256Codeword - pseudoRandom
	if tempVariable < 0 {
		tempVariable += 256
	}
	return tempVariable
}
