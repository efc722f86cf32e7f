// Package rssexpanded implements the GS1 general-purpose Application
// Identifier field decoder used by RSS/GS1 DataBar Expanded symbols: it
// turns a decoded bit string into an AI-tagged text payload such as
// "(01)12345678901231(10)ABC123". AIs are read as two-digit numeric pairs;
// a field is either numeric pairs or raw 8-bit characters. There is no
// alphanumeric or ISO-646 mode.
package rssexpanded

import (
	"strconv"
	"strings"

	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

const (
	numericModeShift = 4
	alphaModeShift   = 5
	isoModeShift     = 5
)

// aiFieldLength holds the fixed data-field digit counts for the AIs with
// well-known fixed lengths; an AI absent from this table, or listed with
// length 0, is decoded by decodeVariableField. The three- and four-digit
// keys are never looked up, since readAI returns two-digit AIs only.
var aiFieldLength = map[string]int{
	"00": 18, "01": 14, "02": 14, "10": 0, "11": 6, "12": 6, "13": 6,
	"15": 6, "16": 6, "17": 6, "20": 2, "21": 20, "30": 8, "37": 8,
	"400": 30, "401": 30, "402": 17, "403": 30,
	"3100": 6, "3101": 6, "3102": 6, "3103": 6, "3200": 6, "3920": 15,
	"3921": 15, "3930": 15, "3931": 15,
}

// Decode parses a General Application Identifier bit field (as produced by
// stitching together an RSS Expanded symbol's segments) into its AI-tagged
// string representation.
func Decode(bits *bitutil.BitArray) (string, error) {
	source := newGeneralDecoder(bits)
	return source.decodeAllCodes()
}

type generalDecoder struct {
	bits *bitutil.BitArray
	pos  int
}

func newGeneralDecoder(bits *bitutil.BitArray) *generalDecoder {
	return &generalDecoder{bits: bits}
}

func (g *generalDecoder) readBits(n int) (int, error) {
	if g.pos+n > g.bits.Size() {
		return 0, barcode.ErrFormat
	}
	value := 0
	for i := 0; i < n; i++ {
		value <<= 1
		if g.bits.Get(g.pos) {
			value |= 1
		}
		g.pos++
	}
	return value, nil
}

func (g *generalDecoder) remaining() int {
	return g.bits.Size() - g.pos
}

// decodeAllCodes walks the variable-length-indicator + numeric-digit-pair
// encoding that GS1 uses for the general field, emitting parenthesized AIs.
func (g *generalDecoder) decodeAllCodes() (string, error) {
	var sb strings.Builder
	for g.remaining() >= 8 {
		ai, err := g.readAI()
		if err != nil {
			break
		}
		fieldLen, fixed := aiFieldLength[ai]
		var value string
		var derr error
		if fixed && fieldLen > 0 {
			value, derr = g.decodeNumericDigits((fieldLen + 1) / 2 * 7)
			if len(value) > fieldLen {
				value = value[:fieldLen]
			}
		} else {
			value, derr = g.decodeVariableField()
		}
		if derr != nil {
			return "", derr
		}
		sb.WriteByte('(')
		sb.WriteString(ai)
		sb.WriteByte(')')
		sb.WriteString(value)
	}
	if sb.Len() == 0 {
		return "", barcode.ErrNotFound
	}
	return sb.String(), nil
}

// readAI decodes a two-digit Application Identifier from one 7-bit numeric
// pair, the same packing as the data fields themselves. Three- and
// four-digit AIs are not read.
func (g *generalDecoder) readAI() (string, error) {
	first, err := g.decodeNumericDigits(7)
	if err != nil {
		return "", err
	}
	return first[:2], nil
}

// decodeNumericDigits decodes numBits worth of GS1 numeric-string encoding
// (pairs of digits packed into 7 bits each, 0-99). A value of 100 ends the
// run early; no single trailing digit is decoded.
func (g *generalDecoder) decodeNumericDigits(numBits int) (string, error) {
	var sb strings.Builder
	bitsLeft := numBits
	for bitsLeft >= 7 {
		twoDigits, err := g.readBits(7)
		if err != nil {
			return "", err
		}
		if twoDigits == 100 {
			break
		}
		sb.WriteString(strconv.Itoa(twoDigits + 100)[1:])
		bitsLeft -= 7
	}
	return sb.String(), nil
}

// decodeVariableField decodes a variable-length general-purpose field. Each
// step reads a 1-bit mode flag: 0 decodes the rest of the bit stream as
// numeric pairs and ends the field; 1 reads one raw 8-bit character, and a
// zero character ends the field. There are no alphanumeric or ISO-646
// segments.
func (g *generalDecoder) decodeVariableField() (string, error) {
	var sb strings.Builder
	for g.remaining() >= numericModeShift {
		mode, err := g.readBits(1)
		if err != nil {
			return sb.String(), nil
		}
		if mode == 0 {
			digits, derr := g.decodeNumericDigits(g.remaining() - g.remaining()%7)
			if derr != nil {
				break
			}
			sb.WriteString(digits)
			break
		}
		char, cerr := g.readBits(8)
		if cerr != nil {
			break
		}
		if char == 0 {
			break
		}
		sb.WriteByte(byte(char))
	}
	return sb.String(), nil
}
