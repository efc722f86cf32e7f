package oned

import (
	"strconv"

	"github.com/jalphad/barcode"
)

const (
	code128EscapeFNC1 = '\xf1'
	code128EscapeFNC2 = '\xf2'
	code128EscapeFNC3 = '\xf3'
	code128EscapeFNC4 = '\xf4'

	code128MaxContentLength = 80
)

// Code128Writer encodes a row of Code 128. By default it uses a greedy
// lookahead code-set chooser (encodeFast, grounded on Code128Reader's
// CODE_PATTERNS/choose_code heuristic); EncodeHints.Code128Compact selects
// a dynamic-programming minimal-symbol-count chooser instead, and
// EncodeHints.ForceCodeSet ("A", "B" or "C") pins the code set throughout.
type Code128Writer struct{}

// NewCode128Writer creates a Code128Writer.
func NewCode128Writer() *Code128Writer { return &Code128Writer{} }

func (Code128Writer) EncodeWithHints(contents string, hints *barcode.EncodeHints) ([]bool, error) {
	forcedCodeSet, err := code128CheckContents(contents, hints)
	if err != nil {
		return nil, barcode.WrapEncodeError("Code128Writer", err)
	}
	if hints != nil && hints.Code128Compact {
		return code128EncodeMinimal(contents, forcedCodeSet)
	}
	return code128EncodeFast(contents, forcedCodeSet)
}

func (w Code128Writer) Encode(contents string) ([]bool, error) {
	return w.EncodeWithHints(contents, nil)
}

func code128CheckContents(contents string, hints *barcode.EncodeHints) (int, error) {
	length := len(contents)
	if length < 1 || length > code128MaxContentLength {
		return 0, barcode.ErrIllegalArgument
	}
	forcedCodeSet := -1
	if hints != nil && hints.ForceCodeSet != "" {
		switch hints.ForceCodeSet {
		case "A":
			forcedCodeSet = code128CodeCodeA
		case "B":
			forcedCodeSet = code128CodeCodeB
		case "C":
			forcedCodeSet = code128CodeCodeC
		default:
			return 0, barcode.ErrIllegalArgument
		}
	}
	for i := 0; i < length; i++ {
		c := contents[i]
		switch c {
		case code128EscapeFNC4:
			// This reader has no FNC4 (extended-ASCII shift/latch) support.
			return 0, barcode.ErrIllegalArgument
		case code128EscapeFNC1, code128EscapeFNC2, code128EscapeFNC3:
			continue
		default:
			if c > 127 {
				return 0, barcode.ErrIllegalArgument
			}
		}
		switch forcedCodeSet {
		case code128CodeCodeA:
			if c > 95 && c <= 127 {
				return 0, barcode.ErrIllegalArgument
			}
		case code128CodeCodeB:
			if c <= 32 {
				return 0, barcode.ErrIllegalArgument
			}
		case code128CodeCodeC:
			if c < '0' || (c > '9' && c <= 127) || c == code128EscapeFNC2 || c == code128EscapeFNC3 || c == code128EscapeFNC4 {
				return 0, barcode.ErrIllegalArgument
			}
		}
	}
	return forcedCodeSet, nil
}

type code128CType int

const (
	code128Uncodable code128CType = iota
	code128OneDigit
	code128TwoDigits
	code128FNC1Type
)

func code128FindCType(value string, start int) code128CType {
	last := len(value)
	if start >= last {
		return code128Uncodable
	}
	c := value[start]
	if c == code128EscapeFNC1 {
		return code128FNC1Type
	}
	if c < '0' || c > '9' {
		return code128Uncodable
	}
	if start+1 >= last {
		return code128OneDigit
	}
	c = value[start+1]
	if c < '0' || c > '9' {
		return code128OneDigit
	}
	return code128TwoDigits
}

func code128ChooseCode(value string, start, oldCode int) int {
	lookahead := code128FindCType(value, start)
	if lookahead == code128OneDigit {
		if oldCode == code128CodeCodeA {
			return code128CodeCodeA
		}
		return code128CodeCodeB
	}
	if lookahead == code128Uncodable {
		if start < len(value) {
			c := value[start]
			if c < ' ' || (oldCode == code128CodeCodeA && (c < '`' || (c >= code128EscapeFNC1 && c <= code128EscapeFNC4))) {
				return code128CodeCodeA
			}
		}
		return code128CodeCodeB
	}
	if oldCode == code128CodeCodeA && lookahead == code128FNC1Type {
		return code128CodeCodeA
	}
	if oldCode == code128CodeCodeC {
		return code128CodeCodeC
	}
	if oldCode == code128CodeCodeB {
		if lookahead == code128FNC1Type {
			return code128CodeCodeB
		}
		lookahead = code128FindCType(value, start+2)
		if lookahead == code128Uncodable || lookahead == code128OneDigit {
			return code128CodeCodeB
		}
		if lookahead == code128FNC1Type {
			lookahead = code128FindCType(value, start+3)
			if lookahead == code128TwoDigits {
				return code128CodeCodeC
			}
			return code128CodeCodeB
		}
		index := start + 4
		for {
			lookahead = code128FindCType(value, index)
			if lookahead != code128TwoDigits {
				break
			}
			index += 2
		}
		if lookahead == code128OneDigit {
			return code128CodeCodeB
		}
		return code128CodeCodeC
	}
	// oldCode == 0 (no code set chosen yet)
	if lookahead == code128FNC1Type {
		return code128CodeCodeB
	}
	lookahead = code128FindCType(value, start+2)
	if lookahead == code128Uncodable || lookahead == code128OneDigit {
		return code128CodeCodeB
	}
	if lookahead == code128FNC1Type {
		lookahead = code128FindCType(value, start+3)
		if lookahead == code128TwoDigits {
			return code128CodeCodeC
		}
		return code128CodeCodeB
	}
	index := start + 4
	for {
		lookahead = code128FindCType(value, index)
		if lookahead != code128TwoDigits {
			break
		}
		index += 2
	}
	if lookahead == code128OneDigit {
		return code128CodeCodeB
	}
	return code128CodeCodeC
}

// code128EncodeFast is the greedy lookahead encoder: at each position it
// asks code128ChooseCode which code set suits the next few characters (for
// example Code C ahead of a run of digits) and emits a start or latch
// codeword whenever that differs from the current code set.
func code128EncodeFast(contents string, forcedCodeSet int) ([]bool, error) {
	length := len(contents)
	var patterns [][6]int
	checkSum := 0
	checkWeight := 1
	codeSet := 0
	position := 0

	for position < length {
		var newCodeSet int
		if forcedCodeSet == -1 {
			newCodeSet = code128ChooseCode(contents, position, codeSet)
		} else {
			newCodeSet = forcedCodeSet
		}

		var patternIndex int
		if newCodeSet == codeSet {
			switch contents[position] {
			case code128EscapeFNC1:
				patternIndex = code128CodeFNC1
			case code128EscapeFNC2:
				patternIndex = code128CodeFNC2
			case code128EscapeFNC3:
				patternIndex = code128CodeFNC3
			default:
				switch codeSet {
				case code128CodeCodeA:
					patternIndex = int(contents[position]) - ' '
					if patternIndex < 0 {
						patternIndex += '`'
					}
				case code128CodeCodeB:
					patternIndex = int(contents[position]) - ' '
				default: // code128CodeCodeC
					if position+1 == length {
						return nil, barcode.ErrIllegalArgument
					}
					n, err := strconv.Atoi(contents[position : position+2])
					if err != nil {
						return nil, barcode.ErrIllegalArgument
					}
					patternIndex = n
					position++
				}
			}
			position++
		} else {
			if codeSet == 0 {
				switch newCodeSet {
				case code128CodeCodeA:
					patternIndex = code128CodeStartA
				case code128CodeCodeB:
					patternIndex = code128CodeStartB
				default:
					patternIndex = code128CodeStartC
				}
			} else {
				patternIndex = newCodeSet
			}
			codeSet = newCodeSet
		}

		patterns = append(patterns, code128Patterns[patternIndex])
		checkSum += patternIndex * checkWeight
		if position != 0 {
			checkWeight++
		}
	}

	return code128ProduceResult(patterns, checkSum), nil
}

func code128ProduceResult(patterns [][6]int, checkSum int) []bool {
	checkSum %= 103
	patterns = append(patterns, code128Patterns[checkSum])
	patterns = append(patterns, code128Patterns[code128CodeStop])

	// The stop code is followed by a 2-module termination bar.
	terminationBar := []int{2}
	codeWidth := patternLength(terminationBar)
	for _, p := range patterns {
		codeWidth += patternLength(p[:])
	}
	result := make([]bool, codeWidth)
	pos := 0
	for _, p := range patterns {
		pos += appendPattern(result, pos, p[:], true)
	}
	appendPattern(result, pos, terminationBar, true)
	return result
}

// code128EncodeMinimal chooses, for every position, the code set that
// minimizes the total number of emitted symbols (switches included) via a
// bottom-up divide-and-conquer cost table over the three code sets, rather
// than encodeFast's one-step-ahead heuristic.
func code128EncodeMinimal(contents string, forcedCodeSet int) ([]bool, error) {
	length := len(contents)
	if forcedCodeSet != -1 {
		return code128EncodeFast(contents, forcedCodeSet)
	}

	const (
		csA = 0
		csB = 1
		csC = 2
	)
	codeSets := [3]int{code128CodeCodeA, code128CodeCodeB, code128CodeCodeC}

	// cost[pos][cs] = minimum symbol count to encode contents[pos:] given
	// the active code set is codeSets[cs] on entry; consumed, switched and
	// targetSet record, for the same entry, how many content bytes that
	// choice consumes, whether it switches, and the code set it moves to.
	cost := make([][3]int, length+1)
	consumed := make([][3]int, length+1)
	switched := make([][3]bool, length+1)
	targetSet := make([][3]int, length+1)

	const infeasible = 1 << 30
	for cs := 0; cs < 3; cs++ {
		cost[length][cs] = 0
	}

	canEncodeA := func(c byte) bool {
		return c < 96 || (c >= code128EscapeFNC1 && c <= code128EscapeFNC4)
	}
	canEncodeB := func(c byte) bool { return c >= ' ' }
	isDigitPair := func(pos int) bool {
		return pos+1 < length && contents[pos] >= '0' && contents[pos] <= '9' &&
			contents[pos+1] >= '0' && contents[pos+1] <= '9'
	}

	for pos := length - 1; pos >= 0; pos-- {
		for cs := 0; cs < 3; cs++ {
			best := infeasible
			bestConsumed, bestTarget := 0, cs
			for _, next := range [3]int{csA, csB, csC} {
				c := contents[pos]
				var step int
				switch next {
				case csA:
					if c == code128EscapeFNC1 || c == code128EscapeFNC2 || c == code128EscapeFNC3 || canEncodeA(c) {
						step = 1
					} else {
						continue
					}
				case csB:
					if c == code128EscapeFNC1 || c == code128EscapeFNC2 || c == code128EscapeFNC3 || canEncodeB(c) {
						step = 1
					} else {
						continue
					}
				case csC:
					if c == code128EscapeFNC1 {
						step = 1
					} else if isDigitPair(pos) {
						step = 2
					} else {
						continue
					}
				}
				switchCost := 0
				if next != cs {
					switchCost = 1
				}
				sub := cost[pos+step][next]
				if sub >= infeasible {
					continue
				}
				total := switchCost + 1 + sub
				if total < best {
					best = total
					bestConsumed = step
					bestTarget = next
				}
			}
			cost[pos][cs] = best
			consumed[pos][cs] = bestConsumed
			targetSet[pos][cs] = bestTarget
			switched[pos][cs] = bestTarget != cs
		}
	}

	// Pick the cheapest starting code set (paying its own start cost, a
	// constant +1 across all three candidates so it doesn't affect argmin).
	startCS := csA
	if cost[0][csB] < cost[0][startCS] {
		startCS = csB
	}
	if cost[0][csC] < cost[0][startCS] {
		startCS = csC
	}
	if cost[0][startCS] >= infeasible {
		return nil, barcode.ErrIllegalArgument
	}

	var indices []int
	addSymbol := func(patternIndex int) { indices = append(indices, patternIndex) }

	switch startCS {
	case csA:
		addSymbol(code128CodeStartA)
	case csB:
		addSymbol(code128CodeStartB)
	default:
		addSymbol(code128CodeStartC)
	}

	cs := startCS
	pos := 0
	for pos < length {
		if switched[pos][cs] {
			cs = targetSet[pos][cs]
			addSymbol(codeSets[cs])
		}
		addSymbol(code128EmitIndex(contents, pos, codeSets[cs]))
		pos += consumed[pos][cs]
	}

	checkSum := 0
	checkWeight := 1
	patterns := make([][6]int, len(indices))
	for i, idx := range indices {
		patterns[i] = code128Patterns[idx]
		checkSum += idx * checkWeight
		if i != 0 {
			checkWeight++
		}
	}

	return code128ProduceResult(patterns, checkSum), nil
}

// code128EmitIndex computes the CODE_PATTERNS index for the content byte(s)
// at pos under the given active code set, mirroring encode_fast's normal
// (non-escape) character handling.
func code128EmitIndex(contents string, pos, codeSet int) int {
	c := contents[pos]
	switch c {
	case code128EscapeFNC1:
		return code128CodeFNC1
	case code128EscapeFNC2:
		return code128CodeFNC2
	case code128EscapeFNC3:
		return code128CodeFNC3
	}
	switch codeSet {
	case code128CodeCodeA:
		idx := int(c) - ' '
		if idx < 0 {
			idx += '`'
		}
		return idx
	case code128CodeCodeB:
		return int(c) - ' '
	default: // code128CodeCodeC
		n, _ := strconv.Atoi(contents[pos : pos+2])
		return n
	}
}
