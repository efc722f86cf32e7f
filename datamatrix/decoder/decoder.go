package decoder

import (
	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
	"github.com/jalphad/barcode/reedsolomon"
)

// Decoder ties bit-matrix parsing, data-block de-interleaving, and
// Reed-Solomon correction together into a single Data Matrix decode call.
type Decoder struct {
	rsDecoder *reedsolomon.Decoder
}

// NewDecoder creates a Decoder over the Data Matrix GF(256) field.
func NewDecoder() *Decoder {
	field := reedsolomon.NewGF256(reedsolomon.DataMatrixField256)
	return &Decoder{rsDecoder: reedsolomon.NewDecoder(field)}
}

// Decode parses matrix's codewords, corrects errors block by block, and
// returns the decoded text via the bitstream parser.
func (d *Decoder) Decode(matrix *bitutil.BitMatrix) (*barcode.Result, error) {
	parser, err := NewBitMatrixParser(matrix)
	if err != nil {
		return nil, err
	}
	version := parser.version

	rawCodewords, err := parser.ReadCodewords()
	if err != nil {
		return nil, err
	}

	dataBlocks := GetDataBlocks(rawCodewords, version)
	totalBytes := 0
	maxDataCodewords := 0
	correctedBlocks := make([][]int, len(dataBlocks))

	for dataBlockIndex, block := range dataBlocks {
		codewordBytes := block.Codewords
		numDataCodewords := block.NumDataCodewords
		intCodewords := make([]int, len(codewordBytes))
		for i, c := range codewordBytes {
			intCodewords[i] = int(c)
		}
		numECCodewords := len(codewordBytes) - numDataCodewords
		if _, cerr := d.rsDecoder.Decode(intCodewords, numECCodewords); cerr != nil {
			return nil, barcode.ErrChecksum
		}
		correctedBlocks[dataBlockIndex] = intCodewords
		totalBytes += numDataCodewords
		if numDataCodewords > maxDataCodewords {
			maxDataCodewords = numDataCodewords
		}
	}

	// Reassemble in the same column-major order GetDataBlocks interleaved
	// the raw codewords, so version 24's uneven block lengths round-trip.
	resultBytes := make([]byte, 0, totalBytes)
	for i := 0; i < maxDataCodewords; i++ {
		for j, block := range dataBlocks {
			if i < block.NumDataCodewords {
				resultBytes = append(resultBytes, byte(correctedBlocks[j][i]))
			}
		}
	}

	return DecodeBitStream(resultBytes, version)
}
