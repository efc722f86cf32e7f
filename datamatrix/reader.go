// Package datamatrix decodes ECC-200 Data Matrix symbols from an already
// located and sampled bit matrix (locating/sampling the symbol within a
// camera image is out of scope; see the package decoder for the format
// internals).
package datamatrix

import (
	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
	"github.com/jalphad/barcode/datamatrix/decoder"
)

// Reader decodes a single Data Matrix symbol already isolated into a
// module-accurate bit matrix.
type Reader struct {
	decoder *decoder.Decoder
}

// NewReader creates a Reader.
func NewReader() *Reader { return &Reader{decoder: decoder.NewDecoder()} }

// Decode decodes matrix, an exact one-module-per-bit sampling of a Data
// Matrix symbol (including its solid-border "L" finder and dashed
// alignment pattern).
func (r *Reader) Decode(matrix *bitutil.BitMatrix, hints *barcode.DecodeHints) (*barcode.Result, error) {
	return r.decoder.Decode(matrix)
}
