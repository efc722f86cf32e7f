package oned

import (
	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

// UPCAReader decodes UPC-A barcodes. UPC-A is EAN-13 with an implicit
// leading '0': it decodes by delegating to an embedded EAN-13 reader and
// stripping/retagging the result.
type UPCAReader struct {
	ean13 *EAN13Reader
}

// NewUPCAReader creates a UPCAReader.
func NewUPCAReader() *UPCAReader { return &UPCAReader{ean13: NewEAN13Reader()} }

func (r *UPCAReader) format() barcode.Format { return barcode.FormatUPCA }

func (r *UPCAReader) DecodeRow(rowNumber int, row *bitutil.BitArray, hints *barcode.DecodeHints) (*barcode.Result, error) {
	if !barcode.WantsFormat(hints, barcode.FormatUPCA) {
		return nil, barcode.ErrNotFound
	}
	result, err := decodeUPCEAN(rowNumber, row, r.ean13, hints)
	if err != nil {
		return nil, err
	}
	return maybeStripLeadingZero(result), nil
}

func maybeStripLeadingZero(result *barcode.Result) *barcode.Result {
	if len(result.Text) == 0 || result.Text[0] != '0' {
		return result
	}
	upca := barcode.NewResult(result.Text[1:], nil, result.Points, barcode.FormatUPCA)
	for k, v := range result.Metadata {
		upca.PutMetadata(k, v)
	}
	return upca
}
