package oned

import "github.com/jalphad/barcode"

// UPCAWriter encodes UPC-A by delegating to EAN13Writer with an implicit
// leading '0'.
type UPCAWriter struct {
	ean13 EAN13Writer
}

// NewUPCAWriter creates a UPCAWriter.
func NewUPCAWriter() *UPCAWriter { return &UPCAWriter{} }

func (w UPCAWriter) Encode(contents string) ([]bool, error) {
	if err := checkNumeric(contents); err != nil {
		return nil, barcode.WrapEncodeError("UPCAWriter", err)
	}
	switch len(contents) {
	case 11, 12:
	default:
		return nil, barcode.WrapEncodeError("UPCAWriter", barcode.ErrIllegalArgument)
	}
	return w.ean13.Encode("0" + contents)
}
