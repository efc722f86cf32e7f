package oned

import (
	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
)

// RowDecoder is the uniform capability each per-symbology 1D decoder
// implements. The driver owns only the row; each format owns its own
// scratch state (counter arrays) inside its decoder instance.
type RowDecoder interface {
	DecodeRow(rowNumber int, row *bitutil.BitArray, hints *barcode.DecodeHints) (*barcode.Result, error)
}

// MultiFormatOneDReader holds an ordered list of per-symbology decoders,
// built from hints.PossibleFormats (or every default 1D format when no
// restriction is given), and dispatches to the first one that succeeds.
type MultiFormatOneDReader struct {
	readers         []RowDecoder
	possibleFormats map[barcode.Format]bool
}

// NewMultiFormatOneDReader builds the decoder list per the hints.
func NewMultiFormatOneDReader(hints *barcode.DecodeHints) *MultiFormatOneDReader {
	var readers []RowDecoder
	var possibleFormats map[barcode.Format]bool

	if hints != nil && len(hints.PossibleFormats) > 0 {
		possibleFormats = hints.PossibleFormats
		// EAN-13 covers UPC-A (strip a leading '0'), so only add a
		// dedicated UPC-A reader when EAN-13 itself was not requested.
		if possibleFormats[barcode.FormatEAN13] {
			readers = append(readers, NewEAN13Reader())
		} else if possibleFormats[barcode.FormatUPCA] {
			readers = append(readers, NewUPCAReader())
		}
		if possibleFormats[barcode.FormatEAN8] {
			readers = append(readers, NewEAN8Reader())
		}
		if possibleFormats[barcode.FormatUPCE] {
			readers = append(readers, NewUPCEReader())
		}
		if possibleFormats[barcode.FormatCode39] {
			readers = append(readers, NewCode39Reader(hints.AssumeCode39CheckDigit, false))
		}
		if possibleFormats[barcode.FormatCode93] {
			readers = append(readers, NewCode93Reader())
		}
		if possibleFormats[barcode.FormatCode128] {
			readers = append(readers, NewCode128Reader())
		}
		if possibleFormats[barcode.FormatITF] {
			readers = append(readers, NewITFReader())
		}
		if possibleFormats[barcode.FormatCodabar] {
			readers = append(readers, NewCodabarReader())
		}
		if possibleFormats[barcode.FormatRSSExpanded] {
			readers = append(readers, NewRSSExpandedReader())
		}
	}

	if len(readers) == 0 {
		readers = []RowDecoder{
			NewEAN13Reader(),
			NewEAN8Reader(),
			NewUPCEReader(),
			NewCode39Reader(false, false),
			NewCode93Reader(),
			NewCode128Reader(),
			NewITFReader(),
			NewCodabarReader(),
			NewRSSExpandedReader(),
		}
	}

	return &MultiFormatOneDReader{readers: readers, possibleFormats: possibleFormats}
}

// DecodeRow tries each configured reader in sequence until one succeeds,
// promoting a zero-prefixed EAN-13 result to UPC-A when that format is
// allowed.
func (r *MultiFormatOneDReader) DecodeRow(rowNumber int, row *bitutil.BitArray, hints *barcode.DecodeHints) (*barcode.Result, error) {
	for _, reader := range r.readers {
		result, err := reader.DecodeRow(rowNumber, row, hints)
		if err == nil {
			return r.maybeConvertEAN13ToUPCA(result), nil
		}
	}
	return nil, barcode.ErrNotFound
}

func (r *MultiFormatOneDReader) maybeConvertEAN13ToUPCA(result *barcode.Result) *barcode.Result {
	if result.Format != barcode.FormatEAN13 || len(result.Text) == 0 || result.Text[0] != '0' {
		return result
	}
	if r.possibleFormats == nil || r.possibleFormats[barcode.FormatUPCA] {
		upca := barcode.NewResult(result.Text[1:], nil, result.Points, barcode.FormatUPCA)
		for k, v := range result.Metadata {
			upca.PutMetadata(k, v)
		}
		return upca
	}
	return result
}

// Decode scans rows from the middle outward, trying each row both as-is
// and reversed, and finally
// (when TryHarder is set) retries once against the image rotated 90 degrees
// counter-clockwise.
func (r *MultiFormatOneDReader) Decode(image barcode.RowProvider, hints *barcode.DecodeHints) (*barcode.Result, error) {
	result, err := DecodeOneD(image, r, hints)
	if err == nil {
		return result, nil
	}
	if hints == nil || !hints.TryHarder {
		return nil, err
	}
	rotated := image.RotateCounterClockwise()
	if rotated == nil {
		return nil, err
	}
	result, err2 := DecodeOneD(rotated, r, hints)
	if err2 != nil {
		return nil, err
	}
	orientation := 270
	if existing, ok := result.Metadata[barcode.MetadataOrientation]; ok {
		if existingInt, ok := existing.(int); ok {
			orientation = (orientation + existingInt) % 360
		}
	}
	result.PutMetadata(barcode.MetadataOrientation, orientation)
	if result.Points != nil {
		rotatedHeight := rotated.Height()
		for i, p := range result.Points {
			result.Points[i] = barcode.ResultPoint{
				X: float64(rotatedHeight) - p.Y - 1,
				Y: p.X,
			}
		}
	}
	return result, nil
}

// DecodeOneD implements the middle-outward multi-row scan shared by every
// 1D dispatcher. It is exported so a single-format RowDecoder can reuse the
// same scan loop without going through MultiFormatOneDReader.
func DecodeOneD(image barcode.RowProvider, decoder RowDecoder, hints *barcode.DecodeHints) (*barcode.Result, error) {
	height := image.Height()
	width := image.Width()
	tryHarder := hints != nil && hints.TryHarder

	middle := height / 2
	rowStep := height >> 5
	if tryHarder {
		rowStep = height >> 8
	}
	if rowStep < 1 {
		rowStep = 1
	}
	maxLines := 15
	if tryHarder {
		maxLines = height
	}

	var row *bitutil.BitArray
	for x := 0; x < maxLines; x++ {
		rowStepsAboveOrBelow := (x + 1) / 2
		isAbove := (x & 0x01) == 0
		var rowNumber int
		if isAbove {
			rowNumber = middle + rowStep*rowStepsAboveOrBelow
		} else {
			rowNumber = middle - rowStep*rowStepsAboveOrBelow
		}
		if rowNumber < 0 || rowNumber >= height {
			break
		}

		var err error
		row, err = image.GetBlackRow(rowNumber, row)
		if err != nil {
			continue
		}

		for attempt := 0; attempt < 2; attempt++ {
			if attempt == 1 {
				row.Reverse()
			}
			result, decErr := decoder.DecodeRow(rowNumber, row, hints)
			if decErr == nil {
				if attempt == 1 {
					result.PutMetadata(barcode.MetadataOrientation, 180)
					for i, p := range result.Points {
						result.Points[i] = barcode.ResultPoint{X: float64(width) - p.X - 1, Y: p.Y}
					}
				}
				return result, nil
			}
		}
	}
	return nil, barcode.ErrNotFound
}
