package result

import "github.com/jalphad/barcode"

// ProductParsedResult represents a UPC/EAN numeric product code.
type ProductParsedResult struct {
	ProductID string
	Format    barcode.Format
}

func (p ProductParsedResult) Type() Type            { return TypeProduct }
func (p ProductParsedResult) DisplayResult() string { return p.ProductID }

type productParser struct{}

// Parse recognizes a bare 8, 12, or 13-digit numeric string as a product
// code, but only when the decoder itself tagged the symbol as one of the
// UPC/EAN formats; a Code 39 or Codabar symbol with the same digit shape
// is not a product code.
func (productParser) Parse(rawText string, format barcode.Format, metadata map[barcode.MetadataKey]interface{}) ParsedResult {
	switch format {
	case barcode.FormatEAN8, barcode.FormatUPCA, barcode.FormatUPCE, barcode.FormatEAN13:
	default:
		return nil
	}
	if !isAllDigits(rawText) {
		return nil
	}
	switch len(rawText) {
	case 8:
		return ProductParsedResult{ProductID: rawText, Format: barcode.FormatEAN8}
	case 12:
		return ProductParsedResult{ProductID: rawText, Format: barcode.FormatUPCA}
	case 13:
		return ProductParsedResult{ProductID: rawText, Format: barcode.FormatEAN13}
	}
	return nil
}

func isAllDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
