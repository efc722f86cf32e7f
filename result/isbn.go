package result

import "github.com/jalphad/barcode"

// ISBNParsedResult represents a 13-digit EAN that falls in the Bookland
// (978/979) prefix range, reformatted as an ISBN.
type ISBNParsedResult struct {
	ISBN string
}

func (i ISBNParsedResult) Type() Type            { return TypeISBN }
func (i ISBNParsedResult) DisplayResult() string { return i.ISBN }

type isbnParser struct{}

func (isbnParser) Parse(rawText string, format barcode.Format, metadata map[barcode.MetadataKey]interface{}) ParsedResult {
	if len(rawText) != 13 || !isAllDigits(rawText) {
		return nil
	}
	if rawText[:3] != "978" && rawText[:3] != "979" {
		return nil
	}
	return ISBNParsedResult{ISBN: rawText}
}
