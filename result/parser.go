// Package result interprets a decoded barcode's raw text as one of several
// well-known structured payloads (contact cards, calendar events, URIs,
// Wi-Fi credentials, and so on), falling back to plain text when nothing
// more specific matches.
package result

import "github.com/jalphad/barcode"

// Type identifies which structured payload a ParsedResult represents.
type Type int

const (
	TypeAddressBook Type = iota
	TypeEmailAddress
	TypeProduct
	TypeURI
	TypeText
	TypeGeo
	TypeTel
	TypeSMS
	TypeCalendar
	TypeWifi
	TypeISBN
	TypeVIN
)

// ParsedResult is the common interface every structured-result variant
// implements.
type ParsedResult interface {
	Type() Type
	DisplayResult() string
}

// parser is implemented by each candidate variant; Parse returns nil,
// without an error, when the text doesn't match that variant's shape, or
// when format/metadata rule the variant out (e.g. VIN only applies to
// text decoded from a CODE_39 symbol).
type parser interface {
	Parse(rawText string, format barcode.Format, metadata map[barcode.MetadataKey]interface{}) ParsedResult
}

// parsers is tried in order; the first non-nil result wins. Order matters:
// more specific formats (MECARD, vCard, geo, tel, sms) are tried before the
// generic URI and plain-text fallbacks.
var parsers = []parser{
	mecardParser{},
	vCardParser{},
	vEventParser{},
	emailParser{},
	geoParser{},
	telParser{},
	smsParser{},
	wifiParser{},
	vinParser{},
	isbnParser{},
	expandedProductParser{},
	productParser{},
	uriParser{},
}

// Parse runs rawText through the chain of structured-result parsers,
// returning the first match or a plain TextParsedResult if none match.
// format and metadata come from the decoder and let variants whose shape
// alone is ambiguous (VIN, Product, ExpandedProduct) gate on the symbology
// that actually produced the text.
func Parse(rawText string, format barcode.Format, metadata map[barcode.MetadataKey]interface{}) ParsedResult {
	for _, p := range parsers {
		if r := p.Parse(rawText, format, metadata); r != nil {
			return r
		}
	}
	return textParsedResult{text: rawText}
}

type textParsedResult struct{ text string }

func (t textParsedResult) Type() Type           { return TypeText }
func (t textParsedResult) DisplayResult() string { return t.text }
