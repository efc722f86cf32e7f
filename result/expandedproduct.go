package result

import (
	"regexp"
	"strconv"

	"github.com/jalphad/barcode"
)

// ExpandedProductParsedResult represents a GS1 Application-Identifier
// tagged payload (as produced by an RSS Expanded or Data Matrix GS1
// symbol), split into its recognized fields.
type ExpandedProductParsedResult struct {
	RawText                                  string
	ProductID, SSCC, LotNumber, ExpirationDate string
	Weight, WeightType, Price, PriceCurrency string
}

func (e ExpandedProductParsedResult) Type() Type            { return TypeProduct }
func (e ExpandedProductParsedResult) DisplayResult() string { return e.RawText }

var aiFieldPattern = regexp.MustCompile(`\((\d{2,4})\)([^()]*)`)

type expandedProductParser struct{}

// Parse only recognizes GS1 AI payloads tagged with the RSS_EXPANDED
// format; the same parenthesized-AI shape from a different symbology (or
// plain text) is not a GS1 result.
func (expandedProductParser) Parse(rawText string, format barcode.Format, metadata map[barcode.MetadataKey]interface{}) ParsedResult {
	if format != barcode.FormatRSSExpanded {
		return nil
	}
	matches := aiFieldPattern.FindAllStringSubmatch(rawText, -1)
	if len(matches) == 0 {
		return nil
	}
	result := ExpandedProductParsedResult{RawText: rawText}
	for _, m := range matches {
		ai, value := m[1], m[2]
		switch ai {
		case "01", "02":
			result.ProductID = value
		case "00":
			result.SSCC = value
		case "10":
			result.LotNumber = value
		case "17":
			result.ExpirationDate = value
		case "3920", "3921", "3930", "3931":
			if n, err := strconv.Atoi(value); err == nil {
				result.Price = strconv.FormatFloat(float64(n)/100, 'f', 2, 64)
			}
		default:
			if len(ai) == 4 && ai[:3] == "310" {
				result.Weight = value
				result.WeightType = "KG"
			}
		}
	}
	if result.ProductID == "" && result.SSCC == "" {
		return nil
	}
	return result
}
