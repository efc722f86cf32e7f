package result

import (
	"strings"

	"github.com/jalphad/barcode"
)

// TelParsedResult represents a "tel:" URI.
type TelParsedResult struct {
	Number string
}

func (t TelParsedResult) Type() Type            { return TypeTel }
func (t TelParsedResult) DisplayResult() string { return t.Number }

type telParser struct{}

func (telParser) Parse(rawText string, format barcode.Format, metadata map[barcode.MetadataKey]interface{}) ParsedResult {
	lower := strings.ToLower(rawText)
	if !strings.HasPrefix(lower, "tel:") {
		return nil
	}
	return TelParsedResult{Number: rawText[4:]}
}

// SMSParsedResult represents an "sms:"/"smsto:"/"mms:"/"mmsto:" URI.
type SMSParsedResult struct {
	Number, Body string
}

func (s SMSParsedResult) Type() Type            { return TypeSMS }
func (s SMSParsedResult) DisplayResult() string { return s.Number }

type smsParser struct{}

var smsPrefixes = []string{"sms:", "smsto:", "mms:", "mmsto:"}

func (smsParser) Parse(rawText string, format barcode.Format, metadata map[barcode.MetadataKey]interface{}) ParsedResult {
	lower := strings.ToLower(rawText)
	for _, prefix := range smsPrefixes {
		if strings.HasPrefix(lower, prefix) {
			body := rawText[len(prefix):]
			number, query, _ := strings.Cut(body, "?")
			result := SMSParsedResult{Number: number}
			for _, pair := range strings.Split(query, "&") {
				k, v, ok := strings.Cut(pair, "=")
				if ok && strings.ToLower(k) == "body" {
					result.Body = v
				}
			}
			return result
		}
	}
	return nil
}
