package result

import (
	"strings"

	"github.com/jalphad/barcode"
)

// vCardParser decodes a minimal subset of vCard 2.1/3.0: BEGIN:VCARD ...
// END:VCARD with N/FN, TEL, EMAIL, ADR, ORG, TITLE, URL, NOTE lines.
// Property parameters (e.g. "ENCODING=QUOTED-PRINTABLE;CHARSET=...") are
// dropped: values are taken as written, with no quoted-printable or charset
// decoding.
type vCardParser struct{}

func (vCardParser) Parse(rawText string, format barcode.Format, metadata map[barcode.MetadataKey]interface{}) ParsedResult {
	if !strings.HasPrefix(strings.ToUpper(rawText), "BEGIN:VCARD") {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(rawText, "\r\n", "\n"), "\n")
	result := AddressBookParsedResult{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		propPart, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(propPart, ";")
		switch strings.ToUpper(name) {
		case "N", "FN":
			result.Names = append(result.Names, strings.ReplaceAll(value, ";", " "))
		case "TEL":
			result.PhoneNumbers = append(result.PhoneNumbers, value)
		case "EMAIL":
			result.Emails = append(result.Emails, value)
		case "ADR":
			result.Addresses = append(result.Addresses, strings.ReplaceAll(value, ";", " "))
		case "ORG":
			result.Org = value
		case "TITLE":
			result.Title = value
		case "URL":
			result.URL = value
		case "NOTE":
			result.Note = value
		}
	}
	if len(result.Names) == 0 && len(result.PhoneNumbers) == 0 {
		return nil
	}
	return result
}
