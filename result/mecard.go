package result

import (
	"strings"

	"github.com/jalphad/barcode"
)

// AddressBookParsedResult represents a MECARD or vCard contact.
type AddressBookParsedResult struct {
	Names, PhoneNumbers, Emails, Addresses []string
	Org, Title, URL, Note                  string
}

func (a AddressBookParsedResult) Type() Type { return TypeAddressBook }
func (a AddressBookParsedResult) DisplayResult() string {
	if len(a.Names) > 0 {
		return a.Names[0]
	}
	return ""
}

type mecardParser struct{}

func (mecardParser) Parse(rawText string, format barcode.Format, metadata map[barcode.MetadataKey]interface{}) ParsedResult {
	if !strings.HasPrefix(rawText, "MECARD:") {
		return nil
	}
	fields := splitMECARDFields(strings.TrimSuffix(strings.TrimPrefix(rawText, "MECARD:"), ";"))
	result := AddressBookParsedResult{}
	for key, values := range fields {
		switch key {
		case "N":
			result.Names = values
		case "TEL":
			result.PhoneNumbers = values
		case "EMAIL":
			result.Emails = values
		case "ADR":
			result.Addresses = values
		case "ORG":
			result.Org = first(values)
		case "TITLE":
			result.Title = first(values)
		case "URL":
			result.URL = first(values)
		case "NOTE":
			result.Note = first(values)
		}
	}
	if len(result.Names) == 0 && len(result.PhoneNumbers) == 0 && len(result.Emails) == 0 {
		return nil
	}
	return result
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// splitMECARDFields parses "KEY:value;KEY:value;" pairs, with values
// allowed to backslash-escape ':' and ';', and multiple same-key entries
// appended to that key's slice.
func splitMECARDFields(body string) map[string][]string {
	fields := make(map[string][]string)
	for _, entry := range splitUnescaped(body, ';') {
		k, v, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}
		fields[strings.ToUpper(k)] = append(fields[strings.ToUpper(k)], unescapeMECARD(v))
	}
	return fields
}

func splitUnescaped(s string, sep byte) []string {
	var parts []string
	var cur strings.Builder
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			cur.WriteByte(c)
			escaped = false
		case c == '\\':
			cur.WriteByte(c)
			escaped = true
		case c == sep:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func unescapeMECARD(s string) string {
	var sb strings.Builder
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			sb.WriteByte(c)
			escaped = false
		} else if c == '\\' {
			escaped = true
		} else {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
