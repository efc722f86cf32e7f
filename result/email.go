package result

import (
	"strings"

	"github.com/jalphad/barcode"
)

// EmailAddressParsedResult represents a mailto:/smtp: URI or a bare
// address-looking string: mailto is tried first, then smtp, then a plain
// address containing exactly one '@' and no whitespace.
type EmailAddressParsedResult struct {
	To, Subject, Body string
}

func (e EmailAddressParsedResult) Type() Type            { return TypeEmailAddress }
func (e EmailAddressParsedResult) DisplayResult() string { return e.To }

type emailParser struct{}

func (emailParser) Parse(rawText string, format barcode.Format, metadata map[barcode.MetadataKey]interface{}) ParsedResult {
	lower := strings.ToLower(rawText)
	switch {
	case strings.HasPrefix(lower, "mailto:"):
		return parseMailto(rawText[len("mailto:"):])
	case strings.HasPrefix(lower, "smtp:"):
		return EmailAddressParsedResult{To: rawText[len("smtp:"):]}
	case isBareEmailAddress(rawText):
		return EmailAddressParsedResult{To: rawText}
	}
	return nil
}

func isBareEmailAddress(text string) bool {
	if strings.ContainsAny(text, " \t\r\n:/") {
		return false
	}
	at := strings.Index(text, "@")
	if at <= 0 || at != strings.LastIndex(text, "@") || at == len(text)-1 {
		return false
	}
	return strings.Contains(text[at+1:], ".")
}

func parseMailto(query string) ParsedResult {
	to, rest, _ := strings.Cut(query, "?")
	result := EmailAddressParsedResult{To: to}
	for _, pair := range strings.Split(rest, "&") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		switch strings.ToLower(k) {
		case "subject":
			result.Subject = v
		case "body":
			result.Body = v
		}
	}
	return result
}
