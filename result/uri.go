package result

import (
	"strings"

	"github.com/jalphad/barcode"
)

// URIParsedResult represents a decoded URI, flagged as possibly malicious
// when it uses userinfo-style "@"-authority tricks that are a common
// phishing pattern in scanned QR codes.
type URIParsedResult struct {
	uri              string
	possiblyMalicious bool
}

func (u URIParsedResult) Type() Type            { return TypeURI }
func (u URIParsedResult) DisplayResult() string { return u.uri }
func (u URIParsedResult) URI() string           { return u.uri }
func (u URIParsedResult) PossiblyMalicious() bool { return u.possiblyMalicious }

type uriParser struct{}

func (uriParser) Parse(rawText string, format barcode.Format, metadata map[barcode.MetadataKey]interface{}) ParsedResult {
	if !looksLikeAURI(rawText) {
		return nil
	}
	return URIParsedResult{uri: rawText, possiblyMalicious: isPossiblyMaliciousURI(rawText)}
}

func looksLikeAURI(text string) bool {
	if strings.ContainsAny(text, " \t\r\n") {
		return false
	}
	idx := strings.Index(text, ":")
	if idx < 0 {
		return strings.Contains(text, ".") && !strings.Contains(text, " ")
	}
	scheme := text[:idx]
	for _, c := range scheme {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.') {
			return false
		}
	}
	return len(scheme) > 0
}

// isPossiblyMaliciousURI flags a URI whose "@" sits before a "/" in a way
// that lets an attacker disguise the real authority as a path/userinfo
// prefix of a trusted-looking hostname; a "@" that appears only after the
// path separator is an ordinary, unanchored URI fragment and is not flagged.
func isPossiblyMaliciousURI(uri string) bool {
	firstSlash := strings.Index(uri, "/")
	atIndex := strings.Index(uri, "@")
	if atIndex < 0 {
		return false
	}
	if firstSlash < 0 {
		return true
	}
	return atIndex < firstSlash
}
