package result

import (
	"strings"

	"github.com/jalphad/barcode"
)

// WifiParsedResult represents a "WIFI:" network-configuration QR payload.
type WifiParsedResult struct {
	SSID, Password, NetworkEncryption string
	Hidden                            bool
}

func (w WifiParsedResult) Type() Type            { return TypeWifi }
func (w WifiParsedResult) DisplayResult() string { return w.SSID }

type wifiParser struct{}

func (wifiParser) Parse(rawText string, format barcode.Format, metadata map[barcode.MetadataKey]interface{}) ParsedResult {
	if !strings.HasPrefix(rawText, "WIFI:") {
		return nil
	}
	fields := splitEscapedFields(strings.TrimPrefix(rawText, "WIFI:"))
	result := WifiParsedResult{NetworkEncryption: "nopass"}
	for key, value := range fields {
		switch key {
		case 'S':
			result.SSID = value
		case 'P':
			result.Password = value
		case 'T':
			result.NetworkEncryption = value
		case 'H':
			result.Hidden = value == "true"
		}
	}
	return result
}

// splitEscapedFields parses a MECARD-style "K:v;K:v;;" body, honoring
// backslash escapes of ':', ';', and '\\' within a value.
func splitEscapedFields(body string) map[byte]string {
	fields := make(map[byte]string)
	var key byte
	haveKey := false
	var value strings.Builder
	escaped := false

	flush := func() {
		if haveKey {
			fields[key] = value.String()
		}
		value.Reset()
		haveKey = false
	}

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case escaped:
			value.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == ':' && !haveKey:
			key = valueKeyByte(&value)
			haveKey = true
		case c == ';':
			flush()
		default:
			value.WriteByte(c)
		}
	}
	flush()
	return fields
}

func valueKeyByte(value *strings.Builder) byte {
	s := value.String()
	value.Reset()
	if len(s) == 0 {
		return 0
	}
	return s[0]
}
