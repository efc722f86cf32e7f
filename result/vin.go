package result

import (
	"regexp"
	"strings"

	"github.com/jalphad/barcode"
)

// VINParsedResult represents a decoded 17-character Vehicle Identification
// Number, split into its World Manufacturer Identifier, Vehicle
// Descriptor/Identifier Sections, and the country/model-year lookups
// those sections imply.
type VINParsedResult struct {
	VIN, WorldManufacturerID, VehicleDescriptorSection, VehicleIdentifierSection string
	CountryCode, VehicleAttributes, ModelYear, PlantCode, SequentialNumber       string
}

func (v VINParsedResult) Type() Type            { return TypeVIN }
func (v VINParsedResult) DisplayResult() string { return v.VIN }

type vinParser struct{}

var (
	vinIOQPattern  = regexp.MustCompile(`[IOQ]`)
	vinAZ09Pattern = regexp.MustCompile(`^[A-Z0-9]{17}$`)
)

// Parse accepts only text decoded from a CODE_39 symbol, the symbology VIN
// barcodes are standardized on; any other originating format is ignored
// even when the text happens to have VIN shape.
func (vinParser) Parse(rawText string, format barcode.Format, metadata map[barcode.MetadataKey]interface{}) ParsedResult {
	if format != barcode.FormatCode39 {
		return nil
	}
	vin := strings.TrimSpace(vinIOQPattern.ReplaceAllString(strings.ToUpper(rawText), ""))
	if !vinAZ09Pattern.MatchString(vin) {
		return nil
	}
	if !vinCheckChecksum(vin) {
		return nil
	}
	wmi := vin[0:3]
	return VINParsedResult{
		VIN:                      vin,
		WorldManufacturerID:      wmi,
		VehicleDescriptorSection: vin[3:9],
		VehicleIdentifierSection: vin[9:17],
		CountryCode:              vinCountryCode(wmi),
		VehicleAttributes:        vin[3:8],
		ModelYear:                vinModelYear(vin[9]),
		PlantCode:                string(vin[10]),
		SequentialNumber:         vin[11:],
	}
}

// vinCheckChecksum verifies the position-9 check digit: the sum of each
// character's value times its position weight, mod 11, must equal the
// check character (numeric 0-9, or 'X' for a remainder of 10).
func vinCheckChecksum(vin string) bool {
	sum := 0
	for i := 0; i < len(vin); i++ {
		value, ok := vinCharValue(vin[i])
		if !ok {
			return false
		}
		sum += vinPositionWeight(i+1) * value
	}
	return vin[8] == vinCheckChar(sum%11)
}

func vinCharValue(c byte) (int, bool) {
	switch {
	case c >= 'A' && c <= 'I':
		return int(c-'A') + 1, true
	case c >= 'J' && c <= 'R':
		return int(c-'J') + 1, true
	case c >= 'S' && c <= 'Z':
		return int(c-'S') + 2, true
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	default:
		return 0, false
	}
}

func vinPositionWeight(position int) int {
	switch {
	case position >= 1 && position <= 7:
		return 9 - position
	case position == 8:
		return 10
	case position == 9:
		return 0
	case position >= 10 && position <= 17:
		return 19 - position
	default:
		return 0
	}
}

func vinCheckChar(remainder int) byte {
	if remainder < 10 {
		return '0' + byte(remainder)
	}
	return 'X'
}

// vinModelYear maps VIN position 10 (index 9) to the model year it denotes,
// per the repeating 30-year SAE code cycle.
func vinModelYear(c byte) string {
	switch {
	case c >= 'E' && c <= 'H':
		return itoaYear(int(c-'E') + 1984)
	case c >= 'J' && c <= 'N':
		return itoaYear(int(c-'J') + 1988)
	case c == 'P':
		return itoaYear(1993)
	case c >= 'R' && c <= 'T':
		return itoaYear(int(c-'R') + 1994)
	case c >= 'V' && c <= 'Y':
		return itoaYear(int(c-'V') + 1997)
	case c >= '1' && c <= '9':
		return itoaYear(int(c-'1') + 2001)
	case c >= 'A' && c <= 'D':
		return itoaYear(int(c-'A') + 2010)
	default:
		return ""
	}
}

func itoaYear(y int) string {
	var digits [4]byte
	for i := 3; i >= 0; i-- {
		digits[i] = byte('0' + y%10)
		y /= 10
	}
	return string(digits[:])
}

// vinCountryCode maps the first two WMI characters to the assembling
// country, per the SAE/ISO 3780 WMI registrant ranges.
func vinCountryCode(wmi string) string {
	c1, c2 := wmi[0], wmi[1]
	switch c1 {
	case '1', '4', '5':
		return "US"
	case '2':
		return "CA"
	case '3':
		if c2 >= 'A' && c2 <= 'W' {
			return "MX"
		}
	case '9':
		if (c2 >= 'A' && c2 <= 'E') || (c2 >= '3' && c2 <= '9') {
			return "BR"
		}
	case 'J':
		if c2 >= 'A' && c2 <= 'T' {
			return "JP"
		}
	case 'K':
		if c2 >= 'L' && c2 <= 'R' {
			return "KO"
		}
	case 'L':
		return "CN"
	case 'M':
		if c2 >= 'A' && c2 <= 'E' {
			return "IN"
		}
	case 'S':
		if c2 >= 'A' && c2 <= 'M' {
			return "UK"
		}
		if c2 >= 'N' && c2 <= 'T' {
			return "DE"
		}
	case 'V':
		if c2 >= 'F' && c2 <= 'R' {
			return "FR"
		}
		if c2 >= 'S' && c2 <= 'W' {
			return "ES"
		}
	case 'W':
		return "DE"
	case 'X':
		if c2 == '0' || (c2 >= '3' && c2 <= '9') {
			return "RU"
		}
	case 'Z':
		if c2 >= 'A' && c2 <= 'R' {
			return "IT"
		}
	}
	return ""
}
