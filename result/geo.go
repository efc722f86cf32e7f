package result

import (
	"github.com/jalphad/barcode"

	"strconv"
	"strings"
)

// GeoParsedResult represents a "geo:" URI's latitude, longitude, and
// optional altitude/query string.
type GeoParsedResult struct {
	Latitude, Longitude, Altitude float64
	Query                         string
}

func (g GeoParsedResult) Type() Type            { return TypeGeo }
func (g GeoParsedResult) DisplayResult() string { return g.Query }

type geoParser struct{}

func (geoParser) Parse(rawText string, format barcode.Format, metadata map[barcode.MetadataKey]interface{}) ParsedResult {
	lower := strings.ToLower(rawText)
	if !strings.HasPrefix(lower, "geo:") {
		return nil
	}
	body, query, _ := strings.Cut(rawText[4:], "?")
	parts := strings.Split(body, ",")
	if len(parts) < 2 {
		return nil
	}
	lat, err1 := strconv.ParseFloat(parts[0], 64)
	lon, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	var alt float64
	if len(parts) > 2 {
		alt, _ = strconv.ParseFloat(parts[2], 64)
	}
	return GeoParsedResult{Latitude: lat, Longitude: lon, Altitude: alt, Query: query}
}
