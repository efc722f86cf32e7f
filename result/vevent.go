package result

import (
	"strings"

	"github.com/jalphad/barcode"
)

// CalendarParsedResult represents a VEVENT calendar entry.
type CalendarParsedResult struct {
	Summary, Start, End, Location, Description string
}

func (c CalendarParsedResult) Type() Type            { return TypeCalendar }
func (c CalendarParsedResult) DisplayResult() string { return c.Summary }

type vEventParser struct{}

func (vEventParser) Parse(rawText string, format barcode.Format, metadata map[barcode.MetadataKey]interface{}) ParsedResult {
	if !strings.Contains(strings.ToUpper(rawText), "BEGIN:VEVENT") {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(rawText, "\r\n", "\n"), "\n")
	result := CalendarParsedResult{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		propPart, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(propPart, ";")
		switch strings.ToUpper(name) {
		case "SUMMARY":
			result.Summary = value
		case "DTSTART":
			result.Start = value
		case "DTEND":
			result.End = value
		case "LOCATION":
			result.Location = value
		case "DESCRIPTION":
			result.Description = value
		}
	}
	if result.Summary == "" && result.Start == "" {
		return nil
	}
	return result
}
