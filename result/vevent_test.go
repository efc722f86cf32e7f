package result

import (
	"testing"

	"github.com/jalphad/barcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVEventParser_BasicFields(t *testing.T) {
	raw := "BEGIN:VEVENT\r\nSUMMARY:Team sync\r\nDTSTART:20260801T090000Z\r\nDTEND:20260801T100000Z\r\nLOCATION:Room 1\r\nDESCRIPTION:Weekly check-in\r\nEND:VEVENT"
	parsed := vEventParser{}.Parse(raw, barcode.FormatQRCode, nil)
	require.NotNil(t, parsed)
	event := parsed.(CalendarParsedResult)
	assert.Equal(t, "Team sync", event.Summary)
	assert.Equal(t, "20260801T090000Z", event.Start)
	assert.Equal(t, "20260801T100000Z", event.End)
	assert.Equal(t, "Room 1", event.Location)
	assert.Equal(t, "Weekly check-in", event.Description)
	assert.Equal(t, "Team sync", event.DisplayResult())
	assert.Equal(t, TypeCalendar, event.Type())
}

func TestVEventParser_RejectsNonVEventText(t *testing.T) {
	assert.Nil(t, vEventParser{}.Parse("BEGIN:VCARD\nEND:VCARD", barcode.FormatQRCode, nil))
}

func TestVEventParser_RejectsEmptyEvent(t *testing.T) {
	assert.Nil(t, vEventParser{}.Parse("BEGIN:VEVENT\nLOCATION:Room 1\nEND:VEVENT", barcode.FormatQRCode, nil))
}
