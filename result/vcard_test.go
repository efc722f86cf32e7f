package result

import (
	"testing"

	"github.com/jalphad/barcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVCardParser_BasicFields(t *testing.T) {
	raw := "BEGIN:VCARD\r\nVERSION:3.0\r\nN:Doe;Jane\r\nTEL:5551234567\r\nEMAIL:jane@example.com\r\nORG:Acme\r\nEND:VCARD"
	parsed := vCardParser{}.Parse(raw, barcode.FormatQRCode, nil)
	require.NotNil(t, parsed)
	card := parsed.(AddressBookParsedResult)
	assert.Equal(t, []string{"Doe Jane"}, card.Names)
	assert.Equal(t, []string{"5551234567"}, card.PhoneNumbers)
	assert.Equal(t, []string{"jane@example.com"}, card.Emails)
	assert.Equal(t, "Acme", card.Org)
}

func TestVCardParser_IgnoresEncodingParameters(t *testing.T) {
	raw := "BEGIN:VCARD\nTEL;TYPE=CELL:5559876543\nEND:VCARD"
	parsed := vCardParser{}.Parse(raw, barcode.FormatQRCode, nil)
	require.NotNil(t, parsed)
	assert.Equal(t, []string{"5559876543"}, parsed.(AddressBookParsedResult).PhoneNumbers)
}

func TestVCardParser_RejectsNonVCardText(t *testing.T) {
	assert.Nil(t, vCardParser{}.Parse("MECARD:N:Doe;", barcode.FormatQRCode, nil))
}

func TestVCardParser_RejectsCardWithoutNameOrPhone(t *testing.T) {
	assert.Nil(t, vCardParser{}.Parse("BEGIN:VCARD\nORG:Acme\nEND:VCARD", barcode.FormatQRCode, nil))
}
