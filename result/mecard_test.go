package result

import (
	"testing"

	"github.com/jalphad/barcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMECARDParser_FullCard(t *testing.T) {
	parsed := mecardParser{}.Parse("MECARD:N:Doe,John;TEL:5551234567;EMAIL:john@example.com;ORG:Acme;TITLE:Engineer;URL:http\\://acme.example;NOTE:hello;;", barcode.FormatQRCode, nil)
	require.NotNil(t, parsed)
	card := parsed.(AddressBookParsedResult)
	assert.Equal(t, []string{"Doe,John"}, card.Names)
	assert.Equal(t, []string{"5551234567"}, card.PhoneNumbers)
	assert.Equal(t, []string{"john@example.com"}, card.Emails)
	assert.Equal(t, "Acme", card.Org)
	assert.Equal(t, "Engineer", card.Title)
	assert.Equal(t, "http://acme.example", card.URL)
	assert.Equal(t, "hello", card.Note)
	assert.Equal(t, "Doe,John", card.DisplayResult())
	assert.Equal(t, TypeAddressBook, card.Type())
}

func TestMECARDParser_MultipleSameKeyFields(t *testing.T) {
	parsed := mecardParser{}.Parse("MECARD:N:Jane;TEL:111;TEL:222;", barcode.FormatQRCode, nil)
	require.NotNil(t, parsed)
	card := parsed.(AddressBookParsedResult)
	assert.Equal(t, []string{"111", "222"}, card.PhoneNumbers)
}

func TestMECARDParser_RejectsNonMECARDText(t *testing.T) {
	assert.Nil(t, mecardParser{}.Parse("BEGIN:VCARD\nEND:VCARD", barcode.FormatQRCode, nil))
}

func TestMECARDParser_RejectsEmptyCard(t *testing.T) {
	assert.Nil(t, mecardParser{}.Parse("MECARD:ORG:Acme;", barcode.FormatQRCode, nil))
}
