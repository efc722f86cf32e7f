package result

import (
	"testing"

	"github.com/jalphad/barcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailParser_Mailto(t *testing.T) {
	parsed := emailParser{}.Parse("mailto:alice@example.com?subject=Hi&body=there", barcode.FormatQRCode, nil)
	require.NotNil(t, parsed)
	e := parsed.(EmailAddressParsedResult)
	assert.Equal(t, "alice@example.com", e.To)
	assert.Equal(t, "Hi", e.Subject)
	assert.Equal(t, "there", e.Body)
}

func TestEmailParser_Smtp(t *testing.T) {
	parsed := emailParser{}.Parse("SMTP:bob@example.com", barcode.FormatQRCode, nil)
	require.NotNil(t, parsed)
	assert.Equal(t, "bob@example.com", parsed.(EmailAddressParsedResult).To)
}

func TestEmailParser_BareAddress(t *testing.T) {
	parsed := emailParser{}.Parse("carol@example.com", barcode.FormatQRCode, nil)
	require.NotNil(t, parsed)
	assert.Equal(t, "carol@example.com", parsed.(EmailAddressParsedResult).To)
}

func TestEmailParser_RejectsNonAddress(t *testing.T) {
	assert.Nil(t, emailParser{}.Parse("not an email", barcode.FormatQRCode, nil))
	assert.Nil(t, emailParser{}.Parse("two@at@signs.com", barcode.FormatQRCode, nil))
	assert.Nil(t, emailParser{}.Parse("no-at-sign.com", barcode.FormatQRCode, nil))
}
