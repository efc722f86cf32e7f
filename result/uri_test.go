package result

import (
	"testing"

	"github.com/jalphad/barcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURIParser_PlainHTTPURL(t *testing.T) {
	parsed := uriParser{}.Parse("http://example.com/path", barcode.FormatQRCode, nil)
	require.NotNil(t, parsed)
	u := parsed.(URIParsedResult)
	assert.Equal(t, "http://example.com/path", u.URI())
	assert.False(t, u.PossiblyMalicious())
	assert.Equal(t, TypeURI, u.Type())
}

func TestURIParser_BareHostWithDot(t *testing.T) {
	parsed := uriParser{}.Parse("example.com", barcode.FormatQRCode, nil)
	require.NotNil(t, parsed)
	assert.Equal(t, "example.com", parsed.(URIParsedResult).URI())
}

func TestURIParser_FlagsAtBeforeSlashAsMalicious(t *testing.T) {
	parsed := uriParser{}.Parse("www.real-site.com@evil.com/path", barcode.FormatQRCode, nil)
	require.NotNil(t, parsed)
	assert.True(t, parsed.(URIParsedResult).PossiblyMalicious())
}

func TestURIParser_RejectsTextWithWhitespace(t *testing.T) {
	assert.Nil(t, uriParser{}.Parse("not a uri", barcode.FormatQRCode, nil))
}
