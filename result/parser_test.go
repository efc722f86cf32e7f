package result

import (
	"testing"

	"github.com/jalphad/barcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FallsBackToPlainText(t *testing.T) {
	parsed := Parse("just some text", barcode.FormatQRCode, nil)
	assert.Equal(t, TypeText, parsed.Type())
	assert.Equal(t, "just some text", parsed.DisplayResult())
}

func TestParse_Tel(t *testing.T) {
	parsed := Parse("tel:+15551234567", barcode.FormatQRCode, nil)
	require.Equal(t, TypeTel, parsed.Type())
	assert.Equal(t, "+15551234567", parsed.(TelParsedResult).Number)
}

func TestParse_SMSWithBody(t *testing.T) {
	parsed := Parse("smsto:5551234567?body=hello", barcode.FormatQRCode, nil)
	require.Equal(t, TypeSMS, parsed.Type())
	sms := parsed.(SMSParsedResult)
	assert.Equal(t, "5551234567", sms.Number)
	assert.Equal(t, "hello", sms.Body)
}

func TestParse_Geo(t *testing.T) {
	parsed := Parse("geo:37.786971,-122.399677", barcode.FormatQRCode, nil)
	require.Equal(t, TypeGeo, parsed.Type())
	geo := parsed.(GeoParsedResult)
	assert.InDelta(t, 37.786971, geo.Latitude, 1e-6)
	assert.InDelta(t, -122.399677, geo.Longitude, 1e-6)
}

func TestParse_Wifi(t *testing.T) {
	parsed := Parse("WIFI:S:mynetwork;P:mypass;T:WPA;;", barcode.FormatQRCode, nil)
	require.Equal(t, TypeWifi, parsed.Type())
	wifi := parsed.(WifiParsedResult)
	assert.Equal(t, "mynetwork", wifi.SSID)
	assert.Equal(t, "mypass", wifi.Password)
	assert.Equal(t, "WPA", wifi.NetworkEncryption)
}

func TestParse_VINFromCode39(t *testing.T) {
	parsed := Parse("1HGCM82633A004352", barcode.FormatCode39, nil)
	require.Equal(t, TypeVIN, parsed.Type())
	vin := parsed.(VINParsedResult)
	assert.Equal(t, "1HG", vin.WorldManufacturerID)
	assert.Equal(t, "US", vin.CountryCode)
}

func TestParse_VINShapeIgnoredOutsideCode39(t *testing.T) {
	parsed := Parse("1HGCM82633A004352", barcode.FormatQRCode, nil)
	assert.NotEqual(t, TypeVIN, parsed.Type())
}

func TestParse_ISBN(t *testing.T) {
	parsed := Parse("9780306406157", barcode.FormatEAN13, nil)
	require.Equal(t, TypeISBN, parsed.Type())
	assert.Equal(t, "9780306406157", parsed.(ISBNParsedResult).ISBN)
}

func TestParse_ProductFromEAN13(t *testing.T) {
	parsed := Parse("036000291452", barcode.FormatUPCA, nil)
	require.Equal(t, TypeProduct, parsed.Type())
	assert.Equal(t, "036000291452", parsed.(ProductParsedResult).ProductID)
}

func TestParse_ProductShapeIgnoredFromCode39(t *testing.T) {
	parsed := Parse("036000291452", barcode.FormatCode39, nil)
	assert.NotEqual(t, TypeProduct, parsed.Type())
}
