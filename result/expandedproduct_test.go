package result

import (
	"testing"

	"github.com/jalphad/barcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandedProductParser_FullPayload(t *testing.T) {
	raw := "(01)00012345678905(17)210630(10)ABC123(3102)00500(3920)00150"
	parsed := expandedProductParser{}.Parse(raw, barcode.FormatRSSExpanded, nil)
	require.NotNil(t, parsed)
	p := parsed.(ExpandedProductParsedResult)
	assert.Equal(t, "00012345678905", p.ProductID)
	assert.Equal(t, "210630", p.ExpirationDate)
	assert.Equal(t, "ABC123", p.LotNumber)
	assert.Equal(t, "00500", p.Weight)
	assert.Equal(t, "KG", p.WeightType)
	assert.Equal(t, "1.50", p.Price)
	assert.Equal(t, raw, p.DisplayResult())
	assert.Equal(t, TypeProduct, p.Type())
}

func TestExpandedProductParser_SSCC(t *testing.T) {
	parsed := expandedProductParser{}.Parse("(00)123456789012345675", barcode.FormatRSSExpanded, nil)
	require.NotNil(t, parsed)
	assert.Equal(t, "123456789012345675", parsed.(ExpandedProductParsedResult).SSCC)
}

func TestExpandedProductParser_RejectsTextWithoutAIFields(t *testing.T) {
	assert.Nil(t, expandedProductParser{}.Parse("036000291452", barcode.FormatRSSExpanded, nil))
}

func TestExpandedProductParser_RejectsNonRSSExpandedFormat(t *testing.T) {
	raw := "(01)00012345678905(17)210630"
	assert.Nil(t, expandedProductParser{}.Parse(raw, barcode.FormatDataMatrix, nil))
}
