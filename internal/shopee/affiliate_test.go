package shopee_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

// fakeGraphQL records executed requests and replays canned responses.
type fakeGraphQL struct {
	lastRequest shopee.Request
	data        json.RawMessage
	err         error
}

func (f *fakeGraphQL) Execute(_ context.Context, req shopee.Request) (json.RawMessage, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func TestAffiliate_ProductSearch(t *testing.T) {
	t.Parallel()

	gql := &fakeGraphQL{data: json.RawMessage(`{
		"productOfferV2": {
			"nodes": [{
				"itemId": 123456,
				"productName": "Fone Bluetooth",
				"commissionRate": "7.50",
				"priceMin": "49.90",
				"priceMax": "59.90",
				"sales": 1200,
				"ratingStar": "4.8",
				"imageUrl": "https://cf.shopee.com.br/file/abc",
				"offerLink": "https://shopee.com.br/product-i.84499012.123456",
				"shopId": 84499012,
				"shopName": "Loja Teste"
			}],
			"pageInfo": {"page": 1, "limit": 10, "hasNextPage": true}
		}
	}`)}

	a := shopee.NewAffiliate(gql)
	page, err := a.ProductSearch(context.Background(), shopee.ProductSearchRequest{
		Keyword: "fone bluetooth",
	})
	require.NoError(t, err)

	assert.Contains(t, gql.lastRequest.Query, "productOfferV2(")

	require.Len(t, page.Nodes, 1)
	p := page.Nodes[0]
	assert.Equal(t, int64(123456), p.ItemID)
	assert.Equal(t, "Fone Bluetooth", p.ProductName)
	assert.True(t, p.CommissionRate.Equal(decimal.RequireFromString("7.50")))
	assert.True(t, p.PriceMin.Equal(decimal.RequireFromString("49.90")))
	assert.Equal(t, int64(1200), p.Sales)
	assert.True(t, page.PageInfo.HasNextPage)
}

func TestAffiliate_GenerateShortLink(t *testing.T) {
	t.Parallel()

	t.Run("returns the short link", func(t *testing.T) {
		t.Parallel()

		gql := &fakeGraphQL{data: json.RawMessage(
			`{"generateShortLink":{"shortLink":"https://s.shopee.com.br/AbCd"}}`,
		)}

		a := shopee.NewAffiliate(gql)
		link, err := a.GenerateShortLink(
			context.Background(),
			"https://shopee.com.br/product-i.123.456",
			[]string{"telegram", "user_42", "bot"},
		)
		require.NoError(t, err)
		assert.Equal(t, "https://s.shopee.com.br/AbCd", link)

		assert.Equal(t,
			[]string{"telegram", "user_42", "bot", "", ""},
			gql.lastRequest.Variables["subIds"],
		)
	})

	t.Run("missing link in payload is an error", func(t *testing.T) {
		t.Parallel()

		gql := &fakeGraphQL{data: json.RawMessage(`{"generateShortLink":{}}`)}

		a := shopee.NewAffiliate(gql)
		_, err := a.GenerateShortLink(context.Background(), "https://shopee.com.br/x", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "short link missing")
	})

	t.Run("transport error propagates untouched", func(t *testing.T) {
		t.Parallel()

		gql := &fakeGraphQL{err: &shopee.APIError{
			Code:    shopee.CodeAuthError,
			Message: "bad sig",
		}}

		a := shopee.NewAffiliate(gql)
		_, err := a.GenerateShortLink(context.Background(), "https://shopee.com.br/x", nil)

		var apiErr *shopee.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, shopee.CodeAuthError, apiErr.Code)
		assert.Equal(t, "authentication failed (wrong or expired signature)", shopee.Describe(apiErr))
	})
}

func TestAffiliate_ConversionReport(t *testing.T) {
	t.Parallel()

	gql := &fakeGraphQL{data: json.RawMessage(`{
		"conversionReport": {
			"nodes": [{
				"orderId": "BR-0001",
				"purchaseTime": 1700000000,
				"commissionRate": "5.00",
				"commissionAmount": "2.75",
				"orderStatus": "COMPLETED",
				"subIds": ["telegram", "user_42", "bot", "", ""],
				"productName": "Smartwatch",
				"itemPrice": "55.00"
			}],
			"pageInfo": {"page": 1, "limit": 500, "hasNextPage": true, "scrollId": "tok-1"}
		}
	}`)}

	a := shopee.NewAffiliate(gql)
	page, err := a.ConversionReport(context.Background(), shopee.ReportRequest{
		StartTime: 1699000000,
		EndTime:   1700000000,
	})
	require.NoError(t, err)

	require.Len(t, page.Nodes, 1)
	assert.Equal(t, "BR-0001", page.Nodes[0].OrderID)
	assert.True(t, page.Nodes[0].CommissionAmount.Equal(decimal.RequireFromString("2.75")))
	assert.Equal(t, "tok-1", page.PageInfo.ScrollID)
}

func TestAffiliate_MalformedPayload(t *testing.T) {
	t.Parallel()

	gql := &fakeGraphQL{data: json.RawMessage(`{"productOfferV2": {"nodes": "not-a-list"}}`)}

	a := shopee.NewAffiliate(gql)
	_, err := a.ProductSearch(context.Background(), shopee.ProductSearchRequest{Keyword: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding productOfferV2 response")
}
