package shopee_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

func TestProductSearchQuery_VariantSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		req          shopee.ProductSearchRequest
		wantArgs     []string
		wantAbsent   []string
		wantVars     map[string]any
		wantVarsGone []string
	}{
		{
			name: "shop filter binds shopId and matchId to the same variable",
			req:  shopee.ProductSearchRequest{ShopID: 84499012},
			wantArgs: []string{
				"shopId: $shopId",
				"matchId: $shopId",
			},
			wantAbsent: []string{"productCatId: $categoryId", "keyword: $keyword"},
			wantVars: map[string]any{
				"shopId":   int64(84499012),
				"listType": 5,
			},
			wantVarsGone: []string{"categoryId", "keyword"},
		},
		{
			name:       "category filter uses productCatId only",
			req:        shopee.ProductSearchRequest{CategoryID: 10001},
			wantArgs:   []string{"productCatId: $categoryId"},
			wantAbsent: []string{"shopId: $shopId", "matchId", "keyword: $keyword"},
			wantVars: map[string]any{
				"categoryId": int64(10001),
				"listType":   1,
			},
			wantVarsGone: []string{"shopId", "keyword"},
		},
		{
			name:       "keyword only",
			req:        shopee.ProductSearchRequest{Keyword: "smartphone", Limit: 5},
			wantArgs:   []string{"keyword: $keyword"},
			wantAbsent: []string{"shopId: $shopId", "productCatId: $categoryId"},
			wantVars: map[string]any{
				"keyword": "smartphone",
				"limit":   5,
			},
			wantVarsGone: []string{"shopId", "categoryId"},
		},
		{
			name:       "no filters lists marketplace-wide",
			req:        shopee.ProductSearchRequest{},
			wantAbsent: []string{"shopId: $shopId", "productCatId: $categoryId", "keyword: $keyword"},
			wantVars: map[string]any{
				"listType": 1,
				"sortType": 5,
				"page":     1,
				"limit":    10,
			},
			wantVarsGone: []string{"shopId", "categoryId", "keyword"},
		},
		{
			name: "shop filter wins over category and keyword",
			req: shopee.ProductSearchRequest{
				Keyword:    "fone bluetooth",
				CategoryID: 10001,
				ShopID:     84499012,
			},
			wantArgs:   []string{"shopId: $shopId", "matchId: $shopId"},
			wantAbsent: []string{"productCatId: $categoryId", "keyword: $keyword"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := shopee.ProductSearchQuery(tt.req)

			for _, arg := range tt.wantArgs {
				assert.Contains(t, req.Query, arg)
			}
			for _, arg := range tt.wantAbsent {
				assert.NotContains(t, req.Query, arg)
			}
			for name, want := range tt.wantVars {
				assert.Equal(t, want, req.Variables[name], "variable %s", name)
			}
			for _, name := range tt.wantVarsGone {
				assert.NotContains(t, req.Variables, name)
			}
		})
	}
}

func TestProductSearchQuery_AlwaysPassesListAndSort(t *testing.T) {
	t.Parallel()

	reqs := []shopee.ProductSearchRequest{
		{},
		{Keyword: "smartphone"},
		{CategoryID: 10001},
		{ShopID: 84499012},
	}

	for _, r := range reqs {
		req := shopee.ProductSearchQuery(r)
		assert.Contains(t, req.Variables, "listType")
		assert.Contains(t, req.Variables, "sortType")
		assert.Contains(t, req.Variables, "page")
		assert.Contains(t, req.Variables, "limit")
	}
}

func TestNormalizeSubIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "nil pads to five empties",
			in:   nil,
			want: []string{"", "", "", "", ""},
		},
		{
			name: "short list pads preserving order",
			in:   []string{"telegram", "bot"},
			want: []string{"telegram", "bot", "", "", ""},
		},
		{
			name: "exact five unchanged",
			in:   []string{"a", "b", "c", "d", "e"},
			want: []string{"a", "b", "c", "d", "e"},
		},
		{
			name: "long list truncates to first five",
			in:   []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
			want: []string{"a", "b", "c", "d", "e"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := shopee.NormalizeSubIDs(tt.in)
			require.Len(t, got, 5)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShortLinkMutation(t *testing.T) {
	t.Parallel()

	req := shopee.ShortLinkMutation(
		"https://shopee.com.br/product-i.123.456",
		[]string{"telegram", "user_42"},
	)

	assert.Contains(t, req.Query, "generateShortLink")
	assert.Equal(t, "https://shopee.com.br/product-i.123.456", req.Variables["url"])
	assert.Equal(t,
		[]string{"telegram", "user_42", "", "", ""},
		req.Variables["subIds"],
	)
}

func TestReportQueries(t *testing.T) {
	t.Parallel()

	base := shopee.ReportRequest{StartTime: 1600000000, EndTime: 1600604800}

	t.Run("conversion and validated differ only in field name", func(t *testing.T) {
		t.Parallel()

		conv := shopee.ConversionReportQuery(base)
		valid := shopee.ValidatedReportQuery(base)

		assert.Contains(t, conv.Query, "conversionReport(")
		assert.Contains(t, valid.Query, "validatedReport(")

		normalize := func(q string) string {
			q = strings.ReplaceAll(q, "conversionReport", "report")
			q = strings.ReplaceAll(q, "ConversionReport", "Report")
			q = strings.ReplaceAll(q, "validatedReport", "report")
			q = strings.ReplaceAll(q, "ValidatedReport", "Report")
			return q
		}
		assert.Equal(t, normalize(conv.Query), normalize(valid.Query))
		assert.Equal(t, conv.Variables, valid.Variables)
	})

	t.Run("scroll token forwarded only when set", func(t *testing.T) {
		t.Parallel()

		first := shopee.ConversionReportQuery(base)
		assert.NotContains(t, first.Variables, "scrollId")

		withToken := base
		withToken.ScrollID = "scroll-abc"
		next := shopee.ConversionReportQuery(withToken)
		assert.Equal(t, "scroll-abc", next.Variables["scrollId"])
	})

	t.Run("defaults applied", func(t *testing.T) {
		t.Parallel()

		req := shopee.ConversionReportQuery(base)
		assert.Equal(t, 1, req.Variables["page"])
		assert.Equal(t, 500, req.Variables["limit"])
		assert.Equal(t, int64(1600000000), req.Variables["start"])
		assert.Equal(t, int64(1600604800), req.Variables["end"])
	})
}

func TestOfferAndShopSearchQueries(t *testing.T) {
	t.Parallel()

	offer := shopee.OfferSearchQuery(shopee.OfferSearchRequest{Keyword: "promo"})
	assert.Contains(t, offer.Query, "shopeeOfferV2(")
	assert.Equal(t, "promo", offer.Variables["keyword"])
	assert.Equal(t, 2, offer.Variables["sortType"])

	shop := shopee.ShopSearchQuery(shopee.ShopSearchRequest{Keyword: "loja"})
	assert.Contains(t, shop.Query, "shopOfferV2(")
	assert.Equal(t, []int{1, 4}, shop.Variables["shopTypes"])
}
