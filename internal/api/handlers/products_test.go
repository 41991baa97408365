package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/affiliatehub/shopee-relay/internal/api/handlers"
	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

func productOffer(name, rate string) shopee.ProductOffer {
	return shopee.ProductOffer{
		ProductName:    name,
		CommissionRate: decimal.RequireFromString(rate),
		OfferLink:      "https://shopee.com.br/" + name,
	}
}

func TestProductsHandler_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		client     *fakeAffiliate
		wantStatus int
		wantBody   []string
		notInBody  []string
	}{
		{
			name: "valid request returns products",
			body: map[string]any{"keyword": "fone bluetooth", "limit": 5},
			client: &fakeAffiliate{
				productSearch: func(_ context.Context, req shopee.ProductSearchRequest) (*shopee.ProductPage, error) {
					if req.Keyword != "fone bluetooth" || req.Limit != 5 {
						return nil, errors.New("unexpected request")
					}
					return &shopee.ProductPage{
						Nodes:    []shopee.ProductOffer{productOffer("fone-a", "7.50")},
						PageInfo: shopee.PageInfo{HasNextPage: true},
					}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"count":1`, `"has_more":true`, "fone-a"},
		},
		{
			name: "minimum commission filters offers",
			body: map[string]any{"keyword": "fone", "min_commission": 5.0},
			client: &fakeAffiliate{
				productSearch: func(_ context.Context, _ shopee.ProductSearchRequest) (*shopee.ProductPage, error) {
					return &shopee.ProductPage{
						Nodes: []shopee.ProductOffer{
							productOffer("low", "2.00"),
							productOffer("high", "8.00"),
							productOffer("exact", "5.00"),
						},
					}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"count":2`, "high", "exact"},
			notInBody:  []string{`"low"`},
		},
		{
			name:       "missing keyword returns 422",
			body:       map[string]any{"limit": 5},
			client:     &fakeAffiliate{},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"expected required property keyword to be present"},
		},
		{
			name:       "empty keyword returns 422",
			body:       map[string]any{"keyword": ""},
			client:     &fakeAffiliate{},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{"expected length >= 1"},
		},
		{
			name: "upstream error returns 502 with description",
			body: map[string]any{"keyword": "fone"},
			client: &fakeAffiliate{
				productSearch: func(_ context.Context, _ shopee.ProductSearchRequest) (*shopee.ProductPage, error) {
					return nil, &shopee.APIError{Code: shopee.CodeAuthError, Message: "bad sig"}
				},
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   []string{"10020", "authentication failed"},
		},
		{
			name:       "invalid JSON returns 400",
			body:       strings.NewReader(`not json`),
			client:     &fakeAffiliate{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewProductsHandler(tt.client)

			_, api := humatest.New(t)
			handlers.RegisterProductRoutes(api, h)

			resp := api.Post("/api/v1/products/search", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
			for _, not := range tt.notInBody {
				assert.NotContains(t, resp.Body.String(), not)
			}
		})
	}
}
