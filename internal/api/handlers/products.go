// Package handlers implements HTTP handlers for the relay API.
package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

// ProductsHandler handles product search requests.
type ProductsHandler struct {
	client shopee.AffiliateClient
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(client shopee.AffiliateClient) *ProductsHandler {
	return &ProductsHandler{client: client}
}

// ProductSearchInput is the request body for the product search endpoint.
type ProductSearchInput struct {
	Body struct {
		Keyword       string  `json:"keyword" minLength:"1" doc:"Product search keyword" example:"fone bluetooth"`
		SortType      int     `json:"sort_type,omitempty" doc:"Sort order (5 = best selling)" example:"5"`
		Page          int     `json:"page,omitempty" minimum:"1" doc:"Result page (default 1)"`
		Limit         int     `json:"limit,omitempty" minimum:"1" doc:"Maximum results to return (default 10)" example:"10"`
		MinCommission float64 `json:"min_commission,omitempty" minimum:"0" doc:"Minimum commission rate in percent" example:"5.0"`
	}
}

// ProductSearchOutput is the response body for the product search endpoint.
type ProductSearchOutput struct {
	Body struct {
		Products []shopee.ProductOffer `json:"products" doc:"Matching product offers"`
		Count    int                   `json:"count" doc:"Number of products after filtering"`
		HasMore  bool                  `json:"has_more" doc:"Whether more result pages are available"`
	}
}

// Search proxies a product search to the affiliate API, dropping offers
// below the requested commission rate.
func (h *ProductsHandler) Search(
	ctx context.Context,
	input *ProductSearchInput,
) (*ProductSearchOutput, error) {
	page, err := h.client.ProductSearch(ctx, shopee.ProductSearchRequest{
		Keyword:  input.Body.Keyword,
		SortType: input.Body.SortType,
		Page:     input.Body.Page,
		Limit:    input.Body.Limit,
	})
	if err != nil {
		return nil, upstreamError(err)
	}

	products := page.Nodes
	if input.Body.MinCommission > 0 {
		min := decimal.NewFromFloat(input.Body.MinCommission)
		filtered := make([]shopee.ProductOffer, 0, len(products))
		for _, p := range products {
			if p.CommissionRate.GreaterThanOrEqual(min) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	out := &ProductSearchOutput{}
	out.Body.Products = products
	out.Body.Count = len(products)
	out.Body.HasMore = page.PageInfo.HasNextPage
	return out, nil
}

// RegisterProductRoutes registers product endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-products",
		Method:      http.MethodPost,
		Path:        "/api/v1/products/search",
		Summary:     "Search product offers",
		Description: "Searches affiliate product offers by keyword and filters them by minimum commission rate.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusBadGateway},
	}, h.Search)
}
