package handlers

import (
	"context"
	"net/http"
	"sort"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

const (
	defaultTopLimit         = 20
	defaultTopMinCommission = 5.0
)

// OffersHandler handles curated top offer requests.
type OffersHandler struct {
	client shopee.AffiliateClient
}

// NewOffersHandler creates a new OffersHandler.
func NewOffersHandler(client shopee.AffiliateClient) *OffersHandler {
	return &OffersHandler{client: client}
}

// TopOffersInput is the request body for the top offers endpoint.
type TopOffersInput struct {
	Body struct {
		CategoryID    int64    `json:"category_id,omitempty" doc:"Restrict to a product category"`
		ShopID        int64    `json:"shop_id,omitempty" doc:"Restrict to a shop"`
		MinCommission *float64 `json:"min_commission,omitempty" minimum:"0" doc:"Minimum commission rate in percent (default 5)"`
		MinRating     float64  `json:"min_rating,omitempty" minimum:"0" maximum:"5" doc:"Minimum product rating" example:"4.0"`
		Limit         int      `json:"limit,omitempty" minimum:"1" doc:"Maximum offers to return (default 20)"`
	}
}

// TopOffersOutput is the response body for the top offers endpoint.
type TopOffersOutput struct {
	Body struct {
		Offers  []shopee.ProductOffer `json:"offers" doc:"Offers ranked by commission rate, highest first"`
		Count   int                   `json:"count"`
		Filters TopOfferFilters       `json:"filters" doc:"Effective filter values"`
	}
}

// TopOfferFilters echoes the filter values the search was run with.
type TopOfferFilters struct {
	MinCommission float64 `json:"min_commission"`
	MinRating     float64 `json:"min_rating"`
}

// Top searches best-selling offers, keeps those above the commission and
// rating thresholds, and re-ranks them by commission rate descending. The
// upstream search is oversized so filtering still fills the page.
func (h *OffersHandler) Top(
	ctx context.Context,
	input *TopOffersInput,
) (*TopOffersOutput, error) {
	limit := input.Body.Limit
	if limit <= 0 {
		limit = defaultTopLimit
	}
	minCommission := defaultTopMinCommission
	if input.Body.MinCommission != nil {
		minCommission = *input.Body.MinCommission
	}

	page, err := h.client.ProductSearch(ctx, shopee.ProductSearchRequest{
		CategoryID: input.Body.CategoryID,
		ShopID:     input.Body.ShopID,
		Limit:      limit * 2,
	})
	if err != nil {
		return nil, upstreamError(err)
	}

	minCommissionDec := decimal.NewFromFloat(minCommission)
	minRating := decimal.NewFromFloat(input.Body.MinRating)

	offers := make([]shopee.ProductOffer, 0, len(page.Nodes))
	for _, p := range page.Nodes {
		if p.CommissionRate.GreaterThanOrEqual(minCommissionDec) &&
			p.RatingStar.GreaterThanOrEqual(minRating) {
			offers = append(offers, p)
		}
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].CommissionRate.GreaterThan(offers[j].CommissionRate)
	})
	if len(offers) > limit {
		offers = offers[:limit]
	}

	out := &TopOffersOutput{}
	out.Body.Offers = offers
	out.Body.Count = len(offers)
	out.Body.Filters = TopOfferFilters{
		MinCommission: minCommission,
		MinRating:     input.Body.MinRating,
	}
	return out, nil
}

// RegisterOfferRoutes registers offer endpoints with the Huma API.
func RegisterOfferRoutes(api huma.API, h *OffersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "top-offers",
		Method:      http.MethodPost,
		Path:        "/api/v1/offers/top",
		Summary:     "List top commission offers",
		Description: "Searches product offers and returns those above the commission and rating thresholds, ranked by commission rate.",
		Tags:        []string{"offers"},
		Errors:      []int{http.StatusBadGateway},
	}, h.Top)
}
