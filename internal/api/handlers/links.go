package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/affiliatehub/shopee-relay/internal/metrics"
	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

// LinksHandler handles tracked short link generation.
type LinksHandler struct {
	client shopee.AffiliateClient
}

// NewLinksHandler creates a new LinksHandler.
func NewLinksHandler(client shopee.AffiliateClient) *LinksHandler {
	return &LinksHandler{client: client}
}

// LinkItem is one URL to shorten with its attribution sub-IDs.
type LinkItem struct {
	URL    string   `json:"url" minLength:"1" doc:"Origin product URL" example:"https://shopee.com.br/product-i.123.456"`
	SubIDs []string `json:"sub_ids,omitempty" maxItems:"5" doc:"Attribution sub-IDs (up to five)"`
}

// LinkResult is the per-item outcome of a batch link request.
type LinkResult struct {
	OriginURL string `json:"origin_url"`
	ShortLink string `json:"short_link,omitempty"`
	Error     string `json:"error,omitempty"`
}

// GenerateLinksInput is the request body for the batch link endpoint.
type GenerateLinksInput struct {
	Body struct {
		Products []LinkItem `json:"products" minItems:"1" maxItems:"50" doc:"URLs to shorten"`
	}
}

// GenerateLinksOutput is the response body for the batch link endpoint.
type GenerateLinksOutput struct {
	Body struct {
		Results   []LinkResult `json:"results"`
		Generated int          `json:"generated" doc:"Number of links created"`
		Failed    int          `json:"failed" doc:"Number of items that failed"`
	}
}

// Generate creates a short link per item. One failed item never aborts the
// batch; its slot carries the error and the rest proceed.
func (h *LinksHandler) Generate(
	ctx context.Context,
	input *GenerateLinksInput,
) (*GenerateLinksOutput, error) {
	out := &GenerateLinksOutput{}
	out.Body.Results = make([]LinkResult, 0, len(input.Body.Products))

	for _, item := range input.Body.Products {
		result := LinkResult{OriginURL: item.URL}

		link, err := h.client.GenerateShortLink(ctx, item.URL, item.SubIDs)
		if err != nil {
			result.Error = linkError(err)
			out.Body.Failed++
		} else {
			result.ShortLink = link
			out.Body.Generated++
			metrics.LinksGeneratedTotal.Inc()
		}

		out.Body.Results = append(out.Body.Results, result)
	}

	return out, nil
}

func linkError(err error) string {
	var apiErr *shopee.APIError
	if errors.As(err, &apiErr) {
		return shopee.Describe(apiErr)
	}
	return err.Error()
}

// RegisterLinkRoutes registers link endpoints with the Huma API.
func RegisterLinkRoutes(api huma.API, h *LinksHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "generate-links",
		Method:      http.MethodPost,
		Path:        "/api/v1/links",
		Summary:     "Generate tracked short links",
		Description: "Creates a tracked short link for each product URL. Failures are reported per item.",
		Tags:        []string{"links"},
	}, h.Generate)
}
