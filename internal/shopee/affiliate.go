package shopee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/affiliatehub/shopee-relay/internal/metrics"
)

// Affiliate implements AffiliateClient by building operation requests,
// executing them through a GraphQLClient, and decoding the loosely-typed
// data mapping into explicit record shapes at the boundary.
type Affiliate struct {
	gql GraphQLClient
}

// NewAffiliate creates the typed affiliate facade over a transport.
func NewAffiliate(gql GraphQLClient) *Affiliate {
	return &Affiliate{gql: gql}
}

// ProductSearch runs a product offer search.
func (a *Affiliate) ProductSearch(
	ctx context.Context,
	req ProductSearchRequest,
) (*ProductPage, error) {
	var out struct {
		ProductOfferV2 ProductPage `json:"productOfferV2"`
	}
	if err := a.run(ctx, "productOfferV2", ProductSearchQuery(req), &out); err != nil {
		return nil, err
	}
	return &out.ProductOfferV2, nil
}

// OfferSearch runs a marketplace-wide offer search.
func (a *Affiliate) OfferSearch(
	ctx context.Context,
	req OfferSearchRequest,
) (*OfferPage, error) {
	var out struct {
		ShopeeOfferV2 OfferPage `json:"shopeeOfferV2"`
	}
	if err := a.run(ctx, "shopeeOfferV2", OfferSearchQuery(req), &out); err != nil {
		return nil, err
	}
	return &out.ShopeeOfferV2, nil
}

// ShopSearch runs a shop offer search.
func (a *Affiliate) ShopSearch(
	ctx context.Context,
	req ShopSearchRequest,
) (*ShopPage, error) {
	var out struct {
		ShopOfferV2 ShopPage `json:"shopOfferV2"`
	}
	if err := a.run(ctx, "shopOfferV2", ShopSearchQuery(req), &out); err != nil {
		return nil, err
	}
	return &out.ShopOfferV2, nil
}

// GenerateShortLink creates a tracked short link for an origin URL. Sub-IDs
// are normalized to the fixed arity the mutation requires.
func (a *Affiliate) GenerateShortLink(
	ctx context.Context,
	originURL string,
	subIDs []string,
) (string, error) {
	var out struct {
		GenerateShortLink struct {
			ShortLink string `json:"shortLink"`
		} `json:"generateShortLink"`
	}
	if err := a.run(ctx, "generateShortLink", ShortLinkMutation(originURL, subIDs), &out); err != nil {
		return "", err
	}
	if out.GenerateShortLink.ShortLink == "" {
		return "", fmt.Errorf("short link missing in response")
	}
	return out.GenerateShortLink.ShortLink, nil
}

// ConversionReport fetches one page of the conversion report.
func (a *Affiliate) ConversionReport(
	ctx context.Context,
	req ReportRequest,
) (*ReportPage, error) {
	var out struct {
		ConversionReport ReportPage `json:"conversionReport"`
	}
	if err := a.run(ctx, "conversionReport", ConversionReportQuery(req), &out); err != nil {
		return nil, err
	}
	return &out.ConversionReport, nil
}

// ValidatedReport fetches one page of the validated report.
func (a *Affiliate) ValidatedReport(
	ctx context.Context,
	req ReportRequest,
) (*ReportPage, error) {
	var out struct {
		ValidatedReport ReportPage `json:"validatedReport"`
	}
	if err := a.run(ctx, "validatedReport", ValidatedReportQuery(req), &out); err != nil {
		return nil, err
	}
	return &out.ValidatedReport, nil
}

func (a *Affiliate) run(ctx context.Context, operation string, req Request, dst any) error {
	metrics.AffiliateCallsTotal.WithLabelValues(operation).Inc()

	data, err := a.gql.Execute(ctx, req)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			metrics.AffiliateErrorsTotal.
				WithLabelValues(operation, strconv.Itoa(apiErr.Code)).
				Inc()
		}
		return err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decoding %s response: %w", operation, err)
	}
	return nil
}
