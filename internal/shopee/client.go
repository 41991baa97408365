// Package shopee provides a signed GraphQL client for the Shopee affiliate
// API abstracted behind interfaces for testability.
package shopee

import (
	"context"
	"encoding/json"
)

// Request is a single GraphQL operation ready to execute. It is constructed
// fresh per call by the query builders and never reused.
type Request struct {
	Query         string
	Variables     map[string]any
	OperationName string
}

// GraphQLClient executes signed GraphQL requests against the affiliate
// endpoint and returns the raw data mapping on success.
type GraphQLClient interface {
	Execute(ctx context.Context, req Request) (json.RawMessage, error)
}

// AffiliateClient is the typed facade over the supported affiliate
// operations. Presentation layers (bot, webhook handlers, CLI) depend on
// this interface rather than on the transport.
type AffiliateClient interface {
	ProductSearch(ctx context.Context, req ProductSearchRequest) (*ProductPage, error)
	OfferSearch(ctx context.Context, req OfferSearchRequest) (*OfferPage, error)
	ShopSearch(ctx context.Context, req ShopSearchRequest) (*ShopPage, error)
	GenerateShortLink(ctx context.Context, originURL string, subIDs []string) (string, error)
	ConversionReport(ctx context.Context, req ReportRequest) (*ReportPage, error)
	ValidatedReport(ctx context.Context, req ReportRequest) (*ReportPage, error)
}
