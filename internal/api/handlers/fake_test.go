package handlers_test

import (
	"context"
	"errors"

	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

// fakeAffiliate implements shopee.AffiliateClient with per-method function
// hooks. Unset methods fail so a test only exercises what it configures.
type fakeAffiliate struct {
	productSearch     func(ctx context.Context, req shopee.ProductSearchRequest) (*shopee.ProductPage, error)
	offerSearch       func(ctx context.Context, req shopee.OfferSearchRequest) (*shopee.OfferPage, error)
	shopSearch        func(ctx context.Context, req shopee.ShopSearchRequest) (*shopee.ShopPage, error)
	generateShortLink func(ctx context.Context, originURL string, subIDs []string) (string, error)
	conversionReport  func(ctx context.Context, req shopee.ReportRequest) (*shopee.ReportPage, error)
	validatedReport   func(ctx context.Context, req shopee.ReportRequest) (*shopee.ReportPage, error)
}

var errFakeUnset = errors.New("fake method not configured")

func (f *fakeAffiliate) ProductSearch(
	ctx context.Context,
	req shopee.ProductSearchRequest,
) (*shopee.ProductPage, error) {
	if f.productSearch == nil {
		return nil, errFakeUnset
	}
	return f.productSearch(ctx, req)
}

func (f *fakeAffiliate) OfferSearch(
	ctx context.Context,
	req shopee.OfferSearchRequest,
) (*shopee.OfferPage, error) {
	if f.offerSearch == nil {
		return nil, errFakeUnset
	}
	return f.offerSearch(ctx, req)
}

func (f *fakeAffiliate) ShopSearch(
	ctx context.Context,
	req shopee.ShopSearchRequest,
) (*shopee.ShopPage, error) {
	if f.shopSearch == nil {
		return nil, errFakeUnset
	}
	return f.shopSearch(ctx, req)
}

func (f *fakeAffiliate) GenerateShortLink(
	ctx context.Context,
	originURL string,
	subIDs []string,
) (string, error) {
	if f.generateShortLink == nil {
		return "", errFakeUnset
	}
	return f.generateShortLink(ctx, originURL, subIDs)
}

func (f *fakeAffiliate) ConversionReport(
	ctx context.Context,
	req shopee.ReportRequest,
) (*shopee.ReportPage, error) {
	if f.conversionReport == nil {
		return nil, errFakeUnset
	}
	return f.conversionReport(ctx, req)
}

func (f *fakeAffiliate) ValidatedReport(
	ctx context.Context,
	req shopee.ReportRequest,
) (*shopee.ReportPage, error) {
	if f.validatedReport == nil {
		return nil, errFakeUnset
	}
	return f.validatedReport(ctx, req)
}
