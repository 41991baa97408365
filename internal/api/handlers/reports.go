package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

// maxReportOrders caps the raw order list echoed back in report responses.
// The summary always covers every collected order.
const maxReportOrders = 100

// ReportsHandler handles commission report requests.
type ReportsHandler struct {
	client    shopee.AffiliateClient
	paginator *shopee.Paginator
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(client shopee.AffiliateClient, p *shopee.Paginator) *ReportsHandler {
	return &ReportsHandler{client: client, paginator: p}
}

// ConversionReportInput is the request body for the conversion report
// endpoint.
type ConversionReportInput struct {
	Body struct {
		StartTimestamp int64 `json:"start_timestamp" minimum:"1" doc:"Purchase window start (unix seconds)" example:"1699000000"`
		EndTimestamp   int64 `json:"end_timestamp" minimum:"1" doc:"Purchase window end (unix seconds)" example:"1700000000"`
		Validated      bool  `json:"validated,omitempty" doc:"Query the validated report instead of the conversion report"`
		MaxPages       int   `json:"max_pages,omitempty" minimum:"1" maximum:"50" doc:"Page cap for this request; the server's configured cap applies when omitted"`
	}
}

// ConversionReportOutput is the response body for the conversion report
// endpoint.
type ConversionReportOutput struct {
	Body struct {
		Summary shopee.ReportSummary `json:"summary"`
		Orders  []shopee.OrderRecord `json:"orders" doc:"Collected orders, capped at 100"`
	}
}

// Conversion collects every page of the report for the requested window
// and returns the aggregate summary plus the first orders.
func (h *ReportsHandler) Conversion(
	ctx context.Context,
	input *ConversionReportInput,
) (*ConversionReportOutput, error) {
	fetch := h.client.ConversionReport
	if input.Body.Validated {
		fetch = h.client.ValidatedReport
	}

	orders, err := h.paginator.Capped(input.Body.MaxPages).FetchAll(ctx, fetch, shopee.ReportRequest{
		StartTime: input.Body.StartTimestamp,
		EndTime:   input.Body.EndTimestamp,
	})
	if err != nil {
		return nil, upstreamError(err)
	}

	out := &ConversionReportOutput{}
	out.Body.Summary = shopee.Summarize(orders)
	if len(orders) > maxReportOrders {
		orders = orders[:maxReportOrders]
	}
	out.Body.Orders = orders
	return out, nil
}

// RegisterReportRoutes registers report endpoints with the Huma API.
func RegisterReportRoutes(api huma.API, h *ReportsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "conversion-report",
		Method:      http.MethodPost,
		Path:        "/api/v1/reports/conversion",
		Summary:     "Aggregate a commission report",
		Description: "Fetches every page of the conversion (or validated) report for a purchase window and aggregates totals by status and channel.",
		Tags:        []string{"reports"},
		Errors:      []int{http.StatusBadGateway},
	}, h.Conversion)
}
