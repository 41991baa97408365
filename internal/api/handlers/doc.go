package handlers

import (
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"

	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// upstreamError converts an affiliate API failure into a 502 with the
// error code and a friendly description where one is known.
func upstreamError(err error) error {
	var apiErr *shopee.APIError
	if errors.As(err, &apiErr) {
		return huma.Error502BadGateway(
			fmt.Sprintf("affiliate api error %d: %s", apiErr.Code, shopee.Describe(apiErr)),
		)
	}
	return huma.Error502BadGateway("affiliate api error: " + err.Error())
}
