package shopee

import (
	"encoding/json"
	"fmt"
)

// Provider error codes returned in errors[].extensions.code. Code 0 is
// used for transport-level failures that never reached the API.
const (
	CodeTransport          = 0
	CodeSystemError        = 10000
	CodeParseError         = 10010
	CodeAuthError          = 10020
	CodeRateLimited        = 10030
	CodeInvalidAffiliateID = 10032
	CodeAccessDenied       = 10035
	CodeBusinessError      = 11000
	CodeParamError         = 11001
)

// APIError is a failed affiliate API call. Code and Message come from the
// first entry of the response's errors array; Raw preserves that entry
// verbatim. Transport failures use Code 0 and an empty Raw.
type APIError struct {
	Code    int
	Message string
	Raw     json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shopee api error %d: %s", e.Code, e.Message)
}

// descriptions is presentation sugar for the documented provider codes.
var descriptions = map[int]string{
	CodeSystemError:        "provider system error",
	CodeParseError:         "query could not be parsed (bad syntax or unknown operation)",
	CodeAuthError:          "authentication failed (wrong or expired signature)",
	CodeRateLimited:        "rate limit exceeded (2000 requests/hour)",
	CodeInvalidAffiliateID: "invalid affiliate ID",
	CodeAccessDenied:       "no access to this API (request it from support)",
	CodeBusinessError:      "business rule violation",
	CodeParamError:         "invalid parameters",
}

// Describe returns a friendly description for a known provider error code.
// Unknown codes fall back to the raw message.
func Describe(err *APIError) string {
	if d, ok := descriptions[err.Code]; ok {
		return d
	}
	return err.Message
}
