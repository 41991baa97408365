package shopee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://open-api.affiliate.shopee.com.br/graphql"
	defaultTimeout = 30 * time.Second
)

// Client implements GraphQLClient against the affiliate endpoint. The
// credentials are immutable for the lifetime of the client; signature and
// timestamp are derived fresh for every request.
type Client struct {
	appID   string
	secret  string
	baseURL string
	client  *http.Client
	nowFunc func() time.Time
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default affiliate endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(c *Client) {
		c.nowFunc = f
	}
}

// NewClient creates a signed GraphQL client for the given credentials.
func NewClient(appID, secret string, opts ...Option) *Client {
	c := &Client{
		appID:   appID,
		secret:  secret,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: defaultTimeout},
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// requestPayload is the wire form of a Request. Field order matters: the
// serialized bytes are the signature input, so the envelope must always
// marshal the same way.
type requestPayload struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

type responseError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code int `json:"code"`
	} `json:"extensions"`
}

type responseEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []responseError `json:"errors"`
}

// Execute signs and posts one GraphQL request. Transport failures and
// non-JSON bodies surface as *APIError with code 0; provider errors carry
// the code and message of the first errors entry. On success the data
// mapping is returned unchanged. The client never retries.
func (c *Client) Execute(ctx context.Context, req Request) (json.RawMessage, error) {
	body, err := marshalCanonical(requestPayload{
		Query:         req.Query,
		Variables:     req.Variables,
		OperationName: req.OperationName,
	})
	if err != nil {
		return nil, &APIError{Code: CodeTransport, Message: fmt.Sprintf("encoding request: %v", err)}
	}

	timestamp := c.nowFunc().Unix()
	signature := Sign(c.appID, c.secret, timestamp, body)

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL, bytes.NewReader(body),
	)
	if err != nil {
		return nil, &APIError{Code: CodeTransport, Message: fmt.Sprintf("creating request: %v", err)}
	}

	httpReq.Header.Set("Authorization", AuthHeader(c.appID, timestamp, signature))
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &APIError{Code: CodeTransport, Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Code: CodeTransport, Message: fmt.Sprintf("reading response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Code:    CodeTransport,
			Message: fmt.Sprintf("request failed: status %d: %s", resp.StatusCode, respBody),
		}
	}

	var envelope responseEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, &APIError{Code: CodeTransport, Message: fmt.Sprintf("parsing response: %v", err)}
	}

	if len(envelope.Errors) > 0 {
		first := envelope.Errors[0]
		raw, _ := json.Marshal(first) //nolint:errcheck // best-effort payload capture
		return nil, &APIError{
			Code:    first.Extensions.Code,
			Message: first.Message,
			Raw:     raw,
		}
	}

	return envelope.Data, nil
}

// marshalCanonical produces the one canonical serialization of the request
// body: compact JSON without HTML escaping or a trailing newline. These
// exact bytes are used both as signature input and as the POST body.
func marshalCanonical(p requestPayload) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
