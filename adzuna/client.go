package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the root of the Adzuna REST API.
const DefaultBaseURL = "https://api.adzuna.com/v1/api"

const defaultTimeout = 30 * time.Second

// Client holds the Adzuna application credentials and issues requests on
// behalf of the endpoint builders. It is immutable after construction and
// safe for concurrent use.
type Client struct {
	appID      string
	appKey     string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Adzuna client. Credentials are not validated and
// no network call is made; the API itself is the source of truth and will
// reject bad credentials with an AUTH_FAIL exception at fetch time.
func NewClient(appID, appKey string, logger zerolog.Logger, opts ...Option) *Client {
	client := &Client{
		appID:      appID,
		appKey:     appKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.baseURL = strings.TrimRight(client.baseURL, "/")
	return client
}

// Search returns a builder for the job search endpoint.
func (c *Client) Search() *SearchRequest {
	return &SearchRequest{request: newRequest(c)}
}

// TopCompanies returns a builder for the top_companies statistics endpoint.
func (c *Client) TopCompanies() *TopCompaniesRequest {
	return &TopCompaniesRequest{request: newRequest(c)}
}

// Histogram returns a builder for the salary histogram endpoint.
func (c *Client) Histogram() *HistogramRequest {
	return &HistogramRequest{request: newRequest(c)}
}

// History returns a builder for the historical salary endpoint.
func (c *Client) History() *HistoryRequest {
	return &HistoryRequest{request: newRequest(c)}
}

// Categories returns a builder for the categories endpoint.
func (c *Client) Categories() *CategoriesRequest {
	return &CategoriesRequest{request: newRequest(c)}
}

// Geodata returns a builder for the geographic job data endpoint.
func (c *Client) Geodata() *GeodataRequest {
	return &GeodataRequest{request: newRequest(c)}
}

// Version returns a builder for the API version endpoint.
func (c *Client) Version() *VersionRequest {
	return &VersionRequest{request: newRequest(c)}
}

// fetch performs the single GET request for a finalized builder and decodes
// the response into T. Every endpoint shares this path; the taxonomy of
// failures it can return is:
//
//   - transport errors, wrapped with %w
//   - *APIError for any non-2xx status, with Exception set when the API
//     returned a structured error body
//   - an error wrapping ErrDecodeResponse for a 2xx body that does not
//     decode into T
func fetch[T any](ctx context.Context, r *request, path string) (*T, error) {
	requestURL := r.client.baseURL + path + "?" + r.query().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.client.userAgent != "" {
		req.Header.Set("User-Agent", r.client.userAgent)
	}

	r.client.logger.Debug().
		Str("endpoint", path).
		Msg("Making Adzuna API request")

	resp, err := r.client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}

	return &result, nil
}

// newAPIError builds an APIError from a non-2xx response, attaching the
// structured exception when the body carries one.
func newAPIError(statusCode int, body []byte) *APIError {
	var exc APIException
	if err := json.Unmarshal(body, &exc); err == nil && exc.Exception != "" {
		return &APIError{StatusCode: statusCode, Exception: &exc}
	}
	return &APIError{StatusCode: statusCode, Body: string(body)}
}

// query assembles the final parameter set: the accumulated builder
// parameters, the expanded locationN series, and the authentication
// parameters sent on every request.
func (r *request) query() url.Values {
	values := url.Values{}
	for key, vals := range r.params {
		for _, v := range vals {
			values.Add(key, v)
		}
	}
	for i, location := range r.locations {
		values.Set(fmt.Sprintf("location%d", i), location)
	}
	values.Set("app_id", r.client.appID)
	values.Set("app_key", r.client.appKey)
	return values
}
