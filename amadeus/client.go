// Package amadeus is the provider adapter for the Amadeus travel API:
// a token-managed HTTP client plus the gateways that turn provider JSON
// into domain entities.
package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"flightdesk/domain"
	"flightdesk/log"
)

const (
	// BaseURLTest is the Amadeus self-service test environment
	BaseURLTest = "https://test.api.amadeus.com"
	// BaseURLProduction is the Amadeus production environment
	BaseURLProduction = "https://api.amadeus.com"

	// requestTimeout applies to the token fetch and to each data call
	requestTimeout = 30 * time.Second
)

// Client issues authenticated GET requests against the Amadeus API.
// A 401 response invalidates the cached token and the request is retried
// exactly once with a fresh one; that is the whole retry policy. 5xx and
// network failures surface immediately as service-unavailable.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *TokenManager
}

// NewClient builds a client and its token manager
func NewClient(baseURL, clientID, clientSecret string) *Client {
	httpClient := &http.Client{Timeout: requestTimeout}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		tokens:     NewTokenManager(baseURL, clientID, clientSecret, httpClient),
	}
}

// Get performs an authenticated GET and returns the raw response body
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, endpoint, query, token)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Token expired upstream; refresh once and replay the request.
		resp.Body.Close()
		log.Infof(ctx, "Amadeus returned 401 for %s, refreshing token", endpoint)
		c.tokens.Invalidate()
		token, err = c.tokens.Token(ctx)
		if err != nil {
			return nil, err
		}
		resp, err = c.do(ctx, endpoint, query, token)
		if err != nil {
			return nil, err
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(ctx, err, "connectivity error, please try again")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Errorf(ctx, "HTTP error in Amadeus API: %d %s", resp.StatusCode, endpoint)
		switch {
		case resp.StatusCode == http.StatusBadRequest:
			return nil, domain.NewInvalidParameters("invalid parameters: %s", string(body))
		case resp.StatusCode >= 500:
			return nil, domain.NewServiceUnavailable("service temporarily unavailable", nil)
		default:
			return nil, domain.NewAPIError(resp.StatusCode, "API error")
		}
	}

	return body, nil
}

func (c *Client) do(ctx context.Context, endpoint string, query url.Values, token string) (*http.Response, error) {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf(ctx, "connectivity error: %v", err)
		return nil, classifyTransportError(ctx, err, "connectivity error, please try again")
	}
	return resp, nil
}

// classifyTransportError keeps caller-initiated cancellation distinct from
// provider trouble: context errors propagate as themselves, everything else
// becomes service-unavailable.
func classifyTransportError(ctx context.Context, err error, message string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return domain.NewServiceUnavailable(message, err)
}
