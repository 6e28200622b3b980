package amadeus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"flightdesk/domain"
	"flightdesk/log"
)

// TokenManager owns the single cached bearer token for the Amadeus API.
// The token carries no locally tracked expiry; it is invalidated reactively
// when a request comes back 401. Refresh is serialized through a
// single-flight group so concurrent requests missing the token trigger
// exactly one fetch and all observe its result.
type TokenManager struct {
	clientID     string
	clientSecret string
	tokenURL     string
	httpClient   *http.Client

	mu    sync.Mutex
	token string
	group singleflight.Group
}

// NewTokenManager builds a token manager against the provider's OAuth endpoint
func NewTokenManager(baseURL, clientID, clientSecret string, httpClient *http.Client) *TokenManager {
	return &TokenManager{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     baseURL + "/v1/security/oauth2/token",
		httpClient:   httpClient,
	}
}

// Token returns the cached access token, fetching a new one if the cache
// is empty. At most one fetch is in flight at a time.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	token := m.token
	m.mu.Unlock()
	if token != "" {
		return token, nil
	}

	v, err, _ := m.group.Do("token", func() (interface{}, error) {
		// A waiter that lost the race may arrive after the winner stored
		// the token; re-check before hitting the network.
		m.mu.Lock()
		token := m.token
		m.mu.Unlock()
		if token != "" {
			return token, nil
		}

		fresh, err := m.fetch(ctx)
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		m.token = fresh
		m.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Invalidate clears the cached token, forcing the next Token call to re-fetch
func (m *TokenManager) Invalidate() {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// fetch performs the client-credentials grant
func (m *TokenManager) fetch(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.clientID)
	form.Set("client_secret", m.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		log.Errorf(ctx, "connectivity error in authentication: %v", err)
		return "", classifyTransportError(ctx, err, "connectivity error in authentication, please try again")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Errorf(ctx, "HTTP error in Amadeus authentication: %d", resp.StatusCode)
		switch {
		case resp.StatusCode == http.StatusBadRequest:
			return "", domain.NewInvalidParameters("invalid API credentials")
		case resp.StatusCode >= 500:
			return "", domain.NewServiceUnavailable("authentication service temporarily unavailable", nil)
		default:
			return "", domain.NewAPIError(resp.StatusCode, "authentication error")
		}
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", domain.NewMappingError("malformed token response: %v", err)
	}
	if token.AccessToken == "" {
		return "", domain.NewMappingError("token response missing access_token")
	}
	return token.AccessToken, nil
}
