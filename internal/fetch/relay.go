package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// DefaultRelayEndpoints is the ordered list of public URL-relay services
// used when the primary strategy fails. Each accepts the target URL as a
// single query parameter.
func DefaultRelayEndpoints() []RelayEndpoint {
	return []RelayEndpoint{
		{BaseURL: "https://api.allorigins.win/raw", Param: "url"},
		{BaseURL: "https://corsproxy.io/", Param: "url"},
		{BaseURL: "https://api.codetabs.com/v1/proxy", Param: "quest"},
	}
}

// RelayEndpoint describes one public relay service.
type RelayEndpoint struct {
	BaseURL string
	Param   string
}

// RelayStrategy fetches a page through a public URL relay. Relays do not
// execute JavaScript; they are a degraded fallback when the rendering
// service is unavailable.
type RelayStrategy struct {
	Endpoint RelayEndpoint
	Index    int // 1-based position among relays, used for the name
	Client   *http.Client
}

// RelayStrategies builds one strategy per endpoint, preserving order.
func RelayStrategies(endpoints []RelayEndpoint, client *http.Client) []Strategy {
	strategies := make([]Strategy, 0, len(endpoints))
	for i, ep := range endpoints {
		strategies = append(strategies, &RelayStrategy{Endpoint: ep, Index: i + 1, Client: client})
	}
	return strategies
}

// Name implements Strategy.
func (s *RelayStrategy) Name() string { return fmt.Sprintf("proxy_%d", s.Index) }

// Fetch implements Strategy.
func (s *RelayStrategy) Fetch(ctx context.Context, target string) (string, error) {
	query := url.Values{}
	query.Set(s.Endpoint.Param, target)
	requestURL := s.Endpoint.BaseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", &Error{Strategy: s.Name(), URL: target, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{Strategy: s.Name(), URL: target, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{Strategy: s.Name(), URL: target, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Strategy: s.Name(), URL: target, Message: "failed to read response body", Cause: err}
	}
	return string(body), nil
}
