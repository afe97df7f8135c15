package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// PrimaryStrategy fetches through a premium rendering API: the service
// loads the target page in a real browser (JavaScript executed), through
// a premium proxy pool localized to a country, and returns the rendered
// HTML body.
type PrimaryStrategy struct {
	Endpoint    string
	APIKey      string
	CountryCode string
	Client      *http.Client
}

// Name implements Strategy.
func (s *PrimaryStrategy) Name() string { return "primary" }

// Fetch implements Strategy. Non-2xx responses are errors so the chain
// falls through to the relays.
func (s *PrimaryStrategy) Fetch(ctx context.Context, target string) (string, error) {
	query := url.Values{}
	query.Set("api_key", s.APIKey)
	query.Set("url", target)
	query.Set("render_js", "true")
	query.Set("premium_proxy", "true")
	query.Set("country_code", s.CountryCode)

	requestURL := s.Endpoint + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", &Error{Strategy: s.Name(), URL: target, Message: "failed to create request", Cause: err}
	}

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
