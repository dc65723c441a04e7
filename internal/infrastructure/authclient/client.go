// Package authclient lets a service accept session tokens it does not own by
// forwarding each one to the auth service's validate endpoint.
package authclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/99minutos/sessionauth/internal/core/domain"
)

const (
	DefaultTimeout = 1500 * time.Millisecond
	validatePath   = "/api/validate"
	maxBodyBytes   = 64 << 10
)

// Config captures where the validator lives. BaseURL must be the internal,
// server-to-server address of the auth service.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client calls the validator. It holds no session state and caches nothing.
type Client struct {
	endpoint string
	http     *http.Client
}

type validateResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Message string `json:"message"`
}

func New(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("authclient: invalid base url %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = timeout

	return &Client{
		endpoint: base.String() + validatePath,
		http:     hc,
	}, nil
}

// Validate returns the claims for token. Rejections by the validator yield
// errors wrapping domain.ErrUnauthenticated; transport failures, 5xx answers
// and unparseable bodies wrap domain.ErrUpstreamUnavailable. Callers are
// expected to treat both the same way.
func (c *Client) Validate(ctx context.Context, token string) (*domain.Claims, error) {
	if token == "" {
		return nil, domain.ErrNoToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+url.Values{"token": {token}}.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", domain.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: validator returned %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body validateResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: validator returned %d %s", domain.ErrUnauthenticated, resp.StatusCode, body.Message)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrUpstreamUnavailable, decodeErr)
	}
	if body.Status != "ok" {
		return nil, fmt.Errorf("%w: validator status %q", domain.ErrUnauthenticated, body.Status)
	}

	return &domain.Claims{Name: body.Name, Role: body.Role}, nil
}
