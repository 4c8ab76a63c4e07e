// Package source implements the game source boundary over the upstream
// ended-events REST API.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/okian/versus/internal/domain/model"
	"github.com/okian/versus/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL = "https://api.b365api.com"
	defaultSportID = "18" // basketball
	defaultTimeout = 8 * time.Second

	endedEventsPath = "/v1/events/ended"
	successValue    = 1
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL sets the upstream API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithToken sets the upstream API token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithSportID selects the upstream sport feed.
func WithSportID(sportID string) Option {
	return func(c *Client) {
		if sportID != "" {
			c.sportID = sportID
		}
	}
}

// WithHTTPClient sets a custom HTTP client, e.g. with a tighter timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// Client fetches pages of ended games for one competitor at a time.
// It implements matchup.Source.
type Client struct {
	baseURL    string
	token      string
	sportID    string
	httpClient *http.Client
}

// NewClient creates a source client with configuration options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		sportID:    defaultSportID,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// pageEnvelope mirrors the upstream response wrapper.
type pageEnvelope struct {
	Success int          `json:"success"`
	Results []model.Game `json:"results"`
}

// Page requests one page of ended games for the given competitor.
// Transport errors, non-2xx responses, an unsuccessful envelope, and
// decode failures all surface as errors; the caller treats any of them
// as a stop-iterating signal.
func (c *Client) Page(ctx context.Context, competitorID string, page int) ([]model.Game, error) {
	q := url.Values{}
	q.Set("sport_id", c.sportID)
	q.Set("team_id", competitorID)
	q.Set("token", c.token)
	q.Set("page", strconv.Itoa(page))
	reqURL := c.baseURL + endedEventsPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordSourceError()
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.RecordSourceError()
		return nil, fmt.Errorf("%w: status %d", ErrStatus, resp.StatusCode)
	}

	var envelope pageEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		metrics.RecordSourceError()
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if envelope.Success != successValue {
		metrics.RecordSourceError()
		return nil, fmt.Errorf("%w: success=%d", ErrUpstream, envelope.Success)
	}

	metrics.RecordPageFetched()
	return envelope.Results, nil
}
