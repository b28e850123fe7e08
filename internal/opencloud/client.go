// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package opencloud is the Roblox Open Cloud client.  It reads the standard
// datastore entries, and the public universe metadata.
package opencloud

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/KhanPython/RoAdmin/internal/chttp"
	"github.com/KhanPython/RoAdmin/internal/network"
)

const (
	DefAPIBase    = "https://apis.roblox.com"
	DefGamesBase  = "https://games.roblox.com"
	DefThumbsBase = "https://thumbnails.roblox.com"

	// maxBody is the maximum size of the response body that is read.  The
	// datastore entries are limited to 4 MiB.
	maxBody = 8 << 20

	defRetries = 3
)

// KeyProvider returns the API key for the universe.
type KeyProvider interface {
	APIKey(universeID int64) (string, bool)
}

// Client is the Open Cloud client.  It is safe for concurrent use.
type Client struct {
	hc   *http.Client
	keys KeyProvider

	apiBase    string
	gamesBase  string
	thumbsBase string

	keyTemplate string
	retries     int
	lg          *slog.Logger

	// limiters are per universe, as the datastore budget is per universe.
	mu        sync.Mutex
	limiters  map[int64]*rate.Limiter
	entryTier network.Tier
	publicLim *rate.Limiter
}

// Option is the Client option.
type Option func(*Client)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// WithBaseURLs overrides the API endpoints.  Empty values leave the default
// unchanged.
func WithBaseURLs(api, games, thumbs string) Option {
	return func(c *Client) {
		if api != "" {
			c.apiBase = api
		}
		if games != "" {
			c.gamesBase = games
		}
		if thumbs != "" {
			c.thumbsBase = thumbs
		}
	}
}

// WithRecordKey sets the template of the record entry key, i.e. "Player_%d".
// The template must contain exactly one integer verb.  The default is the
// decimal user id.
func WithRecordKey(tmpl string) Option {
	return func(c *Client) {
		c.keyTemplate = tmpl
	}
}

// WithRetries sets the number of attempts for each request.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.retries = n
		}
	}
}

// WithTiers sets the rate limit tiers of the datastore and public endpoints.
func WithTiers(entry, public network.Tier) Option {
	return func(c *Client) {
		if entry > 0 {
			c.entryTier = entry
		}
		if public > 0 {
			c.publicLim = network.NewLimiter(public, 1, 0)
		}
	}
}

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(c *Client) {
		if lg != nil {
			c.lg = lg
		}
	}
}

// New returns the Open Cloud client that gets the API keys from keys.
func New(keys KeyProvider, opts ...Option) *Client {
	c := &Client{
		hc:         chttp.New(""),
		keys:       keys,
		apiBase:    DefAPIBase,
		gamesBase:  DefGamesBase,
		thumbsBase: DefThumbsBase,
		retries:    defRetries,
		lg:         slog.Default(),
		limiters:   make(map[int64]*rate.Limiter),
		entryTier:  network.TierDataStore,
		publicLim:  network.NewLimiter(network.TierPublic, 3, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// limiter returns the datastore limiter for the universe.
func (c *Client) limiter(universeID int64) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.limiters[universeID]
	if !ok {
		l = network.NewLimiter(c.entryTier, 3, 0)
		c.limiters[universeID] = l
	}
	return l
}

// response is the completed HTTP response with the body read.
type response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// get executes the GET request with retries.  Responses with status 429,
// 408 and 5xx are retried by the network layer, all other responses are
// returned to the caller.
func (c *Client) get(ctx context.Context, lim *rate.Limiter, url string, hdr http.Header) (*response, error) {
	var resp *response
	err := network.WithRetry(ctx, lim, c.retries, func() error {
		r, err := c.roundTrip(ctx, url, hdr)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) roundTrip(ctx context.Context, url string, hdr http.Header) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, vv := range hdr {
		req.Header[k] = vv
	}
	req.Header.Set("Accept", "application/json")

	hr, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer hr.Body.Close()
	body, err := io.ReadAll(io.LimitReader(hr.Body, maxBody))
	if err != nil {
		return nil, err
	}
	switch {
	case hr.StatusCode == http.StatusTooManyRequests:
		return nil, &network.RateLimitedError{RetryAfter: network.ParseRetryAfter(hr.Header.Get("Retry-After"))}
	case hr.StatusCode >= http.StatusInternalServerError || hr.StatusCode == http.StatusRequestTimeout:
		return nil, network.StatusCodeError{Code: hr.StatusCode, Status: hr.Status}
	}
	return &response{StatusCode: hr.StatusCode, Header: hr.Header, Body: body}, nil
}

// wrapErr wraps the transport error into Error.
func wrapErr(op string, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	var sce network.StatusCodeError
	if errors.As(err, &sce) {
		return &Error{Op: op, StatusCode: sce.Code, Err: err}
	}
	return &Error{Op: op, Err: err}
}
