package pokedex

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pokedex/internal/fetcher"
	"pokedex/internal/normalizer"
	"pokedex/pkg/pokemon"
)

const (
	// BaseURL is the catalog resource every lookup is resolved against.
	BaseURL = "https://pokeapi.co/api/v2/pokemon"

	// Timeout bounds each lookup request.
	Timeout = 3 * time.Second
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for lookups. Its Timeout is
// replaced with Timeout.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithBaseURL points the client at another catalog root, such as a test server.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithLogger sets the logger used for debug tracing of lookups.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithCache shares an existing cache between clients.
func WithCache(cache *Cache) Option {
	return func(c *Client) {
		if cache != nil {
			c.cache = cache
		}
	}
}

// Client looks Pokemon up and memoizes the results. It is safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	fetcher    *fetcher.Fetcher
	processor  *normalizer.Processor
	cache      *Cache
	log        *slog.Logger
	baseURL    string
}

// NewClient creates a Client with an empty cache.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   BaseURL,
		processor: normalizer.NewProcessor(),
		cache:     NewCache(),
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.fetcher = fetcher.NewFetcher(c.httpClient, Timeout)

	return c
}

// Lookup returns the Pokemon selected by q. Repeated lookups of an equal query
// return the same cached *pokemon.Pokemon without a request.
//
// Errors are *InvalidArgumentError, *NotFoundError, *RemoteError,
// *TransportError or *MissingDataError.
func (c *Client) Lookup(ctx context.Context, q Query) (*pokemon.Pokemon, error) {
	segment, key, err := q.resolve()
	if err != nil {
		return nil, err
	}

	log := c.log.With("query", key)

	if p, ok := c.cache.Get(key); ok {
		log.Debug("cache hit", "dex", p.Dex())

		return p, nil
	}

	target := c.baseURL + "/" + url.PathEscape(segment)
	log.Debug("cache miss, fetching", "url", target)

	body, status, duration, err := c.fetcher.FetchWithMetrics(ctx, target)
	if err != nil {
		log.Debug("lookup failed", "status", status, "duration", duration, "error", err)

		return nil, classify(err)
	}

	log.Debug("fetched", "status", status, "bytes", len(body), "duration", duration)

	p, err := c.processor.ProcessJSON(bytes.NewReader(body))
	if err != nil {
		log.Debug("normalization failed", "error", err)

		return nil, &MissingDataError{Err: err}
	}

	c.cache.Put(key, p)

	return p, nil
}

// ClearCache drops every memoized lookup.
func (c *Client) ClearCache() {
	c.cache.Clear()
}

// Cache returns the client's cache.
func (c *Client) Cache() *Cache {
	return c.cache
}

// classify maps a fetch failure onto the package's error types.
func classify(err error) error {
	var statusErr *fetcher.StatusError
	if !errors.As(err, &statusErr) {
		return &TransportError{Err: err}
	}

	if statusErr.StatusCode == http.StatusNotFound {
		return &NotFoundError{Err: err}
	}

	return &RemoteError{StatusCode: statusErr.StatusCode, Err: err}
}
