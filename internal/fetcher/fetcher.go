// Package fetcher issues single, non-retried HTTP GET requests against the catalog.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnexpectedStatusCode indicates an HTTP response with a non-2xx status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// DefaultBufferSizeKb caps how much of a response body is read.
const DefaultBufferSizeKb = 8 * 1024

// StatusError carries the status code of a non-2xx response.
type StatusError struct {
	Body       []byte
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnexpectedStatusCode, e.StatusCode)
}

// Unwrap returns ErrUnexpectedStatusCode.
func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatusCode
}

// Fetcher performs GET requests with a fixed client timeout.
type Fetcher struct {
	client       *http.Client
	headers      http.Header
	bufferSizeKb int
}

// NewFetcher creates a fetcher around client. The client's Timeout is
// replaced with timeout.
func NewFetcher(client *http.Client, timeout time.Duration) *Fetcher {
	c := &http.Client{}
	if client != nil {
		*c = *client
	}

	c.Timeout = timeout

	return &Fetcher{
		client:       c,
		headers:      BuildHeaders(nil),
		bufferSizeKb: DefaultBufferSizeKb,
	}
}

// FetchWithMetrics returns (body, statusCode, duration, error). A non-2xx
// response yields a *StatusError; any other error means no response was read.
func (f *Fetcher) FetchWithMetrics(ctx context.Context, url string) ([]byte, int, time.Duration, error) {
	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, 0, time.Since(startTime), fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = f.headers.Clone()

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, time.Since(startTime), fmt.Errorf("request failed: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	// bufferSizeKb is in KB, convert to bytes
	limit := int64(f.bufferSizeKb) * 1024

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	duration := time.Since(startTime)

	if err != nil {
		return nil, resp.StatusCode, duration, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, duration, &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, resp.StatusCode, duration, nil
}

// Fetch returns the body of a successful GET.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	body, _, _, err := f.FetchWithMetrics(ctx, url)

	return body, err
}

// BuildHeaders creates request headers with defaults.
func BuildHeaders(customHeaders map[string]string) http.Header {
	headers := http.Header{}

	headers.Set("User-Agent", "pokedex-go/1.0")
	headers.Set("Accept", "application/json")

	for key, value := range customHeaders {
		headers.Set(key, value)
	}

	return headers
}
