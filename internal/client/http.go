package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"skysnoop/internal/apierr"
)

// Library version, reported in the User-Agent header.
const version = "0.3.0"

const userAgent = "skysnoop/" + version

// Cap on error-body capture so a misbehaving backend can't balloon memory.
const maxErrorBody = 4 << 10

// classifyRequestError maps a transport-level failure from http.Client.Do
// into the library taxonomy.
func classifyRequestError(err error, timeout time.Duration) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &apierr.TimeoutError{Timeout: timeout, Err: err}
	}
	return &apierr.TransportError{Op: "request", Err: err}
}

// checkStatus turns a non-2xx response into a RemoteError carrying the raw
// body for diagnostics. The body reader is consumed on failure.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &apierr.RemoteError{StatusCode: resp.StatusCode, Body: string(body)}
}

// newRequest builds a GET request with the library User-Agent. rawURL must
// already be fully assembled - it is parsed, not re-encoded, so structural
// commas in the query survive.
func newRequest(ctx context.Context, rawURL, apiKey string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	return req, nil
}
