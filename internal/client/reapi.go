package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"skysnoop/internal/apierr"
	"skysnoop/internal/models"
	"skysnoop/internal/query"
)

// REAPIClient is the low-level client for the re-api backend. The whole API
// is a single endpoint driven by the query string, so every method builds a
// query via the query package and issues one GET.
//
// The assembled query string is concatenated onto the base URL directly.
// Passing it through a params map would percent-encode the structural commas
// and break the backend's positional syntax.
type REAPIClient struct {
	baseURL string
	timeout time.Duration
	apiKey  string
	hc      *http.Client
}

// NewREAPIClient creates a client for the given base URL. The client is
// inert until Connect.
func NewREAPIClient(baseURL string, timeout time.Duration) *REAPIClient {
	return &REAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// Connect acquires the pooled HTTP transport. Operations fail until it is
// called.
func (c *REAPIClient) Connect(_ context.Context) error {
	c.hc = &http.Client{Timeout: c.timeout}
	return nil
}

// Close releases the transport. Safe to call on a never-connected client.
func (c *REAPIClient) Close() error {
	if c.hc != nil {
		c.hc.CloseIdleConnections()
		c.hc = nil
	}
	return nil
}

// Ping reports whether the backend answers at all. Any HTTP response, even
// an error status, counts as reachable; only transport failures do not.
func (c *REAPIClient) Ping(ctx context.Context) error {
	hc := c.hc
	if hc == nil {
		hc = &http.Client{Timeout: c.timeout}
		defer hc.CloseIdleConnections()
	}
	req, err := newRequest(ctx, c.baseURL+"/", c.apiKey)
	if err != nil {
		return err
	}
	resp, err := hc.Do(req)
	if err != nil {
		return classifyRequestError(err, c.timeout)
	}
	resp.Body.Close()
	return nil
}

func (c *REAPIClient) get(ctx context.Context, queryString string) (*models.REAPIResponse, error) {
	if c.hc == nil {
		return nil, fmt.Errorf("re-api client not connected")
	}

	rawURL := c.baseURL + "/?" + queryString
	slog.Debug("re-api request", "url", rawURL)

	req, err := newRequest(ctx, rawURL, c.apiKey)
	if err != nil {
		return nil, err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, classifyRequestError(err, c.timeout)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var out models.REAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &apierr.RemoteError{
			StatusCode: resp.StatusCode,
			Body:       "malformed JSON response: " + err.Error(),
		}
	}

	slog.Debug("re-api response", "result_count", out.ResultCount, "aircraft", len(out.Aircraft))
	return &out, nil
}

// Circle searches a circular area. Radius is in nautical miles.
func (c *REAPIClient) Circle(ctx context.Context, lat, lon, radius float64, filters *query.Filters) (*models.REAPIResponse, error) {
	return c.get(ctx, query.BuildCircle(lat, lon, radius, filters))
}

// Closest finds the closest aircraft to a point within radius.
func (c *REAPIClient) Closest(ctx context.Context, lat, lon, radius float64, filters *query.Filters) (*models.REAPIResponse, error) {
	return c.get(ctx, query.BuildClosest(lat, lon, radius, filters))
}

// Box searches a rectangular bounding box.
func (c *REAPIClient) Box(ctx context.Context, latSouth, latNorth, lonWest, lonEast float64, filters *query.Filters) (*models.REAPIResponse, error) {
	return c.get(ctx, query.BuildBox(latSouth, latNorth, lonWest, lonEast, filters))
}

// FindHex looks up aircraft by ICAO hex address.
func (c *REAPIClient) FindHex(ctx context.Context, hex string) (*models.REAPIResponse, error) {
	return c.get(ctx, query.BuildFindHex(hex))
}

// FindCallsign looks up aircraft by callsign.
func (c *REAPIClient) FindCallsign(ctx context.Context, callsign string) (*models.REAPIResponse, error) {
	return c.get(ctx, query.BuildFindCallsign(callsign))
}

// FindReg looks up aircraft by registration.
func (c *REAPIClient) FindReg(ctx context.Context, registration string) (*models.REAPIResponse, error) {
	return c.get(ctx, query.BuildFindReg(registration))
}

// FindType looks up aircraft by type code.
func (c *REAPIClient) FindType(ctx context.Context, typeCode string) (*models.REAPIResponse, error) {
	return c.get(ctx, query.BuildFindType(typeCode))
}

// All fetches every aircraft the backend knows about.
func (c *REAPIClient) All(ctx context.Context, filters *query.Filters) (*models.REAPIResponse, error) {
	return c.get(ctx, query.BuildAll(filters))
}

// AllWithPos fetches every aircraft that has position data.
func (c *REAPIClient) AllWithPos(ctx context.Context, filters *query.Filters) (*models.REAPIResponse, error) {
	return c.get(ctx, query.BuildAllWithPos(filters))
}
