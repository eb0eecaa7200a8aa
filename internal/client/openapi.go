package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"skysnoop/internal/apierr"
	"skysnoop/internal/models"
)

// OpenAPIClient is the low-level client for the public OpenAPI backend. The
// v2 endpoints are path-based (/v2/hex/{hex}, /v2/point/{lat}/{lon}/{radius})
// and carry no query string, so no special encoding discipline applies here.
//
// An API key is accepted for forward compatibility; neither backend currently
// requires one.
type OpenAPIClient struct {
	baseURL string
	timeout time.Duration
	apiKey  string
	hc      *http.Client
}

// NewOpenAPIClient creates a client for the given base URL. The client is
// inert until Connect.
func NewOpenAPIClient(baseURL, apiKey string, timeout time.Duration) *OpenAPIClient {
	return &OpenAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		apiKey:  apiKey,
	}
}

// Connect acquires the pooled HTTP transport.
func (c *OpenAPIClient) Connect(_ context.Context) error {
	c.hc = &http.Client{Timeout: c.timeout}
	return nil
}

// Close releases the transport. Safe to call on a never-connected client.
func (c *OpenAPIClient) Close() error {
	if c.hc != nil {
		c.hc.CloseIdleConnections()
		c.hc = nil
	}
	return nil
}

func (c *OpenAPIClient) getV2(ctx context.Context, path string) (*models.V2Response, error) {
	if c.hc == nil {
		return nil, fmt.Errorf("openapi client not connected")
	}

	rawURL := c.baseURL + path
	slog.Debug("openapi request", "url", rawURL)

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

	var out models.V2Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &apierr.RemoteError{
			StatusCode: resp.StatusCode,
			Body:       "malformed JSON response: " + err.Error(),
		}
	}

	slog.Debug("openapi response", "total", out.Total, "aircraft", len(out.Ac))
	return &out, nil
}

func pathFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Hex looks up aircraft by ICAO hex address.
func (c *OpenAPIClient) Hex(ctx context.Context, hex string) (*models.V2Response, error) {
	return c.getV2(ctx, "/v2/hex/"+url.PathEscape(hex))
}

// Callsign looks up aircraft by callsign.
func (c *OpenAPIClient) Callsign(ctx context.Context, callsign string) (*models.V2Response, error) {
	return c.getV2(ctx, "/v2/callsign/"+url.PathEscape(callsign))
}

// Registration looks up aircraft by registration.
func (c *OpenAPIClient) Registration(ctx context.Context, registration string) (*models.V2Response, error) {
	return c.getV2(ctx, "/v2/reg/"+url.PathEscape(registration))
}

// TypeCode looks up aircraft by type designator.
func (c *OpenAPIClient) TypeCode(ctx context.Context, typeCode string) (*models.V2Response, error) {
	return c.getV2(ctx, "/v2/type/"+url.PathEscape(typeCode))
}

// Point fetches aircraft within radius nautical miles of a point.
func (c *OpenAPIClient) Point(ctx context.Context, lat, lon, radius float64) (*models.V2Response, error) {
	return c.getV2(ctx, "/v2/point/"+pathFloat(lat)+"/"+pathFloat(lon)+"/"+pathFloat(radius))
}

// Closest fetches the closest aircraft to a point within radius.
func (c *OpenAPIClient) Closest(ctx context.Context, lat, lon, radius float64) (*models.V2Response, error) {
	return c.getV2(ctx, "/v2/closest/"+pathFloat(lat)+"/"+pathFloat(lon)+"/"+pathFloat(radius))
}
