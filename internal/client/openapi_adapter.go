package client

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"skysnoop/internal/apierr"
	"skysnoop/internal/models"
	"skysnoop/internal/query"
)

// OpenAPIAdapter adapts the public OpenAPI backend to the Backend contract.
// The backend natively supports identifier lookups and point-radius queries
// only, with no server-side filters, so the adapter fills the gaps:
//
//   - InCircle/Closest delegate to the native point-radius endpoints; any
//     filters are logged as ignored and the query proceeds unfiltered.
//   - InBox is simulated with a circumscribing circle plus client-side
//     rejection, and the result is marked Simulated. A box whose bounding
//     circle exceeds the radius cap is refused.
//   - All/AllWithPos are refused. The backend caps query radius at 250 NM,
//     so no finite set of point queries could be asserted complete, and
//     returning partial data framed as complete would mislead.
type OpenAPIAdapter struct {
	client *OpenAPIClient
}

// Maximum radius the backend accepts for point queries, in nautical miles.
const openAPIMaxRadiusNM = 250

// NewOpenAPIAdapter wraps an OpenAPI client. apiKey may be empty; it is
// accepted for forward compatibility.
func NewOpenAPIAdapter(baseURL, apiKey string, timeout time.Duration) *OpenAPIAdapter {
	return &OpenAPIAdapter{client: NewOpenAPIClient(baseURL, apiKey, timeout)}
}

func (a *OpenAPIAdapter) ID() models.BackendID { return models.BackendOpenAPI }

func (a *OpenAPIAdapter) Connect(ctx context.Context) error { return a.client.Connect(ctx) }

func (a *OpenAPIAdapter) Close() error { return a.client.Close() }

// convert renames the native v2 envelope into SkyData. The backend reports
// no processing time, so ProcessingTime stays nil. Total is the server's
// own count, carried verbatim.
func (a *OpenAPIAdapter) convert(resp *models.V2Response, simulated bool) *models.SkyData {
	return &models.SkyData{
		Timestamp:      resp.Now,
		ResultCount:    resp.Total,
		ProcessingTime: nil,
		Aircraft:       resp.Ac,
		Backend:        models.BackendOpenAPI,
		Simulated:      simulated,
	}
}

// warnFiltersIgnored signals filter loss. The backend cannot apply filters
// server-side; dropping them silently would make unfiltered results look
// filtered.
func warnFiltersIgnored(operation string, filters *query.Filters) {
	if !filters.IsEmpty() {
		slog.Warn("openapi backend does not support filters, proceeding unfiltered",
			"operation", operation)
	}
}

func (a *OpenAPIAdapter) ByHex(ctx context.Context, hex string) (*models.SkyData, error) {
	resp, err := a.client.Hex(ctx, hex)
	if err != nil {
		return nil, err
	}
	return a.convert(resp, false), nil
}

func (a *OpenAPIAdapter) ByCallsign(ctx context.Context, callsign string) (*models.SkyData, error) {
	resp, err := a.client.Callsign(ctx, callsign)
	if err != nil {
		return nil, err
	}
	return a.convert(resp, false), nil
}

func (a *OpenAPIAdapter) ByRegistration(ctx context.Context, registration string) (*models.SkyData, error) {
	resp, err := a.client.Registration(ctx, registration)
	if err != nil {
		return nil, err
	}
	return a.convert(resp, false), nil
}

func (a *OpenAPIAdapter) ByType(ctx context.Context, typeCode string) (*models.SkyData, error) {
	resp, err := a.client.TypeCode(ctx, typeCode)
	if err != nil {
		return nil, err
	}
	return a.convert(resp, false), nil
}

func validateOpenAPIRadius(radius float64) error {
	if radius > openAPIMaxRadiusNM {
		return apierr.Validationf("radius %g NM exceeds the openapi backend's %d NM cap", radius, openAPIMaxRadiusNM)
	}
	return nil
}

func (a *OpenAPIAdapter) InCircle(ctx context.Context, lat, lon, radius float64, filters *query.Filters) (*models.SkyData, error) {
	if err := validatePoint(lat, lon, radius); err != nil {
		return nil, err
	}
	if err := validateOpenAPIRadius(radius); err != nil {
		return nil, err
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	warnFiltersIgnored("in_circle", filters)

	resp, err := a.client.Point(ctx, lat, lon, radius)
	if err != nil {
		return nil, err
	}
	// Native point-radius operation; only the filters were unsupported.
	return a.convert(resp, false), nil
}

func (a *OpenAPIAdapter) Closest(ctx context.Context, lat, lon, radius float64, filters *query.Filters) (*models.SkyData, error) {
	if err := validatePoint(lat, lon, radius); err != nil {
		return nil, err
	}
	if err := validateOpenAPIRadius(radius); err != nil {
		return nil, err
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	warnFiltersIgnored("closest", filters)

	resp, err := a.client.Closest(ctx, lat, lon, radius)
	if err != nil {
		return nil, err
	}
	return a.convert(resp, false), nil
}

// InBox emulates a box query the backend lacks: fetch the smallest centered
// circle that covers the box, then reject everything outside the bounds
// client-side. Trades extra transferred data for correctness.
func (a *OpenAPIAdapter) InBox(ctx context.Context, latSouth, latNorth, lonWest, lonEast float64, filters *query.Filters) (*models.SkyData, error) {
	if err := validateBox(latSouth, latNorth, lonWest, lonEast); err != nil {
		return nil, err
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	warnFiltersIgnored("in_box", filters)

	centerLat, centerLon, radius := circumscribeBox(latSouth, latNorth, lonWest, lonEast)
	// Round up so the circle never falls short of the farthest corner.
	radius = math.Ceil(radius)
	if radius > openAPIMaxRadiusNM {
		return nil, &apierr.UnsupportedOperationError{
			Backend:     string(models.BackendOpenAPI),
			Operation:   "in_box",
			Reason:      fmt.Sprintf("the box needs a %g NM bounding circle, beyond the backend's %d NM cap", radius, openAPIMaxRadiusNM),
			Alternative: string(models.BackendREAPI),
		}
	}

	slog.Debug("simulating box query via bounding circle",
		"lat_south", latSouth, "lat_north", latNorth,
		"lon_west", lonWest, "lon_east", lonEast,
		"center_lat", centerLat, "center_lon", centerLon, "radius_nm", radius)

	resp, err := a.client.Point(ctx, centerLat, centerLon, radius)
	if err != nil {
		return nil, err
	}

	kept := make([]models.Aircraft, 0, len(resp.Ac))
	for _, ac := range resp.Ac {
		if !ac.HasPosition() {
			continue
		}
		if inBox(*ac.Lat, *ac.Lon, latSouth, latNorth, lonWest, lonEast) {
			kept = append(kept, ac)
		}
	}

	slog.Debug("box simulation filtered results", "fetched", len(resp.Ac), "kept", len(kept))

	// The backend never saw the box, so its count is meaningless here;
	// this is the one path where ResultCount is recomputed client-side.
	return &models.SkyData{
		Timestamp:      resp.Now,
		ResultCount:    len(kept),
		ProcessingTime: nil,
		Aircraft:       kept,
		Backend:        models.BackendOpenAPI,
		Simulated:      true,
	}, nil
}

func (a *OpenAPIAdapter) AllWithPos(ctx context.Context, filters *query.Filters) (*models.SkyData, error) {
	return nil, a.unsupportedBulk("all_with_pos")
}

func (a *OpenAPIAdapter) All(ctx context.Context, filters *query.Filters) (*models.SkyData, error) {
	return nil, a.unsupportedBulk("all")
}

func (a *OpenAPIAdapter) unsupportedBulk(operation string) error {
	return &apierr.UnsupportedOperationError{
		Backend:     string(models.BackendOpenAPI),
		Operation:   operation,
		Reason:      "the backend caps query radius at 250 NM, so a bulk result could not be asserted complete",
		Alternative: string(models.BackendREAPI),
	}
}
