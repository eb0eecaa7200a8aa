package client

import (
	"context"
	"time"

	"skysnoop/internal/models"
	"skysnoop/internal/query"
)

// REAPIAdapter adapts the re-api backend to the Backend contract. Every
// operation is native here, including server-side filtering, so the adapter
// only renames envelope fields into SkyData and never simulates anything.
type REAPIAdapter struct {
	client *REAPIClient
}

// NewREAPIAdapter wraps a re-api client for the given base URL and timeout.
func NewREAPIAdapter(baseURL string, timeout time.Duration) *REAPIAdapter {
	return &REAPIAdapter{client: NewREAPIClient(baseURL, timeout)}
}

func (a *REAPIAdapter) ID() models.BackendID { return models.BackendREAPI }

func (a *REAPIAdapter) Connect(ctx context.Context) error { return a.client.Connect(ctx) }

func (a *REAPIAdapter) Close() error { return a.client.Close() }

// convert renames the native envelope into SkyData. ResultCount is the
// server's own count, carried verbatim.
func (a *REAPIAdapter) convert(resp *models.REAPIResponse) *models.SkyData {
	ptime := resp.Ptime
	return &models.SkyData{
		Timestamp:      resp.Now,
		ResultCount:    resp.ResultCount,
		ProcessingTime: &ptime,
		Aircraft:       resp.Aircraft,
		Backend:        models.BackendREAPI,
		Simulated:      false,
	}
}

func (a *REAPIAdapter) ByHex(ctx context.Context, hex string) (*models.SkyData, error) {
	resp, err := a.client.FindHex(ctx, hex)
	if err != nil {
		return nil, err
	}
	return a.convert(resp), nil
}

func (a *REAPIAdapter) ByCallsign(ctx context.Context, callsign string) (*models.SkyData, error) {
	resp, err := a.client.FindCallsign(ctx, callsign)
	if err != nil {
		return nil, err
	}
	return a.convert(resp), nil
}

func (a *REAPIAdapter) ByRegistration(ctx context.Context, registration string) (*models.SkyData, error) {
	resp, err := a.client.FindReg(ctx, registration)
	if err != nil {
		return nil, err
	}
	return a.convert(resp), nil
}

func (a *REAPIAdapter) ByType(ctx context.Context, typeCode string) (*models.SkyData, error) {
	resp, err := a.client.FindType(ctx, typeCode)
	if err != nil {
		return nil, err
	}
	return a.convert(resp), nil
}

func (a *REAPIAdapter) InCircle(ctx context.Context, lat, lon, radius float64, filters *query.Filters) (*models.SkyData, error) {
	if err := validatePoint(lat, lon, radius); err != nil {
		return nil, err
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	resp, err := a.client.Circle(ctx, lat, lon, radius, filters)
	if err != nil {
		return nil, err
	}
	return a.convert(resp), nil
}

func (a *REAPIAdapter) Closest(ctx context.Context, lat, lon, radius float64, filters *query.Filters) (*models.SkyData, error) {
	if err := validatePoint(lat, lon, radius); err != nil {
		return nil, err
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	resp, err := a.client.Closest(ctx, lat, lon, radius, filters)
	if err != nil {
		return nil, err
	}
	return a.convert(resp), nil
}

func (a *REAPIAdapter) InBox(ctx context.Context, latSouth, latNorth, lonWest, lonEast float64, filters *query.Filters) (*models.SkyData, error) {
	if err := validateBox(latSouth, latNorth, lonWest, lonEast); err != nil {
		return nil, err
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	resp, err := a.client.Box(ctx, latSouth, latNorth, lonWest, lonEast, filters)
	if err != nil {
		return nil, err
	}
	return a.convert(resp), nil
}

func (a *REAPIAdapter) AllWithPos(ctx context.Context, filters *query.Filters) (*models.SkyData, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	resp, err := a.client.AllWithPos(ctx, filters)
	if err != nil {
		return nil, err
	}
	return a.convert(resp), nil
}

func (a *REAPIAdapter) All(ctx context.Context, filters *query.Filters) (*models.SkyData, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	resp, err := a.client.All(ctx, filters)
	if err != nil {
		return nil, err
	}
	return a.convert(resp), nil
}
