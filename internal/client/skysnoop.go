package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"skysnoop/internal/models"
	"skysnoop/internal/query"
)

// Default endpoints and request timeout.
const (
	DefaultREAPIBaseURL   = "https://re-api.adsb.lol"
	DefaultOpenAPIBaseURL = "https://api.adsb.lol"
	DefaultTimeout        = 30 * time.Second
)

// Options configures a SkySnoop client. The zero value selects the backend
// automatically against the default endpoints.
type Options struct {
	// Backend preference: BackendAuto (or empty), BackendREAPI, or
	// BackendOpenAPI. An explicit choice disables fallback.
	Backend models.BackendID
	// APIKey steers auto-selection to the openapi backend. Neither
	// backend requires a key today; it is forwarded for when one does.
	APIKey string
	// Endpoint overrides; defaults apply when empty.
	REAPIBaseURL   string
	OpenAPIBaseURL string
	// Per-request timeout; DefaultTimeout when zero.
	Timeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.Backend == "" {
		o.Backend = models.BackendAuto
	}
	if o.REAPIBaseURL == "" {
		o.REAPIBaseURL = DefaultREAPIBaseURL
	}
	if o.OpenAPIBaseURL == "" {
		o.OpenAPIBaseURL = DefaultOpenAPIBaseURL
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

// SkySnoop is the unified adsb.lol client. It owns exactly one backend
// adapter for its whole Open/Close lifetime and delegates every operation to
// it 1:1 - the adapters absorb all backend asymmetry so this surface can
// stay stable.
//
// After Open the client holds no mutable state, so it may be shared by
// concurrent callers; the underlying HTTP connection pool handles the rest.
type SkySnoop struct {
	opts    Options
	adapter Backend
}

// New creates a client. No network traffic happens until Open.
func New(opts Options) *SkySnoop {
	return &SkySnoop{opts: opts.withDefaults()}
}

// Open selects the backend and acquires its network resources. It must be
// paired with Close on every exit path.
func (s *SkySnoop) Open(ctx context.Context) error {
	if s.adapter != nil {
		return fmt.Errorf("client already open")
	}

	id, err := SelectBackend(ctx, s.opts)
	if err != nil {
		return err
	}

	var adapter Backend
	switch id {
	case models.BackendREAPI:
		adapter = NewREAPIAdapter(s.opts.REAPIBaseURL, s.opts.Timeout)
	case models.BackendOpenAPI:
		adapter = NewOpenAPIAdapter(s.opts.OpenAPIBaseURL, s.opts.APIKey, s.opts.Timeout)
	}

	if err := adapter.Connect(ctx); err != nil {
		return fmt.Errorf("connecting %s backend: %w", id, err)
	}

	slog.Info("skysnoop client opened", "backend", id)
	s.adapter = adapter
	return nil
}

// Close releases the adapter's network resources. Safe to call more than
// once and on a never-opened client.
func (s *SkySnoop) Close() error {
	if s.adapter == nil {
		return nil
	}
	err := s.adapter.Close()
	s.adapter = nil
	return err
}

// Backend reports which backend was selected, or "" before Open.
func (s *SkySnoop) Backend() models.BackendID {
	if s.adapter == nil {
		return ""
	}
	return s.adapter.ID()
}

func (s *SkySnoop) ensure() (Backend, error) {
	if s.adapter == nil {
		return nil, fmt.Errorf("client is not open")
	}
	return s.adapter, nil
}

// ByHex looks up aircraft by ICAO 24-bit hex address.
func (s *SkySnoop) ByHex(ctx context.Context, hex string) (*models.SkyData, error) {
	a, err := s.ensure()
	if err != nil {
		return nil, err
	}
	return a.ByHex(ctx, hex)
}

// ByCallsign looks up aircraft by callsign/flight number.
func (s *SkySnoop) ByCallsign(ctx context.Context, callsign string) (*models.SkyData, error) {
	a, err := s.ensure()
	if err != nil {
		return nil, err
	}
	return a.ByCallsign(ctx, callsign)
}

// ByRegistration looks up aircraft by registration.
func (s *SkySnoop) ByRegistration(ctx context.Context, registration string) (*models.SkyData, error) {
	a, err := s.ensure()
	if err != nil {
		return nil, err
	}
	return a.ByRegistration(ctx, registration)
}

// ByType looks up aircraft by type designator.
func (s *SkySnoop) ByType(ctx context.Context, typeCode string) (*models.SkyData, error) {
	a, err := s.ensure()
	if err != nil {
		return nil, err
	}
	return a.ByType(ctx, typeCode)
}

// InCircle finds aircraft within radius nautical miles of a point.
func (s *SkySnoop) InCircle(ctx context.Context, lat, lon, radius float64, filters *query.Filters) (*models.SkyData, error) {
	a, err := s.ensure()
	if err != nil {
		return nil, err
	}
	return a.InCircle(ctx, lat, lon, radius, filters)
}

// Closest finds the closest aircraft to a point within radius.
func (s *SkySnoop) Closest(ctx context.Context, lat, lon, radius float64, filters *query.Filters) (*models.SkyData, error) {
	a, err := s.ensure()
	if err != nil {
		return nil, err
	}
	return a.Closest(ctx, lat, lon, radius, filters)
}

// InBox finds aircraft within a bounding box. On the openapi backend this
// is simulated; check SkyData.Simulated.
func (s *SkySnoop) InBox(ctx context.Context, latSouth, latNorth, lonWest, lonEast float64, filters *query.Filters) (*models.SkyData, error) {
	a, err := s.ensure()
	if err != nil {
		return nil, err
	}
	return a.InBox(ctx, latSouth, latNorth, lonWest, lonEast, filters)
}

// AllWithPos fetches every aircraft with position data. Unsupported on the
// openapi backend.
func (s *SkySnoop) AllWithPos(ctx context.Context, filters *query.Filters) (*models.SkyData, error) {
	a, err := s.ensure()
	if err != nil {
		return nil, err
	}
	return a.AllWithPos(ctx, filters)
}

// All fetches every known aircraft. Unsupported on the openapi backend.
func (s *SkySnoop) All(ctx context.Context, filters *query.Filters) (*models.SkyData, error) {
	a, err := s.ensure()
	if err != nil {
		return nil, err
	}
	return a.All(ctx, filters)
}
