// Package client provides the unified adsb.lol client: two low-level
// backend clients, one adapter per backend normalizing its native shapes
// into models.SkyData, backend selection, and the SkySnoop facade.
package client

import (
	"context"

	"skysnoop/internal/models"
	"skysnoop/internal/query"
)

// Backend is the capability contract every adapter satisfies. All query
// operations return normalized SkyData; each is independently failable and
// may return *apierr.UnsupportedOperationError when the backend cannot
// perform it natively or by simulation - that is an expected outcome for
// specific (backend, operation) pairs, not a bug.
//
// Connect and Close bracket the network resource. No operation is valid
// before Connect or after Close; Close must be called on every exit path,
// error and cancellation included.
type Backend interface {
	// ID tags responses from this adapter.
	ID() models.BackendID

	Connect(ctx context.Context) error
	Close() error

	// Identifier lookups. These accept no filters, matching the upstream
	// APIs.
	ByHex(ctx context.Context, hex string) (*models.SkyData, error)
	ByCallsign(ctx context.Context, callsign string) (*models.SkyData, error)
	ByRegistration(ctx context.Context, registration string) (*models.SkyData, error)
	ByType(ctx context.Context, typeCode string) (*models.SkyData, error)

	// Geographic queries. Coordinates are decimal degrees, radius is
	// nautical miles.
	InCircle(ctx context.Context, lat, lon, radius float64, filters *query.Filters) (*models.SkyData, error)
	Closest(ctx context.Context, lat, lon, radius float64, filters *query.Filters) (*models.SkyData, error)
	InBox(ctx context.Context, latSouth, latNorth, lonWest, lonEast float64, filters *query.Filters) (*models.SkyData, error)

	// Bulk queries.
	AllWithPos(ctx context.Context, filters *query.Filters) (*models.SkyData, error)
	All(ctx context.Context, filters *query.Filters) (*models.SkyData, error)
}
