package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skysnoop/internal/apierr"
)

// One degree of arc along a great circle is 60.04 NM with the domain's
// Earth radius of 3440.065 NM.
const oneDegreeNM = 3440.065 * 3.14159265358979323846 / 180

func TestHaversineNM(t *testing.T) {
	tests := []struct {
		name     string
		from, to [2]float64
		expected float64
	}{
		{
			name:     "zero distance",
			from:     [2]float64{37.7749, -122.4194},
			to:       [2]float64{37.7749, -122.4194},
			expected: 0,
		},
		{
			name:     "one degree of longitude at the equator",
			from:     [2]float64{0, 0},
			to:       [2]float64{0, 1},
			expected: oneDegreeNM,
		},
		{
			name:     "one degree of latitude",
			from:     [2]float64{10, 50},
			to:       [2]float64{11, 50},
			expected: oneDegreeNM,
		},
		{
			name:     "one degree across the antimeridian",
			from:     [2]float64{0, 179.5},
			to:       [2]float64{0, -179.5},
			expected: oneDegreeNM,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := haversineNM(tt.from[0], tt.from[1], tt.to[0], tt.to[1])
			assert.InDelta(t, tt.expected, d, 0.01)
		})
	}
}

func TestBoxCenter(t *testing.T) {
	tests := []struct {
		name        string
		bounds      [4]float64
		wantLat     float64
		wantLon     float64
	}{
		{
			name:    "ordinary box",
			bounds:  [4]float64{37, 38, -123, -122},
			wantLat: 37.5,
			wantLon: -122.5,
		},
		{
			name:    "box spanning the antimeridian",
			bounds:  [4]float64{-10, 10, 170, -170},
			wantLat: 0,
			wantLon: 180,
		},
		{
			name:    "antimeridian box centered on the west side",
			bounds:  [4]float64{0, 2, 178, -178},
			wantLat: 1,
			wantLon: 180,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon := boxCenter(tt.bounds[0], tt.bounds[1], tt.bounds[2], tt.bounds[3])
			assert.InDelta(t, tt.wantLat, lat, 1e-9)
			assert.InDelta(t, tt.wantLon, lon, 1e-9)
		})
	}
}

func TestCircumscribeBox(t *testing.T) {
	latS, latN, lonW, lonE := 37.0, 38.0, -123.0, -122.0

	lat, lon, radius := circumscribeBox(latS, latN, lonW, lonE)
	assert.InDelta(t, 37.5, lat, 1e-9)
	assert.InDelta(t, -122.5, lon, 1e-9)

	// The circle must reach every corner.
	for _, corner := range [4][2]float64{
		{latS, lonW}, {latS, lonE}, {latN, lonW}, {latN, lonE},
	} {
		d := haversineNM(lat, lon, corner[0], corner[1])
		assert.GreaterOrEqual(t, radius+1e-9, d)
	}

	// And it should not be wildly larger than the half-diagonal.
	assert.Less(t, radius, 60.0)
	assert.Greater(t, radius, 30.0)
}

func TestInBox(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		bounds   [4]float64
		want     bool
	}{
		{
			name: "inside", lat: 37.5, lon: -122.5,
			bounds: [4]float64{37, 38, -123, -122}, want: true,
		},
		{
			name: "north of box", lat: 38.5, lon: -122.5,
			bounds: [4]float64{37, 38, -123, -122}, want: false,
		},
		{
			name: "east of box", lat: 37.5, lon: -121.5,
			bounds: [4]float64{37, 38, -123, -122}, want: false,
		},
		{
			name: "on the boundary", lat: 37, lon: -123,
			bounds: [4]float64{37, 38, -123, -122}, want: true,
		},
		{
			name: "antimeridian box, west side", lat: 0, lon: 175,
			bounds: [4]float64{-10, 10, 170, -170}, want: true,
		},
		{
			name: "antimeridian box, east side", lat: 0, lon: -175,
			bounds: [4]float64{-10, 10, 170, -170}, want: true,
		},
		{
			name: "antimeridian box, outside", lat: 0, lon: 0,
			bounds: [4]float64{-10, 10, 170, -170}, want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inBox(tt.lat, tt.lon, tt.bounds[0], tt.bounds[1], tt.bounds[2], tt.bounds[3])
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePoint(t *testing.T) {
	assert.NoError(t, validatePoint(37.7749, -122.4194, 50))

	for _, bad := range []struct {
		name             string
		lat, lon, radius float64
	}{
		{"latitude too high", 91, 0, 10},
		{"latitude too low", -91, 0, 10},
		{"longitude too high", 0, 181, 10},
		{"longitude too low", 0, -181, 10},
		{"zero radius", 0, 0, 0},
		{"negative radius", 0, 0, -5},
	} {
		t.Run(bad.name, func(t *testing.T) {
			err := validatePoint(bad.lat, bad.lon, bad.radius)
			require.Error(t, err)
			var verr *apierr.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestValidateBox(t *testing.T) {
	assert.NoError(t, validateBox(37, 38, -123, -122))
	// Wraparound boxes are legal even though west > east.
	assert.NoError(t, validateBox(-10, 10, 170, -170))

	err := validateBox(38, 37, -123, -122)
	require.Error(t, err)
	var verr *apierr.ValidationError
	assert.ErrorAs(t, err, &verr)
}
