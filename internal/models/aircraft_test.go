package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both backends emit readsb-shaped records; one record exercises the short
// wire names and the optional-field handling.
func TestAircraftDecode(t *testing.T) {
	raw := `{
		"hex": "a1b2c3",
		"flight": "UAL123  ",
		"r": "N12345",
		"t": "B738",
		"lat": 37.7749,
		"lon": -122.4194,
		"alt_baro": 35000,
		"gs": 450.5,
		"squawk": "1200",
		"dbFlags": 1
	}`

	var ac Aircraft
	require.NoError(t, json.Unmarshal([]byte(raw), &ac))

	assert.Equal(t, "a1b2c3", ac.Hex)
	require.NotNil(t, ac.Registration)
	assert.Equal(t, "N12345", *ac.Registration)
	require.NotNil(t, ac.TypeCode)
	assert.Equal(t, "B738", *ac.TypeCode)
	require.NotNil(t, ac.GS)
	assert.Equal(t, 450.5, *ac.GS)
	require.NotNil(t, ac.DBFlags)
	assert.Equal(t, 1, *ac.DBFlags)

	assert.True(t, ac.HasPosition())
	assert.Equal(t, "UAL123", ac.Callsign())
}

func TestAircraftOptionalFieldsStayNil(t *testing.T) {
	var ac Aircraft
	require.NoError(t, json.Unmarshal([]byte(`{"hex": "d4e5f6"}`), &ac))

	assert.Equal(t, "d4e5f6", ac.Hex)
	assert.Nil(t, ac.Lat)
	assert.Nil(t, ac.Lon)
	assert.Nil(t, ac.AltBaro)
	assert.Nil(t, ac.Flight)
	assert.False(t, ac.HasPosition())
	assert.Equal(t, "", ac.Callsign())
}

func TestSkyDataString(t *testing.T) {
	pt := 12.5
	withTime := &SkyData{Backend: BackendREAPI, ResultCount: 3, ProcessingTime: &pt}
	assert.Equal(t, "SkyData from reapi backend with 3 aircraft (processed in 12.5ms)", withTime.String())

	simulated := &SkyData{Backend: BackendOpenAPI, ResultCount: 1, Simulated: true}
	assert.Equal(t, "SkyData from openapi backend with 1 aircraft (simulated)", simulated.String())
}

func TestBackendIDValid(t *testing.T) {
	assert.True(t, BackendREAPI.Valid())
	assert.True(t, BackendOpenAPI.Valid())
	assert.False(t, BackendAuto.Valid())
	assert.False(t, BackendID("").Valid())
}
