package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skysnoop/internal/models"
)

func sampleSkyData() *models.SkyData {
	flight := "UAL123  "
	reg := "N12345"
	typ := "B738"
	lat, lon, gs := 37.7749, -122.4194, 450.5
	pt := 12.5
	return &models.SkyData{
		Timestamp:      1700000000.5,
		ResultCount:    2,
		ProcessingTime: &pt,
		Backend:        models.BackendREAPI,
		Aircraft: []models.Aircraft{
			{
				Hex:          "a1b2c3",
				Flight:       &flight,
				Registration: &reg,
				TypeCode:     &typ,
				Lat:          &lat,
				Lon:          &lon,
				GS:           &gs,
				AltBaro:      &models.Altitude{Feet: 35000},
			},
			{
				Hex:     "d4e5f6",
				AltBaro: &models.Altitude{Ground: true},
			},
		},
	}
}

func TestRenderTable(t *testing.T) {
	out, err := Render(sampleSkyData(), "table")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "2 aircraft from reapi backend", lines[0])
	assert.Contains(t, lines[1], "HEX")
	assert.Contains(t, lines[1], "CALLSIGN")

	// Padding is trimmed, absent fields show a dash, the ground sentinel
	// survives rendering.
	assert.Contains(t, lines[2], "UAL123")
	assert.NotContains(t, lines[2], "UAL123 ")
	assert.Contains(t, lines[3], "d4e5f6")
	assert.Contains(t, lines[3], "-")
	assert.Contains(t, lines[3], "ground")
}

func TestRenderTableSimulatedNote(t *testing.T) {
	data := sampleSkyData()
	data.Backend = models.BackendOpenAPI
	data.Simulated = true

	out, err := Render(data, "table")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2 aircraft from openapi backend (simulated)"))
}

func TestRenderTableEmpty(t *testing.T) {
	data := &models.SkyData{Backend: models.BackendREAPI}
	out, err := Render(data, "table")
	require.NoError(t, err)
	assert.Equal(t, "0 aircraft from reapi backend", out)
}

func TestRenderJSON(t *testing.T) {
	out, err := Render(sampleSkyData(), "json")
	require.NoError(t, err)

	var back models.SkyData
	require.NoError(t, json.Unmarshal([]byte(out), &back))
	assert.Equal(t, models.BackendREAPI, back.Backend)
	assert.Equal(t, 2, back.ResultCount)
	require.Len(t, back.Aircraft, 2)
	require.NotNil(t, back.Aircraft[1].AltBaro)
	assert.True(t, back.Aircraft[1].AltBaro.Ground)
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(sampleSkyData(), "xml")
	assert.Error(t, err)
}
