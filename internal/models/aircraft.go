package models

import "strings"

// Aircraft represents a single aircraft's telemetry from adsb.lol.
// Both backends emit readsb-shaped records, so one struct decodes either
// wire format. All fields except Hex are optional; absent fields stay nil
// so they can be told apart from zero values.
type Aircraft struct {
	// ICAO 24-bit aircraft address (hex string) - the only required field
	Hex string `json:"hex"`

	// Identification
	Flight       *string `json:"flight,omitempty"`
	Squawk       *string `json:"squawk,omitempty"`
	Registration *string `json:"r,omitempty"`
	TypeCode     *string `json:"t,omitempty"`
	Category     *string `json:"category,omitempty"`

	// Position
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
	SeenPos *float64 `json:"seen_pos,omitempty"`

	// Altitude - may be the literal "ground" sentinel, see Altitude
	AltBaro  *Altitude `json:"alt_baro,omitempty"`
	AltGeom  *Altitude `json:"alt_geom,omitempty"`
	BaroRate *int      `json:"baro_rate,omitempty"`
	GeomRate *int      `json:"geom_rate,omitempty"`

	// Speed
	GS   *float64 `json:"gs,omitempty"`
	IAS  *int     `json:"ias,omitempty"`
	TAS  *int     `json:"tas,omitempty"`
	Mach *float64 `json:"mach,omitempty"`

	// Heading / track
	Track       *float64 `json:"track,omitempty"`
	TrackRate   *float64 `json:"track_rate,omitempty"`
	Roll        *float64 `json:"roll,omitempty"`
	MagHeading  *float64 `json:"mag_heading,omitempty"`
	TrueHeading *float64 `json:"true_heading,omitempty"`

	// Navigation
	NavQNH         *float64 `json:"nav_qnh,omitempty"`
	NavAltitudeMCP *int     `json:"nav_altitude_mcp,omitempty"`
	NavAltitudeFMS *int     `json:"nav_altitude_fms,omitempty"`
	NavHeading     *float64 `json:"nav_heading,omitempty"`
	NavModes       []string `json:"nav_modes,omitempty"`

	// Status
	Emergency *string `json:"emergency,omitempty"`
	Alert     *int    `json:"alert,omitempty"`
	SPI       *int    `json:"spi,omitempty"`

	// ADS-B integrity/accuracy
	NIC     *int     `json:"nic,omitempty"`
	RC      *int     `json:"rc,omitempty"`
	Version *int     `json:"version,omitempty"`
	NICBaro *int     `json:"nic_baro,omitempty"`
	NACp    *int     `json:"nac_p,omitempty"`
	NACv    *int     `json:"nac_v,omitempty"`
	SIL     *int     `json:"sil,omitempty"`
	SILType *string  `json:"sil_type,omitempty"`
	GVA     *int     `json:"gva,omitempty"`
	SDA     *int     `json:"sda,omitempty"`
	MLAT    []string `json:"mlat,omitempty"`
	TISB    []string `json:"tisb,omitempty"`

	// Receiver statistics
	Messages *int     `json:"messages,omitempty"`
	Seen     *float64 `json:"seen,omitempty"`
	RSSI     *float64 `json:"rssi,omitempty"`
	Dst      *float64 `json:"dst,omitempty"`
	Dir      *float64 `json:"dir,omitempty"`

	// Database flags (bit 0 = military, bit 2 = PIA, bit 3 = LADD)
	DBFlags *int `json:"dbFlags,omitempty"`
}

// HasPosition reports whether the aircraft carries usable coordinates.
func (a *Aircraft) HasPosition() bool {
	return a.Lat != nil && a.Lon != nil
}

// Callsign returns the flight identifier with transponder padding trimmed,
// or "" when the aircraft did not broadcast one.
func (a *Aircraft) Callsign() string {
	if a.Flight == nil {
		return ""
	}
	return strings.TrimSpace(*a.Flight)
}
