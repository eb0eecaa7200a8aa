package query

import (
	"strconv"
	"strings"
)

// The re-api wire format is positional: "circle=lat,lon,radius". The commas
// are structural syntax, not data, and must never be percent-encoded - any
// HTTP library that serializes a params map will escape them and break the
// query. These builders therefore assemble the final query string themselves,
// and the transport concatenates it onto the base URL verbatim.

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func withFilters(q string, filters *Filters) string {
	fs := filters.Encode()
	if fs == "" {
		return q
	}
	return q + "&" + fs
}

// BuildCircle renders a circular area search:
// "circle=lat,lon,radius[&filter_...]". Radius is in nautical miles.
func BuildCircle(lat, lon, radius float64, filters *Filters) string {
	q := "circle=" + formatFloat(lat) + "," + formatFloat(lon) + "," + formatFloat(radius)
	return withFilters(q, filters)
}

// BuildClosest renders a closest-aircraft search:
// "closest=lat,lon,radius[&filter_...]".
func BuildClosest(lat, lon, radius float64, filters *Filters) string {
	q := "closest=" + formatFloat(lat) + "," + formatFloat(lon) + "," + formatFloat(radius)
	return withFilters(q, filters)
}

// BuildBox renders a bounding-box search:
// "box=latSouth,latNorth,lonWest,lonEast[&filter_...]".
func BuildBox(latSouth, latNorth, lonWest, lonEast float64, filters *Filters) string {
	q := "box=" + strings.Join([]string{
		formatFloat(latSouth),
		formatFloat(latNorth),
		formatFloat(lonWest),
		formatFloat(lonEast),
	}, ",")
	return withFilters(q, filters)
}

// BuildFindHex renders an ICAO hex lookup: "find_hex=abc123".
func BuildFindHex(hex string) string {
	return "find_hex=" + hex
}

// BuildFindCallsign renders a callsign lookup: "find_callsign=UAL123".
func BuildFindCallsign(callsign string) string {
	return "find_callsign=" + callsign
}

// BuildFindReg renders a registration lookup: "find_reg=N12345".
func BuildFindReg(registration string) string {
	return "find_reg=" + registration
}

// BuildFindType renders a type-code lookup: "find_type=A321".
func BuildFindType(typeCode string) string {
	return "find_type=" + typeCode
}

// BuildAll renders the bulk query for every known aircraft.
func BuildAll(filters *Filters) string {
	return withFilters("all", filters)
}

// BuildAllWithPos renders the bulk query for every aircraft with a position.
func BuildAllWithPos(filters *Filters) string {
	return withFilters("all_with_pos", filters)
}
