package client

import (
	"math"

	"skysnoop/internal/apierr"
)

// Earth radius in nautical miles, the domain's native distance unit. The
// same constant feeds both box simulation and any distance post-filtering
// so the two can never disagree.
const earthRadiusNM = 3440.065

// haversineNM returns the great-circle distance between two points in
// nautical miles. The formula is periodic in longitude, so antimeridian
// deltas need no special casing.
func haversineNM(lat1, lon1, lat2, lon2 float64) float64 {
	lat1r := lat1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusNM * c
}

// boxCenter returns the midpoint of a bounding box. A box whose west bound
// exceeds its east bound spans the antimeridian; its longitude midpoint is
// computed across the seam and normalized back into [-180, 180].
func boxCenter(latSouth, latNorth, lonWest, lonEast float64) (lat, lon float64) {
	lat = (latSouth + latNorth) / 2
	if lonWest <= lonEast {
		lon = (lonWest + lonEast) / 2
		return lat, lon
	}
	lon = (lonWest + lonEast + 360) / 2
	if lon > 180 {
		lon -= 360
	}
	return lat, lon
}

// circumscribeBox returns the center of the box and the radius of the
// smallest centered circle reaching its farthest corner, in nautical miles.
func circumscribeBox(latSouth, latNorth, lonWest, lonEast float64) (lat, lon, radius float64) {
	lat, lon = boxCenter(latSouth, latNorth, lonWest, lonEast)
	for _, corner := range [4][2]float64{
		{latSouth, lonWest},
		{latSouth, lonEast},
		{latNorth, lonWest},
		{latNorth, lonEast},
	} {
		if d := haversineNM(lat, lon, corner[0], corner[1]); d > radius {
			radius = d
		}
	}
	return lat, lon, radius
}

// inBox reports whether a point lies within the box bounds, handling boxes
// that span the antimeridian (lonWest > lonEast).
func inBox(lat, lon, latSouth, latNorth, lonWest, lonEast float64) bool {
	if lat < latSouth || lat > latNorth {
		return false
	}
	if lonWest <= lonEast {
		return lon >= lonWest && lon <= lonEast
	}
	return lon >= lonWest || lon <= lonEast
}

func validateLatLon(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return apierr.Validationf("latitude %g out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return apierr.Validationf("longitude %g out of range [-180, 180]", lon)
	}
	return nil
}

func validatePoint(lat, lon, radius float64) error {
	if err := validateLatLon(lat, lon); err != nil {
		return err
	}
	if radius <= 0 {
		return apierr.Validationf("radius must be positive, got %g", radius)
	}
	return nil
}

func validateBox(latSouth, latNorth, lonWest, lonEast float64) error {
	if err := validateLatLon(latSouth, lonWest); err != nil {
		return err
	}
	if err := validateLatLon(latNorth, lonEast); err != nil {
		return err
	}
	if latSouth > latNorth {
		return apierr.Validationf("southern bound %g exceeds northern bound %g", latSouth, latNorth)
	}
	return nil
}
