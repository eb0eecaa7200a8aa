package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Altitude is a barometric or geometric altitude in feet. The wire format
// sends either a number or the literal string "ground" for aircraft on the
// surface. The sentinel must survive a round trip - it is never coerced
// to zero feet.
type Altitude struct {
	Feet   int
	Ground bool
}

// UnmarshalJSON accepts either a JSON number or the string "ground".
func (a *Altitude) UnmarshalJSON(data []byte) error {
	if string(data) == `"ground"` {
		a.Ground = true
		a.Feet = 0
		return nil
	}

	var feet float64
	if err := json.Unmarshal(data, &feet); err != nil {
		return fmt.Errorf("altitude must be a number or \"ground\": %w", err)
	}
	a.Ground = false
	a.Feet = int(feet)
	return nil
}

// MarshalJSON writes the sentinel back out when set.
func (a Altitude) MarshalJSON() ([]byte, error) {
	if a.Ground {
		return []byte(`"ground"`), nil
	}
	return []byte(strconv.Itoa(a.Feet)), nil
}

func (a Altitude) String() string {
	if a.Ground {
		return "ground"
	}
	return strconv.Itoa(a.Feet)
}
