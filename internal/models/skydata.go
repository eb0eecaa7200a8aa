package models

import "fmt"

// BackendID tags which upstream API produced a response.
type BackendID string

const (
	BackendREAPI   BackendID = "reapi"
	BackendOpenAPI BackendID = "openapi"
	// BackendAuto is only valid as a selection preference, never as a
	// SkyData tag.
	BackendAuto BackendID = "auto"
)

// Valid reports whether the ID names a concrete backend.
func (b BackendID) Valid() bool {
	return b == BackendREAPI || b == BackendOpenAPI
}

// SkyData is the normalized response shape shared by every backend adapter.
// It is created fresh per request inside an adapter and not mutated after.
//
// ResultCount comes verbatim from the backend envelope and may diverge from
// len(Aircraft) when the server truncates - the two carry distinct meanings
// and neither is "fixed up" to match the other. The one exception is the
// simulated box path, where the adapter recomputes the count from the
// client-side filtered list because the backend never saw the box at all.
type SkyData struct {
	// Server-reported epoch seconds
	Timestamp float64 `json:"timestamp"`
	// Backend's own result count (see note above)
	ResultCount int `json:"result_count"`
	// Server processing time in milliseconds; nil when the backend does
	// not report one
	ProcessingTime *float64   `json:"processing_time,omitempty"`
	Aircraft       []Aircraft `json:"aircraft"`
	// Which backend produced this response
	Backend BackendID `json:"backend"`
	// True when the operation was emulated client-side rather than
	// executed natively by the backend
	Simulated bool `json:"simulated"`
}

// Count returns the backend-reported result count.
func (s *SkyData) Count() int {
	return s.ResultCount
}

// HasResults reports whether the backend found any aircraft.
func (s *SkyData) HasResults() bool {
	return s.ResultCount > 0
}

func (s *SkyData) String() string {
	note := ""
	if s.Simulated {
		note = " (simulated)"
	}
	if s.ProcessingTime != nil {
		return fmt.Sprintf("SkyData from %s backend with %d aircraft%s (processed in %gms)",
			s.Backend, s.ResultCount, note, *s.ProcessingTime)
	}
	return fmt.Sprintf("SkyData from %s backend with %d aircraft%s", s.Backend, s.ResultCount, note)
}
