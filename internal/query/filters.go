// Package query builds re-api query strings and holds the filter criteria
// shared by all backends.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"skysnoop/internal/apierr"
)

// Filters holds optional server-side filter predicates for re-api queries.
// All fields are optional; nil means "not set". Combine freely except where
// Validate says otherwise.
type Filters struct {
	// CallsignExact and CallsignPrefix are mutually exclusive
	CallsignExact  *string
	CallsignPrefix *string
	Squawk         *string
	TypeCode       *string
	// Barometric altitude bounds in feet; Above must not exceed Below
	AboveAltBaro *int
	BelowAltBaro *int
	// Category flags
	Mil  *bool
	Pia  *bool
	Ladd *bool
}

// NewFilters validates f and returns it unchanged. Construction and
// validation happen together so an invalid criteria set never reaches a
// network call.
func NewFilters(f Filters) (*Filters, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the filter invariants. It returns a
// *apierr.ValidationError describing the first violation found.
func (f *Filters) Validate() error {
	if f == nil {
		return nil
	}
	if f.CallsignExact != nil && f.CallsignPrefix != nil {
		return apierr.Validationf("callsign_exact and callsign_prefix are mutually exclusive")
	}
	if f.AboveAltBaro != nil && *f.AboveAltBaro < 0 {
		return apierr.Validationf("above_alt_baro must not be negative, got %d", *f.AboveAltBaro)
	}
	if f.BelowAltBaro != nil && *f.BelowAltBaro < 0 {
		return apierr.Validationf("below_alt_baro must not be negative, got %d", *f.BelowAltBaro)
	}
	if f.AboveAltBaro != nil && f.BelowAltBaro != nil && *f.AboveAltBaro > *f.BelowAltBaro {
		return apierr.Validationf("above_alt_baro (%d) must not exceed below_alt_baro (%d)",
			*f.AboveAltBaro, *f.BelowAltBaro)
	}
	if f.Squawk != nil {
		if *f.Squawk == "" || strings.IndexFunc(*f.Squawk, notDigit) >= 0 {
			return apierr.Validationf("squawk must be numeric, got %q", *f.Squawk)
		}
	}
	return nil
}

func notDigit(r rune) bool { return r < '0' || r > '9' }

// IsEmpty reports whether no filter is set at all.
func (f *Filters) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.CallsignExact == nil && f.CallsignPrefix == nil && f.Squawk == nil &&
		f.TypeCode == nil && f.AboveAltBaro == nil && f.BelowAltBaro == nil &&
		f.Mil == nil && f.Pia == nil && f.Ladd == nil
}

// Encode renders the set filters as "filter_key=value&..." pairs in a fixed
// order. Individual values are percent-encoded; booleans render as the
// literal strings "true"/"false". Returns "" when nothing is set.
func (f *Filters) Encode() string {
	if f.IsEmpty() {
		return ""
	}

	var parts []string
	add := func(key, value string) {
		parts = append(parts, key+"="+url.QueryEscape(value))
	}

	if f.CallsignExact != nil {
		add("filter_callsign", *f.CallsignExact)
	}
	if f.CallsignPrefix != nil {
		add("filter_callsign_prefix", *f.CallsignPrefix)
	}
	if f.Squawk != nil {
		add("filter_squawk", *f.Squawk)
	}
	if f.TypeCode != nil {
		add("filter_type", *f.TypeCode)
	}
	if f.AboveAltBaro != nil {
		add("filter_above_alt_baro", strconv.Itoa(*f.AboveAltBaro))
	}
	if f.BelowAltBaro != nil {
		add("filter_below_alt_baro", strconv.Itoa(*f.BelowAltBaro))
	}
	if f.Mil != nil {
		add("filter_mil", strconv.FormatBool(*f.Mil))
	}
	if f.Pia != nil {
		add("filter_pia", strconv.FormatBool(*f.Pia))
	}
	if f.Ladd != nil {
		add("filter_ladd", strconv.FormatBool(*f.Ladd))
	}

	return strings.Join(parts, "&")
}

// String returns a pointer to s, for building Filters literals.
func String(s string) *string { return &s }

// Int returns a pointer to i, for building Filters literals.
func Int(i int) *int { return &i }

// Bool returns a pointer to b, for building Filters literals.
func Bool(b bool) *bool { return &b }
