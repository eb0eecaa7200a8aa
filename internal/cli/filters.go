package cli

import (
	"github.com/spf13/cobra"

	"skysnoop/internal/query"
)

// filterFlags collects the --filter-* flags shared by the geographic and
// bulk commands. Only flags the user actually set become filter criteria,
// so unset flags never mask the distinction between "no filter" and
// "filter on the zero value".
type filterFlags struct {
	callsign       string
	callsignPrefix string
	squawk         string
	typeCode       string
	aboveAlt       int
	belowAlt       int
	mil            bool
	pia            bool
	ladd           bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.callsign, "filter-callsign", "", "exact callsign match")
	fl.StringVar(&f.callsignPrefix, "filter-callsign-prefix", "", "callsign prefix match")
	fl.StringVar(&f.squawk, "filter-squawk", "", "squawk code filter")
	fl.StringVar(&f.typeCode, "filter-type", "", "aircraft type code filter")
	fl.IntVar(&f.aboveAlt, "filter-above-alt", 0, "minimum barometric altitude in feet")
	fl.IntVar(&f.belowAlt, "filter-below-alt", 0, "maximum barometric altitude in feet")
	fl.BoolVar(&f.mil, "filter-mil", false, "military aircraft only")
	fl.BoolVar(&f.pia, "filter-pia", false, "PIA-flagged aircraft only")
	fl.BoolVar(&f.ladd, "filter-ladd", false, "LADD-flagged aircraft only")
}

// criteria builds validated filter criteria from the flags that were set,
// or nil when none were.
func (f *filterFlags) criteria(cmd *cobra.Command) (*query.Filters, error) {
	fl := cmd.Flags()
	out := query.Filters{}

	if fl.Changed("filter-callsign") {
		out.CallsignExact = query.String(f.callsign)
	}
	if fl.Changed("filter-callsign-prefix") {
		out.CallsignPrefix = query.String(f.callsignPrefix)
	}
	if fl.Changed("filter-squawk") {
		out.Squawk = query.String(f.squawk)
	}
	if fl.Changed("filter-type") {
		out.TypeCode = query.String(f.typeCode)
	}
	if fl.Changed("filter-above-alt") {
		out.AboveAltBaro = query.Int(f.aboveAlt)
	}
	if fl.Changed("filter-below-alt") {
		out.BelowAltBaro = query.Int(f.belowAlt)
	}
	if fl.Changed("filter-mil") {
		out.Mil = query.Bool(f.mil)
	}
	if fl.Changed("filter-pia") {
		out.Pia = query.Bool(f.pia)
	}
	if fl.Changed("filter-ladd") {
		out.Ladd = query.Bool(f.ladd)
	}

	if out.IsEmpty() {
		return nil, nil
	}
	return query.NewFilters(out)
}
