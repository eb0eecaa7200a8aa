package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"skysnoop/internal/models"
)

// Render formats a normalized response as "table" or "json".
func Render(data *models.SkyData, format string) (string, error) {
	switch format {
	case "json":
		return renderJSON(data)
	case "table":
		return renderTable(data)
	default:
		return "", fmt.Errorf("unknown output format: %s (must be table or json)", format)
	}
}

func renderJSON(data *models.SkyData) (string, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding response: %w", err)
	}
	return string(out), nil
}

func renderTable(data *models.SkyData) (string, error) {
	var b strings.Builder

	note := ""
	if data.Simulated {
		note = " (simulated)"
	}
	fmt.Fprintf(&b, "%d aircraft from %s backend%s\n", data.ResultCount, data.Backend, note)

	if len(data.Aircraft) == 0 {
		return strings.TrimRight(b.String(), "\n"), nil
	}

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HEX\tCALLSIGN\tREG\tTYPE\tSQUAWK\tALT\tLAT\tLON\tGS")
	for i := range data.Aircraft {
		ac := &data.Aircraft[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			ac.Hex,
			ac.Callsign(),
			strVal(ac.Registration),
			strVal(ac.TypeCode),
			strVal(ac.Squawk),
			altVal(ac.AltBaro),
			floatVal(ac.Lat),
			floatVal(ac.Lon),
			floatVal(ac.GS),
		)
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func strVal(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func floatVal(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func altVal(a *models.Altitude) string {
	if a == nil {
		return "-"
	}
	return a.String()
}
