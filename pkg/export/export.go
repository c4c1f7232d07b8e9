// Package export renders a solved Plan to common interchange formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/oceanrelay/vesselplan/core/plan"
)

// WriteJSON writes the plan to w in JSON format.
func WriteJSON(w io.Writer, p plan.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// WriteCSV writes the plan's steps to w in CSV format, one row per station.
func WriteCSV(w io.Writer, p plan.Plan) error {
	cw := csv.NewWriter(w)
	header := []string{
		"station_id", "arrival_time_hr", "arrival_clock_hr", "soc_arriving_kwh",
		"action", "containers_swapped", "energy_charged_kwh", "dwell_hours", "cost",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range p.Steps {
		rec := []string{
			s.StationID,
			strconv.FormatFloat(s.ArrivalTime, 'f', -1, 64),
			strconv.FormatFloat(s.ArrivalClockTime, 'f', -1, 64),
			strconv.FormatFloat(s.SoCArrivingKWh, 'f', -1, 64),
			s.Action.String(),
			strconv.Itoa(s.ContainersSwapped),
			strconv.FormatFloat(s.EnergyChargedKWh, 'f', -1, 64),
			strconv.FormatFloat(s.DwellHours, 'f', -1, 64),
			s.Cost.String(),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
