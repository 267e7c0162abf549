package models

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// HistoricalSeries is a fixed-interval run of readings for one location,
// oldest first, together with the interventions that were injected while
// generating it. A returned series is immutable.
type HistoricalSeries struct {
	LocationID      string          `json:"location_id"`
	IntervalMinutes int             `json:"interval_minutes"`
	Readings        []SensorReading `json:"readings"`
	Events          []Event         `json:"events,omitempty"`
}

var csvHeader = []string{"timestamp", "location_id", "humidity", "light", "moisture", "co2", "temperature"}

// WriteCSV streams the series readings as CSV, one row per reading plus a
// header row.
func (s HistoricalSeries) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range s.Readings {
		row := []string{
			r.Timestamp.UTC().Format(time.RFC3339),
			r.LocationID,
			formatValue(r.Humidity),
			formatValue(r.Light),
			formatValue(r.Moisture),
			formatValue(r.CO2),
			formatValue(r.Temperature),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
