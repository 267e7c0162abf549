package models

import "time"

// Range is an inclusive physical bound for one sensor field. Synthetic
// values are clamped into their range after noise and event overlays, and
// the predictor clamps its inputs to the same bounds before classifying.
type Range struct {
	Min float64
	Max float64
}

// Clamp returns v limited to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Physical ranges of the simulated sensors.
var (
	HumidityRange    = Range{Min: 0, Max: 100}   // %RH
	LightRange       = Range{Min: 0, Max: 1500}  // lux
	MoistureRange    = Range{Min: 0, Max: 100}   // % volumetric water content
	CO2Range         = Range{Min: 300, Max: 600} // ppm
	TemperatureRange = Range{Min: 15, Max: 35}   // °C
)

// SensorReading is one timestamped snapshot of the simulated environment
// around a moss wall. Timestamps are UTC.
type SensorReading struct {
	Timestamp   time.Time `json:"timestamp"`
	LocationID  string    `json:"location_id"`
	Humidity    float64   `json:"humidity"`
	Light       float64   `json:"light"`
	Moisture    float64   `json:"moisture"`
	CO2         float64   `json:"co2"`
	Temperature float64   `json:"temperature"`
}

// Clamp returns a copy of the reading with every field forced into its
// physical range.
func (s SensorReading) Clamp() SensorReading {
	s.Humidity = HumidityRange.Clamp(s.Humidity)
	s.Light = LightRange.Clamp(s.Light)
	s.Moisture = MoistureRange.Clamp(s.Moisture)
	s.CO2 = CO2Range.Clamp(s.CO2)
	s.Temperature = TemperatureRange.Clamp(s.Temperature)
	return s
}

// InBounds reports whether every field sits inside its physical range.
func (s SensorReading) InBounds() bool {
	return HumidityRange.Contains(s.Humidity) &&
		LightRange.Contains(s.Light) &&
		MoistureRange.Contains(s.Moisture) &&
		CO2Range.Contains(s.CO2) &&
		TemperatureRange.Contains(s.Temperature)
}
