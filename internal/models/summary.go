package models

import "time"

// DailySummary aggregates one generated day for the weekly overview. Date is
// midnight UTC of the summarized day.
type DailySummary struct {
	Date        time.Time `json:"date"`
	AvgHumidity float64   `json:"avg_humidity"`
	AvgLight    float64   `json:"avg_light"`
	AvgMoisture float64   `json:"avg_moisture"`
	Events      int       `json:"events"`
}

// ImpactReport carries the dashboard's environmental impact panel. The CO₂
// figure scales with how wet and humid the wall currently is; the other
// numbers are demo estimates that stay stable within the hour.
type ImpactReport struct {
	LocationID      string  `json:"location_id"`
	CO2AbsorbedKg   float64 `json:"co2_absorbed_kg"`
	AirPurifiedM3   float64 `json:"air_purified_m3"`
	EnergySavedKWh  float64 `json:"energy_saved_kwh"`
	WaterEfficiency float64 `json:"water_efficiency_pct"`
}
