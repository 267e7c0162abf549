package service

import (
	"math"
	"math/rand"
	"time"

	"github.com/bhoomi2310/GreenPulse/internal/models"
)

// ----------- Simulation constants -----------

// Baselines for a well-kept moss wall, before the daily cycle, the site bias
// and noise are applied.
const (
	BaseHumidity    = 65.0  // %RH
	BaseLight       = 380.0 // lux
	BaseMoisture    = 62.0  // %
	BaseCO2         = 430.0 // ppm
	BaseTemperature = 21.0  // °C
)

// Daily-cycle amplitudes. Humidity peaks overnight, light and temperature
// peak during the day, CO₂ dips while the wall photosynthesizes.
const (
	humiditySwing = 12.0  // %RH, cosine over the day, max at midnight
	lightSwing    = 520.0 // lux added at solar noon
	moistureDip   = 4.0   // % evaporation dip at solar noon
	co2Dip        = 60.0  // ppm absorbed at solar noon
	tempSwing     = 5.0   // °C, sine peaking mid-afternoon
)

// Per-field noise bounds.
const (
	humidityNoise = 4.0  // %RH
	lightNoise    = 40.0 // lux
	moistureNoise = 3.0  // %
	co2Noise      = 15.0 // ppm
	tempNoise     = 1.2  // °C
)

// SimulatorService produces synthetic current readings. It is stateless:
// every reading is a pure function of (seed, location, timestamp), so the
// same arguments always reproduce the same reading.
type SimulatorService struct {
	table *LocationTable
	seed  int64
}

// NewSimulatorService returns a simulator over the given site table.
func NewSimulatorService(table *LocationTable, seed int64) *SimulatorService {
	return &SimulatorService{table: table, seed: seed}
}

// Reading returns the reading for a site at the given instant. A zero at
// means "now". Unknown ids fail with ErrConfig.
func (s *SimulatorService) Reading(locationID string, at time.Time) (models.SensorReading, error) {
	loc, err := s.table.Get(locationID)
	if err != nil {
		return models.SensorReading{}, err
	}
	if at.IsZero() {
		at = time.Now()
	}
	at = at.UTC()
	rng := derivedRand(s.seed, loc.ID, at.Unix())
	return sampleReading(loc, at, rng), nil
}

// sampleReading builds one clamped reading from the daily cycle, the site
// bias and bounded noise. The caller owns the generator so that history
// generation can rebuild the same point for the same instant.
func sampleReading(loc models.Location, at time.Time, rng *rand.Rand) models.SensorReading {
	h := fractionalHour(at)
	day := daylight(h)

	humidity := BaseHumidity + humiditySwing*math.Cos(2*math.Pi*h/24) + loc.HumidityBias + noise(rng, humidityNoise)
	light := BaseLight + lightSwing*day + loc.LightBias + noise(rng, lightNoise)
	moisture := BaseMoisture - moistureDip*day + noise(rng, moistureNoise)
	co2 := BaseCO2 - co2Dip*day + noise(rng, co2Noise)
	temp := BaseTemperature + tempSwing*math.Sin(2*math.Pi*(h-9)/24) + loc.TempBias + noise(rng, tempNoise)

	r := models.SensorReading{
		Timestamp:   at,
		LocationID:  loc.ID,
		Humidity:    humidity,
		Light:       light,
		Moisture:    moisture,
		CO2:         co2,
		Temperature: temp,
	}
	return r.Clamp()
}

// fractionalHour is the smooth time of day in [0, 24).
func fractionalHour(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
}

// daylight rises from 06:00 to a noon peak and falls back to zero at 18:00;
// overnight it stays flat at zero.
func daylight(h float64) float64 {
	return math.Max(0, math.Sin(math.Pi*(h-6)/12))
}
