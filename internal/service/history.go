package service

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/bhoomi2310/GreenPulse/internal/models"
)

// ----------- Event overlay constants -----------

const (
	wateringBoostMin  = 10.0 // % moisture added right after watering
	wateringBoostMax  = 20.0
	wateringHumidity  = 0.4 // share of the moisture boost that shows up as humidity
	maintenancePullLo = 0.5 // fraction pulled back toward baseline
	maintenancePullHi = 0.9
)

const (
	summaryDays            = 7
	summaryIntervalMinutes = 60
)

// EventProfile controls how many interventions a generated day receives and
// how quickly they fade.
type EventProfile struct {
	WateringPerDay    int
	MaintenancePerDay int
	WateringHalfLife  time.Duration
	MaintenanceWindow time.Duration
}

// DefaultEventProfile returns the knobs the dashboard ships with.
func DefaultEventProfile() EventProfile {
	return EventProfile{
		WateringPerDay:    2,
		MaintenancePerDay: 1,
		WateringHalfLife:  90 * time.Minute,
		MaintenanceWindow: 2 * time.Hour,
	}
}

// HistoryService generates rolling windows of readings with watering and
// maintenance interventions overlaid. Like the simulator it keeps no state
// between calls: a window is recomputed from the seed every time, so the
// same arguments always reproduce the same series, events included.
type HistoryService struct {
	table   *LocationTable
	seed    int64
	profile EventProfile
}

// NewHistoryService returns a generator over the given site table.
func NewHistoryService(table *LocationTable, seed int64, profile EventProfile) *HistoryService {
	return &HistoryService{table: table, seed: seed, profile: profile}
}

// Series generates the trailing window ending at end. A zero end means
// "now". The window covers horizonHours sampled every intervalMinutes; the
// point count is floor(horizon/interval) and the last point lands exactly
// on end. Unknown ids and non-positive parameters fail with ErrConfig.
func (s *HistoryService) Series(locationID string, end time.Time, horizonHours, intervalMinutes int) (models.HistoricalSeries, error) {
	loc, err := s.table.Get(locationID)
	if err != nil {
		return models.HistoricalSeries{}, err
	}
	if horizonHours <= 0 {
		return models.HistoricalSeries{}, fmt.Errorf("%w: horizon must be positive, got %dh", ErrConfig, horizonHours)
	}
	if intervalMinutes <= 0 {
		return models.HistoricalSeries{}, fmt.Errorf("%w: interval must be positive, got %dm", ErrConfig, intervalMinutes)
	}
	if end.IsZero() {
		end = time.Now()
	}
	end = end.UTC()

	series := models.HistoricalSeries{
		LocationID:      loc.ID,
		IntervalMinutes: intervalMinutes,
		Readings:        []models.SensorReading{},
	}
	count := horizonHours * 60 / intervalMinutes
	if count == 0 {
		return series, nil
	}

	interval := time.Duration(intervalMinutes) * time.Minute
	start := end.Add(-time.Duration(count-1) * interval)
	events := s.injectEvents(loc, start, end, horizonHours)

	readings := make([]models.SensorReading, 0, count)
	for i := 0; i < count; i++ {
		ts := start.Add(time.Duration(i) * interval)
		rng := derivedRand(s.seed, loc.ID, ts.Unix())
		r := applyEvents(sampleReading(loc, ts, rng), events).Clamp()
		readings = append(readings, r)
	}
	series.Readings = readings
	series.Events = events
	return series, nil
}

// injectEvents places the seeded interventions across [start, end]. Counts
// scale with the horizon so a six hour window does not get a full day's
// watering; any configured type still appears at least once.
func (s *HistoryService) injectEvents(loc models.Location, start, end time.Time, horizonHours int) []models.Event {
	rng := derivedRand(s.seed, "events/"+loc.ID, end.Unix())
	span := end.Sub(start)

	watering := scaleEventCount(s.profile.WateringPerDay, horizonHours)
	maintenance := scaleEventCount(s.profile.MaintenancePerDay, horizonHours)

	events := make([]models.Event, 0, watering+maintenance)
	for i := 0; i < watering; i++ {
		events = append(events, models.Event{
			ID:           seededID(rng),
			Timestamp:    randomInstant(rng, start, span),
			Type:         models.EventWatering,
			Magnitude:    uniform(rng, wateringBoostMin, wateringBoostMax),
			DecaySeconds: int(s.profile.WateringHalfLife.Seconds()),
		})
	}
	for i := 0; i < maintenance; i++ {
		events = append(events, models.Event{
			ID:           seededID(rng),
			Timestamp:    randomInstant(rng, start, span),
			Type:         models.EventMaintenance,
			Magnitude:    uniform(rng, maintenancePullLo, maintenancePullHi),
			DecaySeconds: int(s.profile.MaintenanceWindow.Seconds()),
		})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Timestamp.Before(events[j].Timestamp) })
	return events
}

// applyEvents overlays every intervention already in effect at the
// reading's instant. Watering is a boost that halves every DecaySeconds;
// maintenance pulls the wall toward its baseline, fading linearly until the
// window closes.
func applyEvents(r models.SensorReading, events []models.Event) models.SensorReading {
	for _, ev := range events {
		age := r.Timestamp.Sub(ev.Timestamp)
		if age < 0 || ev.DecaySeconds <= 0 {
			continue
		}
		switch ev.Type {
		case models.EventWatering:
			w := math.Exp2(-age.Seconds() / float64(ev.DecaySeconds))
			r.Moisture += ev.Magnitude * w
			r.Humidity += ev.Magnitude * wateringHumidity * w
		case models.EventMaintenance:
			window := float64(ev.DecaySeconds)
			if age.Seconds() > window {
				continue
			}
			w := ev.Magnitude * (1 - age.Seconds()/window)
			r.Moisture += (BaseMoisture - r.Moisture) * w
			r.Humidity += (BaseHumidity - r.Humidity) * w
		}
	}
	return r
}

// WeeklySummary rolls the last seven generated days into daily averages,
// oldest day first. Each day is generated at an hourly interval, ending at
// the same wall-clock time as end.
func (s *HistoryService) WeeklySummary(locationID string, end time.Time) ([]models.DailySummary, error) {
	if end.IsZero() {
		end = time.Now()
	}
	end = end.UTC()

	days := make([]models.DailySummary, 0, summaryDays)
	for back := summaryDays - 1; back >= 0; back-- {
		dayEnd := end.AddDate(0, 0, -back)
		series, err := s.Series(locationID, dayEnd, 24, summaryIntervalMinutes)
		if err != nil {
			return nil, err
		}
		var humidity, light, moisture float64
		for _, r := range series.Readings {
			humidity += r.Humidity
			light += r.Light
			moisture += r.Moisture
		}
		n := float64(len(series.Readings))
		days = append(days, models.DailySummary{
			Date:        time.Date(dayEnd.Year(), dayEnd.Month(), dayEnd.Day(), 0, 0, 0, 0, time.UTC),
			AvgHumidity: humidity / n,
			AvgLight:    light / n,
			AvgMoisture: moisture / n,
			Events:      len(series.Events),
		})
	}
	return days, nil
}

func scaleEventCount(perDay, horizonHours int) int {
	if perDay <= 0 {
		return 0
	}
	n := perDay * horizonHours / 24
	if n < 1 {
		n = 1
	}
	return n
}

func randomInstant(rng *rand.Rand, start time.Time, span time.Duration) time.Time {
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(rng.Int63n(int64(span))))
}

// seededID derives a UUID from the seeded generator so regenerating a
// window reproduces the same event ids.
func seededID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
