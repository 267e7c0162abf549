package service

import (
	"errors"
	"testing"
	"time"

	"github.com/bhoomi2310/GreenPulse/internal/models"
)

// testLocations returns a small site table for the service tests. The
// highway site is deliberately biased bright and hot.
func testLocations() []models.Location {
	return []models.Location{
		{ID: "lobby", Name: "Lobby Wall", Category: models.CategoryBuilding, HumidityBias: 0, LightBias: -60, TempBias: 1.0},
		{ID: "highway", Name: "Highway Wall", Category: models.CategoryHighway, HumidityBias: -2, LightBias: 150, TempBias: 2.0},
	}
}

func mustTable(t *testing.T) *LocationTable {
	t.Helper()
	table, err := NewLocationTable(testLocations())
	if err != nil {
		t.Fatalf("NewLocationTable: %v", err)
	}
	return table
}

func TestSimulator_Reading_StaysInPhysicalBounds(t *testing.T) {
	t.Parallel()

	svc := NewSimulatorService(mustTable(t), 1337)

	// Sweep a full day at 17 minute steps; every sample must be clamped.
	start := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	for at := start; at.Before(start.AddDate(0, 0, 1)); at = at.Add(17 * time.Minute) {
		r, err := svc.Reading("highway", at)
		if err != nil {
			t.Fatalf("Reading at %v: %v", at, err)
		}
		if !r.InBounds() {
			t.Fatalf("reading out of bounds at %v: %+v", at, r)
		}
	}
}

func TestSimulator_Reading_DeterministicForSameArguments(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC)

	a := NewSimulatorService(mustTable(t), 1337)
	b := NewSimulatorService(mustTable(t), 1337)

	r1, err := a.Reading("lobby", at)
	if err != nil {
		t.Fatalf("first Reading: %v", err)
	}
	r2, err := b.Reading("lobby", at)
	if err != nil {
		t.Fatalf("second Reading: %v", err)
	}
	if r1 != r2 {
		t.Fatalf("same (seed, location, time) produced different readings:\n%+v\n%+v", r1, r2)
	}
}

func TestSimulator_Reading_VariesAcrossSeedLocationAndTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC)
	table := mustTable(t)

	base := NewSimulatorService(table, 1337)
	ref, err := base.Reading("lobby", at)
	if err != nil {
		t.Fatalf("Reading: %v", err)
	}

	otherSeed, _ := NewSimulatorService(table, 7331).Reading("lobby", at)
	if ref == otherSeed {
		t.Fatalf("different seeds produced identical readings: %+v", ref)
	}
	otherLoc, _ := base.Reading("highway", at)
	if ref.Humidity == otherLoc.Humidity && ref.Light == otherLoc.Light && ref.Temperature == otherLoc.Temperature {
		t.Fatalf("different locations produced identical fields: %+v", ref)
	}
	otherTime, _ := base.Reading("lobby", at.Add(time.Second))
	if ref.Humidity == otherTime.Humidity && ref.Moisture == otherTime.Moisture && ref.CO2 == otherTime.CO2 {
		t.Fatalf("one second apart produced identical noise: %+v", ref)
	}
}

func TestSimulator_Reading_AppliesLocationBias(t *testing.T) {
	t.Parallel()

	svc := NewSimulatorService(mustTable(t), 1337)
	at := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	// Average many instants so noise washes out; the highway bias is
	// +210 lux and +1 °C relative to the lobby, far above the noise floor.
	var lobbyLight, highwayLight, lobbyTemp, highwayTemp float64
	const n = 200
	for i := 0; i < n; i++ {
		ts := at.Add(time.Duration(i) * time.Second)
		lr, _ := svc.Reading("lobby", ts)
		hr, _ := svc.Reading("highway", ts)
		lobbyLight += lr.Light
		highwayLight += hr.Light
		lobbyTemp += lr.Temperature
		highwayTemp += hr.Temperature
	}
	if highwayLight/n <= lobbyLight/n {
		t.Fatalf("expected highway brighter than lobby: %.1f vs %.1f", highwayLight/n, lobbyLight/n)
	}
	if highwayTemp/n <= lobbyTemp/n {
		t.Fatalf("expected highway warmer than lobby: %.2f vs %.2f", highwayTemp/n, lobbyTemp/n)
	}
}

func TestSimulator_Reading_UnknownLocation(t *testing.T) {
	t.Parallel()

	svc := NewSimulatorService(mustTable(t), 1337)
	_, err := svc.Reading("rooftop", time.Now())
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig for unknown location, got %v", err)
	}
}

func TestSimulator_Reading_ZeroTimeMeansNow(t *testing.T) {
	t.Parallel()

	svc := NewSimulatorService(mustTable(t), 1337)
	before := time.Now().UTC().Add(-2 * time.Second)
	r, err := svc.Reading("lobby", time.Time{})
	if err != nil {
		t.Fatalf("Reading: %v", err)
	}
	after := time.Now().UTC().Add(2 * time.Second)
	if r.Timestamp.Before(before) || r.Timestamp.After(after) {
		t.Fatalf("zero at should stamp with now, got %v", r.Timestamp)
	}
	if r.Timestamp.Location() != time.UTC {
		t.Fatalf("timestamp not UTC: %v", r.Timestamp.Location())
	}
}

func TestDaylight_Profile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hour float64
		want func(float64) bool
	}{
		{"midnight is dark", 0, func(v float64) bool { return v == 0 }},
		{"before dawn is dark", 5.5, func(v float64) bool { return v == 0 }},
		{"noon is the peak", 12, func(v float64) bool { return v > 0.999 }},
		{"morning is climbing", 9, func(v float64) bool { return v > 0 && v < 1 }},
		{"late evening is dark", 22, func(v float64) bool { return v == 0 }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := daylight(tc.hour); !tc.want(got) {
				t.Fatalf("daylight(%.1f) = %.4f", tc.hour, got)
			}
		})
	}
}

func TestFractionalHour(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, time.June, 10, 13, 30, 36, 0, time.UTC)
	got := fractionalHour(at)
	want := 13.51 // 13h + 30m/60 + 36s/3600
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("fractionalHour = %.6f, want %.6f", got, want)
	}
}
