package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/bhoomi2310/GreenPulse/internal/models"
)

// Config is the full static configuration of a GreenPulse process.
type Config struct {
	Server     ServerConfig      `mapstructure:"server"`
	Log        LogConfig         `mapstructure:"log"`
	Simulation SimulationConfig  `mapstructure:"simulation"`
	Rules      RulesConfig       `mapstructure:"rules"`
	Model      ModelConfig       `mapstructure:"model"`
	Locations  []models.Location `mapstructure:"locations"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SimulationConfig carries the base seed and the event knobs threaded into
// the simulator and the history generator.
type SimulationConfig struct {
	Seed              int64         `mapstructure:"seed"`
	WateringPerDay    int           `mapstructure:"watering_per_day"`
	MaintenancePerDay int           `mapstructure:"maintenance_per_day"`
	WateringHalfLife  time.Duration `mapstructure:"watering_half_life"`
	MaintenanceWindow time.Duration `mapstructure:"maintenance_window"`
}

// RulesConfig holds the classification thresholds. The same thresholds drive
// the rule fallback and the labels of the synthetic training data.
type RulesConfig struct {
	LowMoisture float64 `mapstructure:"low_moisture"`
	HighLight   float64 `mapstructure:"high_light"`
	HumidityMin float64 `mapstructure:"humidity_min"`
	HumidityMax float64 `mapstructure:"humidity_max"`
}

// ModelConfig holds the classifier artifact location and training defaults.
type ModelConfig struct {
	Path            string `mapstructure:"path"`
	TrainingSamples int    `mapstructure:"training_samples"`
	Seed            int64  `mapstructure:"seed"`
}

// Load reads config.yml from the given directory, applies defaults and env
// overrides, and validates the result. A missing config file is not an
// error: the built-in defaults describe a complete demo deployment.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Locations) == 0 {
		cfg.Locations = DefaultLocations()
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")

	v.SetDefault("simulation.seed", 1337)
	v.SetDefault("simulation.watering_per_day", 2)
	v.SetDefault("simulation.maintenance_per_day", 1)
	v.SetDefault("simulation.watering_half_life", "90m")
	v.SetDefault("simulation.maintenance_window", "2h")

	v.SetDefault("rules.low_moisture", 30)
	v.SetDefault("rules.high_light", 1000)
	v.SetDefault("rules.humidity_min", 40)
	v.SetDefault("rules.humidity_max", 80)

	v.SetDefault("model.path", "moss_health.db")
	v.SetDefault("model.training_samples", 500)
	v.SetDefault("model.seed", 42)
}

// DefaultLocations is the demo site table used when the config file does not
// define its own.
func DefaultLocations() []models.Location {
	return []models.Location{
		{ID: "building-a-lobby", Name: "Building A - Lobby", Category: models.CategoryBuilding, HumidityBias: 0, LightBias: -60, TempBias: 1.0},
		{ID: "building-b-facade", Name: "Building B - Facade", Category: models.CategoryBuilding, HumidityBias: 2, LightBias: 60, TempBias: 0.5},
		{ID: "highway-wall-1", Name: "Highway Wall - Section 1", Category: models.CategoryHighway, HumidityBias: -2, LightBias: 150, TempBias: 2.0},
		{ID: "campus-library", Name: "University Campus - Library", Category: models.CategoryCampus, HumidityBias: 1, LightBias: -120, TempBias: -0.5},
		{ID: "corporate-hq", Name: "Corporate HQ - Conference Room", Category: models.CategoryBuilding, HumidityBias: -1, LightBias: -90, TempBias: 1.0},
	}
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port must not be empty")
	}
	if c.Rules.LowMoisture < models.MoistureRange.Min || c.Rules.LowMoisture > models.MoistureRange.Max {
		return fmt.Errorf("rules.low_moisture %.1f outside %.0f..%.0f", c.Rules.LowMoisture, models.MoistureRange.Min, models.MoistureRange.Max)
	}
	if c.Rules.HighLight <= 0 {
		return fmt.Errorf("rules.high_light must be positive, got %.1f", c.Rules.HighLight)
	}
	if c.Rules.HumidityMin >= c.Rules.HumidityMax {
		return fmt.Errorf("rules humidity band is empty: min %.1f >= max %.1f", c.Rules.HumidityMin, c.Rules.HumidityMax)
	}
	if c.Simulation.WateringPerDay < 0 || c.Simulation.MaintenancePerDay < 0 {
		return errors.New("simulation event counts must not be negative")
	}
	if c.Simulation.WateringHalfLife <= 0 || c.Simulation.MaintenanceWindow <= 0 {
		return errors.New("simulation event durations must be positive")
	}
	if c.Model.Path == "" {
		return errors.New("model.path must not be empty")
	}
	if c.Model.TrainingSamples <= 0 {
		return fmt.Errorf("model.training_samples must be positive, got %d", c.Model.TrainingSamples)
	}

	seen := make(map[string]bool, len(c.Locations))
	for _, loc := range c.Locations {
		if loc.ID == "" || loc.Name == "" {
			return errors.New("locations entries need both id and name")
		}
		if seen[loc.ID] {
			return fmt.Errorf("duplicate location id %q", loc.ID)
		}
		seen[loc.ID] = true
		switch loc.Category {
		case models.CategoryBuilding, models.CategoryHighway, models.CategoryCampus:
		default:
			return fmt.Errorf("location %q has unknown category %q", loc.ID, loc.Category)
		}
	}
	return nil
}
