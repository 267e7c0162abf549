package models

// LocationCategory groups installation sites by their surroundings.
type LocationCategory string

const (
	CategoryBuilding LocationCategory = "building"
	CategoryHighway  LocationCategory = "highway"
	CategoryCampus   LocationCategory = "campus"
)

// Location is one monitored moss wall site. The location table is static
// configuration, loaded once at startup and never mutated afterwards. The
// bias fields shift the simulated baselines so that, for example, a highway
// wall runs hotter, brighter and drier than a shaded lobby.
type Location struct {
	ID           string           `json:"id" mapstructure:"id"`
	Name         string           `json:"name" mapstructure:"name"`
	Category     LocationCategory `json:"category" mapstructure:"category"`
	HumidityBias float64          `json:"humidity_bias" mapstructure:"humidity_bias"` // percentage points
	LightBias    float64          `json:"light_bias" mapstructure:"light_bias"`       // lux
	TempBias     float64          `json:"temp_bias" mapstructure:"temp_bias"`         // °C
}
