package service

import (
	"fmt"

	"github.com/bhoomi2310/GreenPulse/internal/models"
)

// LocationTable is the immutable site registry shared by all services.
// Lookups are safe for concurrent use because nothing mutates the table
// after construction.
type LocationTable struct {
	byID map[string]models.Location
	list []models.Location
}

// NewLocationTable builds the registry from the configured sites.
func NewLocationTable(locations []models.Location) (*LocationTable, error) {
	if len(locations) == 0 {
		return nil, fmt.Errorf("%w: no locations configured", ErrConfig)
	}
	t := &LocationTable{
		byID: make(map[string]models.Location, len(locations)),
		list: make([]models.Location, 0, len(locations)),
	}
	for _, loc := range locations {
		if loc.ID == "" {
			return nil, fmt.Errorf("%w: location with empty id", ErrConfig)
		}
		if _, dup := t.byID[loc.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate location id %q", ErrConfig, loc.ID)
		}
		t.byID[loc.ID] = loc
		t.list = append(t.list, loc)
	}
	return t, nil
}

// Get resolves a location id.
func (t *LocationTable) Get(id string) (models.Location, error) {
	loc, ok := t.byID[id]
	if !ok {
		return models.Location{}, fmt.Errorf("%w: unknown location %q", ErrConfig, id)
	}
	return loc, nil
}

// List returns the sites in configuration order.
func (t *LocationTable) List() []models.Location {
	out := make([]models.Location, len(t.list))
	copy(out, t.list)
	return out
}
