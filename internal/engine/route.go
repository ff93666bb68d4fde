package engine

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCatalog  = errors.New("catalog is empty")
	ErrBadEndpoints  = errors.New("route start/end must be non-empty and distinct")
	ErrTimesMismatch = errors.New("departure_times and arrival_times length mismatch")
)

// Stop — проміжна зупинка маршруту.
type Stop struct {
	City          string `json:"city"`
	CityLocalized string `json:"city_localized,omitempty"`
}

// Aliases — alternate spellings for the endpoints (other script, old names).
type Aliases struct {
	Start []string `json:"start,omitempty"`
	End   []string `json:"end,omitempty"`
}

// Route is one catalog record. Everything beyond Start/End is optional and
// must degrade to a placeholder when absent, never to an error.
type Route struct {
	Start          string   `json:"start"`
	End            string   `json:"end"`
	Aliases        *Aliases `json:"aliases,omitempty"`
	Stops          []Stop   `json:"stops,omitempty"`
	Price          *float64 `json:"price,omitempty"`
	Duration       string   `json:"duration,omitempty"`
	DepartureTimes []string `json:"departure_times,omitempty"`
	ArrivalTimes   []string `json:"arrival_times,omitempty"`
	PickupAddress  string   `json:"pickup_address,omitempty"`
}

// ValidateCatalog checks the invariants a catalog must hold before the
// process is allowed to serve. Optional fields are never validated here.
func ValidateCatalog(catalog []Route) error {
	if len(catalog) == 0 {
		return ErrEmptyCatalog
	}
	for i, r := range catalog {
		if r.Start == "" || r.End == "" || Normalize(r.Start) == Normalize(r.End) {
			return fmt.Errorf("route %d (%q -> %q): %w", i, r.Start, r.End, ErrBadEndpoints)
		}
		if len(r.DepartureTimes) > 0 && len(r.ArrivalTimes) > 0 &&
			len(r.DepartureTimes) != len(r.ArrivalTimes) {
			return fmt.Errorf("route %d (%q -> %q): %w", i, r.Start, r.End, ErrTimesMismatch)
		}
	}
	return nil
}
