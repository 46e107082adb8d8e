// Package matching selects the nearest available volunteer for a donation.
// Selection is a greedy per-request nearest-neighbor scan; the fleet is small
// enough that a spatial index would not pay for itself, and the Directory
// contract leaves room to add one without changing callers.
package matching

import (
	"context"

	"github.com/foodbridge/backend/internal/geo"
	"github.com/foodbridge/backend/internal/volunteer"
)

// Directory is the read side of the volunteer set. ListAvailable must
// enumerate in a stable order; that order breaks distance ties.
type Directory interface {
	ListAvailable(ctx context.Context, excluded []string) ([]*volunteer.Volunteer, error)
}

type Engine struct {
	directory Directory
}

func NewEngine(directory Directory) *Engine {
	return &Engine{directory: directory}
}

// SelectVolunteer returns the available volunteer nearest to origin whose ID
// is not in excluded. Ties go to the volunteer enumerated first. A nil
// volunteer with a nil error means no candidate exists, which is a normal
// outcome, not a failure.
func (e *Engine) SelectVolunteer(ctx context.Context, origin geo.Coordinate, excluded []string) (*volunteer.Volunteer, error) {
	candidates, err := e.directory.ListAvailable(ctx, excluded)
	if err != nil {
		return nil, err
	}

	var nearest *volunteer.Volunteer
	var minDistance float64

	for _, candidate := range candidates {
		d := geo.DistanceMeters(origin, candidate.Coordinate())
		if nearest == nil || d < minDistance {
			nearest = candidate
			minDistance = d
		}
	}

	return nearest, nil
}
