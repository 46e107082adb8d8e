package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/foodbridge/backend/internal/geo"
	"github.com/foodbridge/backend/internal/volunteer"
)

type fakeDirectory struct {
	volunteers []*volunteer.Volunteer
	err        error
}

func (f *fakeDirectory) ListAvailable(ctx context.Context, excluded []string) ([]*volunteer.Volunteer, error) {
	if f.err != nil {
		return nil, f.err
	}
	skip := make(map[string]bool, len(excluded))
	for _, id := range excluded {
		skip[id] = true
	}
	var out []*volunteer.Volunteer
	for _, v := range f.volunteers {
		if v.Available && !skip[v.ID] {
			out = append(out, v)
		}
	}
	return out, nil
}

func vol(id string, lat, lon float64, available bool) *volunteer.Volunteer {
	return &volunteer.Volunteer{ID: id, Lat: lat, Lon: lon, Available: available}
}

func TestEngine_SelectVolunteer(t *testing.T) {
	origin := geo.Coordinate{Lat: 12.9716, Lon: 77.5946}

	tests := []struct {
		name       string
		volunteers []*volunteer.Volunteer
		excluded   []string
		wantID     string
		wantNone   bool
	}{
		{
			name: "picks the nearest",
			volunteers: []*volunteer.Volunteer{
				vol("vol_far", 13.1, 77.9, true),
				vol("vol_near", 12.98, 77.60, true),
				vol("vol_mid", 13.0, 77.7, true),
			},
			wantID: "vol_near",
		},
		{
			name: "tie broken by enumeration order",
			volunteers: []*volunteer.Volunteer{
				vol("vol_a", 13.0, 77.5946, true),
				vol("vol_b", 13.0, 77.5946, true),
			},
			wantID: "vol_a",
		},
		{
			name: "skips unavailable",
			volunteers: []*volunteer.Volunteer{
				vol("vol_near", 12.98, 77.60, false),
				vol("vol_far", 13.1, 77.9, true),
			},
			wantID: "vol_far",
		},
		{
			name: "excluded nearest is never returned",
			volunteers: []*volunteer.Volunteer{
				vol("vol_near", 12.98, 77.60, true),
				vol("vol_far", 13.1, 77.9, true),
			},
			excluded: []string{"vol_near"},
			wantID:   "vol_far",
		},
		{
			name: "everyone excluded",
			volunteers: []*volunteer.Volunteer{
				vol("vol_a", 12.98, 77.60, true),
			},
			excluded: []string{"vol_a"},
			wantNone: true,
		},
		{
			name:     "no volunteers at all",
			wantNone: true,
		},
		{
			name: "all unavailable",
			volunteers: []*volunteer.Volunteer{
				vol("vol_a", 12.98, 77.60, false),
				vol("vol_b", 13.0, 77.7, false),
			},
			wantNone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(&fakeDirectory{volunteers: tt.volunteers})

			got, err := engine.SelectVolunteer(context.Background(), origin, tt.excluded)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.wantNone {
				if got != nil {
					t.Fatalf("expected no candidate, got %s", got.ID)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a candidate, got none")
			}
			if got.ID != tt.wantID {
				t.Errorf("SelectVolunteer() = %s, want %s", got.ID, tt.wantID)
			}
		})
	}
}

func TestEngine_SelectVolunteer_DirectoryError(t *testing.T) {
	dirErr := errors.New("connection lost")
	engine := NewEngine(&fakeDirectory{err: dirErr})

	_, err := engine.SelectVolunteer(context.Background(), geo.Coordinate{}, nil)
	if !errors.Is(err, dirErr) {
		t.Fatalf("expected directory error to propagate, got %v", err)
	}
}
