package donation

import (
	"time"

	"github.com/foodbridge/backend/internal/geo"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAssigned  Status = "assigned"
	StatusAccepted  Status = "accepted"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// Donation is one unit of matchable work. AssignedTo is non-nil exactly when
// the status is assigned, accepted or completed.
type Donation struct {
	ID      string `gorm:"primaryKey" json:"id"`
	DonorID string `gorm:"not null;index" json:"donor_id"`

	FoodName  string    `gorm:"not null" json:"food_name"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	ExpiresAt time.Time `json:"expires_at"`
	Address   string    `json:"address"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`

	Status     Status  `gorm:"default:'pending';index" json:"status"`
	AssignedTo *string `gorm:"index" json:"assigned_to,omitempty"`
	ProofURL   string  `json:"proof_url,omitempty"`

	// Version implements optimistic concurrency; Save refuses stale writes.
	Version int64 `gorm:"default:0" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Donation) Coordinate() geo.Coordinate {
	return geo.Coordinate{Lat: d.Lat, Lon: d.Lon}
}
