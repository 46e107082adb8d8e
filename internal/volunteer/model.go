package volunteer

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/foodbridge/backend/internal/geo"
	"github.com/foodbridge/backend/internal/shared"
)

// Volunteer is a field volunteer eligible to fulfill donation requests.
// Assigned holds donations offered but not yet confirmed, Accepted holds
// confirmed in-progress donations; a donation ID lives in at most one of the
// two, and in neither once completed.
type Volunteer struct {
	ID     string `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"not null;uniqueIndex" json:"user_id"`

	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Available bool    `gorm:"default:false;index" json:"available"`

	Assigned  shared.StringSlice  `gorm:"type:json" json:"assigned"`
	Accepted  shared.StringSlice  `gorm:"type:json" json:"accepted"`
	Completed CompletedDeliveries `gorm:"type:json" json:"completed"`

	// Version implements optimistic concurrency; Save refuses stale writes.
	Version int64 `gorm:"default:0" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Volunteer) Coordinate() geo.Coordinate {
	return geo.Coordinate{Lat: v.Lat, Lon: v.Lon}
}

// CompletedDelivery pairs a finished donation with its proof-of-delivery
// reference.
type CompletedDelivery struct {
	DonationID string `json:"donation_id"`
	ProofURL   string `json:"proof_url"`
}

type CompletedDeliveries []CompletedDelivery

func (c CompletedDeliveries) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "[]", nil
	}
	return json.Marshal(c)
}

func (c *CompletedDeliveries) Scan(value any) error {
	if value == nil {
		*c = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into CompletedDeliveries", value)
	}

	return json.Unmarshal(bytes, c)
}
