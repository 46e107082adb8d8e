package cluster

import (
	"time"

	"github.com/foodbridge/backend/internal/geo"
)

// Record is one geographic grouping of unmatched donations. Records are
// rebuilt wholesale on every job run; there is no identity across runs.
type Record struct {
	Center      geo.Coordinate `json:"center"`
	DonationIDs []string       `json:"donation_ids"`
}

// Snapshot is the output of a single clustering run.
type Snapshot struct {
	GeneratedAt time.Time `json:"generated_at"`
	Clusters    []Record  `json:"clusters"`
}
