package dto

type ClusterResponse struct {
	CenterLat   float64  `json:"center_lat" example:"12.9716"`
	CenterLon   float64  `json:"center_lon" example:"77.5946"`
	DonationIDs []string `json:"donation_ids" example:"don_abc123,don_def456"`
}

type ClusterListResponse struct {
	Clusters    []ClusterResponse `json:"clusters"`
	GeneratedAt string            `json:"generated_at,omitempty" example:"2024-01-15T10:30:00Z"`
}
