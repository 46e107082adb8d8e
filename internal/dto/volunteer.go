package dto

type UpdateLocationRequest struct {
	Lat float64 `json:"lat" example:"12.9716"`
	Lon float64 `json:"lon" example:"77.5946"`
}

type UpdateAvailabilityRequest struct {
	Available bool `json:"available" example:"true"`
}

type VolunteerResponse struct {
	ID        string  `json:"id" example:"vol_def456"`
	UserID    string  `json:"user_id" example:"usr_xyz789"`
	Lat       float64 `json:"lat" example:"12.9716"`
	Lon       float64 `json:"lon" example:"77.5946"`
	Available bool    `json:"available" example:"true"`
	Assigned  int     `json:"assigned" example:"1"`
	Accepted  int     `json:"accepted" example:"2"`
	Completed int     `json:"completed" example:"14"`
}

type CompletedDeliveryResponse struct {
	DonationID string `json:"donation_id" example:"don_abc123"`
	ProofURL   string `json:"proof_url" example:"https://cdn.example.com/proof/don_abc.jpg"`
}

type CompletedListResponse struct {
	Deliveries []CompletedDeliveryResponse `json:"deliveries"`
}
