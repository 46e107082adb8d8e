package dto

type CreateDonationRequest struct {
	FoodName    string  `json:"food_name" example:"Cooked rice"`
	Quantity    int     `json:"quantity" example:"25"`
	ExpiryHours float64 `json:"expiry_hours" example:"6"`
	Address     string  `json:"address" example:"12 MG Road"`
	Lat         float64 `json:"lat" example:"12.9716"`
	Lon         float64 `json:"lon" example:"77.5946"`
}

type CompleteDonationRequest struct {
	ProofURL string `json:"proof_url" example:"https://cdn.example.com/proof/don_abc.jpg"`
}

type DonationResponse struct {
	ID         string  `json:"id" example:"don_abc123"`
	DonorID    string  `json:"donor_id" example:"usr_xyz789"`
	FoodName   string  `json:"food_name" example:"Cooked rice"`
	Quantity   int     `json:"quantity" example:"25"`
	ExpiresAt  string  `json:"expires_at" example:"2024-01-15T18:30:00Z"`
	Address    string  `json:"address" example:"12 MG Road"`
	Lat        float64 `json:"lat" example:"12.9716"`
	Lon        float64 `json:"lon" example:"77.5946"`
	Status     string  `json:"status" example:"assigned" enums:"pending,assigned,accepted,completed"`
	AssignedTo *string `json:"assigned_to,omitempty" example:"vol_def456"`
	ProofURL   string  `json:"proof_url,omitempty" example:"https://cdn.example.com/proof/don_abc.jpg"`
	CreatedAt  string  `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

type DonationListResponse struct {
	Donations []DonationResponse `json:"donations"`
}

type AssignDonationResponse struct {
	Assigned bool             `json:"assigned" example:"true"`
	Donation DonationResponse `json:"donation"`
}
