package dto

type MeResponse struct {
	ID    string `json:"id" example:"usr_abc123"`
	Email string `json:"email" example:"jordan@example.com"`
	Name  string `json:"name" example:"Jordan Lee"`
	Role  string `json:"role" example:"donor" enums:"donor,volunteer"`
}
