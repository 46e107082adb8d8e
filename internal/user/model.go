package user

import (
	"time"

	"github.com/foodbridge/backend/internal/shared"
)

type User struct {
	ID        string      `gorm:"primaryKey" json:"id"`
	Email     string      `gorm:"index" json:"email,omitempty"`
	Name      string      `json:"name,omitempty"`
	Role      shared.Role `gorm:"default:'donor'" json:"role"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
