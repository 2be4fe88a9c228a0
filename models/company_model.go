package models

import "time"

// Company is the workshop's own identity shown on ticket headers.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Tagline   string    `json:"tagline"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	VatID     string    `json:"vatId"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
