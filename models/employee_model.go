package models

import "time"

type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name" validate:"required"`
	EmployeeID string    `json:"employeeId" validate:"required"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}
