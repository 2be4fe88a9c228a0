package models

import "time"

// Customer types. Registered and Invoice customers always get a VAT invoice;
// Cash customers toggle it manually per ticket.
const (
	CustomerRegistered = "Registered"
	CustomerInvoice    = "Invoice"
	CustomerCash       = "Cash"
)

type Customer struct {
	ID                 string    `json:"id"`
	Type               string    `json:"type" validate:"required"`
	Name               string    `json:"name" validate:"required"`
	Company            string    `json:"company"`
	Contact            string    `json:"contact"`
	Email              string    `json:"email"`
	VatID              string    `json:"vatId"`
	SendInvoiceByEmail bool      `json:"sendInvoiceByEmail"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
}

// CashCustomer is the walk-in sentinel a ticket starts with and falls back to
// after finalize.
func CashCustomer() Customer {
	return Customer{ID: "cash", Name: "CASH", Type: CustomerCash, IsActive: true}
}

// WantsVatInvoiceByDefault reports whether selecting this customer should
// auto-enable the VAT invoice flag on the ticket.
func (c Customer) WantsVatInvoiceByDefault() bool {
	return c.Type == CustomerRegistered || c.Type == CustomerInvoice
}
