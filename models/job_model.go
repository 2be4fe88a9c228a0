package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobLine is one priced unit of work on a ticket. Lines are immutable once
// built; the only lifecycle operation after creation is deletion.
type JobLine struct {
	ID          string          `json:"id"`
	Item        string          `json:"item"`
	Metal       string          `json:"metal"`
	Description string          `json:"description"`
	Quantity    int             `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
	Image       *string         `json:"image,omitempty"`
	Comment     string          `json:"comment,omitempty"`
}

// TicketSnapshot is the finalize output handed to ticket output collaborators
// (print log, invoice email). The POS core's obligation ends here.
type TicketSnapshot struct {
	DocNo           string          `json:"docNo"`
	Customer        Customer        `json:"customer"`
	Lines           []JobLine       `json:"lines"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Vat             decimal.Decimal `json:"vat"`
	VatRate         decimal.Decimal `json:"vatRate"`
	Total           decimal.Decimal `json:"total"`
	DueDate         string          `json:"dueDate"`
	DueTime         string          `json:"dueTime"`
	WantsVatInvoice bool            `json:"wantsVatInvoice"`
	FinalizedAt     time.Time       `json:"finalizedAt"`
}
