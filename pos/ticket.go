package pos

import (
	"time"

	"jewelpos/models"

	"github.com/shopspring/decimal"
)

// Ticket is the customer-scoped container of job lines for the current
// order. It starts on the walk-in cash sentinel; switching customer keeps the
// lines already added.
type Ticket struct {
	DocNo   string `json:"docNo"`
	DueDate string `json:"dueDate"`
	DueTime string `json:"dueTime"`

	customer        models.Customer
	wantsVatInvoice bool
	lines           []models.JobLine
}

func NewTicket(docNo string) *Ticket {
	t := &Ticket{DocNo: docNo}
	t.resetDefaults()
	return t
}

func (t *Ticket) resetDefaults() {
	t.customer = models.CashCustomer()
	t.wantsVatInvoice = false
	t.lines = nil
	t.DueDate = time.Now().Format("2006-01-02")
	t.DueTime = "12:00"
}

func (t *Ticket) Customer() models.Customer { return t.customer }
func (t *Ticket) WantsVatInvoice() bool     { return t.wantsVatInvoice }

// SetCustomer switches the ticket's customer. Registered and Invoice
// customers auto-request a VAT invoice; for Cash customers the flag falls
// back to manual toggling.
func (t *Ticket) SetCustomer(c models.Customer) {
	t.customer = c
	t.wantsVatInvoice = c.WantsVatInvoiceByDefault()
}

func (t *Ticket) SetWantsVatInvoice(wants bool) {
	t.wantsVatInvoice = wants
}

func (t *Ticket) Lines() []models.JobLine {
	out := make([]models.JobLine, len(t.lines))
	copy(out, t.lines)
	return out
}

func (t *Ticket) AddLine(line models.JobLine) {
	t.lines = append(t.lines, line)
}

func (t *Ticket) AddLines(lines []models.JobLine) {
	t.lines = append(t.lines, lines...)
}

// RemoveLine deletes a line by id. Unknown ids are a no-op; a delete racing a
// finalize in a single-threaded session has nothing to conflict with.
func (t *Ticket) RemoveLine(id string) {
	for i, line := range t.lines {
		if line.ID == id {
			t.lines = append(t.lines[:i], t.lines[i+1:]...)
			return
		}
	}
}

// Total sums the line totals. Recomputed on every read, never cached.
func (t *Ticket) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range t.lines {
		total = total.Add(line.Total)
	}
	return total
}

// ComputeVat back-derives the VAT component from a VAT-inclusive total.
// ratePercent is a percent figure, e.g. 20 for 20%. Without a VAT invoice the
// whole total is the subtotal and VAT is zero.
func ComputeVat(total decimal.Decimal, ratePercent decimal.Decimal, wantsVatInvoice bool) (subtotal, vat decimal.Decimal) {
	if !wantsVatInvoice {
		return total, decimal.Zero
	}
	// VAT-inclusive: (total / (100 + rate)) * rate
	vat = total.DivRound(ratePercent.Add(decimal.NewFromInt(100)), 4).Mul(ratePercent)
	subtotal = total.Sub(vat)
	return subtotal, vat
}

// Snapshot renders the ticket's displayable fields without changing state.
func (t *Ticket) Snapshot(vatRate decimal.Decimal) models.TicketSnapshot {
	total := t.Total()
	subtotal, vat := ComputeVat(total, vatRate, t.wantsVatInvoice)
	return models.TicketSnapshot{
		DocNo:           t.DocNo,
		Customer:        t.customer,
		Lines:           t.Lines(),
		Subtotal:        subtotal,
		Vat:             vat,
		VatRate:         vatRate,
		Total:           total,
		DueDate:         t.DueDate,
		DueTime:         t.DueTime,
		WantsVatInvoice: t.wantsVatInvoice,
		FinalizedAt:     time.Now(),
	}
}

// Finalize commits the ticket: it requires at least one line, returns the
// snapshot for printing, then clears the ticket back to the cash sentinel.
// On ErrEmptyTicket nothing is reset.
func (t *Ticket) Finalize(vatRate decimal.Decimal) (models.TicketSnapshot, error) {
	if len(t.lines) == 0 {
		return models.TicketSnapshot{}, ErrEmptyTicket
	}
	snapshot := t.Snapshot(vatRate)
	t.resetDefaults()
	return snapshot, nil
}

// Discard clears the ticket without requiring any lines.
func (t *Ticket) Discard() {
	t.resetDefaults()
}
