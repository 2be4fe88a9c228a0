package pos

import (
	"testing"

	"jewelpos/models"

	"github.com/shopspring/decimal"
)

func jobLine(id string, total string) models.JobLine {
	amount := decimal.RequireFromString(total)
	return models.JobLine{ID: id, Quantity: 1, UnitPrice: amount, Total: amount}
}

func TestComputeVatInclusive(t *testing.T) {
	rate := decimal.NewFromInt(20)

	tests := []struct {
		name     string
		total    string
		wants    bool
		subtotal string
		vat      string
	}{
		{"vat invoice back-derives", "120", true, "100.0000", "20.0000"},
		{"no vat invoice", "120", false, "120", "0"},
		{"zero total", "0", true, "0.0000", "0.0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, vat := ComputeVat(decimal.RequireFromString(tt.total), rate, tt.wants)
			if subtotal.String() != decimal.RequireFromString(tt.subtotal).String() {
				t.Fatalf("subtotal: expected %s, got %s", tt.subtotal, subtotal)
			}
			if vat.String() != decimal.RequireFromString(tt.vat).String() {
				t.Fatalf("vat: expected %s, got %s", tt.vat, vat)
			}
			if !subtotal.Add(vat).Equal(decimal.RequireFromString(tt.total)) {
				t.Fatalf("subtotal + vat must equal total")
			}
		})
	}
}

func TestTicketStartsOnCashSentinel(t *testing.T) {
	ticket := NewTicket("100245")
	c := ticket.Customer()
	if c.ID != "cash" || c.Name != "CASH" || c.Type != models.CustomerCash {
		t.Fatalf("expected cash sentinel, got %+v", c)
	}
	if ticket.WantsVatInvoice() {
		t.Fatalf("cash sentinel must not want a vat invoice")
	}
}

func TestTicketCustomerSwitchKeepsLines(t *testing.T) {
	ticket := NewTicket("100245")
	ticket.AddLine(jobLine("j1", "40"))

	ticket.SetCustomer(models.Customer{ID: "c1", Name: "Ameen Jewellers", Type: models.CustomerRegistered, IsActive: true})
	if !ticket.WantsVatInvoice() {
		t.Fatalf("registered customer must auto-request a vat invoice")
	}
	if len(ticket.Lines()) != 1 {
		t.Fatalf("expected lines kept on customer switch")
	}
}

func TestTicketTotalRecomputed(t *testing.T) {
	ticket := NewTicket("100245")
	ticket.AddLine(jobLine("j1", "12.50"))
	ticket.AddLine(jobLine("j2", "7.25"))

	if got := ticket.Total().StringFixed(2); got != "19.75" {
		t.Fatalf("expected 19.75, got %s", got)
	}

	ticket.RemoveLine("j1")
	if got := ticket.Total().StringFixed(2); got != "7.25" {
		t.Fatalf("expected 7.25 after remove, got %s", got)
	}

	// removing an unknown id changes nothing
	ticket.RemoveLine("j999")
	if len(ticket.Lines()) != 1 {
		t.Fatalf("expected unknown remove to be a no-op")
	}
}

func TestTicketFinalizeResets(t *testing.T) {
	ticket := NewTicket("100245")
	ticket.SetCustomer(models.Customer{ID: "c1", Name: "Ameen Jewellers", Type: models.CustomerRegistered, IsActive: true})
	ticket.AddLine(jobLine("j1", "120"))

	snapshot, err := ticket.Finalize(decimal.NewFromInt(20))
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if snapshot.Subtotal.String() != "100" && snapshot.Subtotal.String() != "100.0000" {
		t.Fatalf("expected subtotal 100, got %s", snapshot.Subtotal)
	}
	if !snapshot.Vat.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected vat 20, got %s", snapshot.Vat)
	}
	if snapshot.Customer.ID != "c1" {
		t.Fatalf("snapshot must carry the finalized customer")
	}

	// ticket is back on defaults
	if ticket.Customer().ID != "cash" {
		t.Fatalf("expected customer reset to cash, got %+v", ticket.Customer())
	}
	if len(ticket.Lines()) != 0 {
		t.Fatalf("expected lines cleared after finalize")
	}
	if ticket.WantsVatInvoice() {
		t.Fatalf("expected vat invoice flag cleared after finalize")
	}
}

func TestTicketFinalizeEmptyKeepsState(t *testing.T) {
	ticket := NewTicket("100245")
	ticket.SetCustomer(models.Customer{ID: "c2", Name: "Golden Touch", Type: models.CustomerInvoice, IsActive: true})

	_, err := ticket.Finalize(decimal.NewFromInt(20))
	if err != ErrEmptyTicket {
		t.Fatalf("expected ErrEmptyTicket, got %v", err)
	}
	if ticket.Customer().ID != "c2" {
		t.Fatalf("failed finalize must not reset the ticket")
	}
}

func TestTicketDiscard(t *testing.T) {
	ticket := NewTicket("100245")
	ticket.AddLine(jobLine("j1", "10"))
	ticket.SetCustomer(models.Customer{ID: "c1", Name: "Ameen Jewellers", Type: models.CustomerRegistered, IsActive: true})

	ticket.Discard()
	if len(ticket.Lines()) != 0 || ticket.Customer().ID != "cash" {
		t.Fatalf("expected discard to clear lines and customer")
	}
}
