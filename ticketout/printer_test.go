package ticketout

import (
	"errors"
	"io"
	"testing"

	"jewelpos/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type failingPrinter struct{ calls int }

func (p *failingPrinter) Print(models.TicketSnapshot) error {
	p.calls++
	return errors.New("printer jam")
}

type countingPrinter struct{ calls int }

func (p *countingPrinter) Print(models.TicketSnapshot) error {
	p.calls++
	return nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func snapshot() models.TicketSnapshot {
	return models.TicketSnapshot{
		DocNo:    "100245",
		Customer: models.CashCustomer(),
		Subtotal: decimal.NewFromInt(100),
		Vat:      decimal.NewFromInt(20),
		Total:    decimal.NewFromInt(120),
	}
}

func TestFanoutSurvivesFailingPrinter(t *testing.T) {
	failing := &failingPrinter{}
	counting := &countingPrinter{}
	fanout := NewFanout(quietLogger(), failing, counting)

	if err := fanout.Print(snapshot()); err != nil {
		t.Fatalf("fanout must absorb printer failures, got %v", err)
	}
	if failing.calls != 1 || counting.calls != 1 {
		t.Fatalf("every printer must be attempted, got %d and %d", failing.calls, counting.calls)
	}
}

func TestEmailSenderSkipsWithoutOptIn(t *testing.T) {
	sender := NewEmailSender("smtp.example.com", 587, "pos@example.com", "secret")
	if !sender.Enabled() {
		t.Fatalf("configured sender must report enabled")
	}

	// cash sentinel never opted into email invoices; Print is a no-op
	if err := sender.Print(snapshot()); err != nil {
		t.Fatalf("expected opt-out skip, got %v", err)
	}

	unconfigured := NewEmailSender("", 0, "", "")
	if unconfigured.Enabled() {
		t.Fatalf("unconfigured sender must report disabled")
	}
}
