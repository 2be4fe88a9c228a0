package pos

import (
	"testing"

	"jewelpos/config"
	"jewelpos/masterdata"

	"github.com/shopspring/decimal"
)

func newTestSession(t *testing.T) (*Session, *masterdata.Directory) {
	t.Helper()
	dir := seededDirectory(t)
	builder := NewBuilder(config.JobLinePolicySingle)
	return NewSession("sess_1", "100245", dir, builder), dir
}

func walkCascade(t *testing.T, s *Session) {
	t.Helper()
	if err := s.SelectItem("i1"); err != nil {
		t.Fatalf("SelectItem: %v", err)
	}
	if err := s.SelectMetal("m1"); err != nil {
		t.Fatalf("SelectMetal: %v", err)
	}
	if err := s.ToggleMetalProcess("mp1"); err != nil {
		t.Fatalf("ToggleMetalProcess: %v", err)
	}
	if err := s.ToggleProcess("Hand Polish"); err != nil {
		t.Fatalf("ToggleProcess: %v", err)
	}
	if err := s.ToggleProcessType("Light"); err != nil {
		t.Fatalf("ToggleProcessType: %v", err)
	}
}

func TestSessionRejectsOptionsOutsideTheSet(t *testing.T) {
	s, _ := newTestSession(t)

	if err := s.SelectItem("i999"); err != masterdata.ErrRecordMissing {
		t.Fatalf("expected ErrRecordMissing for unknown item, got %v", err)
	}
	if err := s.SelectItem("i1"); err != nil {
		t.Fatalf("SelectItem: %v", err)
	}
	// Silver 925 exists but is not compatible with Ring
	if err := s.SelectMetal("m3"); err != masterdata.ErrRecordMissing {
		t.Fatalf("expected ErrRecordMissing for incompatible metal, got %v", err)
	}
	if err := s.SelectMetal("m1"); err != nil {
		t.Fatalf("SelectMetal: %v", err)
	}
	// Engraving is not offered for Platinum
	if err := s.ToggleMetalProcess("mp3"); err != masterdata.ErrRecordMissing {
		t.Fatalf("expected ErrRecordMissing for incompatible metal process, got %v", err)
	}
	if err := s.ToggleMetalProcess("mp1"); err != nil {
		t.Fatalf("ToggleMetalProcess: %v", err)
	}
	if err := s.ToggleProcess("Laser"); err != masterdata.ErrRecordMissing {
		t.Fatalf("expected ErrRecordMissing for process outside the option set, got %v", err)
	}
}

func TestSessionAddJobAppendsAndResets(t *testing.T) {
	s, _ := newTestSession(t)
	walkCascade(t, s)

	s.SetJobEntry(2, decimal.NewFromInt(50), "rush order", nil)
	lines, err := s.AddJob()
	if err != nil {
		t.Fatalf("AddJob: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 job line, got %d", len(lines))
	}
	if got := lines[0].Total.StringFixed(2); got != "100.00" {
		t.Fatalf("expected total 100.00, got %s", got)
	}

	// cascade and entry fields reset for the next job, ticket keeps the line
	if s.Selection.Item() != nil {
		t.Fatalf("expected selection reset after committed job")
	}
	if s.Quantity != 1 || !s.UnitPrice.IsZero() || s.Comment != "" {
		t.Fatalf("expected job entry reset, got qty=%d price=%s comment=%q", s.Quantity, s.UnitPrice, s.Comment)
	}
	if len(s.Ticket.Lines()) != 1 {
		t.Fatalf("expected ticket to keep the committed line")
	}
}

func TestSessionAddJobFailureChangesNothing(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.SelectItem("i1"); err != nil {
		t.Fatalf("SelectItem: %v", err)
	}

	if _, err := s.AddJob(); err == nil {
		t.Fatalf("expected incomplete-selection failure")
	}
	if s.Selection.Item() == nil {
		t.Fatalf("failed add must not reset the selection")
	}
	if len(s.Ticket.Lines()) != 0 {
		t.Fatalf("failed add must not touch the ticket")
	}
}

func TestSessionFinalizeFullOrder(t *testing.T) {
	s, _ := newTestSession(t)
	walkCascade(t, s)
	s.SetJobEntry(2, decimal.NewFromInt(60), "", nil)
	if _, err := s.AddJob(); err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	if err := s.SetCustomer("c1"); err != nil {
		t.Fatalf("SetCustomer: %v", err)
	}
	if !s.Ticket.WantsVatInvoice() {
		t.Fatalf("registered customer must flip the vat invoice flag")
	}

	snapshot, err := s.Finalize()
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if !snapshot.Total.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("expected total 120, got %s", snapshot.Total)
	}
	if !snapshot.Vat.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected vat 20 from the seeded rate, got %s", snapshot.Vat)
	}
	if !snapshot.Subtotal.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected subtotal 100, got %s", snapshot.Subtotal)
	}

	if s.Ticket.Customer().ID != "cash" || len(s.Ticket.Lines()) != 0 {
		t.Fatalf("expected session cleared for the next order")
	}
}

func TestSessionFinalizeEmptyTicket(t *testing.T) {
	s, _ := newTestSession(t)
	if _, err := s.Finalize(); err != ErrEmptyTicket {
		t.Fatalf("expected ErrEmptyTicket, got %v", err)
	}
}

func TestSessionCashCustomer(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetCashCustomer("Walk In", "0770000000")

	c := s.Ticket.Customer()
	if c.ID != "cash" || c.Name != "Walk In" || c.Contact != "0770000000" {
		t.Fatalf("unexpected ad-hoc cash customer: %+v", c)
	}
	if s.Ticket.WantsVatInvoice() {
		t.Fatalf("cash customers must not auto-request a vat invoice")
	}
}

func TestSessionStoreSequentialDocNumbers(t *testing.T) {
	dir := seededDirectory(t)
	store := NewSessionStore(dir, NewBuilder(config.JobLinePolicySingle), 100245)

	first := store.Open()
	second := store.Open()
	if first.Ticket.DocNo != "100245" || second.Ticket.DocNo != "100246" {
		t.Fatalf("expected sequential doc numbers, got %s and %s", first.Ticket.DocNo, second.Ticket.DocNo)
	}

	got, err := store.Get(first.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != first {
		t.Fatalf("expected the same session instance back")
	}

	store.Close(first.ID)
	if _, err := store.Get(first.ID); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after close, got %v", err)
	}
}
