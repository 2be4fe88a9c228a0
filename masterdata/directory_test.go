package masterdata

import (
	"strings"
	"testing"
	"time"

	"jewelpos/models"

	"github.com/shopspring/decimal"
)

func seeded(t *testing.T) *Directory {
	t.Helper()
	d := NewDirectory()
	RunSeeders(d)
	return d
}

func TestDirectoryUnknownKind(t *testing.T) {
	d := NewDirectory()
	if _, err := d.List("planets"); err != ErrUnknownKind {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestDirectoryCreateAndGet(t *testing.T) {
	d := NewDirectory()

	created, err := d.Create(models.MasterItem, "Brooch", []string{"m1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(created.ID, "i_") {
		t.Fatalf("expected item id prefix, got %q", created.ID)
	}
	if !created.IsActive {
		t.Fatalf("new records must start active")
	}

	got, ok := d.GetByID(models.MasterItem, created.ID)
	if !ok || got.Name != "Brooch" {
		t.Fatalf("expected Brooch back, got %+v ok=%v", got, ok)
	}
}

func TestDirectoryListKeepsInsertionOrder(t *testing.T) {
	d := seeded(t)

	items, err := d.List(models.MasterItem)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Ring", "Pendant", "Earring", "Bangle"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i := range want {
		if items[i].Name != want[i] {
			t.Fatalf("item[%d]: expected %q, got %q", i, want[i], items[i].Name)
		}
	}
}

func TestDirectoryDeactivateIsSoft(t *testing.T) {
	d := seeded(t)

	if err := d.Deactivate(models.MasterMetal, "m2"); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	if _, ok := d.GetActiveByID(models.MasterMetal, "m2"); ok {
		t.Fatalf("deactivated record must not resolve as active")
	}
	if _, ok := d.GetByID(models.MasterMetal, "m2"); !ok {
		t.Fatalf("deactivated record must still exist")
	}

	active, err := d.ListActive(models.MasterMetal)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	for _, m := range active {
		if m.ID == "m2" {
			t.Fatalf("deactivated record leaked into ListActive")
		}
	}
}

func TestDirectoryActiveChildrenTolerateDanglingRefs(t *testing.T) {
	d := seeded(t)

	// hard-remove a referenced metal; Ring's refIDs still point at it
	if err := d.Remove(models.MasterMetal, "m2"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	ring, ok := d.GetActiveByID(models.MasterItem, "i1")
	if !ok {
		t.Fatalf("seeded item i1 missing")
	}
	children := d.GetActiveChildren(models.MasterMetal, ring)
	if len(children) != 1 || children[0].ID != "m1" {
		t.Fatalf("expected the dangling ref to be skipped, got %+v", children)
	}
}

func TestDirectoryMetalProcessLookups(t *testing.T) {
	d := seeded(t)

	platinum, _ := d.GetActiveByID(models.MasterMetal, "m1")
	mps := d.ActiveMetalProcessesFor(platinum)
	if len(mps) != 2 || mps[0].Name != "Polishing" || mps[1].Name != "Mounting" {
		t.Fatalf("unexpected metal processes for Platinum: %+v", mps)
	}

	polishing, ok := d.GetActiveMetalProcess("mp1")
	if !ok {
		t.Fatalf("seeded metal process mp1 missing")
	}
	if got := polishing.Types.ProcessNames(); len(got) != 2 || got[0] != "Hand Polish" {
		t.Fatalf("unexpected adjacency for Polishing: %v", got)
	}
}

func TestDirectorySetMetalProcessTypes(t *testing.T) {
	d := seeded(t)

	types := models.NewProcessTypeMap()
	types.Add("Hand Polish", "Mirror")
	if err := d.SetMetalProcessTypes("mp1", types); err != nil {
		t.Fatalf("SetMetalProcessTypes: %v", err)
	}

	mp, _ := d.GetActiveMetalProcess("mp1")
	if got := mp.Types.TypesFor("Hand Polish"); len(got) != 1 || got[0] != "Mirror" {
		t.Fatalf("expected replaced adjacency, got %v", got)
	}

	if err := d.SetMetalProcessTypes("mp999", types); err != ErrRecordMissing {
		t.Fatalf("expected ErrRecordMissing, got %v", err)
	}
}

func TestDirectoryActiveVatRate(t *testing.T) {
	d := NewDirectory()
	// no rates registered: falls back to the configured default
	if got := d.ActiveVatRate(); !got.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected default rate 20, got %s", got)
	}

	d.CreateVatRate(models.VatRate{
		Rate: decimal.NewFromInt(15), EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), IsActive: true,
	})
	d.CreateVatRate(models.VatRate{
		Rate: decimal.NewFromInt(18), EffectiveDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), IsActive: true,
	})
	if got := d.ActiveVatRate(); !got.Equal(decimal.NewFromInt(18)) {
		t.Fatalf("expected the newest effective rate, got %s", got)
	}
}

func TestDirectoryCustomerLookups(t *testing.T) {
	d := seeded(t)

	if _, ok := d.GetActiveCustomer("c999"); ok {
		t.Fatalf("unknown customer must not resolve")
	}
	c, ok := d.GetActiveCustomer("c1")
	if !ok || c.Type != models.CustomerRegistered {
		t.Fatalf("expected seeded registered customer, got %+v ok=%v", c, ok)
	}

	if !d.CustomerNameExists("ameen jewellers") {
		t.Fatalf("name check must be case-insensitive")
	}
	if d.CustomerNameExists("No Such Customer") {
		t.Fatalf("unexpected name match")
	}
}
