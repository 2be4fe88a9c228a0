package pos

import (
	"testing"

	"jewelpos/masterdata"
	"jewelpos/models"
)

func seededDirectory(t *testing.T) *masterdata.Directory {
	t.Helper()
	dir := masterdata.NewDirectory()
	masterdata.RunSeeders(dir)
	return dir
}

func TestResolverMetalsForItem(t *testing.T) {
	dir := seededDirectory(t)
	r := NewResolver(dir)

	ring, ok := dir.GetActiveByID(models.MasterItem, "i1")
	if !ok {
		t.Fatalf("seeded item i1 missing")
	}

	metals := r.AvailableMetals(&ring)
	if len(metals) != 2 || metals[0].Name != "Platinum" || metals[1].Name != "Gold 18K" {
		t.Fatalf("unexpected metals for Ring: %+v", metals)
	}

	if got := r.AvailableMetals(nil); got != nil {
		t.Fatalf("expected no metals without an item, got %+v", got)
	}
}

func TestResolverSkipsInactiveAndDangling(t *testing.T) {
	dir := seededDirectory(t)
	r := NewResolver(dir)

	if err := dir.Deactivate(models.MasterMetal, "m2"); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	// dangling ref on top of the deactivated one
	ring, _ := dir.GetByID(models.MasterItem, "i1")
	if _, err := dir.Update(models.MasterItem, "i1", ring.Name, []string{"m1", "m2", "m999"}, true); err != nil {
		t.Fatalf("Update: %v", err)
	}

	ring, _ = dir.GetActiveByID(models.MasterItem, "i1")
	metals := r.AvailableMetals(&ring)
	if len(metals) != 1 || metals[0].ID != "m1" {
		t.Fatalf("expected only Platinum to survive, got %+v", metals)
	}
}

func TestResolverProcessUnion(t *testing.T) {
	dir := seededDirectory(t)
	r := NewResolver(dir)

	polishing, _ := dir.GetActiveMetalProcess("mp1")
	mounting, _ := dir.GetActiveMetalProcess("mp2")

	got := r.AvailableProcesses([]models.MetalProcess{polishing, mounting})
	want := []string{"Hand Polish", "Machine Polish", "Prong", "Bezel"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("process[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestResolverProcessTypesFollowSelectedProcesses(t *testing.T) {
	dir := seededDirectory(t)
	r := NewResolver(dir)

	polishing, _ := dir.GetActiveMetalProcess("mp1")
	mps := []models.MetalProcess{polishing}

	got := r.AvailableProcessTypes([]string{"Hand Polish"}, mps)
	if len(got) != 2 || got[0] != "Light" || got[1] != "Heavy" {
		t.Fatalf("expected [Light Heavy], got %v", got)
	}

	got = r.AvailableProcessTypes([]string{"Hand Polish", "Machine Polish"}, mps)
	if len(got) != 4 {
		t.Fatalf("expected union of both processes, got %v", got)
	}

	if got := r.AvailableProcessTypes(nil, mps); got != nil {
		t.Fatalf("expected no types without a process, got %v", got)
	}
}

func TestResolverResolveShape(t *testing.T) {
	dir := seededDirectory(t)
	r := NewResolver(dir)

	sel := NewSelection()
	opts := r.Resolve(sel)
	if len(opts.Items) != 4 {
		t.Fatalf("expected 4 seeded items, got %d", len(opts.Items))
	}
	if opts.Metals != nil || opts.MetalProcesses != nil || opts.Processes != nil || opts.ProcessTypes != nil {
		t.Fatalf("expected empty downstream option sets on a fresh selection")
	}

	ring, _ := dir.GetActiveByID(models.MasterItem, "i1")
	sel.SetItem(ring)
	opts = r.Resolve(sel)
	if len(opts.Metals) != 2 {
		t.Fatalf("expected 2 metals after item pick, got %d", len(opts.Metals))
	}
}
