package masterdata

import (
	"errors"
	"sync"
	"time"

	"jewelpos/controllers/idgen"
	"jewelpos/models"
)

var (
	ErrUnknownKind   = errors.New("unknown master kind")
	ErrRecordMissing = errors.New("record not found")
)

// Directory is the in-memory master data store. Reference data lives for the
// lifetime of the process; the POS core only ever reads from it.
type Directory struct {
	mu sync.RWMutex

	// cascade masters, insertion-ordered
	items          []models.MasterRecord
	metals         []models.MasterRecord
	metalProcesses []models.MetalProcess
	processes      []models.MasterRecord
	processTypes   []models.MasterRecord

	// supporting masters
	customers []models.Customer
	employees []models.Employee
	companies []models.Company
	vatRates  []models.VatRate
}

func NewDirectory() *Directory {
	return &Directory{}
}

func (d *Directory) collection(kind string) (*[]models.MasterRecord, error) {
	switch kind {
	case models.MasterItem:
		return &d.items, nil
	case models.MasterMetal:
		return &d.metals, nil
	case models.MasterProcess:
		return &d.processes, nil
	case models.MasterProcessType:
		return &d.processTypes, nil
	default:
		return nil, ErrUnknownKind
	}
}

// List returns all records of a kind in insertion order. The metal-process
// kind is served through this too, flattened to the base record shape.
func (d *Directory) List(kind string) ([]models.MasterRecord, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if kind == models.MasterMetalProcess {
		out := make([]models.MasterRecord, 0, len(d.metalProcesses))
		for _, mp := range d.metalProcesses {
			out = append(out, mp.MasterRecord)
		}
		return out, nil
	}

	coll, err := d.collection(kind)
	if err != nil {
		return nil, err
	}
	out := make([]models.MasterRecord, len(*coll))
	copy(out, *coll)
	return out, nil
}

// ListActive returns only records with isActive true, keeping insertion order.
func (d *Directory) ListActive(kind string) ([]models.MasterRecord, error) {
	all, err := d.List(kind)
	if err != nil {
		return nil, err
	}
	out := make([]models.MasterRecord, 0, len(all))
	for _, r := range all {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (d *Directory) GetByID(kind, id string) (models.MasterRecord, bool) {
	all, err := d.List(kind)
	if err != nil {
		return models.MasterRecord{}, false
	}
	for _, r := range all {
		if r.ID == id {
			return r, true
		}
	}
	return models.MasterRecord{}, false
}

// GetActiveByID resolves an id to an active record. Missing or inactive
// records both report not-found; dangling references are never an error.
func (d *Directory) GetActiveByID(kind, id string) (models.MasterRecord, bool) {
	r, ok := d.GetByID(kind, id)
	if !ok || !r.IsActive {
		return models.MasterRecord{}, false
	}
	return r, true
}

// GetActiveChildren resolves a parent's RefIDs against the child kind,
// walking the child collection in insertion order and skipping anything
// inactive or dangling.
func (d *Directory) GetActiveChildren(childKind string, parent models.MasterRecord) []models.MasterRecord {
	all, err := d.ListActive(childKind)
	if err != nil {
		return nil
	}
	allowed := make(map[string]bool, len(parent.RefIDs))
	for _, id := range parent.RefIDs {
		allowed[id] = true
	}
	out := make([]models.MasterRecord, 0, len(all))
	for _, r := range all {
		if allowed[r.ID] {
			out = append(out, r)
		}
	}
	return out
}

func (d *Directory) Create(kind, name string, refIDs []string) (models.MasterRecord, error) {
	record := models.MasterRecord{
		ID:        idgen.NewID(kindPrefix(kind)),
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now(),
		RefIDs:    refIDs,
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if kind == models.MasterMetalProcess {
		d.metalProcesses = append(d.metalProcesses, models.MetalProcess{MasterRecord: record, Types: models.NewProcessTypeMap()})
		return record, nil
	}
	coll, err := d.collection(kind)
	if err != nil {
		return models.MasterRecord{}, err
	}
	*coll = append(*coll, record)
	return record, nil
}

func (d *Directory) Update(kind, id, name string, refIDs []string, isActive bool) (models.MasterRecord, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if kind == models.MasterMetalProcess {
		for i := range d.metalProcesses {
			if d.metalProcesses[i].ID == id {
				d.metalProcesses[i].Name = name
				d.metalProcesses[i].RefIDs = refIDs
				d.metalProcesses[i].IsActive = isActive
				return d.metalProcesses[i].MasterRecord, nil
			}
		}
		return models.MasterRecord{}, ErrRecordMissing
	}

	coll, err := d.collection(kind)
	if err != nil {
		return models.MasterRecord{}, err
	}
	for i := range *coll {
		if (*coll)[i].ID == id {
			(*coll)[i].Name = name
			(*coll)[i].RefIDs = refIDs
			(*coll)[i].IsActive = isActive
			return (*coll)[i], nil
		}
	}
	return models.MasterRecord{}, ErrRecordMissing
}

// Deactivate is the master screens' soft delete: the record stays referenced
// but drops out of every active lookup.
func (d *Directory) Deactivate(kind, id string) error {
	r, ok := d.GetByID(kind, id)
	if !ok {
		return ErrRecordMissing
	}
	_, err := d.Update(kind, id, r.Name, r.RefIDs, false)
	return err
}

// Remove hard-deletes a record, leaving any RefIDs that pointed at it
// dangling. Upstream relation sets are deliberately not rewritten.
func (d *Directory) Remove(kind, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if kind == models.MasterMetalProcess {
		for i := range d.metalProcesses {
			if d.metalProcesses[i].ID == id {
				d.metalProcesses = append(d.metalProcesses[:i], d.metalProcesses[i+1:]...)
				return nil
			}
		}
		return ErrRecordMissing
	}

	coll, err := d.collection(kind)
	if err != nil {
		return err
	}
	for i := range *coll {
		if (*coll)[i].ID == id {
			*coll = append((*coll)[:i], (*coll)[i+1:]...)
			return nil
		}
	}
	return ErrRecordMissing
}

// ListMetalProcesses returns the full metal-process records including the
// process/type adjacency map.
func (d *Directory) ListMetalProcesses() []models.MetalProcess {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.MetalProcess, len(d.metalProcesses))
	copy(out, d.metalProcesses)
	return out
}

func (d *Directory) GetActiveMetalProcess(id string) (models.MetalProcess, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, mp := range d.metalProcesses {
		if mp.ID == id && mp.IsActive {
			return mp, true
		}
	}
	return models.MetalProcess{}, false
}

// ActiveMetalProcessesFor resolves a metal's RefIDs to full metal-process
// records, insertion order, dangling ids skipped.
func (d *Directory) ActiveMetalProcessesFor(metal models.MasterRecord) []models.MetalProcess {
	allowed := make(map[string]bool, len(metal.RefIDs))
	for _, id := range metal.RefIDs {
		allowed[id] = true
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.MetalProcess, 0, len(metal.RefIDs))
	for _, mp := range d.metalProcesses {
		if mp.IsActive && allowed[mp.ID] {
			out = append(out, mp)
		}
	}
	return out
}

// SetMetalProcessTypes replaces the adjacency map of a metal process.
func (d *Directory) SetMetalProcessTypes(id string, types *models.ProcessTypeMap) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.metalProcesses {
		if d.metalProcesses[i].ID == id {
			d.metalProcesses[i].Types = types
			return nil
		}
	}
	return ErrRecordMissing
}

func kindPrefix(kind string) string {
	switch kind {
	case models.MasterItem:
		return "i"
	case models.MasterMetal:
		return "m"
	case models.MasterMetalProcess:
		return "mp"
	case models.MasterProcess:
		return "p"
	case models.MasterProcessType:
		return "pt"
	default:
		return "rec"
	}
}
