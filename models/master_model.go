package models

import (
	"encoding/json"
	"time"
)

// Master kinds, dipakai sebagai key koleksi di master directory.
const (
	MasterItem         = "items"
	MasterMetal        = "metals"
	MasterMetalProcess = "metal_processes"
	MasterProcess      = "processes"
	MasterProcessType  = "process_types"
)

// MasterRecord is the base shape shared by every cascade master. RefIDs is
// the compatibility set pointing one level down the cascade: an Item lists
// its metal ids, a Metal its metal-process ids, a Process its process-type
// ids. Dangling ids in RefIDs are tolerated and filtered out at read time.
type MasterRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	RefIDs    []string  `json:"refIds,omitempty"`
}

// MetalProcess extends the base record with the process adjacency map: which
// processes this metal process offers, and which process types each of those
// processes can be finished as.
type MetalProcess struct {
	MasterRecord
	Types *ProcessTypeMap `json:"types,omitempty"`
}

// ProcessTypeMap maps process name -> process type names, keeping insertion
// order on both levels and deduplicating on insert.
type ProcessTypeMap struct {
	order   []string
	entries map[string][]string
}

func NewProcessTypeMap() *ProcessTypeMap {
	return &ProcessTypeMap{entries: make(map[string][]string)}
}

// Add registers types under a process, creating the process entry if needed.
func (m *ProcessTypeMap) Add(process string, types ...string) {
	if _, ok := m.entries[process]; !ok {
		m.order = append(m.order, process)
		m.entries[process] = []string{}
	}
	for _, t := range types {
		if !containsString(m.entries[process], t) {
			m.entries[process] = append(m.entries[process], t)
		}
	}
}

// ProcessNames returns the process names in insertion order.
func (m *ProcessTypeMap) ProcessNames() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// TypesFor returns the type names registered under a process, in insertion
// order. Unknown process names yield an empty slice.
func (m *ProcessTypeMap) TypesFor(process string) []string {
	if m == nil {
		return nil
	}
	types := m.entries[process]
	out := make([]string, len(types))
	copy(out, types)
	return out
}

func (m *ProcessTypeMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

type processTypesEntry struct {
	Process string   `json:"process"`
	Types   []string `json:"types"`
}

// MarshalJSON serializes as an ordered list of {process, types} pairs so the
// wire shape keeps insertion order.
func (m *ProcessTypeMap) MarshalJSON() ([]byte, error) {
	entries := make([]processTypesEntry, 0, len(m.order))
	for _, p := range m.order {
		entries = append(entries, processTypesEntry{Process: p, Types: m.entries[p]})
	}
	return json.Marshal(entries)
}

func (m *ProcessTypeMap) UnmarshalJSON(data []byte) error {
	var entries []processTypesEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	m.order = nil
	m.entries = make(map[string][]string)
	for _, e := range entries {
		m.Add(e.Process, e.Types...)
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
