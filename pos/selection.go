package pos

import "jewelpos/models"

// Cascade level names, in order. Used in error reporting and API payloads.
const (
	LevelItem           = "item"
	LevelMetal          = "metal"
	LevelMetalProcesses = "metalProcesses"
	LevelProcesses      = "processes"
	LevelProcessTypes   = "processTypes"
)

// Selection is the five-level cascade state. Item and metal are single-select
// master records; metal processes are a multi-select record set; processes and
// process types are multi-select names drawn from the metal-process adjacency
// maps. Invariant: an empty level forces every level after it empty, and any
// change at a level clears everything downstream of it.
type Selection struct {
	item           *models.MasterRecord
	metal          *models.MasterRecord
	metalProcesses []models.MetalProcess
	processes      []string
	processTypes   []string
}

func NewSelection() *Selection {
	return &Selection{}
}

func (s *Selection) Item() *models.MasterRecord  { return s.item }
func (s *Selection) Metal() *models.MasterRecord { return s.metal }

func (s *Selection) MetalProcesses() []models.MetalProcess {
	out := make([]models.MetalProcess, len(s.metalProcesses))
	copy(out, s.metalProcesses)
	return out
}

func (s *Selection) Processes() []string {
	out := make([]string, len(s.processes))
	copy(out, s.processes)
	return out
}

func (s *Selection) ProcessTypes() []string {
	out := make([]string, len(s.processTypes))
	copy(out, s.processTypes)
	return out
}

// SetItem picks the item and invalidates every downstream level. Selecting
// the same item again still clears downstream, because re-picking restarts
// the cascade.
func (s *Selection) SetItem(item models.MasterRecord) {
	s.item = &item
	s.metal = nil
	s.metalProcesses = nil
	s.processes = nil
	s.processTypes = nil
}

// SetMetal picks the metal. Requires an item.
func (s *Selection) SetMetal(metal models.MasterRecord) error {
	if s.item == nil {
		return ErrInvalidTransition
	}
	s.metal = &metal
	s.metalProcesses = nil
	s.processes = nil
	s.processTypes = nil
	return nil
}

// ToggleMetalProcess adds or removes a metal process. Any change here, add or
// remove, invalidates the process and process-type levels: the option sets
// they were drawn from are no longer the same.
func (s *Selection) ToggleMetalProcess(mp models.MetalProcess) error {
	if s.metal == nil {
		return &PreconditionError{Level: LevelMetalProcesses, Requires: LevelMetal}
	}
	removed := false
	for i, cur := range s.metalProcesses {
		if cur.ID == mp.ID {
			s.metalProcesses = append(s.metalProcesses[:i], s.metalProcesses[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		s.metalProcesses = append(s.metalProcesses, mp)
	}
	s.processes = nil
	s.processTypes = nil
	return nil
}

// ToggleProcess adds or removes a process name; clears process types.
func (s *Selection) ToggleProcess(name string) error {
	if len(s.metalProcesses) == 0 {
		return &PreconditionError{Level: LevelProcesses, Requires: LevelMetalProcesses}
	}
	s.processes = toggleName(s.processes, name)
	s.processTypes = nil
	return nil
}

// ToggleProcessType adds or removes a process type name. Nothing downstream
// to clear.
func (s *Selection) ToggleProcessType(name string) error {
	if len(s.processes) == 0 {
		return &PreconditionError{Level: LevelProcessTypes, Requires: LevelProcesses}
	}
	s.processTypes = toggleName(s.processTypes, name)
	return nil
}

// Reset clears all five levels. Called after every committed job and on
// ticket finalize or discard.
func (s *Selection) Reset() {
	s.item = nil
	s.metal = nil
	s.metalProcesses = nil
	s.processes = nil
	s.processTypes = nil
}

// MissingLevels lists the cascade levels still empty, in cascade order.
func (s *Selection) MissingLevels() []string {
	var missing []string
	if s.item == nil {
		missing = append(missing, LevelItem)
	}
	if s.metal == nil {
		missing = append(missing, LevelMetal)
	}
	if len(s.metalProcesses) == 0 {
		missing = append(missing, LevelMetalProcesses)
	}
	if len(s.processes) == 0 {
		missing = append(missing, LevelProcesses)
	}
	if len(s.processTypes) == 0 {
		missing = append(missing, LevelProcessTypes)
	}
	return missing
}

func (s *Selection) IsComplete() bool {
	return len(s.MissingLevels()) == 0
}

func toggleName(list []string, name string) []string {
	for i, cur := range list {
		if cur == name {
			return append(list[:i], list[i+1:]...)
		}
	}
	return append(list, name)
}
