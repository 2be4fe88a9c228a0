package pos

import (
	"jewelpos/masterdata"
	"jewelpos/models"
)

// Resolver computes the valid option set at each cascade level from the
// current selection and the master directory. All methods are pure reads;
// they are recomputed on every selection change. Option lists keep the
// directory's insertion order, and every relation traversal is lookup-or-skip:
// ids that no longer resolve to an active record just vanish from the set.
type Resolver struct {
	dir *masterdata.Directory
}

func NewResolver(dir *masterdata.Directory) *Resolver {
	return &Resolver{dir: dir}
}

// AvailableItems is the cascade entry point: every active item.
func (r *Resolver) AvailableItems() []models.MasterRecord {
	items, _ := r.dir.ListActive(models.MasterItem)
	return items
}

// AvailableMetals returns the active metals compatible with the selected
// item, or nothing when no item is selected.
func (r *Resolver) AvailableMetals(item *models.MasterRecord) []models.MasterRecord {
	if item == nil {
		return nil
	}
	return r.dir.GetActiveChildren(models.MasterMetal, *item)
}

// AvailableMetalProcesses returns the active metal processes compatible with
// the selected metal.
func (r *Resolver) AvailableMetalProcesses(metal *models.MasterRecord) []models.MetalProcess {
	if metal == nil {
		return nil
	}
	return r.dir.ActiveMetalProcessesFor(*metal)
}

// AvailableProcesses unions the process names reachable from every selected
// metal process, deduplicated, first-seen order.
func (r *Resolver) AvailableProcesses(metalProcesses []models.MetalProcess) []string {
	if len(metalProcesses) == 0 {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, mp := range metalProcesses {
		for _, name := range mp.Types.ProcessNames() {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

// AvailableProcessTypes unions the type names each selected metal process
// registers under each selected process, deduplicated, first-seen order.
func (r *Resolver) AvailableProcessTypes(processes []string, metalProcesses []models.MetalProcess) []string {
	if len(processes) == 0 {
		return nil
	}
	selected := make(map[string]bool, len(processes))
	for _, p := range processes {
		selected[p] = true
	}

	var out []string
	seen := make(map[string]bool)
	for _, mp := range metalProcesses {
		for _, pName := range mp.Types.ProcessNames() {
			if !selected[pName] {
				continue
			}
			for _, t := range mp.Types.TypesFor(pName) {
				if !seen[t] {
					seen[t] = true
					out = append(out, t)
				}
			}
		}
	}
	return out
}

// Options bundles the computed choice lists of all five levels for one
// selection state, the shape the POS screen renders from.
type Options struct {
	Items          []models.MasterRecord `json:"items"`
	Metals         []models.MasterRecord `json:"metals"`
	MetalProcesses []models.MetalProcess `json:"metalProcesses"`
	Processes      []string              `json:"processes"`
	ProcessTypes   []string              `json:"processTypes"`
}

func (r *Resolver) Resolve(sel *Selection) Options {
	mps := sel.MetalProcesses()
	return Options{
		Items:          r.AvailableItems(),
		Metals:         r.AvailableMetals(sel.Item()),
		MetalProcesses: r.AvailableMetalProcesses(sel.Metal()),
		Processes:      r.AvailableProcesses(mps),
		ProcessTypes:   r.AvailableProcessTypes(sel.Processes(), mps),
	}
}
