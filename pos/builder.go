package pos

import (
	"fmt"
	"strings"

	"jewelpos/config"
	"jewelpos/controllers/idgen"
	"jewelpos/models"

	"github.com/shopspring/decimal"
)

// Builder materializes job lines from a completed selection. The canonical
// policy emits one line per completed selection with every chosen process
// folded into the description; the legacy per-type policy emits one line per
// selected process type, each priced at quantity x unit price.
type Builder struct {
	policy string
}

func NewBuilder(policy string) *Builder {
	if policy != config.JobLinePolicyPerType {
		policy = config.JobLinePolicySingle
	}
	return &Builder{policy: policy}
}

// Build validates the selection and job entry fields and returns the job
// line(s). It never mutates the selection or any ticket state; appending and
// resetting are the session's side effects on success.
func (b *Builder) Build(sel *Selection, quantity int, unitPrice decimal.Decimal, comment string, image *string) ([]models.JobLine, error) {
	missing := sel.MissingLevels()
	if quantity < 1 {
		missing = append(missing, "quantity")
	}
	if unitPrice.IsNegative() {
		missing = append(missing, "unitPrice")
	}
	if len(missing) > 0 {
		return nil, &IncompleteSelectionError{Missing: missing}
	}

	item := sel.Item().Name
	metal := sel.Metal().Name
	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	if b.policy == config.JobLinePolicyPerType {
		lines := make([]models.JobLine, 0, len(sel.ProcessTypes()))
		for _, pt := range sel.ProcessTypes() {
			lines = append(lines, models.JobLine{
				ID:          idgen.NewID("job"),
				Item:        item,
				Metal:       metal,
				Description: describe(item, metal, sel.MetalProcesses(), sel.Processes(), []string{pt}),
				Quantity:    quantity,
				UnitPrice:   unitPrice,
				Total:       total,
				Image:       image,
				Comment:     comment,
			})
		}
		return lines, nil
	}

	return []models.JobLine{{
		ID:          idgen.NewID("job"),
		Item:        item,
		Metal:       metal,
		Description: describe(item, metal, sel.MetalProcesses(), sel.Processes(), sel.ProcessTypes()),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       total,
		Image:       image,
		Comment:     comment,
	}}, nil
}

// describe composes the human-readable line description:
// "<item> | <metal> | Processes: (a + b) | Sub-Processes: (x + y) | Final Service: (t1, t2)"
func describe(item, metal string, metalProcesses []models.MetalProcess, processes, processTypes []string) string {
	parts := []string{item, metal}

	if len(metalProcesses) > 0 {
		names := make([]string, 0, len(metalProcesses))
		for _, mp := range metalProcesses {
			names = append(names, mp.Name)
		}
		parts = append(parts, fmt.Sprintf("Processes: (%s)", strings.Join(names, " + ")))
	}
	if len(processes) > 0 {
		parts = append(parts, fmt.Sprintf("Sub-Processes: (%s)", strings.Join(processes, " + ")))
	}
	if len(processTypes) > 0 {
		parts = append(parts, fmt.Sprintf("Final Service: (%s)", strings.Join(processTypes, ", ")))
	}
	return strings.Join(parts, " | ")
}
