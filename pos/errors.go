package pos

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidTransition: a cascade level was set before its prerequisite,
	// e.g. a metal without an item.
	ErrInvalidTransition = errors.New("invalid selection transition")

	// ErrEmptyTicket: finalize attempted with no job lines.
	ErrEmptyTicket = errors.New("ticket has no job lines")

	// ErrLineNotFound is internal to the ticket; deletes of unknown line ids
	// are absorbed as no-ops at the aggregator boundary.
	ErrLineNotFound = errors.New("job line not found")
)

// PreconditionError marks a toggle on a level whose prerequisite is empty.
// The UI disables those controls, so hitting this is an integration bug, not
// operator input; callers log it and no-op.
type PreconditionError struct {
	Level    string
	Requires string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cannot toggle %s: %s not selected", e.Level, e.Requires)
}

// IncompleteSelectionError reports a job build attempted before the cascade
// and job entry fields were complete. Missing enumerates the offending parts.
type IncompleteSelectionError struct {
	Missing []string
}

func (e *IncompleteSelectionError) Error() string {
	return "incomplete selection: missing " + strings.Join(e.Missing, ", ")
}
