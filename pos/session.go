package pos

import (
	"jewelpos/masterdata"
	"jewelpos/models"

	"github.com/shopspring/decimal"
)

// Session is one operator's POS screen state: the cascade selection, the job
// entry fields and the ticket being composed. It is an explicit object owned
// by the session store; nothing here is package-level state.
type Session struct {
	ID string `json:"id"`

	Selection *Selection `json:"-"`
	Ticket    *Ticket    `json:"-"`

	// job entry fields, reset after every committed job
	Quantity  int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Comment   string          `json:"comment"`
	Image     *string         `json:"image,omitempty"`

	dir      *masterdata.Directory
	resolver *Resolver
	builder  *Builder
}

func NewSession(id, docNo string, dir *masterdata.Directory, builder *Builder) *Session {
	s := &Session{
		ID:        id,
		Selection: NewSelection(),
		Ticket:    NewTicket(docNo),
		dir:       dir,
		resolver:  NewResolver(dir),
		builder:   builder,
	}
	s.resetJobEntry()
	return s
}

func (s *Session) resetJobEntry() {
	s.Quantity = 1
	s.UnitPrice = decimal.Zero
	s.Comment = ""
	s.Image = nil
}

// Options recomputes the five option lists for the current selection.
func (s *Session) Options() Options {
	return s.resolver.Resolve(s.Selection)
}

// SelectItem picks an item by id. Ids that do not resolve to an active item
// report ErrRecordMissing; stale references never select anything.
func (s *Session) SelectItem(id string) error {
	item, ok := s.dir.GetActiveByID(models.MasterItem, id)
	if !ok {
		return masterdata.ErrRecordMissing
	}
	s.Selection.SetItem(item)
	return nil
}

// SelectMetal picks a metal by id. The metal must be in the computed option
// set for the selected item, so stale or incompatible ids cannot sneak in.
func (s *Session) SelectMetal(id string) error {
	if s.Selection.Item() == nil {
		return ErrInvalidTransition
	}
	for _, m := range s.resolver.AvailableMetals(s.Selection.Item()) {
		if m.ID == id {
			return s.Selection.SetMetal(m)
		}
	}
	return masterdata.ErrRecordMissing
}

func (s *Session) ToggleMetalProcess(id string) error {
	if s.Selection.Metal() == nil {
		return &PreconditionError{Level: LevelMetalProcesses, Requires: LevelMetal}
	}
	for _, mp := range s.resolver.AvailableMetalProcesses(s.Selection.Metal()) {
		if mp.ID == id {
			return s.Selection.ToggleMetalProcess(mp)
		}
	}
	return masterdata.ErrRecordMissing
}

func (s *Session) ToggleProcess(name string) error {
	mps := s.Selection.MetalProcesses()
	if len(mps) == 0 {
		return &PreconditionError{Level: LevelProcesses, Requires: LevelMetalProcesses}
	}
	for _, opt := range s.resolver.AvailableProcesses(mps) {
		if opt == name {
			return s.Selection.ToggleProcess(name)
		}
	}
	return masterdata.ErrRecordMissing
}

func (s *Session) ToggleProcessType(name string) error {
	if len(s.Selection.Processes()) == 0 {
		return &PreconditionError{Level: LevelProcessTypes, Requires: LevelProcesses}
	}
	for _, opt := range s.resolver.AvailableProcessTypes(s.Selection.Processes(), s.Selection.MetalProcesses()) {
		if opt == name {
			return s.Selection.ToggleProcessType(name)
		}
	}
	return masterdata.ErrRecordMissing
}

// SetJobEntry updates quantity, unit price, comment and the optional image
// reference for the next job build.
func (s *Session) SetJobEntry(quantity int, unitPrice decimal.Decimal, comment string, image *string) {
	s.Quantity = quantity
	s.UnitPrice = unitPrice
	s.Comment = comment
	s.Image = image
}

// AddJob builds job line(s) from the current selection and entry fields,
// appends them to the ticket and resets the cascade and entry fields. On
// validation failure nothing changes.
func (s *Session) AddJob() ([]models.JobLine, error) {
	lines, err := s.builder.Build(s.Selection, s.Quantity, s.UnitPrice, s.Comment, s.Image)
	if err != nil {
		return nil, err
	}
	s.Ticket.AddLines(lines)
	s.Selection.Reset()
	s.resetJobEntry()
	return lines, nil
}

// SetCustomer looks up an active registered customer and puts it on the
// ticket. Already-added job lines stay; the ticket is customer-scoped, not
// selection-scoped.
func (s *Session) SetCustomer(id string) error {
	c, ok := s.dir.GetActiveCustomer(id)
	if !ok {
		return masterdata.ErrRecordMissing
	}
	s.Ticket.SetCustomer(c)
	return nil
}

// SetCashCustomer puts an ad-hoc walk-in customer on the ticket.
func (s *Session) SetCashCustomer(name, contact string) {
	s.Ticket.SetCustomer(models.Customer{
		ID:       "cash",
		Name:     name,
		Contact:  contact,
		Type:     models.CustomerCash,
		IsActive: true,
	})
}

// Finalize commits the ticket against the current VAT master rate and clears
// the whole session for the next order. The empty-ticket error leaves
// everything untouched.
func (s *Session) Finalize() (models.TicketSnapshot, error) {
	snapshot, err := s.Ticket.Finalize(s.dir.ActiveVatRate())
	if err != nil {
		return models.TicketSnapshot{}, err
	}
	s.Selection.Reset()
	s.resetJobEntry()
	return snapshot, nil
}

// Reset discards the ticket and selection without finalizing.
func (s *Session) Reset() {
	s.Ticket.Discard()
	s.Selection.Reset()
	s.resetJobEntry()
}
