package controllers

import (
	"errors"

	"jewelpos/config"
	"jewelpos/masterdata"
	"jewelpos/pos"
	"jewelpos/ticketout"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// PosController drives the order-entry screen: one session per open screen,
// cascade selection, job entry, ticket composition and finalize.
type PosController struct {
	Store   *pos.SessionStore
	Dir     *masterdata.Directory
	Printer ticketout.Printer
}

func NewPosController(store *pos.SessionStore, dir *masterdata.Directory, printer ticketout.Printer) *PosController {
	return &PosController{Store: store, Dir: dir, Printer: printer}
}

func (c *PosController) OpenSession(ctx *fiber.Ctx) error {
	session := c.Store.Open()
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Session opened",
		"data":    c.sessionState(session),
	})
}

func (c *PosController) GetSession(ctx *fiber.Ctx) error {
	session, err := c.Store.Get(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Session found",
		"data":    c.sessionState(session),
	})
}

func (c *PosController) CloseSession(ctx *fiber.Ctx) error {
	c.Store.Close(ctx.Params("id"))
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Session closed"})
}

// Cascade selection --------------------------------------------------------

type selectInput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *PosController) SelectItem(ctx *fiber.Ctx) error {
	return c.mutateSelection(ctx, func(s *pos.Session, input selectInput) error {
		return s.SelectItem(input.ID)
	})
}

func (c *PosController) SelectMetal(ctx *fiber.Ctx) error {
	return c.mutateSelection(ctx, func(s *pos.Session, input selectInput) error {
		return s.SelectMetal(input.ID)
	})
}

func (c *PosController) ToggleMetalProcess(ctx *fiber.Ctx) error {
	return c.mutateSelection(ctx, func(s *pos.Session, input selectInput) error {
		return s.ToggleMetalProcess(input.ID)
	})
}

func (c *PosController) ToggleProcess(ctx *fiber.Ctx) error {
	return c.mutateSelection(ctx, func(s *pos.Session, input selectInput) error {
		return s.ToggleProcess(input.Name)
	})
}

func (c *PosController) ToggleProcessType(ctx *fiber.Ctx) error {
	return c.mutateSelection(ctx, func(s *pos.Session, input selectInput) error {
		return s.ToggleProcessType(input.Name)
	})
}

func (c *PosController) mutateSelection(ctx *fiber.Ctx, mutate func(*pos.Session, selectInput) error) error {
	session, err := c.Store.Get(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	var input selectInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := mutate(session, input); err != nil {
		return c.selectionError(ctx, session, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Selection updated",
		"data":    c.sessionState(session),
	})
}

// selectionError maps core errors to responses. Precondition violations are
// unreachable through a well-behaved UI, so they are logged and answered as a
// no-op rather than crashing anything.
func (c *PosController) selectionError(ctx *fiber.Ctx, session *pos.Session, err error) error {
	var precondition *pos.PreconditionError
	switch {
	case errors.As(err, &precondition):
		config.LogError(config.GetLogger(), "pos", "mutateSelection", "precondition violation", precondition.Level, err)
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   precondition.Error(),
			"data":    c.sessionState(session),
		})
	case errors.Is(err, pos.ErrInvalidTransition):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, masterdata.ErrRecordMissing):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record is not an available option"})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// Job entry and job lines ---------------------------------------------------

type jobEntryInput struct {
	Quantity  int             `json:"qty" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Comment   string          `json:"comment"`
	Image     *string         `json:"image"`
}

func (c *PosController) SetJobEntry(ctx *fiber.Ctx) error {
	session, err := c.Store.Get(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	var input jobEntryInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Validasi input menggunakan validator
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session.SetJobEntry(input.Quantity, input.UnitPrice, input.Comment, input.Image)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Job entry updated",
		"data":    c.sessionState(session),
	})
}

func (c *PosController) AddJob(ctx *fiber.Ctx) error {
	session, err := c.Store.Get(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	lines, err := session.AddJob()
	if err != nil {
		var incomplete *pos.IncompleteSelectionError
		if errors.As(err, &incomplete) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"success": false,
				"error":   incomplete.Error(),
				"missing": incomplete.Missing,
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Job added",
		"data": fiber.Map{
			"lines":   lines,
			"session": c.sessionState(session),
		},
	})
}

func (c *PosController) DeleteJob(ctx *fiber.Ctx) error {
	session, err := c.Store.Get(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	// Unknown job ids are absorbed; the delete button can race a finalize
	// only across browser tabs, and the core treats both the same.
	session.Ticket.RemoveLine(ctx.Params("jobId"))
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Job deleted",
		"data":    c.sessionState(session),
	})
}

// Customer and ticket -------------------------------------------------------

type posCustomerInput struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	Contact    string `json:"contact"`
}

func (c *PosController) SetCustomer(ctx *fiber.Ctx) error {
	session, err := c.Store.Get(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	var input posCustomerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.CustomerID != "" {
		if err := session.SetCustomer(input.CustomerID); err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
	} else {
		if input.Name == "" || input.Contact == "" {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cash customer needs name and contact"})
		}
		session.SetCashCustomer(input.Name, input.Contact)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Customer selected",
		"data":    c.sessionState(session),
	})
}

type vatInvoiceInput struct {
	WantsVatInvoice bool `json:"wantsVatInvoice"`
}

func (c *PosController) SetVatInvoice(ctx *fiber.Ctx) error {
	session, err := c.Store.Get(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	var input vatInvoiceInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session.Ticket.SetWantsVatInvoice(input.WantsVatInvoice)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "VAT invoice flag updated",
		"data":    c.sessionState(session),
	})
}

// Preview renders the ticket snapshot without committing anything.
func (c *PosController) Preview(ctx *fiber.Ctx) error {
	session, err := c.Store.Get(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	snapshot := session.Ticket.Snapshot(c.Dir.ActiveVatRate())
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Ticket preview",
		"data":    snapshot,
	})
}

func (c *PosController) Finalize(ctx *fiber.Ctx) error {
	session, err := c.Store.Get(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	snapshot, err := session.Finalize()
	if err != nil {
		if errors.Is(err, pos.ErrEmptyTicket) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No jobs added to the ticket"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if c.Printer != nil {
		if err := c.Printer.Print(snapshot); err != nil {
			config.LogError(config.GetLogger(), "pos", "Finalize", "ticket output", snapshot.DocNo, err)
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Ticket finalized",
		"data": fiber.Map{
			"ticket":  snapshot,
			"session": c.sessionState(session),
		},
	})
}

func (c *PosController) Reset(ctx *fiber.Ctx) error {
	session, err := c.Store.Get(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	session.Reset()
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Session reset",
		"data":    c.sessionState(session),
	})
}

// sessionState flattens the session into the shape the screen renders:
// current selection, computed option lists and the ticket with totals.
func (c *PosController) sessionState(session *pos.Session) fiber.Map {
	sel := session.Selection
	vatRate := c.Dir.ActiveVatRate()
	total := session.Ticket.Total()
	subtotal, vat := pos.ComputeVat(total, vatRate, session.Ticket.WantsVatInvoice())

	var itemName, metalName *string
	if sel.Item() != nil {
		itemName = &sel.Item().Name
	}
	if sel.Metal() != nil {
		metalName = &sel.Metal().Name
	}

	mpNames := []string{}
	for _, mp := range sel.MetalProcesses() {
		mpNames = append(mpNames, mp.Name)
	}

	return fiber.Map{
		"id": session.ID,
		"selection": fiber.Map{
			"item":           itemName,
			"metal":          metalName,
			"metalProcesses": mpNames,
			"processes":      sel.Processes(),
			"processTypes":   sel.ProcessTypes(),
		},
		"options": session.Options(),
		"jobEntry": fiber.Map{
			"qty":       session.Quantity,
			"unitPrice": session.UnitPrice,
			"comment":   session.Comment,
			"image":     session.Image,
		},
		"ticket": fiber.Map{
			"docNo":           session.Ticket.DocNo,
			"dueDate":         session.Ticket.DueDate,
			"dueTime":         session.Ticket.DueTime,
			"customer":        session.Ticket.Customer(),
			"wantsVatInvoice": session.Ticket.WantsVatInvoice(),
			"lines":           session.Ticket.Lines(),
			"subtotal":        subtotal,
			"vat":             vat,
			"total":           total,
		},
	}
}
