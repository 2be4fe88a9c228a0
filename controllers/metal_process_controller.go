package controllers

import (
	"errors"

	"jewelpos/masterdata"
	"jewelpos/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

// MetalProcessController is the metal-process master screen. On top of the
// base record it maintains the process/type adjacency map the POS cascade
// resolves its last two levels from.
type MetalProcessController struct {
	Dir *masterdata.Directory
}

func NewMetalProcessController(dir *masterdata.Directory) *MetalProcessController {
	return &MetalProcessController{Dir: dir}
}

type metalProcessInput struct {
	Name     string `json:"name" validate:"required,min=1"`
	IsActive *bool  `json:"isActive"`
	Types    []struct {
		Process string   `json:"process" validate:"required"`
		Types   []string `json:"types"`
	} `json:"types"`
}

func (c *MetalProcessController) GetAll(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Metal processes found",
		"data":    c.Dir.ListMetalProcesses(),
	})
}

func (c *MetalProcessController) GetByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	for _, mp := range c.Dir.ListMetalProcesses() {
		if mp.ID == id {
			return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Metal process found", "data": mp})
		}
	}
	return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Metal process not found"})
}

func (c *MetalProcessController) Create(ctx *fiber.Ctx) error {
	var input metalProcessInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record, err := c.Dir.Create(models.MasterMetalProcess, input.Name, nil)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(input.Types) > 0 {
		if err := c.Dir.SetMetalProcessTypes(record.ID, buildProcessTypeMap(input)); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Metal process created successfully", "data": record})
}

func (c *MetalProcessController) Update(ctx *fiber.Ctx) error {
	var input metalProcessInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	id := ctx.Params("id")
	existing, ok := c.Dir.GetByID(models.MasterMetalProcess, id)
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Metal process not found"})
	}

	isActive := existing.IsActive
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	record, err := c.Dir.Update(models.MasterMetalProcess, id, input.Name, nil, isActive)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	// nil means the field was omitted and the adjacency map stays; an
	// explicit empty list clears it
	if input.Types != nil {
		if err := c.Dir.SetMetalProcessTypes(id, buildProcessTypeMap(input)); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Metal process updated successfully", "data": record})
}

func (c *MetalProcessController) Delete(ctx *fiber.Ctx) error {
	if err := c.Dir.Deactivate(models.MasterMetalProcess, ctx.Params("id")); err != nil {
		if errors.Is(err, masterdata.ErrRecordMissing) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Metal process not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Metal process deactivated successfully"})
}

func buildProcessTypeMap(input metalProcessInput) *models.ProcessTypeMap {
	m := models.NewProcessTypeMap()
	for _, entry := range input.Types {
		m.Add(entry.Process, entry.Types...)
	}
	return m
}
