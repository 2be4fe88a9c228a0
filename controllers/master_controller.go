package controllers

import (
	"errors"

	"jewelpos/masterdata"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

// MasterController serves one cascade master collection (items, metals,
// processes, process types). The four screens behave identically; only the
// kind and the meaning of refIds differ.
type MasterController struct {
	Dir  *masterdata.Directory
	Kind string
}

func NewMasterController(dir *masterdata.Directory, kind string) *MasterController {
	return &MasterController{Dir: dir, Kind: kind}
}

type masterInput struct {
	Name     string   `json:"name" validate:"required,min=1"`
	RefIDs   []string `json:"refIds"`
	IsActive *bool    `json:"isActive"`
}

func (c *MasterController) GetAll(ctx *fiber.Ctx) error {
	records, err := c.Dir.List(c.Kind)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Records found", "data": records})
}

func (c *MasterController) GetActive(ctx *fiber.Ctx) error {
	records, err := c.Dir.ListActive(c.Kind)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Records found", "data": records})
}

func (c *MasterController) GetByID(ctx *fiber.Ctx) error {
	record, ok := c.Dir.GetByID(c.Kind, ctx.Params("id"))
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Record found", "data": record})
}

func (c *MasterController) Create(ctx *fiber.Ctx) error {
	var input masterInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Validasi input menggunakan validator
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record, err := c.Dir.Create(c.Kind, input.Name, input.RefIDs)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Record created successfully", "data": record})
}

func (c *MasterController) Update(ctx *fiber.Ctx) error {
	var input masterInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	id := ctx.Params("id")
	existing, ok := c.Dir.GetByID(c.Kind, id)
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	}

	isActive := existing.IsActive
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	record, err := c.Dir.Update(c.Kind, id, input.Name, input.RefIDs, isActive)
	if err != nil {
		if errors.Is(err, masterdata.ErrRecordMissing) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Record updated successfully", "data": record})
}

// Delete deactivates the record. Relation sets pointing at it keep the id;
// the option resolver filters it out from then on.
func (c *MasterController) Delete(ctx *fiber.Ctx) error {
	if err := c.Dir.Deactivate(c.Kind, ctx.Params("id")); err != nil {
		if errors.Is(err, masterdata.ErrRecordMissing) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Record deactivated successfully"})
}
