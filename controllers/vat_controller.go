package controllers

import (
	"errors"
	"time"

	"jewelpos/masterdata"
	"jewelpos/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type VatController struct {
	Dir *masterdata.Directory
}

func NewVatController(dir *masterdata.Directory) *VatController {
	return &VatController{Dir: dir}
}

type vatInput struct {
	Rate          decimal.Decimal `json:"rate" validate:"required"`
	EffectiveDate string          `json:"effectiveDate" validate:"required"`
	AddedBy       string          `json:"addedBy"`
	IsActive      *bool           `json:"isActive"`
}

func (c *VatController) GetAllVatRates(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "VAT rates found",
		"data":    c.Dir.ListVatRates(),
	})
}

// GetActiveVatRate returns the percent rate the POS applies right now.
func (c *VatController) GetActiveVatRate(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Active VAT rate",
		"data":    fiber.Map{"rate": c.Dir.ActiveVatRate()},
	})
}

func (c *VatController) CreateVatRate(ctx *fiber.Ctx) error {
	var input vatInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Rate.IsNegative() {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rate must not be negative"})
	}

	effectiveDate, err := time.Parse("2006-01-02", input.EffectiveDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid effective date, expected YYYY-MM-DD"})
	}

	vat := c.Dir.CreateVatRate(models.VatRate{
		Rate:          input.Rate,
		EffectiveDate: effectiveDate,
		AddedBy:       input.AddedBy,
	})
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "VAT rate created successfully", "data": vat})
}

func (c *VatController) UpdateVatRate(ctx *fiber.Ctx) error {
	var input vatInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	effectiveDate, err := time.Parse("2006-01-02", input.EffectiveDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid effective date, expected YYYY-MM-DD"})
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	vat, err := c.Dir.UpdateVatRate(models.VatRate{
		ID:            ctx.Params("id"),
		Rate:          input.Rate,
		EffectiveDate: effectiveDate,
		AddedBy:       input.AddedBy,
		IsActive:      isActive,
	})
	if err != nil {
		if errors.Is(err, masterdata.ErrRecordMissing) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "VAT rate not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "VAT rate updated successfully", "data": vat})
}
