package controllers

import (
	"errors"

	"jewelpos/masterdata"
	"jewelpos/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

type CompanyController struct {
	Dir *masterdata.Directory
}

func NewCompanyController(dir *masterdata.Directory) *CompanyController {
	return &CompanyController{Dir: dir}
}

type companyInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Tagline  string `json:"tagline"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	VatID    string `json:"vatId"`
	IsActive *bool  `json:"isActive"`
}

func (c *CompanyController) GetAllCompanies(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Companies found",
		"data":    c.Dir.ListCompanies(),
	})
}

func (c *CompanyController) CreateCompany(ctx *fiber.Ctx) error {
	var input companyInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	company := c.Dir.CreateCompany(models.Company{
		Name:    input.Name,
		Tagline: input.Tagline,
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
		VatID:   input.VatID,
	})
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Company created successfully", "data": company})
}

func (c *CompanyController) UpdateCompany(ctx *fiber.Ctx) error {
	var input companyInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	company, err := c.Dir.UpdateCompany(models.Company{
		ID:       ctx.Params("id"),
		Name:     input.Name,
		Tagline:  input.Tagline,
		Address:  input.Address,
		Phone:    input.Phone,
		Email:    input.Email,
		VatID:    input.VatID,
		IsActive: isActive,
	})
	if err != nil {
		if errors.Is(err, masterdata.ErrRecordMissing) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Company updated successfully", "data": company})
}
