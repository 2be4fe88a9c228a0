package controllers

import (
	"errors"

	"jewelpos/masterdata"
	"jewelpos/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

type EmployeeController struct {
	Dir *masterdata.Directory
}

func NewEmployeeController(dir *masterdata.Directory) *EmployeeController {
	return &EmployeeController{Dir: dir}
}

type employeeInput struct {
	Name       string `json:"name" validate:"required,min=2"`
	EmployeeID string `json:"employeeId" validate:"required,min=2"`
	Role       string `json:"role"`
	IsActive   *bool  `json:"isActive"`
}

func (c *EmployeeController) GetAllEmployees(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Employees found",
		"data":    c.Dir.ListEmployees(),
	})
}

func (c *EmployeeController) CreateEmployee(ctx *fiber.Ctx) error {
	var input employeeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	employee := c.Dir.CreateEmployee(models.Employee{
		Name:       input.Name,
		EmployeeID: input.EmployeeID,
		Role:       input.Role,
	})
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Employee created successfully", "data": employee})
}

func (c *EmployeeController) UpdateEmployee(ctx *fiber.Ctx) error {
	var input employeeInput
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

	employee, err := c.Dir.UpdateEmployee(models.Employee{
		ID:         ctx.Params("id"),
		Name:       input.Name,
		EmployeeID: input.EmployeeID,
		Role:       input.Role,
		IsActive:   isActive,
	})
	if err != nil {
		if errors.Is(err, masterdata.ErrRecordMissing) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Employee updated successfully", "data": employee})
}

func (c *EmployeeController) DeleteEmployee(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	for _, emp := range c.Dir.ListEmployees() {
		if emp.ID == id {
			emp.IsActive = false
			if _, err := c.Dir.UpdateEmployee(emp); err != nil {
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
			return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Employee deactivated successfully", "data": emp})
		}
	}
	return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
}
