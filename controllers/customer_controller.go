package controllers

import (
	"errors"
	"fmt"
	"strings"

	"jewelpos/masterdata"
	"jewelpos/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type CustomerController struct {
	Dir *masterdata.Directory
}

func NewCustomerController(dir *masterdata.Directory) *CustomerController {
	return &CustomerController{Dir: dir}
}

type customerInput struct {
	Type               string `json:"type" validate:"required,oneof=Registered Invoice Cash"`
	Name               string `json:"name" validate:"required,min=2"`
	Company            string `json:"company"`
	Contact            string `json:"contact"`
	Email              string `json:"email"`
	VatID              string `json:"vatId"`
	SendInvoiceByEmail bool   `json:"sendInvoiceByEmail"`
	IsActive           *bool  `json:"isActive"`
}

func (c *CustomerController) GetAllCustomers(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Customers found",
		"data":    c.Dir.ListCustomers(),
	})
}

func (c *CustomerController) GetCustomerByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	for _, cust := range c.Dir.ListCustomers() {
		if cust.ID == id {
			return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customer found", "data": cust})
		}
	}
	return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
}

func (c *CustomerController) CreateCustomer(ctx *fiber.Ctx) error {
	var input customerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Validasi input menggunakan validator
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Email != "" && !isValidEmail(input.Email) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email format"})
	}

	customer := c.Dir.CreateCustomer(models.Customer{
		Type:               input.Type,
		Name:               input.Name,
		Company:            input.Company,
		Contact:            input.Contact,
		Email:              input.Email,
		VatID:              input.VatID,
		SendInvoiceByEmail: input.SendInvoiceByEmail,
	})

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customer created successfully", "data": customer})
}

func (c *CustomerController) UpdateCustomer(ctx *fiber.Ctx) error {
	var input customerInput
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

	customer, err := c.Dir.UpdateCustomer(models.Customer{
		ID:                 ctx.Params("id"),
		Type:               input.Type,
		Name:               input.Name,
		Company:            input.Company,
		Contact:            input.Contact,
		Email:              input.Email,
		VatID:              input.VatID,
		SendInvoiceByEmail: input.SendInvoiceByEmail,
		IsActive:           isActive,
	})
	if err != nil {
		if errors.Is(err, masterdata.ErrRecordMissing) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customer updated successfully", "data": customer})
}

func (c *CustomerController) DeleteCustomer(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	for _, cust := range c.Dir.ListCustomers() {
		if cust.ID == id {
			cust.IsActive = false
			if _, err := c.Dir.UpdateCustomer(cust); err != nil {
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
			return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customer deactivated successfully", "data": cust})
		}
	}
	return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
}

// ============================================================================
// Begin upload customer from excel file
// ============================================================================

type CustomerUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	SkippedItems  []string `json:"skipped_items"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateCustomerFromExcel imports customers from an uploaded spreadsheet.
// Columns: NAME, TYPE, COMPANY, CONTACT, EMAIL, VAT_ID, SEND_INVOICE_EMAIL.
func (c *CustomerController) CreateCustomerFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	result := CustomerUploadResult{
		TotalRows:     len(rows) - 1,
		SkippedItems:  []string{},
		ErrorMessages: []string{},
	}

	// Process each row (skip header)
	for i, row := range rows[1:] {
		rowNum := i + 2 // Excel row number (header is row 1)

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		if len(row) < 5 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Insufficient columns (expected at least 5)", rowNum))
			continue
		}

		name := strings.TrimSpace(row[0])
		custType := strings.TrimSpace(row[1])
		company := strings.TrimSpace(row[2])
		contact := strings.TrimSpace(row[3])
		email := strings.TrimSpace(row[4])
		vatID := ""
		if len(row) > 5 {
			vatID = strings.TrimSpace(row[5])
		}
		sendEmail := false
		if len(row) > 6 {
			sendEmail = strings.EqualFold(strings.TrimSpace(row[6]), "yes")
		}

		if custType != models.CustomerRegistered && custType != models.CustomerInvoice && custType != models.CustomerCash {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Invalid customer type '%s'", rowNum, custType))
			continue
		}

		if c.Dir.CustomerNameExists(name) {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems, name)
			continue
		}

		if email != "" && !isValidEmail(email) {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Invalid email format '%s'", rowNum, email))
			continue
		}

		c.Dir.CreateCustomer(models.Customer{
			Type:               custType,
			Name:               name,
			Company:            company,
			Contact:            contact,
			Email:              email,
			VatID:              vatID,
			SendInvoiceByEmail: sendEmail,
		})
		result.SuccessCount++
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Upload completed: %d success, %d skipped, %d errors",
			result.SuccessCount, result.SkippedCount, result.ErrorCount),
		"data": result,
	})
}

// Helper function to validate email format
func isValidEmail(email string) bool {
	if email == "" {
		return true // Empty email is valid (optional field)
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	if len(parts[0]) == 0 || len(parts[1]) == 0 {
		return false
	}
	if !strings.Contains(parts[1], ".") {
		return false
	}
	return true
}

//==============================================================================
// End Upload Customer From Excel
//==============================================================================
