package controllers

import (
	"net/http/httptest"
	"testing"

	"jewelpos/masterdata"

	"github.com/gofiber/fiber/v2"
)

func employeeApp(t *testing.T) (*fiber.App, *masterdata.Directory) {
	t.Helper()
	dir := masterdata.NewDirectory()
	masterdata.RunSeeders(dir)

	app := fiber.New()
	controller := NewEmployeeController(dir)
	app.Delete("/employees/:id", controller.DeleteEmployee)
	return app, dir
}

func TestEmployeeDeleteDeactivates(t *testing.T) {
	app, dir := employeeApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/employees/e1", nil), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	for _, emp := range dir.ListEmployees() {
		if emp.ID == "e1" {
			if emp.IsActive {
				t.Fatalf("expected employee deactivated, still active")
			}
			return
		}
	}
	t.Fatalf("deactivated employee must still exist")
}

func TestEmployeeDeleteUnknown(t *testing.T) {
	app, _ := employeeApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/employees/e999", nil), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
