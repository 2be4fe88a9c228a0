package routes

import (
	"jewelpos/config"
	"jewelpos/controllers"
	"jewelpos/masterdata"

	"github.com/gofiber/fiber/v2"
)

func SetupCustomerRoutes(app *fiber.App, dir *masterdata.Directory) {
	controller := controllers.NewCustomerController(dir)
	api := app.Group(config.MAIN_ROUTES + "/customers")

	api.Get("/", controller.GetAllCustomers)
	api.Post("/", controller.CreateCustomer)
	api.Post("/upload-excel", controller.CreateCustomerFromExcel)
	api.Get("/:id", controller.GetCustomerByID)
	api.Put("/:id", controller.UpdateCustomer)
	api.Delete("/:id", controller.DeleteCustomer)
}
