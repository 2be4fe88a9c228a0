package routes

import (
	"jewelpos/config"
	"jewelpos/controllers"
	"jewelpos/masterdata"

	"github.com/gofiber/fiber/v2"
)

func SetupEmployeeRoutes(app *fiber.App, dir *masterdata.Directory) {
	controller := controllers.NewEmployeeController(dir)
	api := app.Group(config.MAIN_ROUTES + "/employees")

	api.Get("/", controller.GetAllEmployees)
	api.Post("/", controller.CreateEmployee)
	api.Put("/:id", controller.UpdateEmployee)
	api.Delete("/:id", controller.DeleteEmployee)
}
