package routes

import (
	"jewelpos/config"
	"jewelpos/controllers"
	"jewelpos/masterdata"

	"github.com/gofiber/fiber/v2"
)

func SetupCompanyRoutes(app *fiber.App, dir *masterdata.Directory) {
	controller := controllers.NewCompanyController(dir)
	api := app.Group(config.MAIN_ROUTES + "/companies")

	api.Get("/", controller.GetAllCompanies)
	api.Post("/", controller.CreateCompany)
	api.Put("/:id", controller.UpdateCompany)
}
