package routes

import (
	"jewelpos/config"
	"jewelpos/controllers"
	"jewelpos/masterdata"

	"github.com/gofiber/fiber/v2"
)

func SetupVatRoutes(app *fiber.App, dir *masterdata.Directory) {
	controller := controllers.NewVatController(dir)
	api := app.Group(config.MAIN_ROUTES + "/vat-rates")

	api.Get("/", controller.GetAllVatRates)
	api.Get("/active", controller.GetActiveVatRate)
	api.Post("/", controller.CreateVatRate)
	api.Put("/:id", controller.UpdateVatRate)
}
