package routes

import (
	"jewelpos/config"
	"jewelpos/controllers"
	"jewelpos/masterdata"

	"github.com/gofiber/fiber/v2"
)

func SetupMetalProcessRoutes(app *fiber.App, dir *masterdata.Directory) {
	controller := controllers.NewMetalProcessController(dir)
	api := app.Group(config.MAIN_ROUTES + "/metal-processes")

	api.Get("/", controller.GetAll)
	api.Post("/", controller.Create)
	api.Get("/:id", controller.GetByID)
	api.Put("/:id", controller.Update)
	api.Delete("/:id", controller.Delete)
}
