package routes

import (
	"jewelpos/config"
	"jewelpos/controllers"
	"jewelpos/masterdata"
	"jewelpos/models"

	"github.com/gofiber/fiber/v2"
)

func SetupProcessTypeRoutes(app *fiber.App, dir *masterdata.Directory) {
	controller := controllers.NewMasterController(dir, models.MasterProcessType)
	api := app.Group(config.MAIN_ROUTES + "/process-types")

	api.Get("/", controller.GetAll)
	api.Get("/active", controller.GetActive)
	api.Post("/", controller.Create)
	api.Get("/:id", controller.GetByID)
	api.Put("/:id", controller.Update)
	api.Delete("/:id", controller.Delete)
}
