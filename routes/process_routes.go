package routes

import (
	"jewelpos/config"
	"jewelpos/controllers"
	"jewelpos/masterdata"
	"jewelpos/models"

	"github.com/gofiber/fiber/v2"
)

func SetupProcessRoutes(app *fiber.App, dir *masterdata.Directory) {
	controller := controllers.NewMasterController(dir, models.MasterProcess)
	api := app.Group(config.MAIN_ROUTES + "/processes")

	api.Get("/", controller.GetAll)
	api.Get("/active", controller.GetActive)
	api.Post("/", controller.Create)
	api.Get("/:id", controller.GetByID)
	api.Put("/:id", controller.Update)
	api.Delete("/:id", controller.Delete)
}
