package routes

import (
	"jewelpos/config"
	"jewelpos/controllers"
	"jewelpos/masterdata"
	"jewelpos/pos"
	"jewelpos/ticketout"

	"github.com/gofiber/fiber/v2"
)

func SetupPosRoutes(app *fiber.App, store *pos.SessionStore, dir *masterdata.Directory, printer ticketout.Printer) {
	controller := controllers.NewPosController(store, dir, printer)
	api := app.Group(config.MAIN_ROUTES + "/pos/sessions")

	api.Post("/", controller.OpenSession)
	api.Get("/:id", controller.GetSession)
	api.Delete("/:id", controller.CloseSession)

	api.Post("/:id/item", controller.SelectItem)
	api.Post("/:id/metal", controller.SelectMetal)
	api.Post("/:id/metal-process", controller.ToggleMetalProcess)
	api.Post("/:id/process", controller.ToggleProcess)
	api.Post("/:id/process-type", controller.ToggleProcessType)

	api.Put("/:id/job-entry", controller.SetJobEntry)
	api.Post("/:id/jobs", controller.AddJob)
	api.Delete("/:id/jobs/:jobId", controller.DeleteJob)

	api.Put("/:id/customer", controller.SetCustomer)
	api.Put("/:id/vat-invoice", controller.SetVatInvoice)
	api.Get("/:id/preview", controller.Preview)
	api.Post("/:id/finalize", controller.Finalize)
	api.Post("/:id/reset", controller.Reset)
}
