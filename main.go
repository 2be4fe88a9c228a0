package main

import (
	"fmt"
	"log"

	"jewelpos/config"
	"jewelpos/controllers/idgen"
	"jewelpos/masterdata"
	"jewelpos/pos"
	"jewelpos/routes"
	"jewelpos/ticketout"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()
	idgen.Init()

	app := fiber.New()

	// In-memory master directory, seeded on every boot
	dir := masterdata.NewDirectory()
	masterdata.RunSeeders(dir)

	builder := pos.NewBuilder(config.JobLinePolicy)
	store := pos.NewSessionStore(dir, builder, config.DocNoSeed)

	logger := config.GetLogger()
	printers := []ticketout.Printer{ticketout.NewLogPrinter(logger)}
	email := ticketout.NewEmailSender(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if email.Enabled() {
		printers = append(printers, email)
	}
	printer := ticketout.NewFanout(logger, printers...)

	// Setup CORS middleware
	config.SetupCORS(app)

	// Setup routes
	routes.SetupItemRoutes(app, dir)
	routes.SetupMetalRoutes(app, dir)
	routes.SetupMetalProcessRoutes(app, dir)
	routes.SetupProcessRoutes(app, dir)
	routes.SetupProcessTypeRoutes(app, dir)
	routes.SetupCustomerRoutes(app, dir)
	routes.SetupEmployeeRoutes(app, dir)
	routes.SetupCompanyRoutes(app, dir)
	routes.SetupVatRoutes(app, dir)
	routes.SetupPosRoutes(app, store, dir, printer)

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}

}
