package server

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	billing_router "github.com/nimbusworks/nimbus-server/src/billing/router"
	billing_service "github.com/nimbusworks/nimbus-server/src/billing/service"
	"github.com/nimbusworks/nimbus-server/src/billing/service/payment"
	"github.com/nimbusworks/nimbus-server/src/config/env"
	generation_router "github.com/nimbusworks/nimbus-server/src/generation/router"
	"github.com/nimbusworks/nimbus-server/src/integration/beatoven"
	"github.com/nimbusworks/nimbus-server/src/integration/huggingface"
	"github.com/nimbusworks/nimbus-server/src/validators"
	"github.com/pterm/pterm"
)

func serve() {
	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		ExposeHeaders: "Retry-After, Content-Disposition",
	}))

	validators.InitValidators()

	// Initialize payment provider
	if env.StripeSecretKey != "" {
		payment.ActiveProvider = payment.NewStripeProvider()
	}

	// Wire the entitlement gate and outbound integrations
	billing_service.InitGate()
	huggingface.Load()
	beatoven.Load()

	// Serving http endpoints
	makeDocs(app)
	billing_router.Route(app)
	generation_router.Route(app)

	// Setup graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		pterm.DefaultLogger.Info("Shutdown signal received, stopping services...")
		app.Shutdown()
	}()

	err := app.Listen(fmt.Sprintf(":%s", env.ServerPort))
	pterm.DefaultLogger.Fatal(
		fmt.Sprintf("%v", err),
	)
}
