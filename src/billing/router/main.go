package billing_router

import (
	"github.com/gofiber/fiber/v2"
	auth_middleware "github.com/nimbusworks/nimbus-server/src/auth/middleware"
	billing_handler "github.com/nimbusworks/nimbus-server/src/billing/handler"
)

func Route(app *fiber.App) {
	group := app.Group("/billing")

	// Current free-tier usage and pro status
	group.Get("/usage",
		auth_middleware.UserMiddleware,
		billing_handler.GetUsage)

	// Current subscription summary
	group.Get("/subscription",
		auth_middleware.UserMiddleware,
		billing_handler.GetSubscription)
}
