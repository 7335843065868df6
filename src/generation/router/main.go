package generation_router

import (
	"github.com/gofiber/fiber/v2"
	auth_middleware "github.com/nimbusworks/nimbus-server/src/auth/middleware"
	billing_middleware "github.com/nimbusworks/nimbus-server/src/billing/middleware"
	generation_handler "github.com/nimbusworks/nimbus-server/src/generation/handler"
)

func Route(app *fiber.App) {
	group := app.Group("/generation")

	// Every generation family pays: identity, rate limit, entitlement.
	group.Post("/conversation",
		auth_middleware.UserMiddleware,
		auth_middleware.GenerationRateLimiter,
		billing_middleware.EntitlementMiddleware,
		generation_handler.Conversation)

	group.Post("/code",
		auth_middleware.UserMiddleware,
		auth_middleware.GenerationRateLimiter,
		billing_middleware.EntitlementMiddleware,
		generation_handler.Code)

	group.Post("/image",
		auth_middleware.UserMiddleware,
		auth_middleware.GenerationRateLimiter,
		billing_middleware.EntitlementMiddleware,
		generation_handler.Image)

	group.Post("/video",
		auth_middleware.UserMiddleware,
		auth_middleware.GenerationRateLimiter,
		billing_middleware.EntitlementMiddleware,
		generation_handler.Video)

	group.Post("/music",
		auth_middleware.UserMiddleware,
		auth_middleware.GenerationRateLimiter,
		billing_middleware.EntitlementMiddleware,
		generation_handler.Music)

	// Polling a submitted job is authenticated but never gated: a user who
	// spent their last credit on the submission must still see it finish.
	group.Get("/music/status",
		auth_middleware.UserMiddleware,
		generation_handler.MusicStatus)
}
