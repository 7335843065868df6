package billing_handler

import (
	"github.com/gofiber/fiber/v2"
	auth_middleware "github.com/nimbusworks/nimbus-server/src/auth/middleware"
	billing_model "github.com/nimbusworks/nimbus-server/src/billing/model"
	billing_service "github.com/nimbusworks/nimbus-server/src/billing/service"
	common_model "github.com/nimbusworks/nimbus-server/src/common/model"
)

// GetUsage returns the user's free-tier consumption and pro status. Display
// only — authorization always re-reads persisted state per request.
//
//	@Summary		Get free-tier usage
//	@Description	Returns the number of free-tier generation calls consumed, the configured limit, and whether the user has an active subscription.
//	@Tags			Billing
//	@Produce		json
//	@Success		200	{object}	billing_model.UsageSummary		"Usage summary"
//	@Failure		503	{object}	common_model.DescriptiveError	"Entitlement gate unavailable"
//	@Security		ApiKeyAuth
//	@Router			/billing/usage [get]
func GetUsage(c *fiber.Ctx) error {
	if billing_service.DefaultGate == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(
			common_model.NewApiError("Service temporarily unavailable", nil, "billing").Send(),
		)
	}

	userID := auth_middleware.GetUserID(c)
	gate := billing_service.DefaultGate

	return c.Status(fiber.StatusOK).JSON(billing_model.UsageSummary{
		Count: gate.CurrentUsage(userID),
		Limit: gate.MaxFreeCounts(),
		IsPro: gate.IsSubscribed(userID),
	})
}
