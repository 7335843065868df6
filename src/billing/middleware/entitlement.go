package billing_middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	auth_middleware "github.com/nimbusworks/nimbus-server/src/auth/middleware"
	billing_model "github.com/nimbusworks/nimbus-server/src/billing/model"
	billing_service "github.com/nimbusworks/nimbus-server/src/billing/service"
	common_model "github.com/nimbusworks/nimbus-server/src/common/model"
)

const localsEntitlement = "entitlement"

// EntitlementMiddleware authorizes paid work: missing identity is a 401,
// exhausted free quota without a subscription is a 403 distinct from the
// identity failure so clients can prompt for an upgrade instead of a login.
// The decision is stored in locals for handlers to consult when recording
// usage. Must run after UserMiddleware.
func EntitlementMiddleware(c *fiber.Ctx) error {
	userID := auth_middleware.GetUserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			common_model.NewApiError("Unauthorized", errors.New("no authenticated user in context"), "middleware").Send(),
		)
	}

	if billing_service.DefaultGate == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(
			common_model.NewApiError("Service temporarily unavailable", nil, "billing").Send(),
		)
	}

	decision := billing_service.DefaultGate.Authorize(userID)
	if !decision.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(
			common_model.NewApiError("Free trial has expired. Please upgrade to pro.", nil, "billing").Send(),
		)
	}

	c.Locals(localsEntitlement, decision)
	return c.Next()
}

// GetDecision returns the entitlement decision stored by
// EntitlementMiddleware. The zero value (not allowed, not pro) is returned
// when the middleware has not run.
func GetDecision(c *fiber.Ctx) billing_model.EntitlementDecision {
	decision, ok := c.Locals(localsEntitlement).(billing_model.EntitlementDecision)
	if !ok {
		return billing_model.EntitlementDecision{}
	}
	return decision
}
