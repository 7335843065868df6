package billing_handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	auth_middleware "github.com/nimbusworks/nimbus-server/src/auth/middleware"
	billing_entity "github.com/nimbusworks/nimbus-server/src/billing/entity"
	billing_model "github.com/nimbusworks/nimbus-server/src/billing/model"
	billing_service "github.com/nimbusworks/nimbus-server/src/billing/service"
	"github.com/nimbusworks/nimbus-server/src/billing/service/payment"
	"github.com/pterm/pterm"
)

// GetSubscription returns the user's subscription summary. When a payment
// provider is configured, the local mirror is refreshed from it first;
// refresh failures degrade to the stored record rather than failing the
// request.
//
//	@Summary		Get subscription status
//	@Description	Returns the user's subscription summary, refreshed from the payment provider when configured.
//	@Tags			Billing
//	@Produce		json
//	@Success		200	{object}	billing_model.SubscriptionSummary	"Subscription summary"
//	@Security		ApiKeyAuth
//	@Router			/billing/subscription [get]
func GetSubscription(c *fiber.Ctx) error {
	userID := auth_middleware.GetUserID(c)

	sub, err := billing_service.Subscriptions.Find(userID)
	if err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Unable to read subscription for user %s: %v", userID, err),
		)
	}
	if sub == nil {
		return c.Status(fiber.StatusOK).JSON(billing_model.SubscriptionSummary{Active: false})
	}

	refreshSubscription(sub)

	return c.Status(fiber.StatusOK).JSON(billing_model.SubscriptionSummary{
		Active:           billing_service.SubscriptionActive(sub, time.Now()),
		PriceID:          sub.StripePriceID,
		CurrentPeriodEnd: sub.StripeCurrentPeriodEnd,
	})
}

// refreshSubscription reconciles the local mirror with the payment provider.
// Best effort: any failure leaves the stored record untouched.
func refreshSubscription(sub *billing_entity.UserSubscription) {
	if payment.ActiveProvider == nil || sub.StripeSubscriptionID == nil || *sub.StripeSubscriptionID == "" {
		return
	}

	details, err := payment.ActiveProvider.GetSubscriptionDetails(*sub.StripeSubscriptionID)
	if err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Unable to refresh subscription %s from %s: %v", *sub.StripeSubscriptionID, payment.ActiveProvider.Name(), err),
		)
		return
	}

	if !details.CurrentPeriodEnd.IsZero() {
		sub.StripeCurrentPeriodEnd = &details.CurrentPeriodEnd
	}
	if details.PriceID != "" {
		sub.StripePriceID = &details.PriceID
	}
	if details.Status == "canceled" {
		sub.StripePriceID = nil
	}

	if err := billing_service.Subscriptions.Save(sub); err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Unable to persist refreshed subscription %s: %v", sub.ID, err),
		)
	}
}
