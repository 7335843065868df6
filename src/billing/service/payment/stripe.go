package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/nimbusworks/nimbus-server/src/config/env"
	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/subscription"
	"golang.org/x/sync/singleflight"
)

// StripeProvider implements the Provider interface for Stripe.
type StripeProvider struct {
	group singleflight.Group
}

func NewStripeProvider() *StripeProvider {
	stripe.Key = env.StripeSecretKey
	return &StripeProvider{}
}

func (s *StripeProvider) Name() string {
	return "stripe"
}

// GetSubscriptionDetails fetches subscription state from Stripe. Concurrent
// lookups for the same subscription collapse into a single API call.
func (s *StripeProvider) GetSubscriptionDetails(externalID string) (SubscriptionDetails, error) {
	if env.StripeSecretKey == "" {
		return SubscriptionDetails{}, errors.New("stripe is not configured")
	}
	if externalID == "" {
		return SubscriptionDetails{}, errors.New("subscription id is required")
	}

	v, err, _ := s.group.Do(externalID, func() (any, error) {
		sub, err := subscription.Get(externalID, nil)
		if err != nil {
			return SubscriptionDetails{}, fmt.Errorf("failed to get stripe subscription: %w", err)
		}

		details := SubscriptionDetails{
			Status:            string(sub.Status),
			CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		}

		// Period end and price live on the subscription items.
		if sub.Items != nil && len(sub.Items.Data) > 0 {
			item := sub.Items.Data[0]
			details.CurrentPeriodEnd = time.Unix(item.CurrentPeriodEnd, 0)
			if item.Price != nil {
				details.PriceID = item.Price.ID
			}
		}

		return details, nil
	})
	if err != nil {
		return SubscriptionDetails{}, err
	}

	return v.(SubscriptionDetails), nil
}
