package payment

import (
	"time"
)

// SubscriptionDetails is the provider-side view of a subscription, used to
// reconcile the local mirror.
type SubscriptionDetails struct {
	Status            string
	PriceID           string
	CurrentPeriodEnd  time.Time
	CancelAtPeriodEnd bool
}

// Provider defines the read-only interface to the payment provider. The
// entitlement core never manages the subscription lifecycle — checkout and
// webhooks belong to the billing collaborator — it only refreshes state.
type Provider interface {
	// Name returns the provider identifier (e.g. "stripe").
	Name() string

	// GetSubscriptionDetails fetches the current state of a
	// provider-side subscription.
	GetSubscriptionDetails(externalID string) (SubscriptionDetails, error)
}

// ActiveProvider is the configured payment provider, or nil when billing
// provider access is not configured.
var ActiveProvider Provider
