package billing_model

import (
	"time"
)

// GracePeriod tolerates clock skew and slow webhook propagation after a
// subscription's nominal period end. A subscription is still treated as
// active until period end + GracePeriod.
const GracePeriod = 24 * time.Hour

// EntitlementDecision is the per-request outcome of the entitlement gate.
// Never cached across requests.
type EntitlementDecision struct {
	Allowed bool `json:"allowed"`
	IsPro   bool `json:"is_pro"`
}

// UsageSummary is the display shape for GET /billing/usage.
type UsageSummary struct {
	Count int  `json:"count"`
	Limit int  `json:"limit"`
	IsPro bool `json:"is_pro"`
}

// SubscriptionSummary is the display shape for GET /billing/subscription.
type SubscriptionSummary struct {
	Active           bool       `json:"active"`
	PriceID          *string    `json:"price_id,omitempty"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
}
