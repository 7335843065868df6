package billing_service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	billing_entity "github.com/nimbusworks/nimbus-server/src/billing/entity"
	billing_model "github.com/nimbusworks/nimbus-server/src/billing/model"
	"github.com/pterm/pterm"
)

// UsageStore is the persistence port for free-tier counters.
type UsageStore interface {
	// Find returns the user's counter, or nil when no row exists yet.
	Find(userID uuid.UUID) (*billing_entity.UsageCounter, error)
	// Increment atomically adds one billable unit to the user's counter,
	// creating the row with count 1 when absent.
	Increment(userID uuid.UUID) error
}

// SubscriptionStore is the read-only port for subscription state.
type SubscriptionStore interface {
	// Find returns the user's subscription record, or nil when none exists.
	Find(userID uuid.UUID) (*billing_entity.UserSubscription, error)
}

// Gate decides whether a request may perform paid work and records usage
// after the work succeeds. Every read fails closed: when the answer cannot be
// determined, the caller is not entitled.
type Gate struct {
	usage         UsageStore
	subscriptions SubscriptionStore
	maxFreeCounts int
}

// DefaultGate is the gate wired to the database stores. Set by InitGate at
// server startup; tests swap in fakes.
var DefaultGate *Gate

func NewGate(usage UsageStore, subscriptions SubscriptionStore, maxFreeCounts int) *Gate {
	return &Gate{
		usage:         usage,
		subscriptions: subscriptions,
		maxFreeCounts: maxFreeCounts,
	}
}

// IsSubscribed reports whether the user has an active subscription. A
// subscription is active iff it has a price id and its current period end
// plus the grace period is still in the future. Missing users, missing
// records, malformed data and storage errors all return false — the check is
// advisory and defaults to "not entitled".
func (g *Gate) IsSubscribed(userID uuid.UUID) bool {
	if userID == uuid.Nil {
		return false
	}

	sub, err := g.subscriptions.Find(userID)
	if err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Unable to read subscription for user %s: %v", userID, err),
		)
		return false
	}
	if sub == nil {
		return false
	}

	return SubscriptionActive(sub, time.Now())
}

// SubscriptionActive applies the activity rule to a subscription record at
// the given instant.
func SubscriptionActive(sub *billing_entity.UserSubscription, now time.Time) bool {
	if sub.StripePriceID == nil || *sub.StripePriceID == "" {
		return false
	}
	if sub.StripeCurrentPeriodEnd == nil {
		return false
	}
	return now.Before(sub.StripeCurrentPeriodEnd.Add(billing_model.GracePeriod))
}

// HasFreeQuota reports whether the user still has free-tier calls available.
// Read-only; an absent counter means a count of zero. Fails closed on storage
// errors and missing identity.
func (g *Gate) HasFreeQuota(userID uuid.UUID) bool {
	if userID == uuid.Nil {
		return false
	}

	counter, err := g.usage.Find(userID)
	if err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Unable to read usage counter for user %s: %v", userID, err),
		)
		return false
	}

	return counter == nil || counter.Count < g.maxFreeCounts
}

// Authorize combines the subscription and quota checks. Subscribed users are
// allowed without touching the quota counter; both checks are side-effect
// free reads.
func (g *Gate) Authorize(userID uuid.UUID) billing_model.EntitlementDecision {
	isPro := g.IsSubscribed(userID)
	if isPro {
		return billing_model.EntitlementDecision{Allowed: true, IsPro: true}
	}

	return billing_model.EntitlementDecision{
		Allowed: g.HasFreeQuota(userID),
		IsPro:   false,
	}
}

// RecordUsage adds one billable unit to the user's counter. Call it at most
// once per successfully completed unit of work, and never for pro users.
// Failures are logged, never returned: losing an increment is preferable to
// failing an otherwise-successful request.
func (g *Gate) RecordUsage(userID uuid.UUID) {
	if userID == uuid.Nil {
		pterm.DefaultLogger.Warn("RecordUsage called without a user id")
		return
	}

	if err := g.usage.Increment(userID); err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Unable to increment usage counter for user %s: %v", userID, err),
		)
	}
}

// CurrentUsage returns the persisted counter value for display. Zero when
// absent or unreadable; never used for authorization.
func (g *Gate) CurrentUsage(userID uuid.UUID) int {
	if userID == uuid.Nil {
		return 0
	}

	counter, err := g.usage.Find(userID)
	if err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Unable to read usage counter for user %s: %v", userID, err),
		)
		return 0
	}
	if counter == nil {
		return 0
	}

	return counter.Count
}

// MaxFreeCounts exposes the configured free-tier limit for display.
func (g *Gate) MaxFreeCounts() int {
	return g.maxFreeCounts
}
