package billing_entity

import (
	"time"

	"github.com/google/uuid"
)

// UserSubscription mirrors the billing provider's subscription state for one
// user. The entitlement gate only reads it; rows are written by the billing
// provider sync (see billing_handler.GetSubscription) or external tooling.
type UserSubscription struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                 uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_user_subscriptions_user_id;not null" json:"user_id"`
	StripeCustomerID       *string    `gorm:"index" json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID   *string    `gorm:"index" json:"stripe_subscription_id,omitempty"`
	StripePriceID          *string    `json:"stripe_price_id,omitempty"`
	StripeCurrentPeriodEnd *time.Time `json:"stripe_current_period_end,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

func (UserSubscription) TableName() string {
	return "user_subscriptions"
}
