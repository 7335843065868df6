package billing_service

import (
	"errors"

	"github.com/google/uuid"
	billing_entity "github.com/nimbusworks/nimbus-server/src/billing/entity"
	"github.com/nimbusworks/nimbus-server/src/config/env"
	"github.com/nimbusworks/nimbus-server/src/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errDatabaseUnavailable = errors.New("database is not configured")

// SubscriptionSyncStore extends the read port with the write used when a
// payment provider refresh updates the local mirror.
type SubscriptionSyncStore interface {
	SubscriptionStore
	Save(sub *billing_entity.UserSubscription) error
}

// Subscriptions is the subscription store used by the display endpoints.
// Wired to the database store; tests swap in fakes.
var Subscriptions SubscriptionSyncStore = GormSubscriptionStore{}

// InitGate wires DefaultGate to the database-backed stores.
func InitGate() {
	DefaultGate = NewGate(GormUsageStore{}, GormSubscriptionStore{}, env.MaxFreeCounts)
}

// GormUsageStore persists usage counters through the shared database handle.
type GormUsageStore struct{}

func (GormUsageStore) Find(userID uuid.UUID) (*billing_entity.UsageCounter, error) {
	if database.DB == nil {
		return nil, errDatabaseUnavailable
	}

	var counter billing_entity.UsageCounter
	err := database.DB.Where("user_id = ?", userID).First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &counter, nil
}

// Increment performs an atomic increment-and-fetch upsert. Two concurrent
// requests for the same user serialize on the unique user_id key instead of
// racing a read-then-write.
func (GormUsageStore) Increment(userID uuid.UUID) error {
	if database.DB == nil {
		return errDatabaseUnavailable
	}

	counter := billing_entity.UsageCounter{
		UserID: userID,
		Count:  1,
	}

	return database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"count":      gorm.Expr("usage_counters.count + 1"),
			"updated_at": gorm.Expr("now()"),
		}),
	}).Create(&counter).Error
}

// GormSubscriptionStore persists the local subscription mirror. The gate only
// reads it; writes happen when the payment provider refresh reconciles a row.
type GormSubscriptionStore struct{}

func (GormSubscriptionStore) Find(userID uuid.UUID) (*billing_entity.UserSubscription, error) {
	if database.DB == nil {
		return nil, errDatabaseUnavailable
	}

	var sub billing_entity.UserSubscription
	err := database.DB.Where("user_id = ?", userID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

func (GormSubscriptionStore) Save(sub *billing_entity.UserSubscription) error {
	if database.DB == nil {
		return errDatabaseUnavailable
	}
	return database.DB.Save(sub).Error
}
