package billing_entity

import (
	"time"

	"github.com/google/uuid"
)

// UsageCounter tracks how many free-tier generation calls a user has consumed.
// Created lazily on the first increment; an absent row means a count of zero.
type UsageCounter struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_usage_counters_user_id;not null" json:"user_id"`
	Count     int       `gorm:"not null;default:0" json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UsageCounter) TableName() string {
	return "usage_counters"
}
