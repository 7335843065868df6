package generation_entity

import (
	"time"

	"github.com/google/uuid"
)

// MusicJob records one asynchronous composition job submission. Billed marks
// whether the job has already consumed a free-tier credit, so at-completion
// metering charges each job at most once.
type MusicJob struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TaskID    string    `gorm:"uniqueIndex:idx_music_jobs_task_id;not null" json:"task_id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Billed    bool      `gorm:"not null;default:false" json:"billed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MusicJob) TableName() string {
	return "music_jobs"
}
