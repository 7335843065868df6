package generation_service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/nimbusworks/nimbus-server/src/database"
	generation_entity "github.com/nimbusworks/nimbus-server/src/generation/entity"
	"gorm.io/gorm"
)

// JobStore tracks asynchronous composition jobs so completion-time metering
// charges each job at most once.
type JobStore interface {
	Create(job *generation_entity.MusicJob) error
	// FindByTask returns the job for a provider task id, or nil when unknown.
	FindByTask(taskID string) (*generation_entity.MusicJob, error)
	// MarkBilled flips Billed from false to true. Returns true only for the
	// call that performed the transition, so concurrent polls bill once.
	MarkBilled(taskID string) (bool, error)
}

// Jobs is the active job store. Wired to the database store at server
// startup; tests swap in fakes.
var Jobs JobStore = GormJobStore{}

var errJobStoreUnavailable = errors.New("database is not configured")

// GormJobStore persists music jobs through the shared database handle.
type GormJobStore struct{}

func (GormJobStore) Create(job *generation_entity.MusicJob) error {
	if database.DB == nil {
		return errJobStoreUnavailable
	}
	return database.DB.Create(job).Error
}

func (GormJobStore) FindByTask(taskID string) (*generation_entity.MusicJob, error) {
	if database.DB == nil {
		return nil, errJobStoreUnavailable
	}

	var job generation_entity.MusicJob
	err := database.DB.Where("task_id = ?", taskID).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &job, nil
}

func (GormJobStore) MarkBilled(taskID string) (bool, error) {
	if database.DB == nil {
		return false, errJobStoreUnavailable
	}

	result := database.DB.Model(&generation_entity.MusicJob{}).
		Where("task_id = ? AND billed = ?", taskID, false).
		Update("billed", true)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// NewMusicJob builds a job row for a fresh submission.
func NewMusicJob(taskID string, userID uuid.UUID, billed bool) *generation_entity.MusicJob {
	return &generation_entity.MusicJob{
		TaskID: taskID,
		UserID: userID,
		Billed: billed,
	}
}
