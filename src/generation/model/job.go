package generation_model

// JobStatus is the lifecycle state of an asynchronous composition job:
// composing -> running -> {composed | failed}.
type JobStatus string

const (
	JobComposing JobStatus = "composing"
	JobRunning   JobStatus = "running"
	JobComposed  JobStatus = "composed"
	JobFailed    JobStatus = "failed"
)

// Terminal reports whether the job will make no further progress. A failed
// job is never retried; a fresh submission is a new job with a new id.
func (s JobStatus) Terminal() bool {
	return s == JobComposed || s == JobFailed
}

// ParseJobStatus maps a provider status string onto the job state machine.
// Unknown or error-ish statuses map to failed so clients stop polling.
func ParseJobStatus(raw string) JobStatus {
	switch JobStatus(raw) {
	case JobComposing, JobRunning, JobComposed:
		return JobStatus(raw)
	default:
		return JobFailed
	}
}

// JobHandle identifies a submitted asynchronous job.
type JobHandle struct {
	TaskID string    `json:"task_id"`
	Status JobStatus `json:"status"`
}

// MusicStatusResponse is the poll reply for a composition job.
type MusicStatusResponse struct {
	Status   JobStatus `json:"status"`
	TrackURL string    `json:"track_url,omitempty"`
}
