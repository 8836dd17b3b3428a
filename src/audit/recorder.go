package audit

import (
	"time"

	"personnel-api/src/logger"
)

// Recorder persists audit entries and mirrors them to the publisher.
// Recording is best-effort: a failed write is logged, never surfaced to the
// request that triggered it.
type Recorder struct {
	repository Repository
	publisher  Publisher
}

func NewRecorder(repository Repository, publisher Publisher) *Recorder {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Recorder{repository: repository, publisher: publisher}
}

func (r *Recorder) Record(actor, action, subject, detail string) {
	entry := Entry{
		Actor:     actor,
		Action:    action,
		Subject:   subject,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	}

	auditLogger := logger.Default()

	if err := r.repository.Create(entry); err != nil {
		auditLogger.Error(err, "Could not persist audit entry")
		return
	}

	if err := r.publisher.Publish(entry); err != nil {
		auditLogger.Error(err, "Can't publish audit entry to queue")
	}
}
