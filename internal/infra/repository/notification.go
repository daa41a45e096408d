package repository

import (
	"context"
	"time"

	"facility-booking/internal/infra/db"
	"facility-booking/internal/usecase/notification"
)

const jobStatusQueued = "queued"

// NotificationRepository writes the notification_jobs outbox. Delivery is
// left to an external mailer that drains queued jobs.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

var _ notification.JobWriter = (*NotificationRepository)(nil)

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
		VALUES ($1, $2, $3, $4, $5)`,
		kind, topic, payload, runAt, jobStatusQueued,
	)
	if err != nil {
		return classify("failed to create notification job", err)
	}
	return nil
}
