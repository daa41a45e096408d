package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type Kind string

const (
	KindReservationCreated   Kind = "reservation.created"
	KindReservationApproved  Kind = "reservation.approved"
	KindReservationRejected  Kind = "reservation.rejected"
	KindReservationCancelled Kind = "reservation.cancelled"
	KindReservationCompleted Kind = "reservation.completed"
	KindReservationDeleted   Kind = "reservation.deleted"
)

// Event describes a committed reservation transition. ActorID is uuid.Nil for
// transitions made by the system (the completion sweep).
type Event struct {
	Kind          Kind       `json:"kind"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	LocationID    uuid.UUID  `json:"location_id"`
	RequesterID   uuid.UUID  `json:"requester_id"`
	AssigneeID    *uuid.UUID `json:"assignee_id,omitempty"`
	ActorID       uuid.UUID  `json:"actor_id"`
	Status        string     `json:"status"`
	Reason        string     `json:"reason,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

func (e Event) Topic() string {
	return "reservation:" + e.ReservationID.String()
}

type Sink interface {
	Publish(ctx context.Context, ev Event) error
}

// Deliver publishes events once the transaction that produced them has
// committed. Delivery failures never undo a committed transition; they are
// logged and dropped.
func Deliver(ctx context.Context, sink Sink, events ...Event) {
	if sink == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	for _, ev := range events {
		if err := sink.Publish(ctx, ev); err != nil {
			slog.Warn("failed to publish notification",
				"kind", string(ev.Kind),
				"reservation_id", ev.ReservationID.String(),
				"error", err.Error())
		}
	}
}

type JobWriter interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

// OutboxSink stores events as notification jobs for an external mailer to pick up.
type OutboxSink struct {
	jobs JobWriter
}

func NewOutboxSink(jobs JobWriter) *OutboxSink {
	return &OutboxSink{jobs: jobs}
}

func (s *OutboxSink) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return s.jobs.CreateJob(ctx, string(ev.Kind), ev.Topic(), payload, ev.OccurredAt)
}

type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Publish(ctx context.Context, ev Event) error {
	s.logger.InfoContext(ctx, "reservation event",
		"kind", string(ev.Kind),
		"reservation_id", ev.ReservationID.String(),
		"actor_id", ev.ActorID.String(),
		"status", ev.Status)
	return nil
}
