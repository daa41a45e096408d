package repository

import (
	"context"
	"time"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// IntervalIndex answers overlap questions from the reservations table. The
// half-open range test matches the exclusion constraint on approved rows.
type IntervalIndex struct {
	db db.DBTX
}

func NewIntervalIndex(dbtx db.DBTX) *IntervalIndex {
	return &IntervalIndex{db: dbtx}
}

var _ shared.IntervalIndex = (*IntervalIndex)(nil)

func (ix *IntervalIndex) FindConflict(ctx context.Context, locationID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (*shared.IntervalConflict, error) {
	var (
		id         uuid.UUID
		start, end time.Time
	)
	err := ix.db.QueryRow(ctx, `
		SELECT id, start_time, end_time
		FROM reservations
		WHERE location_id = $1
			AND status = 'approved'
			AND start_time < $3
			AND end_time > $2
			AND ($4::uuid IS NULL OR id <> $4)
		ORDER BY start_time, id
		LIMIT 1`,
		locationID, slot.Start(), slot.End(), pgconv.UUIDPtrToPgtype(excludeID),
	).Scan(&id, &start, &end)
	if pgconv.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("failed to look up overlapping reservations", err)
	}

	existing, err := reservation.NewTimeSlot(start.UTC(), end.UTC())
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid slot", err)
	}
	return &shared.IntervalConflict{ReservationID: id, Slot: existing}, nil
}
