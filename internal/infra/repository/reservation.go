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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, location_id, requester_id, assignee_id, purpose, start_time, end_time,
	status, approver_id, approved_at, rejection_reason, created_at, updated_at`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

var _ shared.ReservationRepository = (*ReservationRepository)(nil)

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reservations (`+reservationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		res.ID(), res.LocationID(), res.RequesterID(),
		pgconv.UUIDPtrToPgtype(res.AssigneeID()),
		res.Purpose().String(),
		res.TimeSlot().Start(), res.TimeSlot().End(),
		res.Status().String(),
		pgconv.UUIDPtrToPgtype(res.ApproverID()),
		pgconv.TimePtrToPgtype(res.ApprovedAt()),
		pgconv.StringPtrToPgtype(res.RejectionReason()),
		res.CreatedAt(), res.UpdatedAt(),
	)
	if err != nil {
		return classify("failed to create reservation", err)
	}
	return r.insertLines(ctx, res.ID(), res.Materials().All())
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.find(ctx, id, "")
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.find(ctx, id, " FOR UPDATE")
}

func (r *ReservationRepository) find(ctx context.Context, id uuid.UUID, suffix string) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`+suffix, id)

	var (
		rec             reservationRecord
		assigneeID      pgtype.UUID
		approverID      pgtype.UUID
		approvedAt      pgtype.Timestamptz
		rejectionReason pgtype.Text
	)
	err := row.Scan(
		&rec.id, &rec.locationID, &rec.requesterID, &assigneeID, &rec.purpose,
		&rec.start, &rec.end, &rec.status, &approverID, &approvedAt, &rejectionReason,
		&rec.createdAt, &rec.updatedAt,
	)
	if err != nil {
		return nil, classify("failed to find reservation", err)
	}
	rec.assigneeID = pgconv.UUIDPtrFromPgtype(assigneeID)
	rec.approverID = pgconv.UUIDPtrFromPgtype(approverID)
	rec.approvedAt = pgconv.TimePtrFromPgtype(approvedAt)
	rec.rejectionReason = pgconv.StringPtrFromPgtype(rejectionReason)

	rec.lines, err = r.lines(ctx, id)
	if err != nil {
		return nil, err
	}
	return rec.toDomain()
}

func (r *ReservationRepository) lines(ctx context.Context, id uuid.UUID) ([]reservation.MaterialLine, error) {
	rows, err := r.db.Query(ctx, `
		SELECT material_id, quantity_requested
		FROM reservation_materials
		WHERE reservation_id = $1
		ORDER BY material_id`, id)
	if err != nil {
		return nil, classify("failed to load reservation materials", err)
	}
	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (reservation.MaterialLine, error) {
		var l reservation.MaterialLine
		err := row.Scan(&l.MaterialID, &l.Quantity)
		return l, err
	})
	if err != nil {
		return nil, classify("failed to scan reservation materials", err)
	}
	return lines, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET location_id = $2, assignee_id = $3, purpose = $4, start_time = $5, end_time = $6,
			status = $7, approver_id = $8, approved_at = $9, rejection_reason = $10, updated_at = $11
		WHERE id = $1`,
		res.ID(), res.LocationID(),
		pgconv.UUIDPtrToPgtype(res.AssigneeID()),
		res.Purpose().String(),
		res.TimeSlot().Start(), res.TimeSlot().End(),
		res.Status().String(),
		pgconv.UUIDPtrToPgtype(res.ApproverID()),
		pgconv.TimePtrToPgtype(res.ApprovedAt()),
		pgconv.StringPtrToPgtype(res.RejectionReason()),
		res.UpdatedAt(),
	)
	if err != nil {
		return classify("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) SyncMaterialLines(ctx context.Context, reservationID uuid.UUID, lines reservation.MaterialLines) error {
	ids := lines.MaterialIDs()
	if ids == nil {
		// a NULL array would match nothing and keep every stale line
		ids = []uuid.UUID{}
	}
	if _, err := r.db.Exec(ctx, `
		DELETE FROM reservation_materials
		WHERE reservation_id = $1 AND NOT (material_id = ANY($2::uuid[]))`,
		reservationID, ids,
	); err != nil {
		return classify("failed to delete reservation materials", err)
	}

	for _, l := range lines.All() {
		if _, err := r.db.Exec(ctx, `
			INSERT INTO reservation_materials (reservation_id, material_id, quantity_requested)
			VALUES ($1, $2, $3)
			ON CONFLICT (reservation_id, material_id)
			DO UPDATE SET quantity_requested = EXCLUDED.quantity_requested`,
			reservationID, l.MaterialID, l.Quantity,
		); err != nil {
			return classify("failed to upsert reservation material", err)
		}
	}
	return nil
}

func (r *ReservationRepository) insertLines(ctx context.Context, reservationID uuid.UUID, lines []reservation.MaterialLine) error {
	for _, l := range lines {
		if _, err := r.db.Exec(ctx, `
			INSERT INTO reservation_materials (reservation_id, material_id, quantity_requested)
			VALUES ($1, $2, $3)`, reservationID, l.MaterialID, l.Quantity); err != nil {
			return classify("failed to insert reservation material", err)
		}
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return classify("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) ListApprovedEndedBefore(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id FROM reservations
		WHERE status = 'approved' AND end_time <= $1
		ORDER BY end_time, id
		LIMIT $2`, now, limit)
	if err != nil {
		return nil, classify("failed to list ended reservations", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, classify("failed to scan ended reservations", err)
	}
	return ids, nil
}

type reservationRecord struct {
	id              uuid.UUID
	locationID      uuid.UUID
	requesterID     uuid.UUID
	assigneeID      *uuid.UUID
	purpose         string
	start           time.Time
	end             time.Time
	status          string
	approverID      *uuid.UUID
	approvedAt      *time.Time
	rejectionReason *string
	lines           []reservation.MaterialLine
	createdAt       time.Time
	updatedAt       time.Time
}

func (rec reservationRecord) toDomain() (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(rec.start.UTC(), rec.end.UTC())
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid slot", err)
	}
	status, err := reservation.ParseStatus(rec.status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid status", err)
	}
	purpose, err := reservation.NewPurpose(rec.purpose)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid purpose", err)
	}
	lines, err := reservation.NewMaterialLines(rec.lines)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid material lines", err)
	}
	return reservation.ReconstructReservation(
		rec.id, rec.locationID, rec.requesterID, rec.assigneeID,
		slot, status, purpose,
		rec.approverID, rec.approvedAt, rec.rejectionReason,
		lines, rec.createdAt.UTC(), rec.updatedAt.UTC(),
	), nil
}
