package readstore

import (
	"context"
	"fmt"
	"strings"

	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

var _ queries.ReservationViewRepo = (*ReservationReadStore)(nil)

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		view            queries.ReservationView
		assigneeID      pgtype.UUID
		approverID      pgtype.UUID
		approvedAt      pgtype.Timestamptz
		rejectionReason pgtype.Text
	)
	err := r.db.QueryRow(ctx, `
		SELECT r.id, r.location_id, l.name, l.type, r.requester_id, r.assignee_id,
			r.start_time, r.end_time, r.status, r.purpose,
			r.approver_id, r.approved_at, r.rejection_reason, r.created_at, r.updated_at
		FROM reservations r
		JOIN locations l ON l.id = r.location_id
		WHERE r.id = $1`, id,
	).Scan(
		&view.ID, &view.LocationID, &view.LocationName, &view.LocationType,
		&view.RequesterID, &assigneeID, &view.StartTime, &view.EndTime,
		&view.Status, &view.Purpose, &approverID, &approvedAt, &rejectionReason,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, classify("reservation not found", "failed to find reservation by ID", err)
	}
	view.AssigneeID = pgconv.UUIDPtrFromPgtype(assigneeID)
	view.ApproverID = pgconv.UUIDPtrFromPgtype(approverID)
	view.ApprovedAt = pgconv.TimePtrFromPgtype(approvedAt)
	view.RejectionReason = pgconv.StringPtrFromPgtype(rejectionReason)
	view.StartTime = view.StartTime.UTC()
	view.EndTime = view.EndTime.UTC()
	view.CreatedAt = view.CreatedAt.UTC()
	view.UpdatedAt = view.UpdatedAt.UTC()

	view.Materials, err = r.materials(ctx, id)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *ReservationReadStore) FindMaterials(ctx context.Context, reservationID uuid.UUID) ([]*queries.ReservationMaterialView, error) {
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)`, reservationID,
	).Scan(&exists); err != nil {
		return nil, classify("", "failed to check reservation", err)
	}
	if !exists {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return r.materials(ctx, reservationID)
}

func (r *ReservationReadStore) materials(ctx context.Context, reservationID uuid.UUID) ([]*queries.ReservationMaterialView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT rm.material_id, m.name, rm.quantity_requested
		FROM reservation_materials rm
		JOIN materials m ON m.id = rm.material_id
		WHERE rm.reservation_id = $1
		ORDER BY rm.material_id`, reservationID)
	if err != nil {
		return nil, classify("", "failed to load reservation materials", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ReservationMaterialView, error) {
		var v queries.ReservationMaterialView
		err := row.Scan(&v.MaterialID, &v.MaterialName, &v.QuantityRequested)
		return &v, err
	})
	if err != nil {
		return nil, classify("", "failed to scan reservation materials", err)
	}
	return out, nil
}

// List pages by (start_time, id), the same key the cursor encodes.
func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter, after *queries.ListPosition, limit int) ([]*queries.ReservationListItem, error) {
	where, args := listConditions(filter, after)
	args = append(args, limit)

	sql := `
		SELECT r.id, r.location_id, l.name, r.requester_id, r.assignee_id,
			r.start_time, r.end_time, r.status, r.created_at
		FROM reservations r
		JOIN locations l ON l.id = r.location_id`
	if len(where) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	sql += fmt.Sprintf("\n\t\tORDER BY r.start_time, r.id\n\t\tLIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, classify("", "failed to list reservations", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ReservationListItem, error) {
		var (
			item       queries.ReservationListItem
			assigneeID pgtype.UUID
		)
		if err := row.Scan(
			&item.ID, &item.LocationID, &item.LocationName, &item.RequesterID, &assigneeID,
			&item.StartTime, &item.EndTime, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.AssigneeID = pgconv.UUIDPtrFromPgtype(assigneeID)
		item.StartTime = item.StartTime.UTC()
		item.EndTime = item.EndTime.UTC()
		item.CreatedAt = item.CreatedAt.UTC()
		return &item, nil
	})
	if err != nil {
		return nil, classify("", "failed to scan reservations", err)
	}
	return items, nil
}

func listConditions(filter queries.ReservationFilter, after *queries.ListPosition) ([]string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = strings.ToLower(strings.TrimSpace(s))
		}
		add("r.status = ANY($%d::text[])", statuses)
	}
	if filter.LocationID != nil {
		add("r.location_id = $%d", *filter.LocationID)
	}
	if filter.RequesterID != nil {
		add("r.requester_id = $%d", *filter.RequesterID)
	}
	if filter.From != nil {
		add("r.end_time > $%d", *filter.From)
	}
	if filter.To != nil {
		add("r.start_time < $%d", *filter.To)
	}
	if after != nil {
		args = append(args, after.StartTime, after.ID)
		where = append(where, fmt.Sprintf("(r.start_time, r.id) > ($%d, $%d)", len(args)-1, len(args)))
	}
	return where, args
}

