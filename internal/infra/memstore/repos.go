package memstore

import (
	"context"
	"sort"
	"time"

	"facility-booking/internal/domain/location"
	"facility-booking/internal/domain/material"
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/infra"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type reservationRepo struct {
	tx *memTx
}

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	st := r.tx.st
	if _, dup := st.reservations[res.ID()]; dup {
		return infra.WrapRepoErr("reservation already exists", nil, infra.KindDuplicateKey)
	}
	row := toReservationRow(res)
	if err := r.checkReferences(row); err != nil {
		return err
	}
	if err := r.checkExclusion(row); err != nil {
		return err
	}
	st.reservations[row.id] = row
	return nil
}

func (r *reservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, ok := r.tx.st.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return fromReservationRow(row)
}

// The store mutex already isolates the whole transaction.
func (r *reservationRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.FindByID(ctx, id)
}

func (r *reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	st := r.tx.st
	current, ok := st.reservations[res.ID()]
	if !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	row := toReservationRow(res)
	// lines change only through SyncMaterialLines
	row.lines = current.lines
	row.createdAt = current.createdAt
	row.updatedAt = r.tx.now
	if err := r.checkReferences(row); err != nil {
		return err
	}
	if err := r.checkExclusion(row); err != nil {
		return err
	}
	st.reservations[row.id] = row
	return nil
}

func (r *reservationRepo) SyncMaterialLines(_ context.Context, reservationID uuid.UUID, lines reservation.MaterialLines) error {
	st := r.tx.st
	row, ok := st.reservations[reservationID]
	if !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	for _, id := range lines.MaterialIDs() {
		if _, ok := st.materials[id]; !ok {
			return infra.WrapRepoErr("material referenced by line does not exist", nil, infra.KindForeignKeyViolated)
		}
	}
	row.lines = lines.All()
	st.reservations[reservationID] = row
	return nil
}

func (r *reservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tx.st.reservations[id]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	delete(r.tx.st.reservations, id)
	return nil
}

func (r *reservationRepo) ListApprovedEndedBefore(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	var rows []reservationRow
	for _, row := range r.tx.st.reservations {
		if row.status == reservation.StatusApproved && !row.end.After(now) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].end.Equal(rows[j].end) {
			return rows[i].end.Before(rows[j].end)
		}
		return rows[i].id.String() < rows[j].id.String()
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.id
	}
	return ids, nil
}

func (r *reservationRepo) checkReferences(row reservationRow) error {
	if _, ok := r.tx.st.locations[row.locationID]; !ok {
		return infra.WrapRepoErr("location referenced by reservation does not exist", nil, infra.KindForeignKeyViolated)
	}
	for _, l := range row.lines {
		if _, ok := r.tx.st.materials[l.MaterialID]; !ok {
			return infra.WrapRepoErr("material referenced by line does not exist", nil, infra.KindForeignKeyViolated)
		}
	}
	return nil
}

// checkExclusion mirrors the exclusion constraint on approved slots.
func (r *reservationRepo) checkExclusion(row reservationRow) error {
	if row.status != reservation.StatusApproved {
		return nil
	}
	for _, other := range r.tx.st.reservations {
		if other.id == row.id || other.status != reservation.StatusApproved || other.locationID != row.locationID {
			continue
		}
		if other.start.Before(row.end) && other.end.After(row.start) {
			return infra.WrapRepoErr("approved reservations overlap", nil, infra.KindConflict)
		}
	}
	return nil
}

type ledger struct {
	tx *memTx
}

func (l *ledger) Reserve(_ context.Context, materialID uuid.UUID, qty int) error {
	if qty <= 0 {
		return material.ErrInvalidQuantity
	}
	row, ok := l.tx.st.materials[materialID]
	if !ok {
		return infra.WrapRepoErr("material not found", nil, infra.KindNotFound)
	}
	if qty > row.quantity {
		return &shared.StockShortage{MaterialID: materialID, Requested: qty, Available: row.quantity}
	}
	row.quantity -= qty
	row.updatedAt = l.tx.now
	l.tx.st.materials[materialID] = row
	return nil
}

func (l *ledger) Release(_ context.Context, materialID uuid.UUID, qty int) error {
	if qty <= 0 {
		return material.ErrInvalidQuantity
	}
	row, ok := l.tx.st.materials[materialID]
	if !ok {
		return infra.WrapRepoErr("material not found", nil, infra.KindNotFound)
	}
	row.quantity += qty
	row.updatedAt = l.tx.now
	l.tx.st.materials[materialID] = row
	return nil
}

func (l *ledger) Restock(ctx context.Context, materialID uuid.UUID, qty int) error {
	return l.Release(ctx, materialID, qty)
}

type intervalIndex struct {
	tx *memTx
}

func (ix *intervalIndex) FindConflict(_ context.Context, locationID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (*shared.IntervalConflict, error) {
	var found *reservationRow
	for _, row := range ix.tx.st.reservations {
		if row.status != reservation.StatusApproved || row.locationID != locationID {
			continue
		}
		if excludeID != nil && row.id == *excludeID {
			continue
		}
		if !(row.start.Before(slot.End()) && row.end.After(slot.Start())) {
			continue
		}
		if found == nil || row.start.Before(found.start) {
			r := row
			found = &r
		}
	}
	if found == nil {
		return nil, nil
	}
	existing, err := reservation.NewTimeSlot(found.start, found.end)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid slot", err)
	}
	return &shared.IntervalConflict{ReservationID: found.id, Slot: existing}, nil
}

type locationRepo struct {
	tx *memTx
}

func (r *locationRepo) FindByID(_ context.Context, id uuid.UUID) (*location.Location, error) {
	row, ok := r.tx.st.locations[id]
	if !ok {
		return nil, infra.WrapRepoErr("location not found", nil, infra.KindNotFound)
	}
	return location.ReconstructLocation(row.id, row.name, row.capacity, row.kind, row.createdAt, row.updatedAt), nil
}

func (r *locationRepo) Lock(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	return r.FindByID(ctx, id)
}

func (r *locationRepo) Create(_ context.Context, loc *location.Location) error {
	if _, dup := r.tx.st.locations[loc.ID()]; dup {
		return infra.WrapRepoErr("location already exists", nil, infra.KindDuplicateKey)
	}
	r.tx.st.locations[loc.ID()] = locationRow{
		id:        loc.ID(),
		name:      loc.Name(),
		capacity:  loc.Capacity(),
		kind:      loc.Type(),
		createdAt: r.tx.now,
		updatedAt: r.tx.now,
	}
	return nil
}

func (r *locationRepo) Update(_ context.Context, loc *location.Location) error {
	row, ok := r.tx.st.locations[loc.ID()]
	if !ok {
		return infra.WrapRepoErr("location not found", nil, infra.KindNotFound)
	}
	row.name = loc.Name()
	row.capacity = loc.Capacity()
	row.kind = loc.Type()
	row.updatedAt = r.tx.now
	r.tx.st.locations[loc.ID()] = row
	return nil
}

type materialRepo struct {
	tx *memTx
}

func (r *materialRepo) FindByID(_ context.Context, id uuid.UUID) (*material.Material, error) {
	row, ok := r.tx.st.materials[id]
	if !ok {
		return nil, infra.WrapRepoErr("material not found", nil, infra.KindNotFound)
	}
	return toMaterial(row), nil
}

func (r *materialRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*material.Material, error) {
	out := make([]*material.Material, 0, len(ids))
	for _, id := range ids {
		if row, ok := r.tx.st.materials[id]; ok {
			out = append(out, toMaterial(row))
		}
	}
	return out, nil
}

func (r *materialRepo) Create(_ context.Context, m *material.Material) error {
	if _, dup := r.tx.st.materials[m.ID()]; dup {
		return infra.WrapRepoErr("material already exists", nil, infra.KindDuplicateKey)
	}
	r.tx.st.materials[m.ID()] = materialRow{
		id:          m.ID(),
		name:        m.Name(),
		description: m.Description(),
		quantity:    m.QuantityAvailable(),
		createdAt:   r.tx.now,
		updatedAt:   r.tx.now,
	}
	return nil
}

func (r *materialRepo) UpdateDetails(_ context.Context, m *material.Material) error {
	row, ok := r.tx.st.materials[m.ID()]
	if !ok {
		return infra.WrapRepoErr("material not found", nil, infra.KindNotFound)
	}
	row.name = m.Name()
	row.description = m.Description()
	row.updatedAt = r.tx.now
	r.tx.st.materials[m.ID()] = row
	return nil
}

func toMaterial(row materialRow) *material.Material {
	return material.ReconstructMaterial(row.id, row.name, row.description, row.quantity, row.createdAt, row.updatedAt)
}

func toReservationRow(res *reservation.Reservation) reservationRow {
	return reservationRow{
		id:              res.ID(),
		locationID:      res.LocationID(),
		requesterID:     res.RequesterID(),
		assigneeID:      res.AssigneeID(),
		start:           res.TimeSlot().Start(),
		end:             res.TimeSlot().End(),
		status:          res.Status(),
		purpose:         res.Purpose().String(),
		approverID:      res.ApproverID(),
		approvedAt:      copyTime(res.ApprovedAt()),
		rejectionReason: copyString(res.RejectionReason()),
		lines:           res.Materials().All(),
		createdAt:       res.CreatedAt(),
		updatedAt:       res.UpdatedAt(),
	}
}

func fromReservationRow(row reservationRow) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(row.start, row.end)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid slot", err)
	}
	purpose, err := reservation.NewPurpose(row.purpose)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid purpose", err)
	}
	lines, err := reservation.NewMaterialLines(row.lines)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid material lines", err)
	}
	return reservation.ReconstructReservation(
		row.id, row.locationID, row.requesterID, row.assigneeID,
		slot, row.status, purpose,
		row.approverID, copyTime(row.approvedAt), copyString(row.rejectionReason),
		lines, row.createdAt, row.updatedAt,
	), nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
