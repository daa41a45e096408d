package shared

import (
	"context"
	"time"

	"facility-booking/internal/domain/location"
	"facility-booking/internal/domain/material"
	"facility-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one write transaction. Retryable storage conflicts are
	// retried here and nowhere else.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx scopes every repository to the surrounding transaction.
type Tx interface {
	Reservations() ReservationRepository
	Ledger() MaterialLedger
	Intervals() IntervalIndex
	Locations() LocationRepository
	Materials() MaterialRepository
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// FindByIDForUpdate holds a row lock until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, res *reservation.Reservation) error
	// SyncMaterialLines makes the stored lines equal to lines: existing keys are
	// updated, new keys inserted, missing keys deleted.
	SyncMaterialLines(ctx context.Context, reservationID uuid.UUID, lines reservation.MaterialLines) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListApprovedEndedBefore(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

// MaterialLedger is the only writer of material stock.
type MaterialLedger interface {
	// Reserve debits qty or fails with *StockShortage.
	Reserve(ctx context.Context, materialID uuid.UUID, qty int) error
	Release(ctx context.Context, materialID uuid.UUID, qty int) error
	Restock(ctx context.Context, materialID uuid.UUID, qty int) error
}

type IntervalIndex interface {
	// FindConflict returns the first APPROVED reservation on locationID whose
	// slot overlaps slot, ignoring excludeID. nil means the slot is free.
	FindConflict(ctx context.Context, locationID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (*IntervalConflict, error)
}

type LocationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error)
	// Lock serializes approvals and reschedules on one location.
	Lock(ctx context.Context, id uuid.UUID) (*location.Location, error)
	Create(ctx context.Context, loc *location.Location) error
	Update(ctx context.Context, loc *location.Location) error
}

type MaterialRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*material.Material, error)
	// FindByIDs returns the materials that exist; callers compare lengths.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*material.Material, error)
	Create(ctx context.Context, m *material.Material) error
	// UpdateDetails writes name and description; stock goes through MaterialLedger.
	UpdateDetails(ctx context.Context, m *material.Material) error
}

// HasConflict is the boolean form of FindConflict.
func HasConflict(ctx context.Context, idx IntervalIndex, locationID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) (bool, error) {
	c, err := idx.FindConflict(ctx, locationID, slot, excludeID)
	if err != nil {
		return false, err
	}
	return c != nil, nil
}
