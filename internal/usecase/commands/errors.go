package commands

import (
	"fmt"
	"time"

	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrValidation              = errs.New("validation failed")
	ErrConflict                = errs.New("time slot overlaps an approved reservation")
	ErrInsufficientStock       = errs.New("insufficient material stock")
	ErrInvalidState            = errs.New("reservation status does not allow this action")
	ErrNotFound                = errs.New("requested record not found")
	ErrForbidden               = errs.New("actor is not allowed to perform this action")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ConflictError names the APPROVED reservation that blocks a slot. It is
// marked with ErrConflict.
type ConflictError struct {
	LocationID    uuid.UUID
	ReservationID uuid.UUID
	Start         time.Time
	End           time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("location %s is booked from %s to %s by reservation %s",
		e.LocationID, e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339), e.ReservationID)
}

// InsufficientStockError is marked with ErrInsufficientStock.
type InsufficientStockError struct {
	MaterialID   uuid.UUID
	MaterialName string
	Requested    int
	Available    int
}

func (e *InsufficientStockError) Error() string {
	name := e.MaterialName
	if name == "" {
		name = e.MaterialID.String()
	}
	return fmt.Sprintf("not enough %s: requested %d, available %d", name, e.Requested, e.Available)
}

func newConflictError(locationID uuid.UUID, c *shared.IntervalConflict) error {
	return errs.Mark(&ConflictError{
		LocationID:    locationID,
		ReservationID: c.ReservationID,
		Start:         c.Slot.Start(),
		End:           c.Slot.End(),
	}, ErrConflict)
}

func validationError(err error) error {
	return errs.Mark(err, ErrValidation)
}

// storageError maps repository failures to command errors. notFound is used
// for KindNotFound so callers can say which record was missing.
func storageError(err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(errs.Wrap(err, notFound), ErrNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(errs.Wrap(err, notFound), ErrNotFound)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

// passThrough keeps errors that already carry a command identity.
func passThrough(err error, notFound string) error {
	for _, known := range []error{ErrValidation, ErrConflict, ErrInsufficientStock, ErrInvalidState, ErrNotFound, ErrForbidden, ErrDatabaseOperationFailed} {
		if errs.Is(err, known) {
			return err
		}
	}
	return storageError(err, notFound)
}
