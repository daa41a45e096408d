package shared

import (
	"fmt"

	"facility-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type IntervalConflict struct {
	ReservationID uuid.UUID
	Slot          reservation.TimeSlot
}

// StockShortage is returned by MaterialLedger.Reserve when fewer units are
// available than requested. Stock is left untouched.
type StockShortage struct {
	MaterialID uuid.UUID
	Requested  int
	Available  int
}

func (e *StockShortage) Error() string {
	return fmt.Sprintf("material %s: requested %d, available %d", e.MaterialID, e.Requested, e.Available)
}
