// Package memstore keeps the booking data in process memory. It backs the
// "memory" storage driver and the scheduler tests.
package memstore

import (
	"context"
	"sync"
	"time"

	"facility-booking/internal/domain/location"
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type locationRow struct {
	id        uuid.UUID
	name      string
	capacity  int
	kind      location.Type
	createdAt time.Time
	updatedAt time.Time
}

type materialRow struct {
	id          uuid.UUID
	name        string
	description string
	quantity    int
	createdAt   time.Time
	updatedAt   time.Time
}

// Rows are replaced wholesale on write, never mutated in place, so a shallow
// map copy is a full snapshot.
type reservationRow struct {
	id              uuid.UUID
	locationID      uuid.UUID
	requesterID     uuid.UUID
	assigneeID      *uuid.UUID
	start           time.Time
	end             time.Time
	status          reservation.Status
	purpose         string
	approverID      *uuid.UUID
	approvedAt      *time.Time
	rejectionReason *string
	lines           []reservation.MaterialLine
	createdAt       time.Time
	updatedAt       time.Time
}

type state struct {
	locations    map[uuid.UUID]locationRow
	materials    map[uuid.UUID]materialRow
	reservations map[uuid.UUID]reservationRow
}

func newState() *state {
	return &state{
		locations:    make(map[uuid.UUID]locationRow),
		materials:    make(map[uuid.UUID]materialRow),
		reservations: make(map[uuid.UUID]reservationRow),
	}
}

func (s *state) clone() *state {
	out := &state{
		locations:    make(map[uuid.UUID]locationRow, len(s.locations)),
		materials:    make(map[uuid.UUID]materialRow, len(s.materials)),
		reservations: make(map[uuid.UUID]reservationRow, len(s.reservations)),
	}
	for k, v := range s.locations {
		out.locations[k] = v
	}
	for k, v := range s.materials {
		out.materials[k] = v
	}
	for k, v := range s.reservations {
		out.reservations[k] = v
	}
	return out
}

// Store serializes transactions with one mutex. Each transaction works on a
// copy of the state that replaces the committed state only when fn succeeds.
type Store struct {
	mu    sync.Mutex
	state *state
	clock clock.Clock
}

func New(clk clock.Clock) *Store {
	return &Store{state: newState(), clock: clk}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(ctx, &memTx{st: work, now: s.clock.Now().UTC()}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *Store) read(fn func(st *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

type memTx struct {
	st  *state
	now time.Time
}

func (t *memTx) Reservations() shared.ReservationRepository { return &reservationRepo{tx: t} }
func (t *memTx) Ledger() shared.MaterialLedger              { return &ledger{tx: t} }
func (t *memTx) Intervals() shared.IntervalIndex            { return &intervalIndex{tx: t} }
func (t *memTx) Locations() shared.LocationRepository       { return &locationRepo{tx: t} }
func (t *memTx) Materials() shared.MaterialRepository       { return &materialRepo{tx: t} }
