//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"facility-booking/internal/domain/location"
	"facility-booking/internal/domain/material"
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/memstore"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func seed(t *testing.T, store *memstore.Store, qty int) (uuid.UUID, uuid.UUID) {
	t.Helper()
	loc, err := location.NewLocation(uuid.Nil, "Lab", 10, location.TypeLaboratory)
	require.NoError(t, err)
	m, err := material.NewMaterial(uuid.Nil, "Projector", "", qty)
	require.NoError(t, err)

	err = store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Locations().Create(ctx, loc); err != nil {
			return err
		}
		return tx.Materials().Create(ctx, m)
	})
	require.NoError(t, err)
	return loc.ID(), m.ID()
}

func stock(t *testing.T, store *memstore.Store, id uuid.UUID) int {
	t.Helper()
	v, err := memstore.NewDirectoryViews(store).FindMaterial(context.Background(), id)
	require.NoError(t, err)
	return v.QuantityAvailable
}

func approvedAt(t *testing.T, locationID uuid.UUID, startHour int) *reservation.Reservation {
	t.Helper()
	slot, err := reservation.NewTimeSlot(
		time.Date(2026, 3, 2, startHour, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, startHour+2, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	res, err := reservation.NewReservation(now, locationID, uuid.New(), nil, slot, reservation.Purpose{}, reservation.MaterialLines{})
	require.NoError(t, err)
	require.NoError(t, res.Approve(uuid.New(), now))
	return res
}

func TestStore_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(clock.NewMockClock(now))
	_, projector := seed(t, store, 5)

	boom := errors.New("boom")
	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Ledger().Reserve(ctx, projector, 4))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 5, stock(t, store, projector))
}

func TestLedger(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(clock.NewMockClock(now))
	_, projector := seed(t, store, 2)

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Ledger().Reserve(ctx, projector, 3)
	})
	var shortage *shared.StockShortage
	require.True(t, errs.As(err, &shortage))
	assert.Equal(t, 3, shortage.Requested)
	assert.Equal(t, 2, shortage.Available)

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Ledger().Release(ctx, uuid.New(), 1)
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Ledger().Reserve(ctx, projector, 2); err != nil {
			return err
		}
		return tx.Ledger().Restock(ctx, projector, 5)
	}))
	assert.Equal(t, 5, stock(t, store, projector))
}

func TestLedger_ConcurrentReserveNeverOverdraws(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(clock.NewMockClock(now))
	_, projector := seed(t, store, 7)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.Ledger().Reserve(ctx, projector, 1)
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, stock(t, store, projector))
}

func TestReservations_ExclusionOnApprovedRows(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(clock.NewMockClock(now))
	lab, _ := seed(t, store, 1)

	first := approvedAt(t, lab, 10)
	overlapping := approvedAt(t, lab, 11)
	touching := approvedAt(t, lab, 12)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, first)
	}))

	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, overlapping)
	})
	assert.True(t, infra.IsKind(err, infra.KindConflict))

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, touching)
	}))

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Intervals().FindConflict(ctx, lab, overlapping.TimeSlot(), nil)
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, first.ID(), c.ReservationID)

		excluded := first.ID()
		c, err = tx.Intervals().FindConflict(ctx, lab, first.TimeSlot(), &excluded)
		require.NoError(t, err)
		assert.Nil(t, c)
		return nil
	})
	require.NoError(t, err)
}

func TestReservations_SyncAndSweepListing(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(clock.NewMockClock(now))
	lab, projector := seed(t, store, 3)
	res := approvedAt(t, lab, 10)

	lines, err := reservation.NewMaterialLines([]reservation.MaterialLine{{MaterialID: projector, Quantity: 2}})
	require.NoError(t, err)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		return tx.Reservations().SyncMaterialLines(ctx, res.ID(), lines)
	}))

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		got, err := tx.Reservations().FindByID(ctx, res.ID())
		require.NoError(t, err)
		assert.Equal(t, 2, got.Materials().QuantityOf(projector))

		ids, err := tx.Reservations().ListApprovedEndedBefore(ctx, time.Date(2026, 3, 2, 11, 59, 0, 0, time.UTC), 10)
		require.NoError(t, err)
		assert.Empty(t, ids)

		ids, err = tx.Reservations().ListApprovedEndedBefore(ctx, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), 10)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{res.ID()}, ids)

		return tx.Reservations().SyncMaterialLines(ctx, res.ID(), reservation.MaterialLines{})
	})
	require.NoError(t, err)

	view, err := memstore.NewReservationViews(store).FindByID(ctx, res.ID())
	require.NoError(t, err)
	assert.Empty(t, view.Materials)
}
