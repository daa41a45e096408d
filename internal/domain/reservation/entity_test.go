//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"facility-booking/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func mustSlot(t *testing.T, start, end time.Time) reservation.TimeSlot {
	t.Helper()
	slot, err := reservation.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func newPending(t *testing.T) *reservation.Reservation {
	t.Helper()
	lines, err := reservation.NewMaterialLines([]reservation.MaterialLine{{MaterialID: uuid.New(), Quantity: 2}})
	require.NoError(t, err)
	purpose, err := reservation.NewPurpose("chemistry practical")
	require.NoError(t, err)

	res, err := reservation.NewReservation(
		baseTime, uuid.New(), uuid.New(), nil,
		mustSlot(t, baseTime.Add(time.Hour), baseTime.Add(2*time.Hour)),
		purpose, lines,
	)
	require.NoError(t, err)
	return res
}

func TestTimeSlot(t *testing.T) {
	t.Run("start must precede end", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(baseTime, baseTime)
		assert.ErrorIs(t, err, reservation.ErrEmptyTimeSlot)

		_, err = reservation.NewTimeSlot(baseTime.Add(time.Hour), baseTime)
		assert.ErrorIs(t, err, reservation.ErrEmptyTimeSlot)
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		a := mustSlot(t, baseTime, baseTime.Add(time.Hour))
		touching := mustSlot(t, baseTime.Add(time.Hour), baseTime.Add(2*time.Hour))
		inside := mustSlot(t, baseTime.Add(15*time.Minute), baseTime.Add(30*time.Minute))
		straddling := mustSlot(t, baseTime.Add(-time.Minute), baseTime.Add(time.Minute))

		assert.False(t, a.Overlaps(touching))
		assert.False(t, touching.Overlaps(a))
		assert.True(t, a.Overlaps(inside))
		assert.True(t, inside.Overlaps(a))
		assert.True(t, a.Overlaps(straddling))
	})

	t.Run("start slack", func(t *testing.T) {
		slot := mustSlot(t, baseTime.Add(-30*time.Second), baseTime.Add(time.Hour))
		assert.NoError(t, slot.ValidateStartAt(baseTime, time.Minute))
		assert.ErrorIs(t, slot.ValidateStartAt(baseTime, 0), reservation.ErrStartInPast)
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*3600)
		slot := mustSlot(t, baseTime.In(tokyo), baseTime.Add(time.Hour).In(tokyo))
		assert.Equal(t, time.UTC, slot.Start().Location())
		assert.True(t, slot.Start().Equal(baseTime))
	})
}

func TestMaterialLines(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	t.Run("sorted by material id", func(t *testing.T) {
		lines, err := reservation.NewMaterialLines([]reservation.MaterialLine{
			{MaterialID: a, Quantity: 1},
			{MaterialID: b, Quantity: 3},
		})
		require.NoError(t, err)

		ids := lines.MaterialIDs()
		require.Len(t, ids, 2)
		assert.Less(t, ids[0].String(), ids[1].String())
		assert.Equal(t, 3, lines.QuantityOf(b))
		assert.Equal(t, 0, lines.QuantityOf(uuid.New()))
	})

	t.Run("rejects invalid lines", func(t *testing.T) {
		_, err := reservation.NewMaterialLines([]reservation.MaterialLine{{MaterialID: a, Quantity: 0}})
		assert.ErrorIs(t, err, reservation.ErrInvalidLineQuantity)

		_, err = reservation.NewMaterialLines([]reservation.MaterialLine{{MaterialID: uuid.Nil, Quantity: 1}})
		assert.ErrorIs(t, err, reservation.ErrInvalidLineMaterial)

		_, err = reservation.NewMaterialLines([]reservation.MaterialLine{
			{MaterialID: a, Quantity: 1},
			{MaterialID: a, Quantity: 2},
		})
		assert.ErrorIs(t, err, reservation.ErrDuplicateLineMaterial)
	})

	t.Run("equality ignores input order", func(t *testing.T) {
		x, err := reservation.NewMaterialLines([]reservation.MaterialLine{{MaterialID: a, Quantity: 1}, {MaterialID: b, Quantity: 2}})
		require.NoError(t, err)
		y, err := reservation.NewMaterialLines([]reservation.MaterialLine{{MaterialID: b, Quantity: 2}, {MaterialID: a, Quantity: 1}})
		require.NoError(t, err)
		assert.True(t, x.Equal(y))
	})
}

func TestTextLimits(t *testing.T) {
	_, err := reservation.NewPurpose(strings.Repeat("p", reservation.MaxPurposeLength))
	assert.NoError(t, err)
	_, err = reservation.NewPurpose(strings.Repeat("p", reservation.MaxPurposeLength+1))
	assert.ErrorIs(t, err, reservation.ErrPurposeTooLong)

	_, err = reservation.NewRejectionReason("   ")
	assert.ErrorIs(t, err, reservation.ErrRejectionReasonMissing)
	_, err = reservation.NewRejectionReason(strings.Repeat("r", reservation.MaxRejectionReasonLength+1))
	assert.ErrorIs(t, err, reservation.ErrRejectionReasonTooLong)
}

func TestReservation_StateMachine(t *testing.T) {
	approver := uuid.New()
	at := baseTime.Add(5 * time.Minute)

	t.Run("new reservations are pending and hold no stock", func(t *testing.T) {
		res := newPending(t)
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.False(t, res.HoldsStock())
		assert.Nil(t, res.ApproverID())
	})

	t.Run("approve then complete", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Approve(approver, at))
		assert.True(t, res.HoldsStock())
		assert.Equal(t, approver, *res.ApproverID())
		assert.Equal(t, at, *res.ApprovedAt())
		assert.Nil(t, res.RejectionReason())

		require.NoError(t, res.Complete(at.Add(time.Hour)))
		assert.Equal(t, reservation.StatusCompleted, res.Status())
		assert.False(t, res.HoldsStock())
		assert.ErrorIs(t, res.Cancel(at), reservation.ErrInvalidTransition)
	})

	t.Run("reject records reason", func(t *testing.T) {
		res := newPending(t)
		reason, err := reservation.NewRejectionReason("room under maintenance")
		require.NoError(t, err)

		require.NoError(t, res.Reject(approver, reason, at))
		assert.Equal(t, reservation.StatusRejected, res.Status())
		require.NotNil(t, res.RejectionReason())
		assert.Equal(t, "room under maintenance", *res.RejectionReason())
		assert.ErrorIs(t, res.Approve(approver, at), reservation.ErrInvalidTransition)
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		res := newPending(t)
		assert.ErrorIs(t, res.Complete(at), reservation.ErrInvalidTransition)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Cancel(at))
		assert.ErrorIs(t, res.Cancel(at), reservation.ErrInvalidTransition)
		assert.False(t, res.IsEditable())
		assert.ErrorIs(t, res.Reschedule(uuid.New(), res.TimeSlot(), at), reservation.ErrInvalidTransition)
	})
}

func TestStatus(t *testing.T) {
	for _, s := range []reservation.Status{reservation.StatusRejected, reservation.StatusCancelled, reservation.StatusCompleted} {
		assert.True(t, s.IsTerminal(), s)
	}
	assert.False(t, reservation.StatusPending.IsTerminal())
	assert.False(t, reservation.StatusApproved.IsTerminal())

	st, err := reservation.ParseStatus(" APPROVED ")
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusApproved, st)

	_, err = reservation.ParseStatus("archived")
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}
