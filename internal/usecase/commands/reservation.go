package commands

import (
	"context"
	"log/slog"
	"time"

	"facility-booking/internal/domain/location"
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/notification"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	msgReservationNotFound = "reservation not found"
	msgLocationNotFound    = "location not found"
	msgMaterialNotFound    = "material not found"
)

var errLocationNotBookable = errs.New("location type does not accept reservations")

type MaterialRequest struct {
	MaterialID uuid.UUID
	Quantity   int
}

type CreateReservationInput struct {
	LocationID uuid.UUID
	AssigneeID *uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Purpose    string
	Materials  []MaterialRequest
}

// UpdateReservationInput carries optional changes; nil keeps the current value.
// A non-nil empty Materials removes every line. AssigneeID pointing at uuid.Nil
// clears the assignee.
type UpdateReservationInput struct {
	LocationID *uuid.UUID
	AssigneeID *uuid.UUID
	StartTime  *time.Time
	EndTime    *time.Time
	Purpose    *string
	Materials  *[]MaterialRequest
}

type Policy struct {
	StartSlack                   time.Duration
	Bookable                     location.BookingPolicy
	AllowRequesterCancelApproved bool
}

func NewPolicy(cfg config.BookingConfig) (Policy, error) {
	bookable, err := location.NewBookingPolicy(cfg.BookableLocationTypes)
	if err != nil {
		return Policy{}, errs.Wrap(err, "invalid BOOKING_BOOKABLE_LOCATION_TYPES")
	}
	return Policy{
		StartSlack:                   cfg.StartSlack,
		Bookable:                     bookable,
		AllowRequesterCancelApproved: cfg.AllowRequesterCancelApproved,
	}, nil
}

//go:generate mockgen -destination=../../../tests/mock/commands/mock_commands.go -package=commandsmock facility-booking/internal/usecase/commands DirectoryCommands,ReservationCommands
type ReservationCommands interface {
	Create(ctx context.Context, actor user.Actor, in CreateReservationInput) (*reservation.Reservation, error)
	Update(ctx context.Context, actor user.Actor, id uuid.UUID, in UpdateReservationInput) (*reservation.Reservation, error)
	Approve(ctx context.Context, actor user.Actor, id uuid.UUID) (*reservation.Reservation, error)
	Reject(ctx context.Context, actor user.Actor, id uuid.UUID, reason string) (*reservation.Reservation, error)
	Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) (*reservation.Reservation, error)
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
	// ExpireCompleted closes up to limit APPROVED reservations whose slot has
	// ended and returns their stock. It reports how many were completed.
	ExpireCompleted(ctx context.Context, limit int) (int, error)
}

type reservationCommandsImpl struct {
	uow    shared.UnitOfWork
	sink   notification.Sink
	clock  clock.Clock
	policy Policy
}

func NewReservationCommands(uow shared.UnitOfWork, sink notification.Sink, clk clock.Clock, policy Policy) ReservationCommands {
	return &reservationCommandsImpl{
		uow:    uow,
		sink:   sink,
		clock:  clk,
		policy: policy,
	}
}

func (s *reservationCommandsImpl) Create(ctx context.Context, actor user.Actor, in CreateReservationInput) (*reservation.Reservation, error) {
	if actor.ID == uuid.Nil {
		return nil, errs.Mark(errs.New("anonymous actor"), ErrForbidden)
	}
	now := s.clock.Now()

	slot, err := reservation.NewTimeSlot(in.StartTime, in.EndTime)
	if err != nil {
		return nil, validationError(err)
	}
	if err = slot.ValidateStartAt(now, s.policy.StartSlack); err != nil {
		return nil, validationError(err)
	}
	purpose, err := reservation.NewPurpose(in.Purpose)
	if err != nil {
		return nil, validationError(err)
	}
	lines, err := toMaterialLines(in.Materials)
	if err != nil {
		return nil, err
	}
	res, err := reservation.NewReservation(now, in.LocationID, actor.ID, assigneeOrNil(in.AssigneeID), slot, purpose, lines)
	if err != nil {
		return nil, validationError(err)
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := s.ensureBookable(ctx, tx, res.LocationID()); err != nil {
			return err
		}
		if err := ensureMaterialsExist(ctx, tx, lines); err != nil {
			return err
		}
		if err := ensureFree(ctx, tx, res.LocationID(), slot, nil); err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return storageError(err, msgLocationNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, passThrough(err, msgReservationNotFound)
	}

	notification.Deliver(ctx, s.sink, newEvent(notification.KindReservationCreated, res, actor.ID, now))
	return res, nil
}

func (s *reservationCommandsImpl) Update(ctx context.Context, actor user.Actor, id uuid.UUID, in UpdateReservationInput) (*reservation.Reservation, error) {
	now := s.clock.Now()

	var newLines *reservation.MaterialLines
	if in.Materials != nil {
		lines, err := toMaterialLines(*in.Materials)
		if err != nil {
			return nil, err
		}
		newLines = &lines
	}
	var newPurpose *reservation.Purpose
	if in.Purpose != nil {
		p, err := reservation.NewPurpose(*in.Purpose)
		if err != nil {
			return nil, validationError(err)
		}
		newPurpose = &p
	}

	var updated *reservation.Reservation
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			return storageError(err, msgReservationNotFound)
		}

		switch res.Status() {
		case reservation.StatusPending:
			if !actor.OwnsOrPrivileged(res.RequesterID()) {
				return errs.Mark(errs.New("only the requester or a manager may edit a pending reservation"), ErrForbidden)
			}
		case reservation.StatusApproved:
			if !actor.Privileged {
				return errs.Mark(errs.New("only a manager may edit an approved reservation"), ErrForbidden)
			}
		default:
			return invalidState(res.Status(), "edit")
		}

		locationID := res.LocationID()
		if in.LocationID != nil {
			locationID = *in.LocationID
		}
		start, end := res.TimeSlot().Start(), res.TimeSlot().End()
		if in.StartTime != nil {
			start = *in.StartTime
		}
		if in.EndTime != nil {
			end = *in.EndTime
		}
		slot, err := reservation.NewTimeSlot(start, end)
		if err != nil {
			return validationError(err)
		}
		lines := res.Materials()
		if newLines != nil {
			lines = *newLines
		}

		locationChanged := locationID != res.LocationID()
		slotChanged := !slot.Equal(res.TimeSlot())
		linesChanged := !lines.Equal(res.Materials())

		if slotChanged {
			if err := slot.ValidateStartAt(now, s.policy.StartSlack); err != nil {
				return validationError(err)
			}
		}
		if locationChanged {
			if err := s.ensureBookable(ctx, tx, locationID); err != nil {
				return err
			}
		}
		if linesChanged {
			if err := ensureMaterialsExist(ctx, tx, lines); err != nil {
				return err
			}
		}

		if res.HoldsStock() && (locationChanged || slotChanged || linesChanged) {
			if _, err := tx.Locations().Lock(ctx, locationID); err != nil {
				return storageError(err, msgLocationNotFound)
			}
			if linesChanged {
				if err := releaseLines(ctx, tx, res.Materials()); err != nil {
					return err
				}
			}
			if err := ensureFree(ctx, tx, locationID, slot, &id); err != nil {
				return err
			}
			if linesChanged {
				if err := reserveLines(ctx, tx, lines); err != nil {
					return err
				}
			}
		} else if locationChanged || slotChanged {
			if err := ensureFree(ctx, tx, locationID, slot, &id); err != nil {
				return err
			}
		}

		if err := res.Reschedule(locationID, slot, now); err != nil {
			return invalidState(res.Status(), "edit")
		}
		if err := res.ReplaceMaterials(lines, now); err != nil {
			return invalidState(res.Status(), "edit")
		}
		if newPurpose != nil || in.AssigneeID != nil {
			purpose := res.Purpose()
			if newPurpose != nil {
				purpose = *newPurpose
			}
			assignee := res.AssigneeID()
			if in.AssigneeID != nil {
				assignee = assigneeOrNil(in.AssigneeID)
			}
			if err := res.Describe(purpose, assignee, now); err != nil {
				return invalidState(res.Status(), "edit")
			}
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return storageError(err, msgReservationNotFound)
		}
		if linesChanged {
			if err := tx.Reservations().SyncMaterialLines(ctx, id, lines); err != nil {
				return storageError(err, msgMaterialNotFound)
			}
		}
		updated = res
		return nil
	})
	if err != nil {
		return nil, passThrough(err, msgReservationNotFound)
	}
	return updated, nil
}

func (s *reservationCommandsImpl) Approve(ctx context.Context, actor user.Actor, id uuid.UUID) (*reservation.Reservation, error) {
	if !actor.Privileged {
		return nil, errs.Mark(errs.New("only a manager may approve reservations"), ErrForbidden)
	}
	now := s.clock.Now()

	var approved *reservation.Reservation
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			return storageError(err, msgReservationNotFound)
		}
		if !res.Status().CanTransitionTo(reservation.StatusApproved) {
			return invalidState(res.Status(), "approve")
		}

		// Held until commit: concurrent approvals on the same location queue here.
		if _, err := tx.Locations().Lock(ctx, res.LocationID()); err != nil {
			return storageError(err, msgLocationNotFound)
		}
		if err := ensureFree(ctx, tx, res.LocationID(), res.TimeSlot(), &id); err != nil {
			return err
		}
		if err := reserveLines(ctx, tx, res.Materials()); err != nil {
			return err
		}
		if err := res.Approve(actor.ID, now); err != nil {
			return invalidState(res.Status(), "approve")
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return storageError(err, msgReservationNotFound)
		}
		approved = res
		return nil
	})
	if err != nil {
		return nil, passThrough(err, msgReservationNotFound)
	}

	notification.Deliver(ctx, s.sink, newEvent(notification.KindReservationApproved, approved, actor.ID, now))
	return approved, nil
}

func (s *reservationCommandsImpl) Reject(ctx context.Context, actor user.Actor, id uuid.UUID, reason string) (*reservation.Reservation, error) {
	if !actor.Privileged {
		return nil, errs.Mark(errs.New("only a manager may reject reservations"), ErrForbidden)
	}
	rejection, err := reservation.NewRejectionReason(reason)
	if err != nil {
		return nil, validationError(err)
	}
	now := s.clock.Now()

	var rejected *reservation.Reservation
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			return storageError(err, msgReservationNotFound)
		}
		if err := res.Reject(actor.ID, rejection, now); err != nil {
			return invalidState(res.Status(), "reject")
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return storageError(err, msgReservationNotFound)
		}
		rejected = res
		return nil
	})
	if err != nil {
		return nil, passThrough(err, msgReservationNotFound)
	}

	ev := newEvent(notification.KindReservationRejected, rejected, actor.ID, now)
	ev.Reason = rejection.String()
	notification.Deliver(ctx, s.sink, ev)
	return rejected, nil
}

func (s *reservationCommandsImpl) Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) (*reservation.Reservation, error) {
	now := s.clock.Now()

	var cancelled *reservation.Reservation
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			return storageError(err, msgReservationNotFound)
		}
		if !res.Status().CanTransitionTo(reservation.StatusCancelled) {
			return invalidState(res.Status(), "cancel")
		}
		if !s.mayWithdraw(actor, res) {
			return errs.Mark(errs.New("actor may not cancel this reservation"), ErrForbidden)
		}

		held := res.HoldsStock()
		if err := res.Cancel(now); err != nil {
			return invalidState(res.Status(), "cancel")
		}
		if held {
			if err := releaseLines(ctx, tx, res.Materials()); err != nil {
				return err
			}
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return storageError(err, msgReservationNotFound)
		}
		cancelled = res
		return nil
	})
	if err != nil {
		return nil, passThrough(err, msgReservationNotFound)
	}

	notification.Deliver(ctx, s.sink, newEvent(notification.KindReservationCancelled, cancelled, actor.ID, now))
	return cancelled, nil
}

func (s *reservationCommandsImpl) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	now := s.clock.Now()

	var deleted *reservation.Reservation
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			return storageError(err, msgReservationNotFound)
		}
		if !s.mayWithdraw(actor, res) {
			return errs.Mark(errs.New("actor may not delete this reservation"), ErrForbidden)
		}
		if res.HoldsStock() {
			if err := releaseLines(ctx, tx, res.Materials()); err != nil {
				return err
			}
		}
		if err := tx.Reservations().Delete(ctx, id); err != nil {
			return storageError(err, msgReservationNotFound)
		}
		deleted = res
		return nil
	})
	if err != nil {
		return passThrough(err, msgReservationNotFound)
	}

	notification.Deliver(ctx, s.sink, newEvent(notification.KindReservationDeleted, deleted, actor.ID, now))
	return nil
}

func (s *reservationCommandsImpl) ExpireCompleted(ctx context.Context, limit int) (int, error) {
	if limit <= 0 {
		limit = 100
	}
	now := s.clock.Now()

	var ids []uuid.UUID
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Reservations().ListApprovedEndedBefore(ctx, now, limit)
		if err != nil {
			return storageError(err, msgReservationNotFound)
		}
		return nil
	})
	if err != nil {
		return 0, passThrough(err, msgReservationNotFound)
	}

	completed := 0
	var firstErr error
	for _, id := range ids {
		res, err := s.completeOne(ctx, id, now)
		if err != nil {
			slog.Error("failed to complete reservation",
				"reservation_id", id.String(),
				"error", err.Error())
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if res == nil {
			continue
		}
		completed++
		notification.Deliver(ctx, s.sink, newEvent(notification.KindReservationCompleted, res, uuid.Nil, now))
	}
	return completed, firstErr
}

// completeOne re-reads the reservation under its row lock so a concurrent
// cancel or a second sweeper cannot release the same stock twice. It returns
// nil when there was nothing left to do.
func (s *reservationCommandsImpl) completeOne(ctx context.Context, id uuid.UUID, now time.Time) (*reservation.Reservation, error) {
	var done *reservation.Reservation
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		done = nil
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			if errs.Is(storageError(err, msgReservationNotFound), ErrNotFound) {
				return nil
			}
			return storageError(err, msgReservationNotFound)
		}
		if res.Status() != reservation.StatusApproved || !res.TimeSlot().HasEndedAt(now) {
			return nil
		}
		if err := releaseLines(ctx, tx, res.Materials()); err != nil {
			return err
		}
		if err := res.Complete(now); err != nil {
			return invalidState(res.Status(), "complete")
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return storageError(err, msgReservationNotFound)
		}
		done = res
		return nil
	})
	if err != nil {
		return nil, passThrough(err, msgReservationNotFound)
	}
	return done, nil
}

// mayWithdraw decides cancel and delete rights. Pending reservations belong to
// their requester; approved ones to managers unless policy lets requesters
// withdraw them too.
func (s *reservationCommandsImpl) mayWithdraw(actor user.Actor, res *reservation.Reservation) bool {
	if actor.Privileged {
		return true
	}
	if !actor.Owns(res.RequesterID()) {
		return false
	}
	if res.Status() == reservation.StatusApproved {
		return s.policy.AllowRequesterCancelApproved
	}
	return true
}

func (s *reservationCommandsImpl) ensureBookable(ctx context.Context, tx shared.Tx, locationID uuid.UUID) error {
	loc, err := tx.Locations().FindByID(ctx, locationID)
	if err != nil {
		return storageError(err, msgLocationNotFound)
	}
	if !loc.IsBookableUnder(s.policy.Bookable) {
		return validationError(errs.Wrapf(errLocationNotBookable, "location %q (%s)", loc.Name(), loc.Type()))
	}
	return nil
}

func ensureMaterialsExist(ctx context.Context, tx shared.Tx, lines reservation.MaterialLines) error {
	if lines.Len() == 0 {
		return nil
	}
	found, err := tx.Materials().FindByIDs(ctx, lines.MaterialIDs())
	if err != nil {
		return storageError(err, msgMaterialNotFound)
	}
	if len(found) == lines.Len() {
		return nil
	}
	known := make(map[uuid.UUID]struct{}, len(found))
	for _, m := range found {
		known[m.ID()] = struct{}{}
	}
	for _, id := range lines.MaterialIDs() {
		if _, ok := known[id]; !ok {
			return errs.Mark(errs.Newf("material %s not found", id), ErrNotFound)
		}
	}
	return nil
}

func ensureFree(ctx context.Context, tx shared.Tx, locationID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) error {
	conflict, err := tx.Intervals().FindConflict(ctx, locationID, slot, excludeID)
	if err != nil {
		return storageError(err, msgLocationNotFound)
	}
	if conflict != nil {
		return newConflictError(locationID, conflict)
	}
	return nil
}

// reserveLines debits every line in material-id order. On a shortage the lines
// already debited by this call are released again before the error returns.
func reserveLines(ctx context.Context, tx shared.Tx, lines reservation.MaterialLines) error {
	taken := make([]reservation.MaterialLine, 0, lines.Len())
	for _, line := range lines.All() {
		err := tx.Ledger().Reserve(ctx, line.MaterialID, line.Quantity)
		if err == nil {
			taken = append(taken, line)
			continue
		}

		for i := len(taken) - 1; i >= 0; i-- {
			if relErr := tx.Ledger().Release(ctx, taken[i].MaterialID, taken[i].Quantity); relErr != nil {
				slog.Error("failed to compensate material reservation",
					"material_id", taken[i].MaterialID.String(),
					"error", relErr.Error())
			}
		}

		var shortage *shared.StockShortage
		if errs.As(err, &shortage) {
			detail := &InsufficientStockError{
				MaterialID: shortage.MaterialID,
				Requested:  shortage.Requested,
				Available:  shortage.Available,
			}
			if m, findErr := tx.Materials().FindByID(ctx, shortage.MaterialID); findErr == nil {
				detail.MaterialName = m.Name()
			}
			return errs.Mark(detail, ErrInsufficientStock)
		}
		return storageError(err, msgMaterialNotFound)
	}
	return nil
}

func releaseLines(ctx context.Context, tx shared.Tx, lines reservation.MaterialLines) error {
	for _, line := range lines.All() {
		if err := tx.Ledger().Release(ctx, line.MaterialID, line.Quantity); err != nil {
			return storageError(err, msgMaterialNotFound)
		}
	}
	return nil
}

func toMaterialLines(in []MaterialRequest) (reservation.MaterialLines, error) {
	lines := make([]reservation.MaterialLine, len(in))
	for i, m := range in {
		lines[i] = reservation.MaterialLine{MaterialID: m.MaterialID, Quantity: m.Quantity}
	}
	ml, err := reservation.NewMaterialLines(lines)
	if err != nil {
		return reservation.MaterialLines{}, validationError(err)
	}
	return ml, nil
}

func invalidState(st reservation.Status, action string) error {
	return errs.Mark(errs.Newf("cannot %s a %s reservation", action, st), ErrInvalidState)
}

func assigneeOrNil(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return id
}

func newEvent(kind notification.Kind, res *reservation.Reservation, actorID uuid.UUID, at time.Time) notification.Event {
	return notification.Event{
		Kind:          kind,
		ReservationID: res.ID(),
		LocationID:    res.LocationID(),
		RequesterID:   res.RequesterID(),
		AssigneeID:    res.AssigneeID(),
		ActorID:       actorID,
		Status:        res.Status().String(),
		OccurredAt:    at,
	}
}
