package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidTransition = errors.New("reservation status does not allow this operation")
	ErrMissingLocation   = errors.New("location id is required")
	ErrMissingRequester  = errors.New("requester id is required")
)

type Reservation struct {
	id              uuid.UUID
	locationID      uuid.UUID
	requesterID     uuid.UUID
	assigneeID      *uuid.UUID
	timeSlot        TimeSlot
	status          Status
	purpose         Purpose
	approverID      *uuid.UUID
	approvedAt      *time.Time
	rejectionReason *string
	materials       MaterialLines
	createdAt       time.Time
	updatedAt       time.Time
}

// NewReservation builds a PENDING reservation. Start-time policy is checked by
// the caller with TimeSlot.ValidateStartAt because the slack is configurable.
func NewReservation(
	now time.Time,
	locationID, requesterID uuid.UUID,
	assigneeID *uuid.UUID,
	slot TimeSlot,
	purpose Purpose,
	materials MaterialLines,
) (*Reservation, error) {
	if locationID == uuid.Nil {
		return nil, ErrMissingLocation
	}
	if requesterID == uuid.Nil {
		return nil, ErrMissingRequester
	}
	if slot.Duration() <= 0 {
		return nil, ErrEmptyTimeSlot
	}

	return &Reservation{
		id:          uuid.New(),
		locationID:  locationID,
		requesterID: requesterID,
		assigneeID:  copyUUID(assigneeID),
		timeSlot:    slot,
		status:      StatusPending,
		purpose:     purpose,
		materials:   materials,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructReservation(
	id, locationID, requesterID uuid.UUID,
	assigneeID *uuid.UUID,
	timeSlot TimeSlot,
	status Status,
	purpose Purpose,
	approverID *uuid.UUID,
	approvedAt *time.Time,
	rejectionReason *string,
	materials MaterialLines,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		locationID:      locationID,
		requesterID:     requesterID,
		assigneeID:      assigneeID,
		timeSlot:        timeSlot,
		status:          status,
		purpose:         purpose,
		approverID:      approverID,
		approvedAt:      approvedAt,
		rejectionReason: rejectionReason,
		materials:       materials,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// HoldsStock reports whether the ledger currently carries this reservation's
// material lines. Only APPROVED reservations do.
func (r *Reservation) HoldsStock() bool {
	return r.status == StatusApproved
}

func (r *Reservation) IsEditable() bool {
	return r.status == StatusPending || r.status == StatusApproved
}

func (r *Reservation) Approve(approverID uuid.UUID, at time.Time) error {
	if err := r.transition(StatusApproved, at); err != nil {
		return err
	}
	r.approverID = &approverID
	r.approvedAt = &at
	r.rejectionReason = nil
	return nil
}

func (r *Reservation) Reject(approverID uuid.UUID, reason RejectionReason, at time.Time) error {
	if err := r.transition(StatusRejected, at); err != nil {
		return err
	}
	text := reason.String()
	r.approverID = &approverID
	r.approvedAt = &at
	r.rejectionReason = &text
	return nil
}

func (r *Reservation) Cancel(at time.Time) error {
	return r.transition(StatusCancelled, at)
}

func (r *Reservation) Complete(at time.Time) error {
	return r.transition(StatusCompleted, at)
}

// Reschedule moves the reservation to another slot and/or location.
func (r *Reservation) Reschedule(locationID uuid.UUID, slot TimeSlot, at time.Time) error {
	if !r.IsEditable() {
		return ErrInvalidTransition
	}
	if locationID == uuid.Nil {
		return ErrMissingLocation
	}
	r.locationID = locationID
	r.timeSlot = slot
	r.updatedAt = at
	return nil
}

func (r *Reservation) ReplaceMaterials(materials MaterialLines, at time.Time) error {
	if !r.IsEditable() {
		return ErrInvalidTransition
	}
	r.materials = materials
	r.updatedAt = at
	return nil
}

func (r *Reservation) Describe(purpose Purpose, assigneeID *uuid.UUID, at time.Time) error {
	if !r.IsEditable() {
		return ErrInvalidTransition
	}
	r.purpose = purpose
	r.assigneeID = copyUUID(assigneeID)
	r.updatedAt = at
	return nil
}

func (r *Reservation) transition(next Status, at time.Time) error {
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	r.updatedAt = at
	return nil
}

func copyUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) LocationID() uuid.UUID      { return r.locationID }
func (r *Reservation) RequesterID() uuid.UUID     { return r.requesterID }
func (r *Reservation) AssigneeID() *uuid.UUID     { return copyUUID(r.assigneeID) }
func (r *Reservation) TimeSlot() TimeSlot         { return r.timeSlot }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) Purpose() Purpose           { return r.purpose }
func (r *Reservation) ApproverID() *uuid.UUID     { return copyUUID(r.approverID) }
func (r *Reservation) ApprovedAt() *time.Time     { return r.approvedAt }
func (r *Reservation) RejectionReason() *string   { return r.rejectionReason }
func (r *Reservation) Materials() MaterialLines   { return r.materials }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time       { return r.updatedAt }
