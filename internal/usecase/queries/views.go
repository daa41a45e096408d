package queries

import (
	"time"

	"github.com/google/uuid"
)

type LocationView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MaterialView struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	QuantityAvailable int       `json:"quantity_available"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ReservationMaterialView struct {
	MaterialID        uuid.UUID `json:"material_id"`
	MaterialName      string    `json:"material_name"`
	QuantityRequested int       `json:"quantity_requested"`
}

type ReservationView struct {
	ID              uuid.UUID                  `json:"id"`
	LocationID      uuid.UUID                  `json:"location_id"`
	LocationName    string                     `json:"location_name"`
	LocationType    string                     `json:"location_type"`
	RequesterID     uuid.UUID                  `json:"requester_id"`
	AssigneeID      *uuid.UUID                 `json:"assignee_id,omitempty"`
	StartTime       time.Time                  `json:"start_time"`
	EndTime         time.Time                  `json:"end_time"`
	Status          string                     `json:"status"`
	Purpose         string                     `json:"purpose"`
	ApproverID      *uuid.UUID                 `json:"approver_id,omitempty"`
	ApprovedAt      *time.Time                 `json:"approved_at,omitempty"`
	RejectionReason *string                    `json:"rejection_reason,omitempty"`
	Materials       []*ReservationMaterialView `json:"materials"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

type ReservationListItem struct {
	ID           uuid.UUID  `json:"id"`
	LocationID   uuid.UUID  `json:"location_id"`
	LocationName string     `json:"location_name"`
	RequesterID  uuid.UUID  `json:"requester_id"`
	AssigneeID   *uuid.UUID `json:"assignee_id,omitempty"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ReservationFilter narrows a reservation list. From/To select reservations
// whose slot overlaps [From, To).
type ReservationFilter struct {
	Statuses    []string
	LocationID  *uuid.UUID
	RequesterID *uuid.UUID
	From        *time.Time
	To          *time.Time
}

type LocationFilter struct {
	Type *string
}
