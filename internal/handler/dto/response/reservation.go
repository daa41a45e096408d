package response

import (
	"time"

	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationMaterialResponse struct {
	MaterialID        uuid.UUID `json:"material_id"`
	MaterialName      string    `json:"material_name"`
	QuantityRequested int       `json:"quantity_requested"`
}

type ReservationResponse struct {
	ID              uuid.UUID                      `json:"id"`
	LocationID      uuid.UUID                      `json:"location_id"`
	LocationName    string                         `json:"location_name"`
	LocationType    string                         `json:"location_type"`
	RequesterID     uuid.UUID                      `json:"requester_id"`
	AssigneeID      *uuid.UUID                     `json:"assignee_id,omitempty"`
	StartTime       time.Time                      `json:"start_time"`
	EndTime         time.Time                      `json:"end_time"`
	Status          string                         `json:"status"`
	Purpose         string                         `json:"purpose"`
	ApproverID      *uuid.UUID                     `json:"approver_id,omitempty"`
	ApprovedAt      *time.Time                     `json:"approved_at,omitempty"`
	RejectionReason *string                        `json:"rejection_reason,omitempty"`
	Materials       []*ReservationMaterialResponse `json:"materials"`
	CreatedAt       time.Time                      `json:"created_at"`
	UpdatedAt       time.Time                      `json:"updated_at"`
}

type ReservationListItemResponse struct {
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

type ReservationListResponse struct {
	Reservations []*ReservationListItemResponse `json:"reservations"`
	NextCursor   string                         `json:"next_cursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.CopyWithOption(&resp, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if resp.Materials == nil {
		resp.Materials = []*ReservationMaterialResponse{}
	}
	return &resp, nil
}

func FromReservationMaterials(items []*queries.ReservationMaterialView) ([]*ReservationMaterialResponse, error) {
	resp := make([]*ReservationMaterialResponse, 0, len(items))
	if err := copier.Copy(&resp, items); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromReservationList(items []*queries.ReservationListItem, next *queries.Cursor) (*ReservationListResponse, error) {
	resp := &ReservationListResponse{Reservations: make([]*ReservationListItemResponse, 0, len(items))}
	if err := copier.Copy(&resp.Reservations, items); err != nil {
		return nil, err
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp, nil
}
