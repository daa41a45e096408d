package request

import (
	"time"

	"facility-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type MaterialLineRequest struct {
	MaterialID uuid.UUID `json:"material_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
}

type CreateReservationRequest struct {
	LocationID uuid.UUID             `json:"location_id" binding:"required"`
	AssigneeID *uuid.UUID            `json:"assignee_id,omitempty"`
	StartTime  time.Time             `json:"start_time" binding:"required"`
	EndTime    time.Time             `json:"end_time" binding:"required"`
	Purpose    string                `json:"purpose" binding:"max=1000"`
	Materials  []MaterialLineRequest `json:"materials" binding:"omitempty,dive"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		LocationID: r.LocationID,
		AssigneeID: r.AssigneeID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Purpose:    r.Purpose,
		Materials:  toMaterialRequests(r.Materials),
	}
}

// UpdateReservationRequest is a partial update: omitted fields stay as they
// are, "materials": [] removes every line.
type UpdateReservationRequest struct {
	LocationID *uuid.UUID             `json:"location_id,omitempty"`
	AssigneeID *uuid.UUID             `json:"assignee_id,omitempty"`
	StartTime  *time.Time             `json:"start_time,omitempty"`
	EndTime    *time.Time             `json:"end_time,omitempty"`
	Purpose    *string                `json:"purpose,omitempty" binding:"omitempty,max=1000"`
	Materials  *[]MaterialLineRequest `json:"materials,omitempty"`
}

func (r UpdateReservationRequest) ToInput() commands.UpdateReservationInput {
	in := commands.UpdateReservationInput{
		LocationID: r.LocationID,
		AssigneeID: r.AssigneeID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Purpose:    r.Purpose,
	}
	if r.Materials != nil {
		lines := toMaterialRequests(*r.Materials)
		in.Materials = &lines
	}
	return in
}

type RejectReservationRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

func toMaterialRequests(in []MaterialLineRequest) []commands.MaterialRequest {
	out := make([]commands.MaterialRequest, len(in))
	for i, l := range in {
		out[i] = commands.MaterialRequest{MaterialID: l.MaterialID, Quantity: l.Quantity}
	}
	return out
}
