//go:build unit || e2e

package builder

import (
	"time"

	domres "facility-booking/internal/domain/reservation"
	reqdto "facility-booking/internal/handler/dto/request"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	LocationID   uuid.UUID
	LocationName string
	LocationType string
	RequesterID  uuid.UUID
	AssigneeID   *uuid.UUID
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	Purpose      string
	Materials    []domres.MaterialLine
	CreatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
	return &ReservationBuilder{
		LocationID:   uuid.New(),
		LocationName: "Chemistry Lab",
		LocationType: "laboratory",
		RequesterID:  uuid.New(),
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		Status:       domres.StatusPending.String(),
		Purpose:      "Titration practical",
		CreatedAt:    time.Now().UTC(),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithLocationID(id uuid.UUID) *ReservationBuilder {
	b.LocationID = id
	return b
}

func (b *ReservationBuilder) WithRequesterID(id uuid.UUID) *ReservationBuilder {
	b.RequesterID = id
	return b
}

func (b *ReservationBuilder) WithSlot(start time.Time, d time.Duration) *ReservationBuilder {
	b.StartTime = start
	b.EndTime = start.Add(d)
	return b
}

func (b *ReservationBuilder) WithMaterial(id uuid.UUID, qty int) *ReservationBuilder {
	b.Materials = append(b.Materials, domres.MaterialLine{MaterialID: id, Quantity: qty})
	return b
}

func (b *ReservationBuilder) WithStatus(status domres.Status) *ReservationBuilder {
	b.Status = status.String()
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	slot, err := domres.NewTimeSlot(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	purpose, err := domres.NewPurpose(b.Purpose)
	if err != nil {
		return nil, err
	}
	lines, err := domres.NewMaterialLines(b.Materials)
	if err != nil {
		return nil, err
	}
	return domres.NewReservation(b.CreatedAt, b.LocationID, b.RequesterID, b.AssigneeID, slot, purpose, lines)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	req := reqdto.CreateReservationRequest{
		LocationID: b.LocationID,
		AssigneeID: b.AssigneeID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Purpose:    b.Purpose,
	}
	for _, l := range b.Materials {
		req.Materials = append(req.Materials, reqdto.MaterialLineRequest{MaterialID: l.MaterialID, Quantity: l.Quantity})
	}
	return req
}

func (b *ReservationBuilder) BuildUpdateRequestDTO() reqdto.UpdateReservationRequest {
	start, end, purpose := b.StartTime, b.EndTime, b.Purpose
	return reqdto.UpdateReservationRequest{
		StartTime: &start,
		EndTime:   &end,
		Purpose:   &purpose,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	v := &queries.ReservationView{
		ID:           uuid.New(),
		LocationID:   b.LocationID,
		LocationName: b.LocationName,
		LocationType: b.LocationType,
		RequesterID:  b.RequesterID,
		AssigneeID:   b.AssigneeID,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       b.Status,
		Purpose:      b.Purpose,
		Materials:    make([]*queries.ReservationMaterialView, 0, len(b.Materials)),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
	for _, l := range b.Materials {
		v.Materials = append(v.Materials, &queries.ReservationMaterialView{
			MaterialID:        l.MaterialID,
			MaterialName:      "Material " + l.MaterialID.String()[:8],
			QuantityRequested: l.Quantity,
		})
	}
	return v
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:           uuid.New(),
		LocationID:   b.LocationID,
		LocationName: b.LocationName,
		RequesterID:  b.RequesterID,
		AssigneeID:   b.AssigneeID,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
}
