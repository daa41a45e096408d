//go:build unit || e2e

package builder

import (
	"time"

	"facility-booking/internal/domain/location"
	"facility-booking/internal/domain/material"
	reqdto "facility-booking/internal/handler/dto/request"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type LocationBuilder struct {
	Name     string
	Capacity int
	Type     string
}

func NewLocationBuilder() *LocationBuilder {
	return &LocationBuilder{Name: "Physics Lab", Capacity: 24, Type: "laboratory"}
}

func (b *LocationBuilder) WithType(kind string) *LocationBuilder {
	b.Type = kind
	return b
}

func (b *LocationBuilder) BuildDomain() (*location.Location, error) {
	kind, err := location.ParseType(b.Type)
	if err != nil {
		return nil, err
	}
	return location.NewLocation(uuid.Nil, b.Name, b.Capacity, kind)
}

func (b *LocationBuilder) BuildCreateRequestDTO() reqdto.CreateLocationRequest {
	return reqdto.CreateLocationRequest{Name: b.Name, Capacity: b.Capacity, Type: b.Type}
}

func (b *LocationBuilder) BuildView(id uuid.UUID) *queries.LocationView {
	now := time.Now().UTC()
	return &queries.LocationView{ID: id, Name: b.Name, Capacity: b.Capacity, Type: b.Type, CreatedAt: now, UpdatedAt: now}
}

type MaterialBuilder struct {
	Name        string
	Description string
	Quantity    int
}

func NewMaterialBuilder() *MaterialBuilder {
	return &MaterialBuilder{Name: "Projector", Description: "HDMI projector", Quantity: 5}
}

func (b *MaterialBuilder) WithQuantity(qty int) *MaterialBuilder {
	b.Quantity = qty
	return b
}

func (b *MaterialBuilder) BuildDomain() (*material.Material, error) {
	return material.NewMaterial(uuid.Nil, b.Name, b.Description, b.Quantity)
}

func (b *MaterialBuilder) BuildCreateRequestDTO() reqdto.CreateMaterialRequest {
	return reqdto.CreateMaterialRequest{Name: b.Name, Description: b.Description, Quantity: b.Quantity}
}

func (b *MaterialBuilder) BuildView(id uuid.UUID) *queries.MaterialView {
	now := time.Now().UTC()
	return &queries.MaterialView{
		ID:                id,
		Name:              b.Name,
		Description:       b.Description,
		QuantityAvailable: b.Quantity,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
