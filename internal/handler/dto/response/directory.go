package response

import (
	"time"

	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LocationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MaterialResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	QuantityAvailable int       `json:"quantity_available"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromLocationView(v *queries.LocationView) (*LocationResponse, error) {
	var resp LocationResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromLocationViews(vs []*queries.LocationView) ([]*LocationResponse, error) {
	resp := make([]*LocationResponse, 0, len(vs))
	if err := copier.Copy(&resp, vs); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromMaterialView(v *queries.MaterialView) (*MaterialResponse, error) {
	var resp MaterialResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromMaterialViews(vs []*queries.MaterialView) ([]*MaterialResponse, error) {
	resp := make([]*MaterialResponse, 0, len(vs))
	if err := copier.Copy(&resp, vs); err != nil {
		return nil, err
	}
	return resp, nil
}
