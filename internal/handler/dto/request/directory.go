package request

import "facility-booking/internal/usecase/commands"

type CreateLocationRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
	Type     string `json:"type" binding:"required,oneof=classroom laboratory amphitheater"`
}

func (r CreateLocationRequest) ToInput() commands.CreateLocationInput {
	return commands.CreateLocationInput{Name: r.Name, Capacity: r.Capacity, Type: r.Type}
}

type UpdateLocationRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Capacity *int    `json:"capacity,omitempty" binding:"omitempty,min=1"`
	Type     *string `json:"type,omitempty" binding:"omitempty,oneof=classroom laboratory amphitheater"`
}

func (r UpdateLocationRequest) ToInput() commands.UpdateLocationInput {
	return commands.UpdateLocationInput{Name: r.Name, Capacity: r.Capacity, Type: r.Type}
}

type CreateMaterialRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity" binding:"min=0"`
}

func (r CreateMaterialRequest) ToInput() commands.CreateMaterialInput {
	return commands.CreateMaterialInput{Name: r.Name, Description: r.Description, Quantity: r.Quantity}
}

type UpdateMaterialRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
}

func (r UpdateMaterialRequest) ToInput() commands.UpdateMaterialInput {
	return commands.UpdateMaterialInput{Name: r.Name, Description: r.Description}
}

type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
