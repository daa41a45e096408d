package material

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMaterialName   = errors.New("material name cannot be empty")
	ErrMaterialNameTooLong = errors.New("material name is too long (max 255 characters)")
	ErrNegativeQuantity    = errors.New("material quantity cannot be negative")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInsufficientStock   = errors.New("insufficient stock")
)

const (
	MaxMaterialNameLength = 255
)

// Material is a finite-quantity resource. QuantityAvailable is changed only
// through Take and Put, which the ledger calls while holding the material lock.
type Material struct {
	id                uuid.UUID
	name              string
	description       string
	quantityAvailable int
	createdAt         time.Time
	updatedAt         time.Time
}

func NewMaterial(id uuid.UUID, name, description string, quantity int) (*Material, error) {
	if err := validateMaterialName(name); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Material{
		id:                id,
		name:              strings.TrimSpace(name),
		description:       strings.TrimSpace(description),
		quantityAvailable: quantity,
	}, nil
}

func ReconstructMaterial(id uuid.UUID, name, description string, quantity int, createdAt, updatedAt time.Time) *Material {
	return &Material{
		id:                id,
		name:              name,
		description:       description,
		quantityAvailable: quantity,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// Rename changes descriptive fields only; stock is never edited here.
func (m *Material) Rename(name, description *string) error {
	if name != nil {
		if err := validateMaterialName(*name); err != nil {
			return err
		}
		m.name = strings.TrimSpace(*name)
	}
	if description != nil {
		m.description = strings.TrimSpace(*description)
	}
	return nil
}

func (m *Material) CanTake(qty int) bool {
	return qty > 0 && qty <= m.quantityAvailable
}

func (m *Material) Take(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > m.quantityAvailable {
		return ErrInsufficientStock
	}
	m.quantityAvailable -= qty
	return nil
}

func (m *Material) Put(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	m.quantityAvailable += qty
	return nil
}

func validateMaterialName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyMaterialName
	}
	if len(name) > MaxMaterialNameLength {
		return ErrMaterialNameTooLong
	}
	return nil
}

func (m *Material) ID() uuid.UUID          { return m.id }
func (m *Material) Name() string           { return m.name }
func (m *Material) Description() string    { return m.description }
func (m *Material) QuantityAvailable() int { return m.quantityAvailable }
func (m *Material) CreatedAt() time.Time   { return m.createdAt }
func (m *Material) UpdatedAt() time.Time   { return m.updatedAt }
