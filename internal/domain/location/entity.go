package location

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyLocationName   = errors.New("location name cannot be empty")
	ErrLocationNameTooLong = errors.New("location name is too long (max 255 characters)")
	ErrInvalidCapacity     = errors.New("location capacity must be positive")
	ErrInvalidType         = errors.New("invalid location type")
)

const (
	MaxLocationNameLength = 255
)

type Type string

const (
	TypeClassroom    Type = "classroom"
	TypeLaboratory   Type = "laboratory"
	TypeAmphitheater Type = "amphitheater"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeClassroom, TypeLaboratory, TypeAmphitheater:
		return true
	default:
		return false
	}
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// BookingPolicy lists the location types that accept reservations.
type BookingPolicy struct {
	bookable map[Type]struct{}
}

func NewBookingPolicy(types []string) (BookingPolicy, error) {
	p := BookingPolicy{bookable: make(map[Type]struct{}, len(types))}
	for _, s := range types {
		t, err := ParseType(s)
		if err != nil {
			return BookingPolicy{}, err
		}
		p.bookable[t] = struct{}{}
	}
	return p, nil
}

func (p BookingPolicy) Allows(t Type) bool {
	_, ok := p.bookable[t]
	return ok
}

type Location struct {
	id        uuid.UUID
	name      string
	capacity  int
	kind      Type
	createdAt time.Time
	updatedAt time.Time
}

func NewLocation(id uuid.UUID, name string, capacity int, kind Type) (*Location, error) {
	if err := validateLocationName(name); err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if !kind.IsValid() {
		return nil, ErrInvalidType
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Location{
		id:       id,
		name:     strings.TrimSpace(name),
		capacity: capacity,
		kind:     kind,
	}, nil
}

func ReconstructLocation(id uuid.UUID, name string, capacity int, kind Type, createdAt, updatedAt time.Time) *Location {
	return &Location{
		id:        id,
		name:      name,
		capacity:  capacity,
		kind:      kind,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update applies an administrative change. Nil arguments keep the current value.
func (l *Location) Update(name *string, capacity *int, kind *Type) error {
	next := *l
	if name != nil {
		if err := validateLocationName(*name); err != nil {
			return err
		}
		next.name = strings.TrimSpace(*name)
	}
	if capacity != nil {
		if *capacity <= 0 {
			return ErrInvalidCapacity
		}
		next.capacity = *capacity
	}
	if kind != nil {
		if !kind.IsValid() {
			return ErrInvalidType
		}
		next.kind = *kind
	}
	*l = next
	return nil
}

func (l *Location) IsBookableUnder(p BookingPolicy) bool {
	return p.Allows(l.kind)
}

func validateLocationName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyLocationName
	}
	if len(name) > MaxLocationNameLength {
		return ErrLocationNameTooLong
	}
	return nil
}

func (l *Location) ID() uuid.UUID        { return l.id }
func (l *Location) Name() string         { return l.name }
func (l *Location) Capacity() int        { return l.capacity }
func (l *Location) Type() Type           { return l.kind }
func (l *Location) CreatedAt() time.Time { return l.createdAt }
func (l *Location) UpdatedAt() time.Time { return l.updatedAt }
