//go:build unit

package location_test

import (
	"strings"
	"testing"

	"facility-booking/internal/domain/location"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name     string
		locName  string
		capacity int
		kind     location.Type
		wantErr  error
	}{
		{"valid laboratory", "Lab B-12", 24, location.TypeLaboratory, nil},
		{"empty name", "  ", 24, location.TypeLaboratory, location.ErrEmptyLocationName},
		{"name too long", strings.Repeat("x", location.MaxLocationNameLength+1), 24, location.TypeLaboratory, location.ErrLocationNameTooLong},
		{"zero capacity", "Room 1", 0, location.TypeClassroom, location.ErrInvalidCapacity},
		{"unknown type", "Room 1", 10, location.Type("garage"), location.ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := location.NewLocation(uuid.Nil, tt.locName, tt.capacity, tt.kind)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, loc.ID())
			assert.Equal(t, tt.kind, loc.Type())
		})
	}
}

func TestLocation_Update(t *testing.T) {
	loc, err := location.NewLocation(uuid.New(), "Hall A", 120, location.TypeAmphitheater)
	require.NoError(t, err)

	badCapacity := -1
	newName := "Hall B"
	assert.ErrorIs(t, loc.Update(&newName, &badCapacity, nil), location.ErrInvalidCapacity)
	assert.Equal(t, "Hall A", loc.Name(), "failed update must not apply partially")

	kind := location.TypeClassroom
	require.NoError(t, loc.Update(&newName, nil, &kind))
	assert.Equal(t, "Hall B", loc.Name())
	assert.Equal(t, 120, loc.Capacity())
	assert.Equal(t, location.TypeClassroom, loc.Type())
}

func TestBookingPolicy(t *testing.T) {
	policy, err := location.NewBookingPolicy([]string{"laboratory", " Amphitheater "})
	require.NoError(t, err)

	lab, _ := location.NewLocation(uuid.Nil, "Lab", 10, location.TypeLaboratory)
	room, _ := location.NewLocation(uuid.Nil, "Room", 10, location.TypeClassroom)

	assert.True(t, lab.IsBookableUnder(policy))
	assert.False(t, room.IsBookableUnder(policy))
	assert.True(t, policy.Allows(location.TypeAmphitheater))

	_, err = location.NewBookingPolicy([]string{"laboratory", "rooftop"})
	assert.ErrorIs(t, err, location.ErrInvalidType)
}
