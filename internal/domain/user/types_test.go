//go:build unit

package user_test

import (
	"testing"

	"facility-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		privileged bool
		errIs      error
	}{
		{name: "viewer", input: "viewer"},
		{name: "operator", input: "operator", privileged: true},
		{name: "admin", input: "admin", privileged: true},
		{name: "unknown role", input: "superadmin", errIs: user.ErrInvalidRole},
		{name: "empty role", input: "", errIs: user.ErrInvalidRole},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			role, err := user.NewRole(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.privileged, role.IsPrivileged())
		})
	}
}

func TestActor(t *testing.T) {
	owner := uuid.New()

	t.Run("owner without privilege", func(t *testing.T) {
		a := user.NewActor(owner, user.RoleViewer)
		assert.True(t, a.Owns(owner))
		assert.True(t, a.OwnsOrPrivileged(owner))
		assert.False(t, a.OwnsOrPrivileged(uuid.New()))
	})

	t.Run("privileged stranger", func(t *testing.T) {
		a := user.NewActor(uuid.New(), user.RoleAdmin)
		assert.False(t, a.Owns(owner))
		assert.True(t, a.OwnsOrPrivileged(owner))
	})

	t.Run("nil actor owns nothing", func(t *testing.T) {
		assert.False(t, user.Actor{}.Owns(uuid.Nil))
	})
}
