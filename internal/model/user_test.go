package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	PasswordCost = bcrypt.MinCost
}

func TestUser_SetPassword(t *testing.T) {
	u := &User{Email: "foo@bar.com"}
	require.NoError(t, u.SetPassword("1234"))

	require.NotEqual(t, "1234", u.Password)
	require.True(t, u.CheckPassword("1234"))
	require.False(t, u.CheckPassword("4321"))
	require.False(t, u.CheckPassword(""))
}

func TestUser_SetPassword_SaltsEachHash(t *testing.T) {
	a, b := &User{}, &User{}
	require.NoError(t, a.SetPassword("abcd"))
	require.NoError(t, b.SetPassword("abcd"))
	require.NotEqual(t, a.Password, b.Password)
}

func TestUser_CheckPassword_PlaintextStored(t *testing.T) {
	// a value that was never hashed must not verify
	u := &User{Password: "1234"}
	require.False(t, u.CheckPassword("1234"))
}

func TestUser_HasRoles(t *testing.T) {
	u := &User{Roles: []Role{{Name: "GUEST"}, {Name: "ADMINISTRATOR"}}}

	cases := []struct {
		name  string
		roles []string
		want  bool
	}{
		{"NoneRequired", nil, true},
		{"Single", []string{"ADMINISTRATOR"}, true},
		{"All", []string{"GUEST", "ADMINISTRATOR"}, true},
		{"OneMissing", []string{"ADMINISTRATOR", "AUDITOR"}, false},
		{"Missing", []string{"AUDITOR"}, false},
		{"CaseSensitive", []string{"guest"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, u.HasRoles(tc.roles...))
		})
	}

	require.Equal(t, []string{"GUEST", "ADMINISTRATOR"}, u.RoleNames())
	require.Empty(t, (&User{}).RoleNames())
}

func TestHooks_AssignIDAndUpdatedAt(t *testing.T) {
	u := &User{}
	require.NoError(t, u.BeforeCreate(&gorm.DB{}))
	require.NotEqual(t, uuid.Nil, u.ID)

	id := u.ID
	require.NoError(t, u.BeforeCreate(&gorm.DB{}))
	require.Equal(t, id, u.ID)

	require.Nil(t, u.UpdatedAt)
	require.NoError(t, u.BeforeUpdate(&gorm.DB{}))
	require.NotNil(t, u.UpdatedAt)

	r := &Role{}
	require.NoError(t, r.BeforeCreate(&gorm.DB{}))
	require.NotEqual(t, uuid.Nil, r.ID)
}
