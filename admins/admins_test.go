package admins_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/me1pik/admin-backoffice/admins"
)

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "Passw0rd", wantErr: false},
		{name: "too short", password: "Pw0rd", wantErr: true},
		{name: "missing uppercase", password: "passw0rd", wantErr: true},
		{name: "missing lowercase", password: "PASSW0RD", wantErr: true},
		{name: "missing number", password: "Password", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := admins.ValidatePasswordStrength(tc.password)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := admins.HashPassword("Passw0rd123")
	require.NoError(t, err)
	require.NotEqual(t, "Passw0rd123", hash)

	require.True(t, admins.CheckPasswordHash("Passw0rd123", hash))
	require.False(t, admins.CheckPasswordHash("wrong", hash))
}

func TestPasswordHashNeverSerialized(t *testing.T) {
	admin := admins.Admin{
		ID:           "admin-1",
		Email:        "ops@melpik.com",
		PasswordHash: "bcrypt-hash",
	}

	data, err := json.Marshal(admin)
	require.NoError(t, err)
	require.NotContains(t, string(data), "bcrypt-hash")
}

func TestStatusHelpers(t *testing.T) {
	admin := admins.Admin{Role: admins.RoleSuperAdmin, Status: admins.StatusActive}
	require.True(t, admin.IsSuperAdmin())
	require.False(t, admin.IsBlocked())

	admin.Role = admins.RoleViewer
	admin.Status = admins.StatusBlocked
	require.False(t, admin.IsSuperAdmin())
	require.True(t, admin.IsBlocked())
}
