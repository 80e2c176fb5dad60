package service

import (
	"context"
	"testing"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Register(ctx, RegisterInput{Email: " Ann@Example.com ", Password: "secret1", Role: role.Specialist})
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.Password)
	assert.Equal(t, int(role.Specialist), user.Role)

	got, err := env.users.Authenticate(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = env.users.Authenticate(ctx, "ann@example.com", "wrong-password")
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidCredentials), "got %v", err)

	_, err = env.users.Authenticate(ctx, "nobody@example.com", "secret1")
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidCredentials), "got %v", err)

	profile, err := env.users.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, profile.Email)
}

func TestRegister_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.users.Register(ctx, RegisterInput{Email: "ann@example.com", Password: "secret1", Role: role.Client})
	require.NoError(t, err)

	tests := []struct {
		name string
		in   RegisterInput
		kind apperr.Kind
	}{
		{"duplicate email", RegisterInput{Email: "ANN@example.com", Password: "secret1", Role: role.Client}, apperr.KindConflict},
		{"bad email", RegisterInput{Email: "not-an-email", Password: "secret1", Role: role.Client}, apperr.KindValidation},
		{"short password", RegisterInput{Email: "bob@example.com", Password: "123", Role: role.Client}, apperr.KindValidation},
		{"admin self-registration", RegisterInput{Email: "eve@example.com", Password: "secret1", Role: role.Admin}, apperr.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.users.Register(ctx, tt.in)
			assert.True(t, apperr.Is(err, tt.kind), "got %v", err)
		})
	}
}
