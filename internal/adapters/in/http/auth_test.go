package http

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAuthenticator(t *testing.T) {
	ctx := context.Background()

	t.Run("should round-trip every role", func(t *testing.T) {
		auth, err := NewJWTAuthenticator("secret")
		require.NoError(t, err)

		for _, p := range []Principal{
			{Role: RoleCustomer, ID: kernel.MustNewID(3), Name: "Asha"},
			{Role: RolePartner, ID: kernel.MustNewID(2), Name: "Ravi"},
			{Role: RoleRestaurant, ID: kernel.MustNewID(1), Name: "Spice Route"},
			{Role: RoleAdmin, Name: "root"},
		} {
			token, issueErr := auth.IssueToken(p)
			require.NoError(t, issueErr)

			got, authErr := auth.Authenticate(ctx, token)
			require.NoError(t, authErr)
			assert.Equal(t, p, got)
		}
	})

	t.Run("should reject expired tokens", func(t *testing.T) {
		auth, err := NewJWTAuthenticator("secret")
		require.NoError(t, err)
		auth.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }

		token, err := auth.IssueToken(Principal{Role: RoleCustomer, ID: kernel.MustNewID(3)})
		require.NoError(t, err)

		auth.now = time.Now
		_, err = auth.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("should reject tokens without expiry", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"role":    "customer",
			"user_id": 3,
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		auth, err := NewJWTAuthenticator("secret")
		require.NoError(t, err)

		_, err = auth.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject a role without its identity claim", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"role": "partner",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		auth, err := NewJWTAuthenticator("secret")
		require.NoError(t, err)

		_, err = auth.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"role": "courier",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		auth, err := NewJWTAuthenticator("secret")
		require.NoError(t, err)

		_, err = auth.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should require a secret", func(t *testing.T) {
		_, err := NewJWTAuthenticator("  ")
		assert.Error(t, err)
	})
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", ErrUnauthorized, 401},
		{"forbidden", errors.Join(ErrForbidden), 403},
		{"unknown", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := statusFor(tt.err)
			assert.Equal(t, tt.want, code)
		})
	}
}
