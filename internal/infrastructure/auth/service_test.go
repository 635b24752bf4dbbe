package auth

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return &Service{
		secret:       []byte("test-signing-key"),
		tokenTTL:     time.Hour,
		username:     "admin",
		passwordHash: string(hash),
		now:          time.Now,
	}
}

func TestServiceLogin(t *testing.T) {
	svc := newTestService(t)

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		token, expiresIn, err := svc.Login("admin", "s3cret")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.Equal(t, int64(3600), expiresIn)

		claims, err := svc.Validate(token)
		require.NoError(t, err)
		require.Equal(t, "admin", claims.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("admin", "wrong")
		require.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login("root", "s3cret")
		require.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("unconfigured account rejects everything", func(t *testing.T) {
		empty := &Service{secret: []byte("k"), tokenTTL: time.Hour, now: time.Now}
		_, _, err := empty.Login("admin", "s3cret")
		require.True(t, errors.Is(err, ErrInvalidCredentials))
	})
}

func TestServiceValidate(t *testing.T) {
	svc := newTestService(t)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Validate("not-a-jwt")
		require.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := newTestService(t)
		other.secret = []byte("different-key")
		token, _, err := other.Login("admin", "s3cret")
		require.NoError(t, err)

		_, err = svc.Validate(token)
		require.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("expired token", func(t *testing.T) {
		past := newTestService(t)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _, err := past.Login("admin", "s3cret")
		require.NoError(t, err)

		_, err = svc.Validate(token)
		require.True(t, errors.Is(err, ErrInvalidToken))
	})
}
