package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService("secreta123", "firma-de-prueba", 10*time.Minute)
}

func TestService_Login(t *testing.T) {
	svc := newTestService()

	t.Run("WrongPassword", func(t *testing.T) {
		token, err := svc.Login("adivinando")

		assert.ErrorIs(t, err, ErrBadCredentials)
		assert.Empty(t, token)
	})

	t.Run("CorrectPassword", func(t *testing.T) {
		token, err := svc.Login("secreta123")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})
}

func TestService_Verify(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		svc := newTestService()

		token, err := svc.Login("secreta123")
		require.NoError(t, err)

		subject, refreshed, err := svc.Verify(token)

		require.NoError(t, err)
		assert.Equal(t, Subject, subject)
		assert.NotEmpty(t, refreshed)
	})

	t.Run("Garbage", func(t *testing.T) {
		svc := newTestService()

		_, _, err := svc.Verify("no-es-un-token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		svc := newTestService()

		other := NewService("secreta123", "otra-firma", 10*time.Minute)
		token, err := other.Login("secreta123")
		require.NoError(t, err)

		_, _, err = svc.Verify(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("IdleTimeoutExpires", func(t *testing.T) {
		svc := newTestService()

		issued := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return issued }

		token, err := svc.Login("secreta123")
		require.NoError(t, err)

		svc.now = func() time.Time { return issued.Add(11 * time.Minute) }

		_, _, err = svc.Verify(token)

		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("ActivityKeepsSessionAlive", func(t *testing.T) {
		svc := newTestService()

		now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return now }

		token, err := svc.Login("secreta123")
		require.NoError(t, err)

		// Each verify within the window slides the expiry forward.
		for i := 0; i < 3; i++ {
			now = now.Add(8 * time.Minute)

			_, refreshed, err := svc.Verify(token)
			require.NoError(t, err)

			token = refreshed
		}
	})
}
