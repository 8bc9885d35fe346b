// Package auth implements the single shared-password login and the
// sliding idle-timeout session. A session is a short-lived JWT; every
// authenticated request gets a fresh token, so the session dies only
// after IdleTimeout without activity.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrBadCredentials = errors.New("invalid password")
	ErrInvalidToken   = errors.New("invalid session token")
	ErrSessionExpired = errors.New("session expired")
)

// Subject is the identity carried by every operator session. There are
// no per-user accounts.
const Subject = "operador"

type Service struct {
	password    []byte
	secret      []byte
	idleTimeout time.Duration

	now func() time.Time
}

func NewService(password, secret string, idleTimeout time.Duration) *Service {
	return &Service{
		password:    []byte(password),
		secret:      []byte(secret),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Login checks the shared password and issues a session token.
func (s *Service) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare(s.password, []byte(password)) != 1 {
		return "", ErrBadCredentials
	}

	return s.issue()
}

// Verify validates a session token and returns its subject along with a
// refreshed token that restarts the idle window.
func (s *Service) Verify(token string) (subject, refreshed string, err error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrSessionExpired
		}

		return "", "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", "", ErrInvalidToken
	}

	refreshed, err = s.issue()
	if err != nil {
		return "", "", err
	}

	return claims.Subject, refreshed, nil
}

func (s *Service) issue() (string, error) {
	now := s.now()

	claims := jwt.RegisteredClaims{
		Subject:   Subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.idleTimeout)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}

	return token, nil
}
