// Package auth verifies and issues the HS256 bearer tokens that identify
// callers of the HTTP API. The subject claim carries the user id and the
// email claim the user's address.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/conference-booking/internal/domain"
	"github.com/jsamuelsen11/conference-booking/internal/domain/user"
	"github.com/jsamuelsen11/conference-booking/internal/ports"
)

var _ ports.TokenVerifier = (*Verifier)(nil)

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Verifier validates HS256 tokens signed with a shared secret.
type Verifier struct {
	secret []byte
	opts   []jwt.ParserOption
}

// NewVerifier returns a Verifier for secret. When issuer is non-empty the
// iss claim must match it.
func NewVerifier(secret, issuer string) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5 * time.Second),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &Verifier{secret: []byte(secret), opts: opts}
}

// Verify implements ports.TokenVerifier. Every failure wraps
// domain.ErrUnauthorized.
func (v *Verifier) Verify(_ context.Context, token string) (user.User, error) {
	if token == "" {
		return user.User{}, fmt.Errorf("%w: missing token", domain.ErrUnauthorized)
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, v.opts...)
	if err != nil {
		return user.User{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return user.User{}, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	if c.Subject == "" {
		return user.User{}, fmt.Errorf("%w: missing subject", domain.ErrUnauthorized)
	}

	return user.User{ID: c.Subject, Email: c.Email}, nil
}

// Issuer signs HS256 tokens for a user.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer returns an Issuer whose tokens expire after ttl.
func NewIssuer(secret, issuer string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// Issue signs a token whose subject is u.ID.
func (i *Issuer) Issue(u user.User) (string, error) {
	if u.ID == "" {
		return "", errors.New("issuing token: user id is required")
	}

	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Email: u.Email,
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
