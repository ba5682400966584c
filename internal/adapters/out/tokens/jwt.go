// Package tokens provides the JWT implementation of the TokenIssuer port.
// Tokens are signed with HMAC-SHA256 and carry the user id and role as
// claims.
package tokens

import (
	"errors"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/user"
	"gofer/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// sessionClaims are the registered claims plus the account role.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer implements ports.TokenIssuer using HS256-signed JWTs.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTIssuer creates a token issuer signing with the given secret.
// Returns an error when the secret is empty.
func NewJWTIssuer(secret string) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is required")
	}

	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    defaultTokenTTL,
	}, nil
}

// Issue creates a signed token carrying the identity, expiring after the
// issuer's TTL.
func (i *JWTIssuer) Issue(identity ports.Identity) (string, error) {
	if err := identity.UserID.Validate(); err != nil {
		return "", err
	}
	if err := identity.Role.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := sessionClaims{
		Role: identity.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify checks the token's signature and expiry and returns the identity it
// carries.
func (i *JWTIssuer) Verify(tokenString string) (ports.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ports.ErrTokenInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ports.Identity{}, ports.ErrTokenExpired
		}
		return ports.Identity{}, ports.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return ports.Identity{}, ports.ErrTokenInvalid
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return ports.Identity{}, ports.ErrTokenInvalid
	}
	role, err := user.RoleFromString(claims.Role)
	if err != nil {
		return ports.Identity{}, ports.ErrTokenInvalid
	}

	return ports.Identity{UserID: userID, Role: role}, nil
}
