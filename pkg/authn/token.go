package authn

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/atelier-web/atelier/pkg/identity"
	"github.com/atelier-web/atelier/pkg/model"
)

const tokenIssuer = "atelier"

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, expiry in the past, or unparseable claims. Callers must not
// distinguish between them to avoid leaking why a token was rejected.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the session token claim set. Subject carries the user id.
type Claims struct {
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenAuthority issues and verifies session tokens signed with a
// process-wide secret loaded once at startup.
type TokenAuthority struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenAuthority creates a token authority. ttl bounds the lifetime of
// every issued token.
func NewTokenAuthority(secret []byte, ttl time.Duration) (*TokenAuthority, error) {
	if len(secret) == 0 {
		return nil, errors.New("token signing secret must not be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &TokenAuthority{secret: secret, ttl: ttl}, nil
}

// Issue signs a token embedding the user's id and role.
func (a *TokenAuthority) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of a token and returns the
// principal it embeds. Any failure yields ErrInvalidToken.
func (a *TokenAuthority) Verify(tokenString string) (*identity.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return a.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !claims.Role.IsARole() {
		return nil, ErrInvalidToken
	}

	principal := &identity.Principal{
		UserID: uint(userID),
		Role:   claims.Role,
	}
	if claims.IssuedAt != nil {
		principal.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		principal.ExpiresAt = claims.ExpiresAt.Time
	}
	return principal, nil
}
