package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type idTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// tokenIssuer signs and verifies HS256 ID tokens.
type tokenIssuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func (t *tokenIssuer) issue(uid, email string) (string, time.Time, error) {
	now := t.now()
	expires := now.Add(t.ttl)
	claims := idTokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign id token: %w", err)
	}
	return signed, expires.Truncate(time.Second), nil
}

func (t *tokenIssuer) parse(token string) (*idTokenClaims, error) {
	claims := &idTokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(tok *jwt.Token) (interface{}, error) {
			if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
			}
			return t.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.Subject == "" || claims.Email == "" {
		return nil, fmt.Errorf("incomplete id token claims")
	}
	return claims, nil
}
