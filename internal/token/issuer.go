package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"campus-eats/internal/model"
)

// Issuer mints and verifies stateless HS256 session tokens. Tokens bind a
// user id and role and are valid for a fixed window; there is no refresh or
// server-side revocation, so a token stays valid until it expires.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// TTL reports the token validity window, which also drives cookie Max-Age.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

func (i *Issuer) Issue(userID string, role model.Role) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Role: string(role),
	})

	return token.SignedString(i.secret)
}

// Parse verifies signature and expiry and returns the bound identity.
// Malformed and expired tokens are indistinguishable to the caller.
func (i *Issuer) Parse(tokenString string) (model.SessionClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(tokenString), claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return model.SessionClaims{}, model.ErrInvalidToken
	}

	role := model.Role(claims.Role)
	if claims.Subject == "" || !role.Valid() {
		return model.SessionClaims{}, model.ErrInvalidToken
	}

	return model.SessionClaims{UserID: claims.Subject, Role: role}, nil
}
