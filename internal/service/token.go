package service

import (
	"errors"
	"fmt"
	"time"

	"ai-hub/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the validity window of issued tokens.
const DefaultAccessTokenTTL = 24 * time.Hour

var (
	// ErrTokenInvalid covers malformed tokens, wrong signing methods and
	// signature mismatches.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired is returned for structurally valid tokens past their
	// validity window. The middleware maps both errors to 403, but callers
	// can tell them apart.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the JWT payload binding a user identity to a token.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 bearer tokens. Tokens are
// stateless: there is no server-side revocation, logout is a client-side
// discard and an issued token stays valid until expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a TokenService around the given signing secret.
// ttl <= 0 falls back to DefaultAccessTokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting the user's identity.
func (s *TokenService) Issue(user model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
