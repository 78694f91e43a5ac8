// Package auth provides the credential-hashing and token capabilities
// consumed by the identity service and the HTTP middleware. Both are
// defined as interfaces so callers stay decoupled from bcrypt and JWT.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes plaintext credentials and verifies them against
// stored opaque hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer issues identity tokens bound to a user id and verifies
// presented tokens back to that id.
type TokenIssuer interface {
	Issue(userID uint) (string, error)
	Verify(token string) (uint, error)
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher returns a BcryptHasher with the default cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

// Hash hashes the plaintext password.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

const (
	tokenIssuer   = "devconnect-api"
	tokenAudience = "devconnect-client"

	// DefaultTokenTTL is how long issued tokens remain valid.
	DefaultTokenTTL = 7 * 24 * time.Hour
)

// JWTIssuer implements TokenIssuer with HS256-signed JWTs.
type JWTIssuer struct {
	Secret string
	TTL    time.Duration
}

// NewJWTIssuer returns a JWTIssuer with the default 7-day TTL.
func NewJWTIssuer(secret string) *JWTIssuer {
	return &JWTIssuer{Secret: secret, TTL: DefaultTokenTTL}
}

// Issue creates a signed token embedding the user id in the subject claim.
func (j *JWTIssuer) Issue(userID uint) (string, error) {
	if j.Secret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"exp": now.Add(j.TTL).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.Secret))
}

// Verify parses and validates a token, returning the embedded user id.
func (j *JWTIssuer) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signing method")
		}
		return []byte(j.Secret), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
	)
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, fmt.Errorf("invalid subject claim")
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID in token")
	}

	return uint(userID), nil
}
