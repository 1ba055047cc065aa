package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of every issued credential.
const TokenTTL = 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid jwt token")
	ErrMissingUID   = errors.New("jwt token carries no uid claim")
)

// Identity is the decoded payload of a valid token.
// It only lives for the duration of one request.
type Identity struct {
	UID    string
	Email  string
	Claims map[string]any
}

// JWTManager issues and validates HS256 tokens bound to one process-wide secret.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager creates a new JWT manager.
func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		ttl:    TokenTTL,
	}
}

// TTL returns the lifetime applied to issued tokens.
func (m *JWTManager) TTL() time.Duration {
	return m.ttl
}

// GenerateToken signs the caller-supplied payload as-is.
// Only iat and exp are overwritten; the payload shape is not validated.
func (m *JWTManager) GenerateToken(payload map[string]any) (string, error) {
	now := time.Now().UTC()

	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(m.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign jwt: %w", err)
	}

	return signed, nil
}

// GenerateAccessToken is GenerateToken for the common {uid} payload.
func (m *JWTManager) GenerateAccessToken(uid string) (string, error) {
	return m.GenerateToken(map[string]any{"uid": uid})
}

// ParseAndValidate validates a JWT and returns the identity it carries.
func (m *JWTManager) ParseAndValidate(tokenStr string) (*Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Ensure token is signed using HMAC
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %T", t.Method)
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse jwt: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	uid, _ := claims["uid"].(string)
	if uid == "" {
		return nil, ErrMissingUID
	}
	email, _ := claims["email"].(string)

	return &Identity{
		UID:    uid,
		Email:  email,
		Claims: claims,
	}, nil
}
