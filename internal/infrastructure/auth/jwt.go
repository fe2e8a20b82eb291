package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gymkeep/internal/shared/authorization"
	"gymkeep/internal/shared/biztime"
)

type Claims struct {
	IdentityID uint               `json:"identity_id"`
	SessionID  string             `json:"session_id"`
	Role       authorization.Role `json:"role"`
	jwt.RegisteredClaims
}

type Token struct {
	Value     string
	ExpiresIn int64
}

// JWTService issues and verifies HS256 access tokens. Remember-me logins get
// the longer day-based expiry instead of the minute-based default.
type JWTService struct {
	secret           []byte
	accessExpMinutes int
	rememberExpDays  int
}

func NewJWTService(secret string, accessExpMinutes, rememberExpDays int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		rememberExpDays:  rememberExpDays,
	}
}

func (s *JWTService) Generate(identityID uint, role authorization.Role, remember bool) (*Token, error) {
	now := biztime.NowUTC()

	ttl := time.Duration(s.accessExpMinutes) * time.Minute
	if remember {
		ttl = time.Duration(s.rememberExpDays) * 24 * time.Hour
	}

	claims := &Claims{
		IdentityID: identityID,
		SessionID:  uuid.NewString(),
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &Token{
		Value:     signed,
		ExpiresIn: int64(ttl.Seconds()),
	}, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
