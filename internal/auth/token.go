package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hrms-backend/internal/models"
)

// Both token shapes share the HS256 secret, so each carries an explicit typ
// claim and the parsers cross-reject: an emailed reset link is never an
// authentication credential and vice versa.
const (
	tokenTypeAccess = "access"
	tokenTypeReset  = "reset"
)

type AccessClaims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type ResetClaims struct {
	Email     string `json:"email"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies the two token shapes the service issues:
// access tokens minted at login and short-lived password-reset tokens. The
// secret is process-wide and read-only after construction.
type TokenCodec struct {
	secret    []byte
	accessTTL time.Duration
	resetTTL  time.Duration
}

func NewTokenCodec(secret string, accessTTL time.Duration, resetTTL time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), accessTTL: accessTTL, resetTTL: resetTTL}
}

func (t *TokenCodec) SignAccess(employee *models.Employee) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Email:     employee.Email,
		Role:      employee.Role,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   employee.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenCodec) ParseAccess(raw string) (*AccessClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &AccessClaims{}, t.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, classifyTokenError(err)
	}
	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid || claims.TokenType != tokenTypeAccess {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// SignReset binds a token to the account email and a fresh jti so redemption
// can be made single-use by the store.
func (t *TokenCodec) SignReset(email string) (string, string, error) {
	now := time.Now()
	tokenID := uuid.NewString()
	claims := ResetClaims{
		Email:     email,
		TokenType: tokenTypeReset,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(now.Add(t.resetTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", "", err
	}
	return signed, tokenID, nil
}

func (t *TokenCodec) ParseReset(raw string) (*ResetClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &ResetClaims{}, t.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, classifyTokenError(err)
	}
	claims, ok := token.Claims.(*ResetClaims)
	if !ok || !token.Valid || claims.TokenType != tokenTypeReset || claims.ID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (t *TokenCodec) ResetTTL() time.Duration {
	return t.resetTTL
}

func (t *TokenCodec) keyFunc(token *jwt.Token) (interface{}, error) {
	return t.secret, nil
}

func classifyTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrTokenExpired
	}
	return ErrTokenInvalid
}
