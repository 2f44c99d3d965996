package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	tokenAccess  = "access"
	tokenRefresh = "refresh"
	issuer       = "ritmocaribe"
)

var errTokenType = errors.New("unexpected token type")

type claims struct {
	Type string `json:"typ"`
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager signs HS256 access and refresh tokens with separate secrets.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

func (m *TokenManager) Issue(user *domain.User) (domain.TokenPair, error) {
	now := m.now()
	accessExp := now.Add(m.accessTTL)
	refreshExp := now.Add(m.refreshTTL)

	access, err := m.sign(m.accessSecret, claims{
		Type:             tokenAccess,
		Role:             string(user.Role),
		RegisteredClaims: registered(user.ID, now, accessExp),
	})
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := m.sign(m.refreshSecret, claims{
		Type:             tokenRefresh,
		RegisteredClaims: registered(user.ID, now, refreshExp),
	})
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return domain.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func registered(subject string, now, exp time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
}

func (m *TokenManager) sign(secret []byte, c claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
}

// ParseAccess returns the user id carried by a valid access token.
func (m *TokenManager) ParseAccess(token string) (string, error) {
	return m.parse(token, m.accessSecret, tokenAccess)
}

// ParseRefresh returns the user id carried by a valid refresh token.
func (m *TokenManager) ParseRefresh(token string) (string, error) {
	return m.parse(token, m.refreshSecret, tokenRefresh)
}

func (m *TokenManager) parse(raw string, secret []byte, typ string) (string, error) {
	var c claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if c.Type != typ {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidToken, errTokenType)
	}
	if c.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return c.Subject, nil
}
