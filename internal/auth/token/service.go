package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/member"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrWrongTokenUse = errors.New("token used for wrong purpose")
)

// Claims carried by both token kinds. Access tokens are bound to the
// full member (sub + email); refresh tokens carry the member id only.
type Claims struct {
	Email     string `json:"email,omitempty"`
	TokenType string `json:"typ"`
	jwtv5.RegisteredClaims
}

// Service mints and validates the application's bearer credentials.
// The signing secret is read-only after construction.
type Service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(
	secret string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) (*Service, error) {

	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}

	return &Service{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

func (s *Service) RefreshTTL() time.Duration {
	return s.refreshTTL
}

// CreateAccessToken mints a short-lived access token bound to the member.
func (s *Service) CreateAccessToken(m *member.Member) (string, error) {
	return s.sign(Claims{
		Email:            m.Email,
		TokenType:        TypeAccess,
		RegisteredClaims: s.registered(m.ID, s.accessTTL),
	})
}

// CreateRefreshToken mints a longer-lived refresh token bound to the
// member id only.
func (s *Service) CreateRefreshToken(memberID string) (string, error) {
	return s.sign(Claims{
		TokenType:        TypeRefresh,
		RegisteredClaims: s.registered(memberID, s.refreshTTL),
	})
}

func (s *Service) registered(sub string, ttl time.Duration) jwtv5.RegisteredClaims {
	now := time.Now()
	return jwtv5.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwtv5.NewNumericDate(now),
		NotBefore: jwtv5.NewNumericDate(now),
		ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
	}
}

func (s *Service) sign(claims Claims) (string, error) {
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := tk.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token signing failed: %w", err)
	}
	return signed, nil
}

// ParseAccess validates an access token and returns its claims.
func (s *Service) ParseAccess(raw string) (*Claims, error) {
	return s.parse(raw, TypeAccess)
}

// ParseRefresh validates a refresh token and returns its claims.
func (s *Service) ParseRefresh(raw string) (*Claims, error) {
	return s.parse(raw, TypeRefresh)
}

func (s *Service) parse(raw, wantType string) (*Claims, error) {
	var claims Claims

	_, err := jwtv5.ParseWithClaims(
		raw,
		&claims,
		func(t *jwtv5.Token) (any, error) {
			if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.TokenType != wantType {
		return nil, ErrWrongTokenUse
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}
