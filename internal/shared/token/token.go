package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TypeAccess     = "access"
	TypeRefresh    = "refresh"
	TypeOnboarding = "onboarding"
)

var (
	ErrInvalid = errors.New("token is invalid")
	ErrExpired = errors.New("token is expired")
)

type Claims struct {
	UserID           string `json:"user_id"`
	Role             string `json:"role"`
	Status           string `json:"status"`
	OnboardingStatus string `json:"onboarding_status"`
	Type             string `json:"type"`
	jwt.RegisteredClaims
}

// Subject adalah data Person yang ditanam ke dalam token.
type Subject struct {
	UserID           string
	Role             string
	Status           string
	OnboardingStatus string
}

// Issuer menandatangani dan memverifikasi token HS256.
type Issuer struct {
	secret []byte
	ttl    map[string]time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, accessTTL, refreshTTL, onboardingTTL time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl: map[string]time.Duration{
			TypeAccess:     accessTTL,
			TypeRefresh:    refreshTTL,
			TypeOnboarding: onboardingTTL,
		},
		now: time.Now,
	}
}

func (i *Issuer) TTL(tokenType string) time.Duration {
	return i.ttl[tokenType]
}

func (i *Issuer) Issue(sub Subject, tokenType string) (string, error) {
	ttl, ok := i.ttl[tokenType]
	if !ok {
		return "", errors.New("unknown token type " + tokenType)
	}

	now := i.now()
	claims := Claims{
		UserID:           sub.UserID,
		Role:             sub.Role,
		Status:           sub.Status,
		OnboardingStatus: sub.OnboardingStatus,
		Type:             tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !tok.Valid || claims.UserID == "" {
		return nil, ErrInvalid
	}
	return claims, nil
}
