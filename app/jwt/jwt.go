package jwtutil

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims identify the bearer by email. Type separates access tokens from
// refresh tokens so one cannot stand in for the other.
type Claims struct {
	Email string `json:"email"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

type Signer struct {
	Secret     []byte
	Issuer     string
	AccessExp  time.Duration
	RefreshExp time.Duration
}

// Sign issues a token of the given type for the identity, returning the
// signed string and its JTI.
func (s *Signer) Sign(email, tokenType string) (string, string, error) {
	now := time.Now()
	exp := s.AccessExp
	if tokenType == TypeRefresh {
		exp = s.RefreshExp
	}
	jti := uuid.NewString()
	claims := Claims{
		Email: email,
		Type:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", "", err
	}
	return signed, jti, nil
}

func (s *Signer) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
