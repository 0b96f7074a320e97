package middleware

import (
	"context"
	"errors"

	jwtutil "lostandfound/app/jwt"
)

type ctxKey int

const claimsKey ctxKey = 1

var (
	errNoToken   = errors.New("missing bearer token")
	errWrongType = errors.New("wrong token type")
	errRevoked   = errors.New("token revoked")
)

// GetClaims returns the parsed token claims, nil outside authenticated
// requests.
func GetClaims(ctx context.Context) *jwtutil.Claims {
	if v := ctx.Value(claimsKey); v != nil {
		if c, ok := v.(*jwtutil.Claims); ok {
			return c
		}
	}
	return nil
}
