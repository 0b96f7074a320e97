package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"lostandfound/app/authctx"
	jwtutil "lostandfound/app/jwt"
	"lostandfound/app/models"
	"lostandfound/app/repo"
	"lostandfound/app/tokenstore"
)

type Auth struct {
	Signer           *jwtutil.Signer
	Users            *repo.UserRepository
	Store            tokenstore.Store
	BlacklistEnabled bool
}

// RequireAuth admits requests with a valid, non-blacklisted access token
// and loads the bearer's user record into the context.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := a.authenticate(r, jwtutil.TypeAccess)
		if err != nil {
			deny(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRefresh is RequireAuth for refresh tokens.
func (a *Auth) RequireRefresh(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := a.authenticate(r, jwtutil.TypeRefresh)
		if err != nil {
			deny(w, http.StatusUnauthorized, "invalid or expired refresh token")
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates on RequireAuth plus role membership.
func (a *Auth) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return a.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := authctx.IdentityFrom(r.Context())
			for _, role := range roles {
				if id != nil && id.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			deny(w, http.StatusForbidden, "User has no permission for action")
		}))
	}
}

// OptionalAuth lets unauthenticated requests through untouched but
// rejects a token that is present and invalid.
func (a *Auth) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}
		ctx, err := a.authenticate(r, jwtutil.TypeAccess)
		if err != nil {
			deny(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin keeps the common case short.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return a.RequireRole(models.RoleAdmin)(next)
}

func (a *Auth) authenticate(r *http.Request, tokenType string) (context.Context, error) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return nil, errNoToken
	}
	claims, err := a.Signer.Parse(strings.TrimPrefix(authz, "Bearer "))
	if err != nil {
		return nil, err
	}
	if claims.Type != tokenType {
		return nil, errWrongType
	}
	if a.BlacklistEnabled {
		revoked, err := a.Store.IsBlacklisted(r.Context(), claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, errRevoked
		}
	}
	u, err := a.Users.FindByEmail(r.Context(), claims.Email)
	if err != nil {
		return nil, err
	}
	ctx := authctx.WithIdentity(r.Context(), &authctx.Identity{UserID: u.ID, Email: u.Email, Role: u.Role})
	return context.WithValue(ctx, claimsKey, claims), nil
}

func deny(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
