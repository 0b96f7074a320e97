package services

import (
	"context"

	"lostandfound/app/apperr"
	jwtutil "lostandfound/app/jwt"
	"lostandfound/app/models"
	"lostandfound/app/repo"
	"lostandfound/app/tokenstore"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users  *repo.UserRepository
	signer *jwtutil.Signer
	store  tokenstore.Store
}

func NewAuthService(users *repo.UserRepository, signer *jwtutil.Signer, store tokenstore.Store) *AuthService {
	return &AuthService{users: users, signer: signer, store: store}
}

// Login verifies credentials and issues an access/refresh pair, recording
// the pair's JTIs against the user's email.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", "", apperr.Unauthorized("Invalid email/password combination")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, "", "", apperr.Unauthorized("Invalid email/password combination")
	}

	access, accessJTI, err := s.signer.Sign(u.Email, jwtutil.TypeAccess)
	if err != nil {
		return nil, "", "", err
	}
	refresh, refreshJTI, err := s.signer.Sign(u.Email, jwtutil.TypeRefresh)
	if err != nil {
		return nil, "", "", err
	}
	if err := s.store.Add(ctx, u.Email, tokenstore.Pair{AccessID: accessJTI, RefreshID: refreshJTI}); err != nil {
		return nil, "", "", err
	}
	return u, access, refresh, nil
}

// Refresh issues a fresh access token for the identity of a valid refresh
// token. The refresh token is left in place and the new access JTI is not
// tracked, so it can only die by expiry or explicit logout.
func (s *AuthService) Refresh(_ context.Context, email string) (string, error) {
	access, _, err := s.signer.Sign(email, jwtutil.TypeAccess)
	return access, err
}

// Logout blacklists the presented access JTI and, when the store still
// tracks its pair, the paired refresh JTI as well. A pair that is already
// gone only loses the access token.
func (s *AuthService) Logout(ctx context.Context, email, accessJTI string) error {
	if err := s.store.Blacklist(ctx, accessJTI); err != nil {
		return err
	}
	pair, err := s.store.RemoveByAccessID(ctx, email, accessJTI)
	if err != nil {
		return err
	}
	if pair != nil {
		return s.store.Blacklist(ctx, pair.RefreshID)
	}
	return nil
}

// RevokeAll moves every tracked JTI of the identity into the blacklist
// and clears the store entry. Used when a password changes.
func (s *AuthService) RevokeAll(ctx context.Context, email string) error {
	pairs, err := s.store.Pairs(ctx, email)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		ids = append(ids, p.AccessID, p.RefreshID)
	}
	if len(ids) > 0 {
		if err := s.store.Blacklist(ctx, ids...); err != nil {
			return err
		}
	}
	return s.store.Clear(ctx, email)
}
