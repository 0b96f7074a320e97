package services

import (
	"context"
	"errors"

	"lostandfound/app/apperr"
	"lostandfound/app/authctx"
	"lostandfound/app/db"
	"lostandfound/app/models"
	"lostandfound/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	users *repo.UserRepository
	auth  *AuthService
}

func NewUserService(users *repo.UserRepository, auth *AuthService) *UserService {
	return &UserService{users: users, auth: auth}
}

// UserUpdate carries the optional fields of an admin edit. Nil means
// leave the field alone.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// Register creates a user. Anyone may create a regular user; creating an
// admin requires the caller to already be an admin. A taken email is a
// conflict before any other field is judged.
func (s *UserService) Register(ctx context.Context, actor *authctx.Identity, name, email, password, role string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperr.Validation("name, email and password are required")
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("That email already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if !models.ValidRole(role) {
		return nil, apperr.Validation("The role provided does not exist")
	}
	if role == models.RoleAdmin && (actor == nil || actor.Role != models.RoleAdmin) {
		return nil, apperr.Forbidden("Only admin users can create other admin users")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Name: name, Email: email, Password: string(hash), Role: role}
	if err := s.users.Create(ctx, u); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, apperr.Conflict("That email already exists.")
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context, page int) ([]models.User, error) {
	return s.users.ListActive(ctx, page)
}

func (s *UserService) CountActive(ctx context.Context) (int64, error) {
	return s.users.CountActive(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	u, err := s.users.FindActiveByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User does not exist")
	}
	return u, err
}

// Update applies an admin edit. Changing the email or setting a password
// revokes every token pair issued for the user's previous email.
func (s *UserService) Update(ctx context.Context, id uint, upd UserUpdate) (*models.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	oldEmail := u.Email
	revoke := false
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		if *upd.Email != u.Email {
			revoke = true
		}
		u.Email = *upd.Email
	}
	if upd.Password != nil && *upd.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.Password = string(hash)
		revoke = true
	}
	if revoke {
		if err := s.auth.RevokeAll(ctx, oldEmail); err != nil {
			return nil, err
		}
	}
	if err := s.users.Save(ctx, u); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, apperr.Conflict("That email already exists.")
		}
		return nil, err
	}
	return u, nil
}

// ChangePassword lets a user rotate their own password after proving the
// current one. All previously issued token pairs are revoked.
func (s *UserService) ChangePassword(ctx context.Context, actor *authctx.Identity, id uint, current, newPassword string) (*models.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor == nil || actor.UserID != id {
		return nil, apperr.Forbidden("You can only change your own password")
	}
	if newPassword == "" {
		return nil, apperr.Validation("new_password is required")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(current)) != nil {
		return nil, apperr.Forbidden("The current password is not correct")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.Password = string(hash)
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}
	if err := s.auth.RevokeAll(ctx, actor.Email); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete soft-deletes a user. Self-deletion is rejected.
func (s *UserService) Delete(ctx context.Context, actor *authctx.Identity, id uint) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if actor != nil && actor.Email == u.Email {
		return apperr.Forbidden("User can't delete himself")
	}
	u.Active = false
	return s.users.Save(ctx, u)
}

// EnsureAdmin seeds an admin account when the email is not taken yet.
func (s *UserService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(ctx, &models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     models.RoleAdmin,
	})
}
