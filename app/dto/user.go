package dto

import (
	"time"

	"lostandfound/app/models"
)

// UserResponse is the serialized user; the password hash never leaves
// the service.
type UserResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Active      bool      `json:"active"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
	CreatedByID *uint     `json:"created_by_id"`
	UpdatedByID *uint     `json:"updated_by_id"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Active:      u.Active,
		CreatedOn:   u.CreatedOn,
		UpdatedOn:   u.UpdatedOn,
		CreatedByID: u.CreatedByID,
		UpdatedByID: u.UpdatedByID,
	}
}

func NewUserListResponse(users []models.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = NewUserResponse(&users[i])
	}
	return out
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type ChangePasswordRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"new_password"`
}

type UsersDataResponse struct {
	Users int64 `json:"users"`
}
