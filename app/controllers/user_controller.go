package controllers

import (
	"encoding/json"
	"net/http"

	"lostandfound/app/apperr"
	"lostandfound/app/authctx"
	"lostandfound/app/dto"
	"lostandfound/app/services"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.List(r.Context(), pageParam(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserListResponse(users))
}

func (c *UserController) Data(w http.ResponseWriter, r *http.Request) {
	count, err := c.Users.CountActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.UsersDataResponse{Users: count})
}

func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idPathValue(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	u, err := c.Users.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(u))
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idPathValue(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}
	u, err := c.Users.Update(r.Context(), id, services.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(u))
}

func (c *UserController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, err := idPathValue(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req dto.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}
	actor := authctx.IdentityFrom(r.Context())
	u, err := c.Users.ChangePassword(r.Context(), actor, id, req.Password, req.NewPassword)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserResponse(u))
}

func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid request body"))
		return
	}
	actor := authctx.IdentityFrom(r.Context())
	u, err := c.Users.Register(r.Context(), actor, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewUserResponse(u))
}

func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idPathValue(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	actor := authctx.IdentityFrom(r.Context())
	if err := c.Users.Delete(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "User deleted"})
}
