package controllers

import (
	"encoding/json"
	"net/http"

	"lostandfound/app/authctx"
	"lostandfound/app/dto"
	"lostandfound/app/middleware"
	"lostandfound/app/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid email/password combination"})
		return
	}
	u, access, refresh, err := c.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Message:      "Login succeeded",
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.NewUserResponse(u),
	})
}

func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	id := authctx.IdentityFrom(r.Context())
	access, err := c.Auth.Refresh(r.Context(), id.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.RefreshResponse{AccessToken: access})
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	id := authctx.IdentityFrom(r.Context())
	claims := middleware.GetClaims(r.Context())
	if err := c.Auth.Logout(r.Context(), id.Email, claims.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Successfully logged out"})
}
