package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shopmitra/shopmitra/app/helpers"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopmitra/shopmitra/app/services"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	authService *services.AuthService
	render      *render.Render
	validate    *validator.Validate
}

func NewAuthHandler(authService *services.AuthService, rnd *render.Render, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		render:      rnd,
		validate:    validate,
	}
}

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(h.render, w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidation(h.render, w, helpers.ParseValidationErrors(err))
		return
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	}

	created, err := h.authService.Register(r.Context(), user)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, created)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(h.render, w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidation(h.render, w, helpers.ParseValidationErrors(err))
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondValidation(h.render, w, "token is required")
		return
	}

	if err := h.authService.VerifyEmail(r.Context(), token); err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "email verified"})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(h.render, w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidation(h.render, w, helpers.ParseValidationErrors(err))
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{
		"message": "if the account exists, a reset email has been sent",
	})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(h.render, w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondValidation(h.render, w, helpers.ParseValidationErrors(err))
		return
	}

	if err := h.authService.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		respondError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
