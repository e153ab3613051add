package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/stockpulse/stockpulse/internal/ctxkeys"
	"github.com/stockpulse/stockpulse/internal/service"
)

type authHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *authHandler {
	return &authHandler{authService: authService}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	DOB      string `json:"dob"`
	Gender   string `json:"gender"`
	Password string `json:"password"`
}

func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.authService.Register(service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		DOB:      req.DOB,
		Gender:   req.Gender,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			respondError(w, http.StatusConflict, "User already exists.")
			return
		}
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Error())
			return
		}
		slog.Error("signup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email)
	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not found.")
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(w, http.StatusUnauthorized, "Incorrect password.")
		default:
			slog.Error("login failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to log in.")
		}
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate JWT", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to log in.")
		return
	}
	h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))

	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)
	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    user,
	})
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

func (h *authHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"user": user})
}
