package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/internal/dto"
	"github.com/GlebRadaev/onewin/internal/service/authservice"
	"github.com/GlebRadaev/onewin/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, nickname, email, password string) (domain.Profile, error)
	Authenticate(ctx context.Context, login, password string) (domain.Profile, error)
	GenerateToken(accountID string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Create an account with nickname, email and password. The starting balance and a bank account are assigned.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Nickname or email already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	profile, err := h.authService.Register(r.Context(), req.Nickname, req.Email, req.Password)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	h.respondWithToken(w, profile, "Account successfully registered")
}

// Login godoc
//
//	@Summary		Authenticate an account
//	@Description	Log in with a nickname or email and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	profile, err := h.authService.Authenticate(r.Context(), req.Login, req.Password)
	if errors.Is(err, authservice.ErrInvalidCredentials) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	h.respondWithToken(w, profile, "Account successfully authenticated")
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, profile domain.Profile, message string) {
	token, err := h.authService.GenerateToken(profile.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message: message,
		Token:   token,
		User:    profile,
	})
}
