package accounts

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/internal/dto"
	"github.com/GlebRadaev/onewin/pkg/auth"
	"github.com/GlebRadaev/onewin/pkg/utils"
)

type Service interface {
	Profile(ctx context.Context, accountID string) (domain.Profile, error)
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
	Leaderboard(ctx context.Context) (domain.Leaderboard, error)
	Statuses(ctx context.Context) ([]domain.StatusItem, error)
	BuyStatus(ctx context.Context, accountID, statusID string) (domain.Profile, error)
	SetStatus(ctx context.Context, accountID, statusID string) (domain.Profile, error)
	Grant(ctx context.Context, actorID, targetID string, amount int64) (domain.Profile, error)
	ToggleAdminMode(ctx context.Context, actorID string) (bool, error)
	Predict(ctx context.Context, actorID string) (domain.Prediction, error)
}

type AccountsHandler struct {
	accountService Service
}

func New(accountService Service) *AccountsHandler {
	return &AccountsHandler{
		accountService: accountService,
	}
}

// GetProfile godoc
//
//	@Summary	Public profile of an account
//	@Tags		Accounts
//	@Produce	json
//	@Param		id	path		string	true	"Account ID"
//	@Success	200	{object}	dto.ProfileResponseDTO
//	@Failure	404	{object}	utils.Response	"Account not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/profile/{id} [get]
func (h *AccountsHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.accountService.Profile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{Profile: profile})
}

// Search godoc
//
//	@Summary	Search accounts by nickname
//	@Tags		Accounts
//	@Produce	json
//	@Param		q	query		string	false	"Nickname fragment"
//	@Success	200	{object}	dto.SearchResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/search-user [get]
func (h *AccountsHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.accountService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SearchResponseDTO{Results: results})
}

// Leaderboard godoc
//
//	@Summary	Richest players and clans
//	@Tags		Accounts
//	@Produce	json
//	@Success	200	{object}	domain.Leaderboard
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/leaderboard [get]
func (h *AccountsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.accountService.Leaderboard(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, board)
}

// Statuses godoc
//
//	@Summary	Status catalog
//	@Tags		Statuses
//	@Produce	json
//	@Success	200	{object}	dto.StatusesResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/statuses [get]
func (h *AccountsHandler) Statuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.accountService.Statuses(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatusesResponseDTO{Statuses: statuses})
}

// BuyStatus godoc
//
//	@Summary		Buy a status
//	@Description	Deducts the price and activates the status. Achievements cannot be bought.
//	@Tags			Statuses
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.StatusRequestDTO	true	"Status"
//	@Success		200		{object}	dto.ProfileResponseDTO
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		403		{object}	utils.Response	"Achievement status"
//	@Failure		404		{object}	utils.Response	"Status not found"
//	@Failure		409		{object}	utils.Response	"Already owned"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/buy-status [post]
func (h *AccountsHandler) BuyStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.StatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	profile, err := h.accountService.BuyStatus(r.Context(), auth.UserID(r.Context()), req.StatusID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{Profile: profile})
}

// SetStatus godoc
//
//	@Summary	Display an owned status
//	@Tags		Statuses
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.StatusRequestDTO	true	"Status"
//	@Success	200		{object}	dto.ProfileResponseDTO
//	@Failure	403		{object}	utils.Response	"Status not owned"
//	@Failure	404		{object}	utils.Response	"Status not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/set-status [post]
func (h *AccountsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.StatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	profile, err := h.accountService.SetStatus(r.Context(), auth.UserID(r.Context()), req.StatusID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{Profile: profile})
}

// Grant godoc
//
//	@Summary		Credit funds as admin
//	@Description	An empty target credits the admin account
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.GrantRequestDTO	true	"Grant"
//	@Success		200		{object}	dto.ProfileResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		403		{object}	utils.Response	"Not an admin"
//	@Failure		404		{object}	utils.Response	"Target not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/grant [post]
func (h *AccountsHandler) Grant(w http.ResponseWriter, r *http.Request) {
	var req dto.GrantRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	profile, err := h.accountService.Grant(r.Context(), auth.UserID(r.Context()), req.TargetID, req.Amount)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{Profile: profile})
}

// ToggleAdminMode godoc
//
//	@Summary	Toggle admin mode
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.AdminModeResponseDTO
//	@Failure	403	{object}	utils.Response	"Not an admin"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/toggle-mode [post]
func (h *AccountsHandler) ToggleAdminMode(w http.ResponseWriter, r *http.Request) {
	mode, err := h.accountService.ToggleAdminMode(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminModeResponseDTO{AdminMode: mode})
}

// Predict godoc
//
//	@Summary	Guess the next round
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.PredictionResponseDTO
//	@Failure	403	{object}	utils.Response	"Not an admin"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/predict [get]
func (h *AccountsHandler) Predict(w http.ResponseWriter, r *http.Request) {
	prediction, err := h.accountService.Predict(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PredictionResponseDTO{
		Prediction: prediction.Prediction,
		Confidence: prediction.Confidence,
	})
}
