package clans

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
	Create(ctx context.Context, accountID, name, description string) (*domain.Clan, error)
	Join(ctx context.Context, accountID, clanID string) (*domain.Clan, error)
	List(ctx context.Context) ([]domain.ClanSummary, error)
	Messages(ctx context.Context, accountID, clanID string) ([]domain.ClanMessage, error)
	SendMessage(ctx context.Context, accountID, clanID, text string) (domain.ClanMessage, error)
	Donate(ctx context.Context, accountID, clanID string, amount int64) (domain.Donation, error)
	Act(ctx context.Context, req domain.ClanActionRequest) error
}

type ClansHandler struct {
	clanService Service
}

func New(clanService Service) *ClansHandler {
	return &ClansHandler{
		clanService: clanService,
	}
}

// CreateClan godoc
//
//	@Summary		Create a clan
//	@Description	Charges the creation cost and makes the caller the leader
//	@Tags			Clans
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateClanRequestDTO	true	"Clan"
//	@Success		200		{object}	dto.ClanResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid name"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		409		{object}	utils.Response	"Already in a clan or name taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/create-clan [post]
func (h *ClansHandler) CreateClan(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	clan, err := h.clanService.Create(r.Context(), auth.UserID(r.Context()), req.Name, req.Description)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClanResponseDTO{Clan: clan})
}

// JoinClan godoc
//
//	@Summary		Join a clan
//	@Tags			Clans
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.JoinClanRequestDTO	true	"Clan id"
//	@Success		200		{object}	dto.ClanResponseDTO
//	@Failure		404		{object}	utils.Response	"Clan not found"
//	@Failure		409		{object}	utils.Response	"Already in a clan"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/join-clan [post]
func (h *ClansHandler) JoinClan(w http.ResponseWriter, r *http.Request) {
	var req dto.JoinClanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	clan, err := h.clanService.Join(r.Context(), auth.UserID(r.Context()), req.ClanID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClanResponseDTO{Clan: clan})
}

// ListClans godoc
//
//	@Summary	List clans
//	@Tags		Clans
//	@Produce	json
//	@Success	200	{object}	dto.ClansResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/clans [get]
func (h *ClansHandler) ListClans(w http.ResponseWriter, r *http.Request) {
	clans, err := h.clanService.List(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClansResponseDTO{Clans: clans})
}

// GetMessages godoc
//
//	@Summary		Clan chat history
//	@Description	Last messages of the clan. Members only.
//	@Tags			Clans
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Clan ID"
//	@Success		200	{object}	dto.MessagesResponseDTO
//	@Failure		403	{object}	utils.Response	"Not a member"
//	@Failure		404	{object}	utils.Response	"Clan not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/clan/{id}/messages [get]
func (h *ClansHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.clanService.Messages(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessagesResponseDTO{Messages: msgs})
}

// SendMessage godoc
//
//	@Summary	Post to the clan chat
//	@Tags		Clans
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Clan ID"
//	@Param		request	body		dto.MessageRequestDTO	true	"Message"
//	@Success	200		{object}	domain.ClanMessage
//	@Failure	400		{object}	utils.Response	"Empty or too long message"
//	@Failure	403		{object}	utils.Response	"Not a member"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/clan/{id}/message [post]
func (h *ClansHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.MessageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	msg, err := h.clanService.SendMessage(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"), req.Text)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, msg)
}

// Donate godoc
//
//	@Summary	Donate to the clan treasury
//	@Tags		Clans
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Clan ID"
//	@Param		request	body		dto.AmountRequestDTO	true	"Amount"
//	@Success	200		{object}	domain.Donation
//	@Failure	402		{object}	utils.Response	"Insufficient funds"
//	@Failure	403		{object}	utils.Response	"Not a member"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/clan/{id}/donate [post]
func (h *ClansHandler) Donate(w http.ResponseWriter, r *http.Request) {
	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	donation, err := h.clanService.Donate(r.Context(), auth.UserID(r.Context()), chi.URLParam(r, "id"), req.Amount)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, donation)
}

// Action godoc
//
//	@Summary		Run a clan action
//	@Description	One of warn, kick, mute, promote or transfer. Each action requires a minimum role.
//	@Tags			Clans
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Clan ID"
//	@Param			request	body		dto.ClanActionRequestDTO	true	"Action"
//	@Success		200		{object}	dto.OKResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown action or invalid target"
//	@Failure		402		{object}	utils.Response	"Insufficient treasury"
//	@Failure		403		{object}	utils.Response	"Role too low"
//	@Failure		404		{object}	utils.Response	"Clan or member not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/clan/{id}/action [post]
func (h *ClansHandler) Action(w http.ResponseWriter, r *http.Request) {
	var req dto.ClanActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	action, err := domain.ParseClanAction(req.Action)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	err = h.clanService.Act(r.Context(), domain.ClanActionRequest{
		ClanID:          chi.URLParam(r, "id"),
		ActorID:         auth.UserID(r.Context()),
		TargetID:        req.TargetID,
		Action:          action,
		Reason:          req.Reason,
		DurationMinutes: req.DurationMinutes,
		Amount:          req.Amount,
	})
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OKResponseDTO{OK: true})
}
