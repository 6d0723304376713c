package games

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/internal/dto"
	"github.com/GlebRadaev/onewin/pkg/auth"
	"github.com/GlebRadaev/onewin/pkg/utils"
)

type Service interface {
	PlaySlots(ctx context.Context, accountID string, bet int64) (domain.GameResult, error)
	PlayRocket(ctx context.Context, accountID string, bet int64) (domain.GameResult, error)
	PlayBasketball(ctx context.Context, accountID string, bet int64) (domain.GameResult, error)
}

type playFunc func(ctx context.Context, accountID string, bet int64) (domain.GameResult, error)

type GamesHandler struct {
	gameService Service
}

func New(gameService Service) *GamesHandler {
	return &GamesHandler{
		gameService: gameService,
	}
}

func (h *GamesHandler) play(w http.ResponseWriter, r *http.Request, play playFunc) {
	var req dto.BetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	result, err := play(r.Context(), auth.UserID(r.Context()), req.Bet)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// Slots godoc
//
//	@Summary		Play slots
//	@Description	Spins three reels. Only three equal symbols pay, by symbol.
//	@Tags			Games
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.BetRequestDTO	true	"Bet"
//	@Success		200		{object}	domain.GameResult
//	@Failure		400		{object}	utils.Response	"Invalid bet"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/games/slots [post]
func (h *GamesHandler) Slots(w http.ResponseWriter, r *http.Request) {
	h.play(w, r, h.gameService.PlaySlots)
}

// Rocket godoc
//
//	@Summary		Play rocket
//	@Description	Draws a crash point and a cash-out multiplier below it
//	@Tags			Games
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.BetRequestDTO	true	"Bet"
//	@Success		200		{object}	domain.GameResult
//	@Failure		400		{object}	utils.Response	"Invalid bet"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/games/rocket [post]
func (h *GamesHandler) Rocket(w http.ResponseWriter, r *http.Request) {
	h.play(w, r, h.gameService.PlayRocket)
}

// Basketball godoc
//
//	@Summary		Play basketball
//	@Tags			Games
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.BetRequestDTO	true	"Bet"
//	@Success		200		{object}	domain.GameResult
//	@Failure		400		{object}	utils.Response	"Invalid bet"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/games/basket [post]
func (h *GamesHandler) Basketball(w http.ResponseWriter, r *http.Request) {
	h.play(w, r, h.gameService.PlayBasketball)
}
