package dto

import "github.com/GlebRadaev/onewin/internal/domain"

type RegisterRequestDTO struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequestDTO accepts either a nickname or an email as Login.
type LoginRequestDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type AuthResponseDTO struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    domain.Profile `json:"user"`
}

type AmountRequestDTO struct {
	Amount int64 `json:"amount"`
}

type TransferRequestDTO struct {
	ToAccount string `json:"to_account"`
	Amount    int64  `json:"amount"`
}

type TransactionsResponseDTO struct {
	Transactions []domain.Transaction `json:"transactions"`
}

type BetRequestDTO struct {
	Bet int64 `json:"bet"`
}

type CreateClanRequestDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type JoinClanRequestDTO struct {
	ClanID string `json:"clan_id"`
}

type ClanResponseDTO struct {
	Clan *domain.Clan `json:"clan"`
}

type ClansResponseDTO struct {
	Clans []domain.ClanSummary `json:"clans"`
}

type MessageRequestDTO struct {
	Text string `json:"text"`
}

type MessagesResponseDTO struct {
	Messages []domain.ClanMessage `json:"messages"`
}

type ClanActionRequestDTO struct {
	Action          string `json:"action"`
	TargetID        string `json:"target_id"`
	Reason          string `json:"reason"`
	DurationMinutes int    `json:"duration_minutes"`
	Amount          int64  `json:"amount"`
}

type OKResponseDTO struct {
	OK bool `json:"ok"`
}

type ProfileResponseDTO struct {
	Profile domain.Profile `json:"profile"`
}

type SearchResponseDTO struct {
	Results []domain.SearchResult `json:"results"`
}

type StatusesResponseDTO struct {
	Statuses []domain.StatusItem `json:"statuses"`
}

type StatusRequestDTO struct {
	StatusID string `json:"status_id"`
}

type GrantRequestDTO struct {
	TargetID string `json:"target_id"`
	Amount   int64  `json:"amount"`
}

type AdminModeResponseDTO struct {
	AdminMode bool `json:"admin_mode"`
}

type PredictionResponseDTO struct {
	Prediction string `json:"prediction"`
	Confidence int    `json:"confidence"`
}
