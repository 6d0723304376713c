package domain

import "time"

// Balances is the state of both wallets after a ledger operation.
type Balances struct {
	Balance     int64 `json:"balance"`
	BankBalance int64 `json:"bank_balance"`
}

type BonusClaim struct {
	Amount        int64     `json:"amount"`
	Balance       int64     `json:"balance"`
	NextAvailable time.Time `json:"next_available"`
}

// GameResult describes one settled round.
type GameResult struct {
	Game       TransactionKind `json:"game"`
	Bet        int64           `json:"bet"`
	Win        int64           `json:"win"`
	Multiplier float64         `json:"multiplier"`
	Symbols    []string        `json:"symbols,omitempty"`
	Crash      float64         `json:"crash,omitempty"`
	CashedAt   float64         `json:"cashed_at,omitempty"`
	Balance    int64           `json:"balance"`
}

// Prediction is the admin-only guess about the next round.
type Prediction struct {
	Prediction string `json:"prediction"`
	Confidence int    `json:"confidence"`
}

const (
	PredictWin  = "WIN"
	PredictLose = "LOSE"
)

type ClanSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Treasury    int64  `json:"treasury"`
	Members     int    `json:"members"`
}

func (c *Clan) Summary() ClanSummary {
	return ClanSummary{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Treasury:    c.Treasury,
		Members:     len(c.Members),
	}
}

type Donation struct {
	Balance  int64 `json:"balance"`
	Treasury int64 `json:"treasury"`
}

// ClanActionRequest carries the arguments of a role-gated clan action.
// Reason, DurationMinutes and Amount are read only by the actions that use them.
type ClanActionRequest struct {
	ClanID          string
	ActorID         string
	TargetID        string
	Action          ClanAction
	Reason          string
	DurationMinutes int
	Amount          int64
}

// Profile is an account as shown to other players.
type Profile struct {
	ID                string     `json:"id"`
	Nickname          string     `json:"nickname"`
	Email             string     `json:"email"`
	Balance           int64      `json:"balance"`
	BankBalance       int64      `json:"bank_balance"`
	BankAccount       string     `json:"bank_account"`
	TotalEarned       int64      `json:"total_earned"`
	GamesPlayed       int64      `json:"games_played"`
	MaxWin            int64      `json:"max_win"`
	ClanID            *string    `json:"clan_id"`
	Status            string     `json:"status"`
	VIP               bool       `json:"vip"`
	VIPExpiry         *time.Time `json:"vip_expiry"`
	LastBonusClaim    *time.Time `json:"last_bonus_claim"`
	PurchasedStatuses []string   `json:"purchased_statuses"`
	IsAdmin           bool       `json:"is_admin"`
	AdminMode         bool       `json:"admin_mode"`
	RegisteredAt      time.Time  `json:"registered_at"`
}

func (a *Account) Profile(now time.Time) Profile {
	purchased := make([]string, len(a.PurchasedStatuses))
	copy(purchased, a.PurchasedStatuses)
	return Profile{
		ID:                a.ID,
		Nickname:          a.Nickname,
		Email:             a.Email,
		Balance:           a.Balance,
		BankBalance:       a.BankBalance,
		BankAccount:       a.BankAccount,
		TotalEarned:       a.TotalEarned,
		GamesPlayed:       a.GamesPlayed,
		MaxWin:            a.MaxWin,
		ClanID:            a.ClanID,
		Status:            a.Status,
		VIP:               a.IsVIP(now),
		VIPExpiry:         a.VIPExpiry,
		LastBonusClaim:    a.LastBonusClaim,
		PurchasedStatuses: purchased,
		IsAdmin:           a.IsAdmin,
		AdminMode:         a.AdminMode,
		RegisteredAt:      a.RegisteredAt,
	}
}

type SearchResult struct {
	ID       string  `json:"id"`
	Nickname string  `json:"nickname"`
	Balance  int64   `json:"balance"`
	ClanID   *string `json:"clan_id"`
}

type PlayerRank struct {
	Rank     int    `json:"rank"`
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	VIP      bool   `json:"vip"`
	Status   string `json:"status"`
	Balance  int64  `json:"balance"`
}

type ClanRank struct {
	Rank int `json:"rank"`
	ClanSummary
}

type Leaderboard struct {
	Players []PlayerRank `json:"players"`
	Clans   []ClanRank   `json:"clans"`
}
