package domain

import "time"

type TransactionKind string

const (
	TxRegistration   TransactionKind = "registration"
	TxBonus          TransactionKind = "bonus"
	TxDeposit        TransactionKind = "deposit"
	TxWithdraw       TransactionKind = "withdraw"
	TxTransferIn     TransactionKind = "transfer_in"
	TxTransferOut    TransactionKind = "transfer_out"
	TxSlots          TransactionKind = "slots"
	TxRocket         TransactionKind = "rocket"
	TxBasketball     TransactionKind = "basketball"
	TxAdminGrant     TransactionKind = "admin_grant"
	TxClanCreation   TransactionKind = "clan_creation"
	TxClanTransfer   TransactionKind = "clan_transfer"
	TxClanDonation   TransactionKind = "clan_donation"
	TxStatusPurchase TransactionKind = "status_purchase"
)

type Account struct {
	ID                string     `json:"id"`
	Nickname          string     `json:"nickname"`
	Email             string     `json:"email"`
	PasswordHash      string     `json:"password_hash"`
	Balance           int64      `json:"balance"`
	BankBalance       int64      `json:"bank_balance"`
	BankAccount       string     `json:"bank_account"`
	TotalEarned       int64      `json:"total_earned"`
	GamesPlayed       int64      `json:"games_played"`
	MaxWin            int64      `json:"max_win"`
	ClanID            *string    `json:"clan_id"`
	Status            string     `json:"status"`
	VIPExpiry         *time.Time `json:"vip_expiry"`
	LastBonusClaim    *time.Time `json:"last_bonus_claim"`
	PurchasedStatuses []string   `json:"purchased_statuses"`
	IsAdmin           bool       `json:"is_admin"`
	AdminMode         bool       `json:"admin_mode"`
	RegisteredAt      time.Time  `json:"registered_at"`
}

// IsVIP reports whether the account has an unexpired VIP period at now.
func (a *Account) IsVIP(now time.Time) bool {
	return a.VIPExpiry != nil && a.VIPExpiry.After(now)
}

func (a *Account) Owns(statusID string) bool {
	for _, id := range a.PurchasedStatuses {
		if id == statusID {
			return true
		}
	}
	return false
}

type Warning struct {
	IssuedBy  string    `json:"issued_by"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
	Active    bool      `json:"active"`
}

type Member struct {
	AccountID string    `json:"account_id"`
	Nickname  string    `json:"nickname"`
	Role      Role      `json:"role"`
	Warnings  []Warning `json:"warnings"`
}

// ActiveWarnings counts warnings that still count toward the kick threshold.
func (m *Member) ActiveWarnings() int {
	n := 0
	for _, w := range m.Warnings {
		if w.Active {
			n++
		}
	}
	return n
}

type Clan struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Treasury    int64     `json:"treasury"`
	Members     []Member  `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *Clan) Member(accountID string) *Member {
	for i := range c.Members {
		if c.Members[i].AccountID == accountID {
			return &c.Members[i]
		}
	}
	return nil
}

type Transaction struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Kind      TransactionKind `json:"kind"`
	Amount    int64           `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	Info      string          `json:"info"`
}

type ClanMessage struct {
	ID        string    `json:"id"`
	ClanID    string    `json:"clan_id"`
	AccountID string    `json:"account_id,omitempty"`
	Nickname  string    `json:"nickname"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	System    bool      `json:"system"`
}

type StatusItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Achievement bool   `json:"achievement"`
	VIPDays     int    `json:"vip_days,omitempty"`
}

const (
	StatusNewbie  = "s1"
	StatusVeteran = "s2"
)

// DefaultStatusName is the label shown for a freshly registered account.
const DefaultStatusName = "Newbie"

// DefaultStatuses is the catalog seeded into an empty snapshot.
func DefaultStatuses() []StatusItem {
	return []StatusItem{
		{ID: StatusNewbie, Name: DefaultStatusName, Description: "Default status", Price: 0},
		{ID: StatusVeteran, Name: "Veteran", Description: "Registered more than a year ago", Achievement: true},
		{ID: "s3", Name: "Pro", Description: "Paid status", Price: 50000},
		{ID: "s4", Name: "Legend", Description: "Paid status with special badges", Price: 250000},
		{ID: "s5", Name: "Premium", Description: "Special features", Price: 100000},
		{ID: "s6", Name: "Elite", Description: "VIP benefits for 30 days", Price: 500000, VIPDays: 30},
	}
}
