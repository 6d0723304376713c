package domain

import (
	"fmt"
	"strings"
	"time"
)

// Snapshot is the whole persisted state. Backends load and save it as a unit.
type Snapshot struct {
	Accounts     []*Account    `json:"accounts"`
	Clans        []*Clan       `json:"clans"`
	Transactions []Transaction `json:"transactions"`
	ClanMessages []ClanMessage `json:"clan_messages"`
	Statuses     []StatusItem  `json:"statuses"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Accounts:     []*Account{},
		Clans:        []*Clan{},
		Transactions: []Transaction{},
		ClanMessages: []ClanMessage{},
		Statuses:     DefaultStatuses(),
	}
}

func (s *Snapshot) Account(id string) (*Account, error) {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: account %s", ErrNotFound, id)
}

func (s *Snapshot) AccountByBankAccount(number string) (*Account, error) {
	for _, a := range s.Accounts {
		if a.BankAccount == number {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: bank account %s", ErrNotFound, number)
}

// AccountByLogin matches nickname or email, case-insensitively.
func (s *Snapshot) AccountByLogin(login string) (*Account, error) {
	for _, a := range s.Accounts {
		if strings.EqualFold(a.Nickname, login) || strings.EqualFold(a.Email, login) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: account %s", ErrNotFound, login)
}

func (s *Snapshot) NicknameTaken(nickname string) bool {
	for _, a := range s.Accounts {
		if strings.EqualFold(a.Nickname, nickname) {
			return true
		}
	}
	return false
}

func (s *Snapshot) EmailTaken(email string) bool {
	for _, a := range s.Accounts {
		if strings.EqualFold(a.Email, email) {
			return true
		}
	}
	return false
}

func (s *Snapshot) BankAccountTaken(number string) bool {
	_, err := s.AccountByBankAccount(number)
	return err == nil
}

func (s *Snapshot) Clan(id string) (*Clan, error) {
	for _, c := range s.Clans {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: clan %s", ErrNotFound, id)
}

func (s *Snapshot) Status(id string) (*StatusItem, error) {
	for i := range s.Statuses {
		if s.Statuses[i].ID == id {
			return &s.Statuses[i], nil
		}
	}
	return nil, fmt.Errorf("%w: status %s", ErrNotFound, id)
}

func (s *Snapshot) AppendTransaction(tx Transaction) {
	s.Transactions = append(s.Transactions, tx)
}

func (s *Snapshot) AppendMessage(msg ClanMessage) {
	s.ClanMessages = append(s.ClanMessages, msg)
}

// TransactionsOf returns the account's transactions, newest first.
func (s *Snapshot) TransactionsOf(accountID string) []Transaction {
	var out []Transaction
	for i := len(s.Transactions) - 1; i >= 0; i-- {
		if s.Transactions[i].AccountID == accountID {
			out = append(out, s.Transactions[i])
		}
	}
	return out
}

// MessagesOf returns up to limit most recent messages of a clan, oldest first.
func (s *Snapshot) MessagesOf(clanID string, limit int) []ClanMessage {
	var out []ClanMessage
	for _, m := range s.ClanMessages {
		if m.ClanID == clanID {
			out = append(out, m)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// AttachMember adds the account to the clan and points the account at it.
// Both sides change together or not at all.
func (s *Snapshot) AttachMember(clan *Clan, account *Account, role Role) error {
	if account.ClanID != nil {
		return fmt.Errorf("%w: account %s", ErrAlreadyInClan, account.ID)
	}
	if clan.Member(account.ID) != nil {
		return fmt.Errorf("%w: account %s", ErrAlreadyInClan, account.ID)
	}
	clan.Members = append(clan.Members, Member{
		AccountID: account.ID,
		Nickname:  account.Nickname,
		Role:      role,
		Warnings:  []Warning{},
	})
	clanID := clan.ID
	account.ClanID = &clanID
	return nil
}

// DetachMember removes the account from the clan and clears its clan reference.
func (s *Snapshot) DetachMember(clan *Clan, accountID string) error {
	idx := -1
	for i := range clan.Members {
		if clan.Members[i].AccountID == accountID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: member %s in clan %s", ErrNotFound, accountID, clan.ID)
	}
	clan.Members = append(clan.Members[:idx], clan.Members[idx+1:]...)

	if account, err := s.Account(accountID); err == nil && account.ClanID != nil && *account.ClanID == clan.ID {
		account.ClanID = nil
	}
	return nil
}

// SystemMessage builds a clan message authored by the system.
func SystemMessage(id, clanID, text string, at time.Time) ClanMessage {
	return ClanMessage{
		ID:        id,
		ClanID:    clanID,
		Nickname:  "SYSTEM",
		Text:      text,
		CreatedAt: at,
		System:    true,
	}
}
