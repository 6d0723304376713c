package domain

import (
	"encoding/json"
	"fmt"
)

func EncodeSnapshot(s *Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a stored snapshot. Missing collections come back empty
// and an empty status catalog is reseeded.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	s := NewSnapshot()
	s.Statuses = nil
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Accounts == nil {
		s.Accounts = []*Account{}
	}
	if s.Clans == nil {
		s.Clans = []*Clan{}
	}
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	if s.ClanMessages == nil {
		s.ClanMessages = []ClanMessage{}
	}
	if len(s.Statuses) == 0 {
		s.Statuses = DefaultStatuses()
	}
	return s, nil
}
