package domain

import (
	"encoding/json"
	"fmt"
)

// Role is a clan rank. Higher values carry more rights.
type Role int

const (
	RoleMember Role = iota + 1
	RoleVice
	RoleLeader
)

var roleNames = map[Role]string{
	RoleMember: "member",
	RoleVice:   "vice",
	RoleLeader: "leader",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, s)
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	role, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// ClanAction is a role-gated operation inside a clan.
type ClanAction string

const (
	ActionWarn     ClanAction = "warn"
	ActionKick     ClanAction = "kick"
	ActionMute     ClanAction = "mute"
	ActionPromote  ClanAction = "promote"
	ActionTransfer ClanAction = "transfer"
)

var minimumRole = map[ClanAction]Role{
	ActionWarn:     RoleVice,
	ActionKick:     RoleVice,
	ActionMute:     RoleVice,
	ActionPromote:  RoleLeader,
	ActionTransfer: RoleMember,
}

// Allows reports whether a member with role r may perform action.
// Unknown actions are never allowed.
func (r Role) Allows(action ClanAction) bool {
	min, ok := minimumRole[action]
	if !ok {
		return false
	}
	return r >= min
}

func ParseClanAction(s string) (ClanAction, error) {
	action := ClanAction(s)
	if _, ok := minimumRole[action]; !ok {
		return "", fmt.Errorf("%w: unknown action %q", ErrInvalidArgument, s)
	}
	return action, nil
}
