// Package roster models fantasy-football roster composition: position
// schemas, slot allocation, and the add/drop/move/trade operations a
// single team performs over its roster.
package roster

import "github.com/google/uuid"

// Player is the minimal identity the roster and draft layers require.
// Fields mirror what a league surface reports about a rostered player.
type Player struct {
	// ID is an opaque identifier. Two players sharing a position and
	// injury flag are still distinct when both carry an ID.
	ID string

	// Position is the player's listed roster position code, e.g. "WR".
	Position string

	// InjuredReserve reports whether the player is eligible for the IR slot.
	InjuredReserve bool
}

// NewPlayer builds a Player with a generated unique ID.
func NewPlayer(position string, injuredReserve bool) Player {
	return Player{
		ID:             uuid.NewString(),
		Position:       position,
		InjuredReserve: injuredReserve,
	}
}

// Is reports whether p and other refer to the same player. Identity is the
// ID when both sides carry one; otherwise it falls back to structural
// equality on (position, injured_reserve).
func (p Player) Is(other Player) bool {
	if p.ID != "" && other.ID != "" {
		return p.ID == other.ID
	}
	return p.Position == other.Position && p.InjuredReserve == other.InjuredReserve
}
