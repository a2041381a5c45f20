package roster

import (
	"fmt"

	"github.com/google/uuid"
)

// Option applies a configuration option to a Roster.
type Option func(*Roster)

// WithName sets a display name for the roster.
func WithName(name string) Option {
	return func(r *Roster) {
		if name != "" {
			r.name = name
		}
	}
}

// Roster is one team's slot assignment over a position schema. Each
// canonical position owns a fixed-length slot group; a nil entry is a
// vacant slot. Mutations happen in place; callers sharing an instance
// across goroutines must serialize externally.
type Roster struct {
	id     string
	name   string
	schema *Schema
	slots  map[string][]*Player
}

// New builds an empty roster over the given schema. Slot group lengths are
// fixed at construction and never change.
func New(schema *Schema, opts ...Option) *Roster {
	r := &Roster{
		id:     uuid.NewString(),
		schema: schema,
		slots:  make(map[string][]*Player, len(schema.Positions())),
	}
	r.name = r.id
	for _, code := range schema.Positions() {
		r.slots[code] = make([]*Player, schema.Count(code))
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ID returns the roster's opaque identifier.
func (r *Roster) ID() string { return r.id }

// Name returns the roster's display name.
func (r *Roster) Name() string { return r.name }

// Schema returns the roster's position schema.
func (r *Roster) Schema() *Schema { return r.schema }

// Slots returns a copy of the slot group for a position code. Vacant slots
// are nil entries.
func (r *Roster) Slots(position string) []*Player {
	group, ok := r.slots[position]
	if !ok {
		return nil
	}
	out := make([]*Player, len(group))
	copy(out, group)
	return out
}

// Occupied returns the number of filled slots for a position code.
func (r *Roster) Occupied(position string) int {
	n := 0
	for _, slot := range r.slots[position] {
		if slot != nil {
			n++
		}
	}
	return n
}

// Players returns every rostered player in layout order.
func (r *Roster) Players() []Player {
	var out []Player
	for _, code := range r.schema.Positions() {
		for _, slot := range r.slots[code] {
			if slot != nil {
				out = append(out, *slot)
			}
		}
	}
	return out
}

// vacancy returns the index of the first empty slot in a group.
func (r *Roster) vacancy(position string) (int, bool) {
	for i, slot := range r.slots[position] {
		if slot == nil {
			return i, true
		}
	}
	return 0, false
}

// indexOf returns the slot index holding the player within a group.
func (r *Roster) indexOf(position string, p Player) (int, bool) {
	for i, slot := range r.slots[position] {
		if slot != nil && slot.Is(p) {
			return i, true
		}
	}
	return 0, false
}

// locate finds the slot currently holding the player, searching the
// natural position group, then flex, then bench. Drop and Move share this
// search so a player is removable from wherever it actually resides.
func (r *Roster) locate(p Player) (string, int, error) {
	for _, code := range []string{p.Position, r.schema.Layout().Flex, r.schema.Layout().Bench} {
		if i, ok := r.indexOf(code, p); ok {
			return code, i, nil
		}
	}
	return "", 0, fmt.Errorf("%w: %s %q", ErrPlayerNotFound, p.Position, p.ID)
}

// Add attempts to place each player, in input order, into its natural
// position slot, then flex (when the position is flexable), then bench.
// Players with no open slot are skipped without error; the returned list
// holds exactly the players placed.
func (r *Roster) Add(players ...Player) ([]Player, error) {
	if err := r.schema.Validate(players...); err != nil {
		return nil, err
	}

	added := make([]Player, 0, len(players))
	for i := range players {
		p := players[i]

		target := ""
		if _, ok := r.vacancy(p.Position); ok {
			target = p.Position
		} else if flexable, _ := r.schema.Flexable(p.Position); flexable {
			if _, ok := r.vacancy(r.schema.Layout().Flex); ok {
				target = r.schema.Layout().Flex
			}
		}
		if target == "" {
			if _, ok := r.vacancy(r.schema.Layout().Bench); ok {
				target = r.schema.Layout().Bench
			}
		}
		if target == "" {
			continue // every eligible slot occupied
		}

		idx, _ := r.vacancy(target)
		r.slots[target][idx] = &p
		added = append(added, p)
	}
	return added, nil
}

// Drop vacates the slot holding each player, searching natural position,
// flex, then bench. A player absent from all three fails the batch with
// ErrPlayerNotFound; players already processed stay dropped and are
// reported in the returned list alongside the error.
func (r *Roster) Drop(players ...Player) ([]Player, error) {
	if err := r.schema.Validate(players...); err != nil {
		return nil, err
	}

	dropped := make([]Player, 0, len(players))
	for _, p := range players {
		code, idx, err := r.locate(p)
		if err != nil {
			return dropped, err
		}
		r.slots[code][idx] = nil
		dropped = append(dropped, p)
	}
	return dropped, nil
}

// Move relocates a player to the destination slot group. When replace is
// non-nil, the named occupant of the destination is displaced into the
// player's vacated slot; when replace is nil the destination must have a
// vacancy.
func (r *Roster) Move(player Player, destination string, replace *Player) error {
	ok, err := r.schema.Moveable(player, destination)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s to %q", ErrIllegalMove, player.Position, destination)
	}

	if _, open := r.vacancy(destination); !open && replace == nil {
		return fmt.Errorf("%w: %q", ErrMissingReplacement, destination)
	}

	srcCode, srcIdx, err := r.locate(player)
	if err != nil {
		return err
	}

	if replace != nil {
		dstIdx, found := r.indexOf(destination, *replace)
		if !found {
			return fmt.Errorf("%w: replacement %s %q not in %q", ErrPlayerNotFound, replace.Position, replace.ID, destination)
		}
		r.slots[destination][dstIdx] = &player
		out := *replace
		r.slots[srcCode][srcIdx] = &out
		return nil
	}

	dstIdx, _ := r.vacancy(destination)
	r.slots[srcCode][srcIdx] = nil
	r.slots[destination][dstIdx] = &player
	return nil
}

// TransactionSummary reports which players of a batched add/drop actually
// changed the roster.
type TransactionSummary struct {
	Added   []Player
	Dropped []Player
}

// Transaction applies the adds, then the drops, and summarizes both.
func (r *Roster) Transaction(add, drop []Player) (TransactionSummary, error) {
	var summary TransactionSummary
	var err error

	summary.Added, err = r.Add(add...)
	if err != nil {
		return summary, err
	}
	summary.Dropped, err = r.Drop(drop...)
	return summary, err
}

// Trade applies a two-sided exchange: the roster gains add and loses drop;
// other gains drop and loses add. The exchange is not atomic — when the
// second roster's side fails, the first roster's side stays applied and
// the caller must compensate. The summary is keyed by roster ID.
func (r *Roster) Trade(other *Roster, add, drop []Player) (map[string]TransactionSummary, error) {
	summary := make(map[string]TransactionSummary, 2)

	mine, err := r.Transaction(add, drop)
	summary[r.id] = mine
	if err != nil {
		return summary, err
	}

	theirs, err := other.Transaction(drop, add)
	summary[other.id] = theirs
	return summary, err
}
