// Package draft sequences a multi-round snake draft over a fixed set of
// rosters: it resolves whose turn each pick is, records results in a
// round-by-team grid, and undoes picks in strict LIFO order.
package draft

import (
	"fmt"

	"github.com/okian/huddle/internal/domain/roster"
)

// Pick identifies one assignment event: the 1-indexed round it belongs to
// and its 1-indexed overall number across the whole draft.
type Pick struct {
	Round   int
	Overall int
}

// Draft is a snake-order sequencer. Within odd rounds teams pick in roster
// order; within even rounds the order reverses. Push is the only forward
// transition, Pop the only backward one, and Reset returns to the initial
// state unconditionally. Instances are not safe for concurrent use.
type Draft struct {
	rosters   []*roster.Roster
	rounds    int
	results   [][]*roster.Player // [round-1][team column]
	remaining []Pick             // front is the next unconsumed pick
	completed int
}

// New builds a draft over the given rosters (fixed order, fixed size) and
// round count, with the cursor at pick 1.
func New(rosters []*roster.Roster, rounds int) (*Draft, error) {
	if len(rosters) == 0 {
		return nil, ErrNoRosters
	}
	if rounds <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRounds, rounds)
	}

	d := &Draft{
		rosters: append([]*roster.Roster(nil), rosters...),
		rounds:  rounds,
	}
	d.Reset()
	return d, nil
}

// Rosters returns the participating rosters in pick order for odd rounds.
func (d *Draft) Rosters() []*roster.Roster {
	return append([]*roster.Roster(nil), d.rosters...)
}

// Teams returns the number of participating rosters.
func (d *Draft) Teams() int { return len(d.rosters) }

// Rounds returns the round count.
func (d *Draft) Rounds() int { return d.rounds }

// Volume returns the total number of picks in the draft.
func (d *Draft) Volume() int { return d.rounds * len(d.rosters) }

// Completed returns the number of picks made so far.
func (d *Draft) Completed() int { return d.completed }

// Result returns the player recorded for a round and team column, or nil
// when the cell is empty.
func (d *Draft) Result(round, team int) *roster.Player {
	if round < 1 || round > d.rounds || team < 0 || team >= len(d.rosters) {
		return nil
	}
	return d.results[round-1][team]
}

// Round returns the 1-indexed round containing an overall pick number.
func (d *Draft) Round(pick int) (int, error) {
	if pick < 1 || pick > d.Volume() {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrPickOutOfRange, pick, d.Volume())
	}
	return (pick-1)/len(d.rosters) + 1, nil
}

// teamColumn resolves the roster index owning an overall pick number.
// Within an odd round picks run [0..N-1]; within an even round they run
// [N-1..0].
func (d *Draft) teamColumn(pick int) (int, error) {
	round, err := d.Round(pick)
	if err != nil {
		return 0, err
	}
	idx := (pick - 1) % len(d.rosters)
	if round%2 == 0 {
		idx = len(d.rosters) - 1 - idx
	}
	return idx, nil
}

// Team resolves the roster scheduled to draft at an overall pick number.
func (d *Draft) Team(pick int) (*roster.Roster, error) {
	idx, err := d.teamColumn(pick)
	if err != nil {
		return nil, err
	}
	return d.rosters[idx], nil
}

// Peek returns the next unconsumed pick without mutating state. The second
// return is false once every pick has been consumed.
func (d *Draft) Peek() (Pick, bool) {
	if len(d.remaining) == 0 {
		return Pick{}, false
	}
	return d.remaining[0], true
}

// Push consumes the next pick and places the player on the roster whose
// turn it is. The cursor only advances when the roster accepts the player;
// a roster with no eligible open slot fails the pick with ErrNoOpenSlot
// and leaves the draft unchanged.
func (d *Draft) Push(player roster.Player) (Pick, error) {
	next, ok := d.Peek()
	if !ok {
		return Pick{}, ErrDraftComplete
	}

	team, err := d.Team(next.Overall)
	if err != nil {
		return Pick{}, err
	}

	added, err := team.Add(player)
	if err != nil {
		return Pick{}, err
	}
	if len(added) == 0 {
		return Pick{}, fmt.Errorf("%w: %s on %s", ErrNoOpenSlot, player.Position, team.Name())
	}

	col, _ := d.teamColumn(next.Overall)
	d.results[next.Round-1][col] = &player
	d.completed++
	d.remaining = d.remaining[1:]
	return next, nil
}

// Pop undoes the most recent pick: the player recorded there is dropped
// from the owning roster, the grid cell is cleared, and the pick returns
// to the front of the cursor so the next Push repeats it.
func (d *Draft) Pop() (roster.Player, error) {
	if d.completed == 0 {
		return roster.Player{}, ErrNothingToUndo
	}

	last := d.Volume()
	if next, ok := d.Peek(); ok {
		last = next.Overall - 1
	}
	round, err := d.Round(last)
	if err != nil {
		return roster.Player{}, err
	}
	col, _ := d.teamColumn(last)

	recorded := d.results[round-1][col]
	if recorded == nil {
		return roster.Player{}, fmt.Errorf("%w: no player recorded at round %d pick %d", ErrInconsistentState, round, last)
	}

	team := d.rosters[col]
	if _, err := team.Drop(*recorded); err != nil {
		return roster.Player{}, fmt.Errorf("%w: %v", ErrInconsistentState, err)
	}

	d.results[round-1][col] = nil
	d.completed--
	d.remaining = append([]Pick{{Round: round, Overall: last}}, d.remaining...)
	return *recorded, nil
}

// Reset clears the results grid and completed count and rebuilds the
// cursor as the full snake sequence starting at pick 1. Safe to call at
// any point; calling it twice is the same as calling it once.
func (d *Draft) Reset() {
	n := len(d.rosters)
	d.completed = 0
	d.results = make([][]*roster.Player, d.rounds)
	for i := range d.results {
		d.results[i] = make([]*roster.Player, n)
	}
	d.remaining = make([]Pick, 0, d.Volume())
	for i := 0; i < d.Volume(); i++ {
		d.remaining = append(d.remaining, Pick{Round: i/n + 1, Overall: i + 1})
	}
}
