package roster

import "fmt"

// Layout names the position codes a league convention uses. Presets are
// plain values returned by factory functions; a Layout is never mutated
// after it is handed to NewSchema.
type Layout struct {
	// Offense lists the skill-position codes in canonical order.
	Offense []string

	// Quarterback is the offense code excluded from flex eligibility.
	Quarterback string

	Flex           string
	DST            string
	Kicker         string
	Bench          string
	InjuredReserve string
}

// ESPNLayout returns the position codes used by ESPN Fantasy Football.
func ESPNLayout() Layout {
	return Layout{
		Offense:        []string{"QB", "RB", "WR", "TE"},
		Quarterback:    "QB",
		Flex:           "FLEX",
		DST:            "D/ST",
		Kicker:         "K",
		Bench:          "BN",
		InjuredReserve: "IR",
	}
}

// YahooLayout returns the position codes used by Yahoo! Sports Fantasy
// Football. Only the flex and defense codes differ from ESPN's.
func YahooLayout() Layout {
	return Layout{
		Offense:        []string{"QB", "WR", "RB", "TE"},
		Quarterback:    "QB",
		Flex:           "W-R-T",
		DST:            "DEF",
		Kicker:         "K",
		Bench:          "BN",
		InjuredReserve: "IR",
	}
}

// positions returns every canonical code in layout order.
func (l Layout) positions() []string {
	out := make([]string, 0, len(l.Offense)+5)
	out = append(out, l.Offense...)
	return append(out, l.Flex, l.DST, l.Kicker, l.Bench, l.InjuredReserve)
}

// Schema is an immutable roster position schema: the canonical position
// set of a league convention plus the number of slots allotted to each
// code. Built once, never mutated.
type Schema struct {
	layout Layout
	counts map[string]int
	total  int
}

// NewSchema validates counts against the layout's canonical position set.
// The key set must equal the canonical set exactly and every count must be
// non-negative; zero counts are allowed.
func NewSchema(layout Layout, counts map[string]int) (*Schema, error) {
	canonical := layout.positions()
	if len(counts) != len(canonical) {
		return nil, fmt.Errorf("%w: got %d positions, want %d", ErrSchemaMismatch, len(counts), len(canonical))
	}

	total := 0
	kept := make(map[string]int, len(canonical))
	for _, code := range canonical {
		n, ok := counts[code]
		if !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrSchemaMismatch, code)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: %q = %d", ErrNegativeSlotCount, code, n)
		}
		kept[code] = n
		total += n
	}

	return &Schema{layout: layout, counts: kept, total: total}, nil
}

// Layout returns the schema's position codes.
func (s *Schema) Layout() Layout { return s.layout }

// Positions returns every canonical code in layout order: offense codes,
// then flex, DST, kicker, bench, injured reserve.
func (s *Schema) Positions() []string { return s.layout.positions() }

// Count returns the number of slots allotted to a position code. Unknown
// codes report zero.
func (s *Schema) Count(position string) int { return s.counts[position] }

// TotalSlots returns the sum of all slot allotments.
func (s *Schema) TotalSlots() int { return s.total }

// Contains reports whether position is a canonical code of the schema.
func (s *Schema) Contains(position string) bool {
	_, ok := s.counts[position]
	return ok
}

// Flexable reports whether a position is eligible for the flex slot: any
// offense code other than the quarterback. Unknown codes are an error, not
// a false.
func (s *Schema) Flexable(position string) (bool, error) {
	if !s.Contains(position) {
		return false, fmt.Errorf("%w: %q", ErrUnknownPosition, position)
	}
	if position == s.layout.Quarterback {
		return false, nil
	}
	for _, code := range s.layout.Offense {
		if code == position {
			return true, nil
		}
	}
	return false, nil
}

// Moveable reports whether a player may occupy the destination slot group.
// Every player may sit on the bench or in its natural position; injured
// players may sit in injured reserve; flexable players may sit in flex.
func (s *Schema) Moveable(player Player, destination string) (bool, error) {
	if err := s.Validate(player); err != nil {
		return false, err
	}
	if !s.Contains(destination) {
		return false, fmt.Errorf("%w: %q", ErrUnknownPosition, destination)
	}

	switch {
	case destination == s.layout.Bench:
		return true, nil
	case destination == player.Position:
		return true, nil
	case player.InjuredReserve && destination == s.layout.InjuredReserve:
		return true, nil
	case destination == s.layout.Flex:
		return s.Flexable(player.Position)
	}
	return false, nil
}

// Validate fails if any player's listed position is not a canonical code.
func (s *Schema) Validate(players ...Player) error {
	for _, p := range players {
		if !s.Contains(p.Position) {
			return fmt.Errorf("%w: %q", ErrInvalidPlayer, p.Position)
		}
	}
	return nil
}
