// Package scoring defines the point-value schema a league uses to turn raw
// statistics into fantasy points: an explicit mapping from scoring
// category to statistic to point value, with typed lookup failures.
package scoring

import "fmt"

// Standard scoring category codes.
const (
	CategoryOffense = "OFF"
	CategoryKicker  = "K"
	CategoryDefense = "D/ST"
)

// Option applies a configuration option to a Schema.
type Option func(*Schema)

// WithCategory sets the point values for one scoring category, replacing
// any values the category held. The map is copied.
func WithCategory(category string, values map[string]float64) Option {
	return func(s *Schema) {
		kept := make(map[string]float64, len(values))
		for stat, pts := range values {
			kept[stat] = pts
		}
		s.categories[category] = kept
	}
}

// Schema maps category → statistic → point value. Lookups of unknown keys
// fail with a typed error rather than returning a zero silently.
type Schema struct {
	categories map[string]map[string]float64
}

// NewSchema builds a point-value schema from options. With no options the
// schema is empty and every lookup fails.
func NewSchema(opts ...Option) *Schema {
	s := &Schema{categories: make(map[string]map[string]float64)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Default returns the standard per-statistic point values most leagues
// start from. Callers layer league-specific overrides on top via options
// or configuration.
func Default() *Schema {
	return NewSchema(
		WithCategory(CategoryOffense, map[string]float64{
			"passing_yards":       0.04,
			"passing_touchdown":   4,
			"interception":        -2,
			"rushing_yards":       0.1,
			"rushing_touchdown":   6,
			"receiving_yards":     0.1,
			"reception":           0.5,
			"receiving_touchdown": 6,
			"fumble_lost":         -2,
			"two_point":           2,
		}),
		WithCategory(CategoryKicker, map[string]float64{
			"extra_point":       1,
			"field_goal_0_39":   3,
			"field_goal_40_49":  4,
			"field_goal_50plus": 5,
			"missed_field_goal": -1,
		}),
		WithCategory(CategoryDefense, map[string]float64{
			"sack":                1,
			"interception":        2,
			"fumble_recovery":     2,
			"safety":              2,
			"defensive_touchdown": 6,
			"points_allowed_0":    10,
		}),
	)
}

// Categories returns the category codes the schema defines.
func (s *Schema) Categories() []string {
	out := make([]string, 0, len(s.categories))
	for category := range s.categories {
		out = append(out, category)
	}
	return out
}

// Category returns a copy of one category's statistic → point-value map.
func (s *Schema) Category(category string) (map[string]float64, error) {
	values, ok := s.categories[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	out := make(map[string]float64, len(values))
	for stat, pts := range values {
		out[stat] = pts
	}
	return out, nil
}

// Lookup returns the point value awarded per unit of a statistic within a
// category.
func (s *Schema) Lookup(category, statistic string) (float64, error) {
	values, ok := s.categories[category]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	pts, ok := values[statistic]
	if !ok {
		return 0, fmt.Errorf("%w: %q in %q", ErrUnknownStatistic, statistic, category)
	}
	return pts, nil
}
