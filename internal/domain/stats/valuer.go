package stats

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/okian/huddle/internal/domain/scoring"
)

// ErrNoSource reports a Valuer used before a Source was attached.
var ErrNoSource = errors.New("no statistics source attached")

// Option applies a configuration option to a Valuer.
type Option func(*Valuer)

// WithCategoryForPosition overrides the mapping from a position code to
// the scoring category that prices its statistics.
func WithCategoryForPosition(position, category string) Option {
	return func(v *Valuer) {
		v.categories[position] = category
	}
}

// WithSource attaches the statistics source the Valuer totals over.
func WithSource(source Source) Option {
	return func(v *Valuer) {
		v.source = source
	}
}

// PlayerPoints is one player's computed fantasy-point total.
type PlayerPoints struct {
	PlayerName string
	Position   string
	Team       string
	Points     float64
}

// Valuer combines a point-value schema with a statistics source to compute
// fantasy-point totals per player. It sits outside the roster and draft
// correctness path: totals inform ranking, never slot legality.
type Valuer struct {
	schema     *scoring.Schema
	source     Source
	categories map[string]string // position code -> scoring category
}

// NewValuer builds a Valuer over a point-value schema. The default
// position-to-category mapping covers the ESPN and Yahoo code sets.
func NewValuer(schema *scoring.Schema, opts ...Option) *Valuer {
	v := &Valuer{
		schema: schema,
		categories: map[string]string{
			"QB":   scoring.CategoryOffense,
			"RB":   scoring.CategoryOffense,
			"WR":   scoring.CategoryOffense,
			"TE":   scoring.CategoryOffense,
			"K":    scoring.CategoryKicker,
			"D/ST": scoring.CategoryDefense,
			"DEF":  scoring.CategoryDefense,
		},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Points totals one row: each statistic column is priced by the scoring
// category covering the row's position. Statistics the category does not
// price contribute nothing; an unmapped position is an error.
func (v *Valuer) Points(row Row) (float64, error) {
	category, ok := v.categories[row.Position]
	if !ok {
		return 0, fmt.Errorf("no scoring category for position %q", row.Position)
	}

	total := 0.0
	for stat, amount := range row.Values {
		pts, err := v.schema.Lookup(category, stat)
		if err != nil {
			if errors.Is(err, scoring.ErrUnknownStatistic) {
				continue
			}
			return 0, err
		}
		total += pts * amount
	}
	return total, nil
}

// Totals computes every player's point total from the attached source,
// sorted descending. Ties break by player name for stable output.
func (v *Valuer) Totals(ctx context.Context) ([]PlayerPoints, error) {
	if v.source == nil {
		return nil, ErrNoSource
	}
	rows, err := v.source.Rows(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PlayerPoints, 0, len(rows))
	for _, row := range rows {
		pts, err := v.Points(row)
		if err != nil {
			return nil, err
		}
		out = append(out, PlayerPoints{
			PlayerName: row.PlayerName,
			Position:   row.Position,
			Team:       row.Team,
			Points:     pts,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	return out, nil
}
