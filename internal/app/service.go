// Package service wires the league together: it builds the position schema
// and rosters from configuration, runs the snake draft, and fronts roster
// transactions with logging and metrics.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/okian/huddle/internal/config"
	"github.com/okian/huddle/internal/domain/draft"
	"github.com/okian/huddle/internal/domain/roster"
	"github.com/okian/huddle/internal/domain/scoring"
	"github.com/okian/huddle/internal/domain/stats"
	"github.com/okian/huddle/pkg/logger"
	"github.com/okian/huddle/pkg/metrics"
)

// ErrUnknownTeam reports an operation addressed to a team name the league
// does not contain.
var ErrUnknownTeam = errors.New("unknown team")

// Option applies a configuration option to the League.
type Option func(*League)

// WithLayout sets the position code set. Defaults to the ESPN layout.
func WithLayout(layout roster.Layout) Option {
	return func(l *League) {
		l.layout = layout
	}
}

// WithSlotCounts sets the per-position slot allotments.
func WithSlotCounts(counts map[string]int) Option {
	return func(l *League) {
		if len(counts) > 0 {
			l.counts = counts
		}
	}
}

// WithTeams sets the participating team names in draft order.
func WithTeams(names ...string) Option {
	return func(l *League) {
		if len(names) > 0 {
			l.teams = names
		}
	}
}

// WithRounds sets the draft round count.
func WithRounds(rounds int) Option {
	return func(l *League) {
		if rounds > 0 {
			l.rounds = rounds
		}
	}
}

// WithScoring sets the point-value schema used for standings.
func WithScoring(schema *scoring.Schema) Option {
	return func(l *League) {
		if schema != nil {
			l.scoring = schema
		}
	}
}

// WithStatsSource attaches a statistics source for standings.
func WithStatsSource(source stats.Source) Option {
	return func(l *League) {
		l.source = source
	}
}

// WithLogger sets a custom logger for the league.
func WithLogger(log logger.Logger) Option {
	return func(l *League) {
		if log != nil {
			l.log = log
		}
	}
}

// League owns one season's moving parts: the schema, a roster per team,
// the snake draft over them, and the valuation layer for standings.
// Per-instance state is mutated without locking; a single logical caller
// per League is assumed.
type League struct {
	layout  roster.Layout
	counts  map[string]int
	teams   []string
	rounds  int
	scoring *scoring.Schema
	source  stats.Source
	log     logger.Logger

	schema  *roster.Schema
	rosters []*roster.Roster
	byName  map[string]*roster.Roster
	draft   *draft.Draft
	valuer  *stats.Valuer
}

// New constructs a League from options and validates the resulting schema.
func New(opts ...Option) (*League, error) {
	l := &League{
		layout: roster.ESPNLayout(),
		counts: map[string]int{
			"QB": 1, "RB": 2, "WR": 2, "TE": 1,
			"FLEX": 1, "D/ST": 1, "K": 1, "BN": 6, "IR": 1,
		},
		teams:   []string{"Team 1", "Team 2"},
		rounds:  15,
		scoring: scoring.Default(),
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}

	schema, err := roster.NewSchema(l.layout, l.counts)
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}
	l.schema = schema

	l.rosters = make([]*roster.Roster, 0, len(l.teams))
	l.byName = make(map[string]*roster.Roster, len(l.teams))
	for _, name := range l.teams {
		r := roster.New(schema, roster.WithName(name))
		l.rosters = append(l.rosters, r)
		l.byName[name] = r
	}

	d, err := draft.New(l.rosters, l.rounds)
	if err != nil {
		return nil, fmt.Errorf("build draft: %w", err)
	}
	l.draft = d
	metrics.UpdateRemainingPicks(d.Volume())

	valuerOpts := []stats.Option{}
	if l.source != nil {
		valuerOpts = append(valuerOpts, stats.WithSource(l.source))
	}
	l.valuer = stats.NewValuer(l.scoring, valuerOpts...)

	return l, nil
}

// FromConfig builds a League from loaded configuration.
func FromConfig(cfg *config.Config, opts ...Option) (*League, error) {
	layout := roster.ESPNLayout()
	if cfg.Preset == "yahoo" {
		layout = roster.YahooLayout()
	}

	sc := scoring.Default()
	if len(cfg.Scoring) > 0 {
		scOpts := make([]scoring.Option, 0, len(cfg.Scoring))
		for category, values := range cfg.Scoring {
			scOpts = append(scOpts, scoring.WithCategory(category, values))
		}
		sc = scoring.NewSchema(scOpts...)
	}

	base := []Option{
		WithLayout(layout),
		WithSlotCounts(cfg.SlotCounts),
		WithTeams(cfg.TeamNames...),
		WithRounds(cfg.Rounds),
		WithScoring(sc),
	}
	return New(append(base, opts...)...)
}

// Schema returns the league's position schema.
func (l *League) Schema() *roster.Schema { return l.schema }

// Draft returns the league's draft sequencer.
func (l *League) Draft() *draft.Draft { return l.draft }

// Rosters returns the league rosters in draft order.
func (l *League) Rosters() []*roster.Roster { return l.draft.Rosters() }

// Roster returns the roster for a team name.
func (l *League) Roster(team string) (*roster.Roster, error) {
	r, ok := l.byName[team]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}
	return r, nil
}

// Peek returns the next unconsumed pick, or false when the draft is done.
func (l *League) Peek() (draft.Pick, bool) {
	return l.draft.Peek()
}

// Push drafts a player to whichever team is on the clock.
func (l *League) Push(ctx context.Context, player roster.Player) (draft.Pick, error) {
	pick, err := l.draft.Push(player)
	if err != nil {
		if errors.Is(err, draft.ErrNoOpenSlot) {
			metrics.RecordFailedPick()
		}
		l.log.Warn(ctx, "pick failed",
			logger.String("position", player.Position),
			logger.Error(err))
		return pick, err
	}

	metrics.RecordPick()
	metrics.UpdateRemainingPicks(l.draft.Volume() - l.draft.Completed())
	l.log.Info(ctx, "pick made",
		logger.Int("round", pick.Round),
		logger.Int("overall", pick.Overall),
		logger.String("position", player.Position))
	return pick, nil
}

// Pop undoes the most recent pick.
func (l *League) Pop(ctx context.Context) (roster.Player, error) {
	player, err := l.draft.Pop()
	if err != nil {
		l.log.Warn(ctx, "undo failed", logger.Error(err))
		return player, err
	}

	metrics.RecordUndo()
	metrics.UpdateRemainingPicks(l.draft.Volume() - l.draft.Completed())
	l.log.Info(ctx, "pick undone", logger.String("position", player.Position))
	return player, nil
}

// Reset clears the draft back to pick 1.
func (l *League) Reset(ctx context.Context) {
	l.draft.Reset()
	metrics.RecordReset()
	metrics.UpdateRemainingPicks(l.draft.Volume())
	l.log.Info(ctx, "draft reset", logger.Int("volume", l.draft.Volume()))
}

// Move relocates a player within a team's roster.
func (l *League) Move(ctx context.Context, team string, player roster.Player, destination string, replace *roster.Player) error {
	r, err := l.Roster(team)
	if err != nil {
		return err
	}
	if err := r.Move(player, destination, replace); err != nil {
		l.log.Warn(ctx, "move failed",
			logger.String("team", team),
			logger.String("destination", destination),
			logger.Error(err))
		return err
	}

	metrics.RecordRosterOperation("move")
	l.log.Info(ctx, "player moved",
		logger.String("team", team),
		logger.String("position", player.Position),
		logger.String("destination", destination))
	return nil
}

// Transaction applies a batched add/drop on a team's roster.
func (l *League) Transaction(ctx context.Context, team string, add, drop []roster.Player) (roster.TransactionSummary, error) {
	r, err := l.Roster(team)
	if err != nil {
		return roster.TransactionSummary{}, err
	}
	summary, err := r.Transaction(add, drop)
	if err != nil {
		l.log.Warn(ctx, "transaction failed", logger.String("team", team), logger.Error(err))
		return summary, err
	}

	metrics.RecordRosterOperation("add")
	metrics.RecordRosterOperation("drop")
	l.log.Info(ctx, "transaction applied",
		logger.String("team", team),
		logger.Int("added", len(summary.Added)),
		logger.Int("dropped", len(summary.Dropped)))
	return summary, nil
}

// Trade exchanges players between two teams. The exchange is not atomic;
// a failure on the second roster leaves the first side applied, and the
// summary reports exactly what each side gained and lost.
func (l *League) Trade(ctx context.Context, team, other string, add, drop []roster.Player) (map[string]roster.TransactionSummary, error) {
	mine, err := l.Roster(team)
	if err != nil {
		return nil, err
	}
	theirs, err := l.Roster(other)
	if err != nil {
		return nil, err
	}

	summary, err := mine.Trade(theirs, add, drop)
	if err != nil {
		l.log.Warn(ctx, "trade failed",
			logger.String("team", team),
			logger.String("other", other),
			logger.Error(err))
		return summary, err
	}

	metrics.RecordRosterOperation("trade")
	l.log.Info(ctx, "trade applied",
		logger.String("team", team),
		logger.String("other", other))
	return summary, nil
}

// Standings computes per-player point totals from the attached statistics
// source, best first.
func (l *League) Standings(ctx context.Context) ([]stats.PlayerPoints, error) {
	return l.valuer.Totals(ctx)
}
