// Package stats defines the statistics collaborator contract: per-player
// season or week statistic rows and the source that supplies them. The
// roster and draft layers never consume these; they feed the valuation
// layer only.
package stats

import "context"

// Row is one player's statistics line for a season or a single week.
// Values holds the numeric per-statistic columns keyed by statistic code.
type Row struct {
	PlayerName string
	Position   string
	Team       string
	Opponent   string
	Home       bool
	Season     int
	Week       int // zero for season-level rows
	Values     map[string]float64
}

// Source supplies statistic rows. Implementations backed by remote
// services should honor ctx for cancellation.
type Source interface {
	Rows(ctx context.Context) ([]Row, error)
}

// InMemorySource implements Source over a fixed set of rows, for tests and
// offline valuation.
type InMemorySource struct {
	rows []Row
}

// NewInMemorySource copies the given rows into a Source.
func NewInMemorySource(rows ...Row) *InMemorySource {
	return &InMemorySource{rows: append([]Row(nil), rows...)}
}

// Rows returns a copy of the stored rows.
func (s *InMemorySource) Rows(_ context.Context) ([]Row, error) {
	return append([]Row(nil), s.rows...), nil
}
