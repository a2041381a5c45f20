// Package metrics exposes Prometheus instrumentation for league activity:
// draft picks, undos, and roster transactions. Metrics register on a
// package registry so embedding hosts can mount it wherever they expose
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry() //nolint:gochecknoglobals // single registry for the embedding host

var (
	picksTotal = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "huddle_draft_picks_total",
		Help: "Number of draft picks recorded.",
	})

	undosTotal = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "huddle_draft_undos_total",
		Help: "Number of draft picks undone.",
	})

	resetsTotal = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "huddle_draft_resets_total",
		Help: "Number of times the draft was reset.",
	})

	failedPicksTotal = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "huddle_draft_failed_picks_total",
		Help: "Number of picks rejected because no roster slot was open.",
	})

	remainingPicks = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Name: "huddle_draft_remaining_picks",
		Help: "Picks left before the draft is exhausted.",
	})

	rosterOps = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Name: "huddle_roster_operations_total",
		Help: "Roster mutations by operation (add, drop, move, trade).",
	}, []string{"operation"})
)

// Registry returns the package registry for embedding hosts.
func Registry() *prometheus.Registry { return registry }

// RecordPick counts a completed draft pick.
func RecordPick() { picksTotal.Inc() }

// RecordUndo counts an undone draft pick.
func RecordUndo() { undosTotal.Inc() }

// RecordReset counts a draft reset.
func RecordReset() { resetsTotal.Inc() }

// RecordFailedPick counts a pick rejected for lack of an open slot.
func RecordFailedPick() { failedPicksTotal.Inc() }

// UpdateRemainingPicks sets the remaining-pick gauge.
func UpdateRemainingPicks(n int) { remainingPicks.Set(float64(n)) }

// RecordRosterOperation counts one roster mutation by kind.
func RecordRosterOperation(operation string) {
	rosterOps.WithLabelValues(operation).Inc()
}
