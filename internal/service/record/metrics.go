package record

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studytrack_records_created_total",
		Help: "Total number of study records created.",
	})

	xpAwardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studytrack_xp_awarded_total",
		Help: "Total XP added to score ledgers by record creation.",
	})

	// Records stay created when this fires; run sync-leaderboard to reconcile.
	scoreIncrementFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studytrack_score_increment_failures_total",
		Help: "Total number of score ledger increments that failed after a record was created.",
	})
)
