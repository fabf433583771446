// Package metrics exposes Prometheus counters for the admin API. All
// collectors live on the default registry and are served by Handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ReviewsTotal counts completed verification reviews by outcome.
	ReviewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stayhub_admin_reviews_total",
		Help: "Completed verification reviews by outcome.",
	}, []string{"outcome"})

	// SyncRunsTotal counts per-platform sync attempts by result.
	SyncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stayhub_admin_sync_runs_total",
		Help: "Platform sync attempts by result.",
	}, []string{"result"})

	// SyncUsersUpserted counts unified user rows written by the sync job.
	SyncUsersUpserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stayhub_admin_sync_users_upserted_total",
		Help: "Unified user rows written by the sync job.",
	})

	// IdempotentReplays counts mutations answered from a recorded response.
	IdempotentReplays = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stayhub_admin_idempotent_replays_total",
		Help: "Mutations answered from a recorded idempotent response.",
	})
)

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
