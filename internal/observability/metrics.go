package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventUpserts counts publish event find-or-create calls by outcome ("created" or "existing").
	EventUpserts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autoscheduler_event_upserts_total",
		Help: "Total number of publish event upserts by outcome",
	}, []string{"outcome"})

	// RuleUpsertRetries counts recurrence rule lookups retried after losing an insert race.
	RuleUpsertRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "autoscheduler_rule_upsert_retries_total",
		Help: "Total number of recurrence rule upsert retries",
	})

	// CacheLookups counts cache-aside lookups by key family and result ("hit", "miss" or "error").
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autoscheduler_cache_lookups_total",
		Help: "Total number of cache lookups by key family and result",
	}, []string{"family", "result"})
)
