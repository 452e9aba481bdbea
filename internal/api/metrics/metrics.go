// Package metrics defines and registers all custom Prometheus metrics for the
// document management API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at import time via promauto; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gestiondocs"

// ── Record metrics ────────────────────────────────────────────────────────────

// DocumentsCreatedTotal counts documents registered, by document type.
var DocumentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_created_total",
		Help:      "Total number of documents created, by tipoDocumento.",
	},
	[]string{"tipo_documento"},
)

// DocumentsDeletedTotal counts documents removed from the collection.
var DocumentsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_deleted_total",
		Help:      "Total number of documents deleted.",
	},
)

// UsersCreatedTotal counts user accounts registered.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts authentication attempts.
// Label:
//   - result: "success", "invalid_credentials", "user_not_found", or "invalid_input"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by result.",
	},
	[]string{"result"},
)

// ── Storage metrics ───────────────────────────────────────────────────────────

// StorageOperationDuration measures flat-file collection operations.
// Labels:
//   - collection: "documents" or "users"
//   - operation: "load" (read path) or "save" (locked load-mutate-save)
var StorageOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "storage_operation_duration_seconds",
		Help:      "Duration of record store load and save operations.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"collection", "operation"},
)
