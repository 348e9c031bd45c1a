// Package metrics defines and registers all custom Prometheus metrics for
// the farmer certification API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "farmcert"

// RegistrationsTotal counts successfully created farmer accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of farmer accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// StatusUpdatesTotal counts certification status updates applied by admins.
// Label:
//   - status: the new status ("pending", "certified", "declined")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of certification status updates, by new status.",
	},
	[]string{"status"},
)

// StatusQueriesTotal counts status projection reads.
var StatusQueriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_queries_total",
		Help:      "Total number of certification status queries served.",
	},
)
