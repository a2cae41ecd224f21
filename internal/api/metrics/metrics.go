// Package metrics defines and registers the custom Prometheus metrics for the
// CalmNest API. It is the single source of truth for metric names, labels,
// and help strings; handlers increment these directly.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "calmnest"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsRecordedTotal counts recorded therapy sessions.
// Label:
//   - therapy_type: one of the therapy type enum values (e.g. "audio")
var SessionsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_recorded_total",
		Help:      "Total number of therapy sessions recorded, by therapy type.",
	},
	[]string{"therapy_type"},
)

// ContentListingsTotal counts catalogue listing requests.
// Label:
//   - catalogue: "audio", "reading", or "yoga"
var ContentListingsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_listings_total",
		Help:      "Total number of content catalogue listings served, by catalogue.",
	},
	[]string{"catalogue"},
)
