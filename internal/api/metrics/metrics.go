// Package metrics defines and registers all custom Prometheus metrics for the
// volunteer API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at init via promauto;
// the /metrics endpoint is wired by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "voluntree"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts successful account registrations.
// Label:
//   - role: "volunteer" or "organization"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts successful logins.
// Label:
//   - role: "volunteer" or "organization"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by role.",
	},
	[]string{"role"},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "invalid_credentials", "invalid_token", or "missing_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// TokenRevocationsTotal counts refresh tokens revoked through logout.
var TokenRevocationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_revocations_total",
		Help:      "Total number of refresh tokens revoked.",
	},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// ApplicationsTotal counts volunteer applications submitted to opportunities.
var ApplicationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_total",
		Help:      "Total number of opportunity applications submitted.",
	},
)

// RegistrationsTotal counts event registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_registrations_total",
		Help:      "Total number of event registrations.",
	},
)
