// Package metrics defines and registers all custom Prometheus metrics for
// the Mukhtar trip-platform API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mukhtar"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts successful sign-ins.
// Label:
//   - role: the role the session was established with ("tourist"/"organizer")
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of sessions established via login, by role.",
	},
	[]string{"role"},
)

// SignupsTotal counts successful account creations.
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created via signup, by role.",
	},
	[]string{"role"},
)

// SessionRestoresTotal counts startup session restores.
// Label:
//   - result: "current", "migrated", "empty", or "corrupt"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of startup session restores, by result.",
	},
	[]string{"result"},
)

// ── Access gate metrics ───────────────────────────────────────────────────────

// GateDecisionsTotal counts access gate evaluations.
// Label:
//   - outcome: "render", "redirect", or "loading"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of access gate decisions, by outcome.",
	},
	[]string{"outcome"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - category: the trip category booked
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by trip category.",
	},
	[]string{"category"},
)

// ── Activity pipeline metrics ─────────────────────────────────────────────────

// ActivityQueueDepth tracks the current number of activity events waiting in
// each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
