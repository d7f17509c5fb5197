// Package metrics defines and registers all custom Prometheus metrics for the
// storefront gateway. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at init; the /metrics route is
// wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Upstream API metrics ──────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to the upstream commerce API.
// Labels:
//   - endpoint: "<METHOD> <path>" of the upstream call
//   - status: HTTP status code, or "transport_error" when the call never
//     produced a response
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the upstream commerce API.",
	},
	[]string{"endpoint", "status"},
)

// UpstreamRequestDuration measures upstream call latency end-to-end.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of upstream commerce API calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Checkout metrics ──────────────────────────────────────────────────────────

// CheckoutAttemptsTotal counts checkout submissions by outcome.
// Label:
//   - result: "created", "replayed", "empty_cart", or "failed"
var CheckoutAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_attempts_total",
		Help:      "Total number of checkout attempts, by outcome.",
	},
	[]string{"result"},
)

// CouponApplicationsTotal counts coupon applications.
// Label:
//   - result: "applied" or "rejected"
var CouponApplicationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "coupon_applications_total",
		Help:      "Total number of coupon applications, by outcome.",
	},
	[]string{"result"},
)

// ── Cart metrics ──────────────────────────────────────────────────────────────

// CartLinesFlaggedTotal counts cart line items whose server-provided subtotal
// failed decimal parsing and was excluded from the display total.
var CartLinesFlaggedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_lines_flagged_total",
		Help:      "Total number of cart lines with an unparseable subtotal.",
	},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsActive tracks the number of live storefront sessions in the store.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Current number of active storefront sessions.",
	},
)
