// Package metrics defines the custom Prometheus metrics for the coaching
// site backend. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default registry at import time; the router
// additionally installs the echo-contrib HTTP middleware and /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "coaching"

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// ContactMessagesTotal counts contact form submissions.
// Label:
//   - result: "sent" or "error"
var ContactMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact form submissions, by delivery result.",
	},
	[]string{"result"},
)

// NewsletterSignupsTotal counts newsletter signup attempts.
// Label:
//   - result: "subscribed", "duplicate" or "error"
var NewsletterSignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "newsletter_signups_total",
		Help:      "Total number of newsletter signup attempts, by result.",
	},
	[]string{"result"},
)

// CatalogMutationsTotal counts admin writes to the content catalogues.
// Labels:
//   - resource: service kind or "testimonial"
//   - action: "create", "update" or "delete"
var CatalogMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_mutations_total",
		Help:      "Total number of admin content mutations, by resource and action.",
	},
	[]string{"resource", "action"},
)
