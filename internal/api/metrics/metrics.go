// Package metrics defines and registers all custom Prometheus metrics for the
// ElectroMart marketplace API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "electromart"

// SignupsTotal counts successfully created user accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of user accounts created.",
	},
)

// ProductsCreatedTotal counts new listings.
// Label:
//   - category: the listing category (e.g. "Servo Motor")
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of product listings created, by category.",
	},
	[]string{"category"},
)

// NotificationsCreatedTotal counts buyer→seller contact notifications.
var NotificationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of contact notifications created.",
	},
)

// UploadsTotal counts image upload attempts.
// Labels:
//   - kind:   "profiles" or "products"
//   - result: "stored", "rejected", or "failed"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of image upload attempts, by kind and result.",
	},
	[]string{"kind", "result"},
)

// OrphanImageCleanupFailures counts best-effort deletions of replaced images
// that did not succeed. A rising value means orphaned files are accumulating
// in the upload directory.
var OrphanImageCleanupFailures = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orphan_image_cleanup_failures_total",
		Help:      "Total number of failed best-effort deletions of replaced images.",
	},
)
