// Package metrics defines and registers the custom Prometheus metrics for the
// finance API. It is the single source of truth for metric names, labels, and
// help strings; HTTP-level request metrics come from the echoprometheus
// middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "finance"

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
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

// TransactionsCreatedTotal counts recorded transactions.
// Labels:
//   - kind: "income" or "expense"
//   - category: the denormalized category name
var TransactionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_created_total",
		Help:      "Total number of transactions recorded, by kind and category.",
	},
	[]string{"kind", "category"},
)

// TransactionAmount observes the amount of each recorded transaction.
// Label:
//   - kind: "income" or "expense"
var TransactionAmount = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "transaction_amount",
		Help:      "Distribution of recorded transaction amounts.",
		Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000},
	},
	[]string{"kind"},
)

// GoalsCreatedTotal counts created savings goals.
var GoalsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "goals_created_total",
		Help:      "Total number of savings goals created.",
	},
)
