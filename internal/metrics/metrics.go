package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TasksEnqueuedTotal counts classify-video tasks accepted by the intake API.
	TasksEnqueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vidcat_tasks_enqueued_total",
			Help: "Total number of classify-video tasks enqueued.",
		},
	)

	// ClassificationsTotal counts classifier calls by outcome (ok/failed/cached).
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidcat_classifications_total",
			Help: "Total number of classification requests handled by the worker.",
		},
		[]string{"status"},
	)

	// DeliveriesTotal counts queue deliveries to the worker by outcome (ok/retry/rejected).
	DeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidcat_task_deliveries_total",
			Help: "Total number of task deliveries attempted against the worker endpoint.",
		},
		[]string{"outcome"},
	)
)
