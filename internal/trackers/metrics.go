package trackers

import (
	"usage-analytics/internal/shared/metrics"
)

var (
	metricEventTrackedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubTracking,
			Name:      "event_tracked_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
