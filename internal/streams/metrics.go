package streams

import (
	"usage-analytics/internal/shared/metrics"
)

var (
	streamRequestEvent             = "request_event"
	metricRequestEventPublishTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "request_event_published_total",
		},
		[]string{"stream_id"},
	)

	metricRequestEventConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "request_event_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
