package summaries

import (
	"usage-analytics/internal/shared/metrics"
)

var (
	// metricDimensionCountTotal counts individual counter increments by
	// dimension, period bucket and outcome. A single dispatched event
	// contributes one increment per enabled dimension and period, so with all
	// five dimensions enabled an event adds fifteen observations.
	//
	// The bucket_id label identifies the bucket within its period, e.g.
	// "hour-18" for an event at 18:42 UTC or "month-03" for one in March.
	metricDimensionCountTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSummary,
			Name:      "dimension_count_total",
		},
		[]string{"dimension", "bucket_id", metrics.FieldErrorCode},
	)

	// metricSummaryQueryTotal counts summary reads by dimension and outcome.
	metricSummaryQueryTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSummary,
			Name:      "query_total",
		},
		[]string{"dimension", metrics.FieldErrorCode},
	)
)
