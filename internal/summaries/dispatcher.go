package summaries

import (
	"context"
	"errors"
	"fmt"

	"usage-analytics/internal/models"
	"usage-analytics/internal/shared/loggers"
	"usage-analytics/internal/shared/metrics"
	"usage-analytics/internal/shared/svcerrors"
	"usage-analytics/internal/stores"
)

// SummaryDispatcher fans one request event out to every enabled dimension and
// period: with all five dimensions enabled, one event becomes fifteen counter
// increments.
//
//go:generate mockgen -source=dispatcher.go -destination=./mocks/dispatcher_mock.go -package=mocks
type SummaryDispatcher interface {
	// Dispatch counts the event across all enabled dimensions. Dimensions fail
	// independently: an error in one never blocks counting the others. The
	// returned error aggregates whatever failed.
	Dispatch(ctx context.Context, event *models.RequestEvent) *svcerrors.ServiceError
}

type summaryDispatcher struct {
	registry     *DimensionRegistry
	counterStore stores.CounterStore
}

func NewSummaryDispatcher(registry *DimensionRegistry, counterStore stores.CounterStore) SummaryDispatcher {
	return &summaryDispatcher{registry: registry, counterStore: counterStore}
}

func (d *summaryDispatcher) Dispatch(ctx context.Context, event *models.RequestEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)

	var failed []error
	for _, dimension := range d.registry.Enabled() {
		if !d.supportsDimension(dimension) {
			continue
		}

		if err := d.countDimension(ctx, dimension, event); err != nil {
			logger.Error().Err(err).
				Str(loggers.FieldDimension, string(dimension)).
				Msg("failed to count event dimension")
			failed = append(failed, fmt.Errorf("%s: %w", dimension, err))
		}
	}

	if len(failed) > 0 {
		return errInternalDimensionCountFailed(errors.Join(failed...))
	}
	return nil
}

// countDimension increments the dimension's hour, day and month buckets. The
// buckets are independent rows, so a failure in one period still leaves the
// others counted.
func (d *summaryDispatcher) countDimension(ctx context.Context, dimension models.Dimension, event *models.RequestEvent) error {
	value := dimension.Extract(event)

	var failed []error
	for _, period := range models.AllPeriods() {
		bucket := period.Truncate(event.OccurredAt)
		err := d.counterStore.Increment(ctx, dimension, period, bucket, value, event.ContentLength)
		metricDimensionCountTotal.WithLabelValues(string(dimension), period.BucketID(bucket), errorCodeLabel(err)).Inc()
		if err != nil {
			failed = append(failed, fmt.Errorf("%s: %w", period, err))
		}
	}
	return errors.Join(failed...)
}

func (d *summaryDispatcher) supportsDimension(dimension models.Dimension) bool {
	supporter, ok := d.counterStore.(stores.DimensionSupporter)
	if !ok {
		return true
	}
	return supporter.SupportsDimension(dimension)
}

func errorCodeLabel(err error) string {
	if err == nil {
		return metrics.ValueNoError
	}
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return codeInternalCounterStoreFailed
}
