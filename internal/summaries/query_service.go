package summaries

import (
	"context"
	"time"

	"usage-analytics/internal/models"
	"usage-analytics/internal/shared/loggers"
	"usage-analytics/internal/shared/metrics"
	"usage-analytics/internal/shared/svcerrors"
	"usage-analytics/internal/stores"
)

// SummaryQuery selects summary rows. A zero Start means the beginning of
// time and a zero End means now, with one exception: a query that sets only
// Start is an exact-bucket lookup, returning for each period just the bucket
// containing Start instead of an open-ended range.
type SummaryQuery struct {
	Start  time.Time
	End    time.Time
	Limit  int
	Page   int
	Target *string
}

// SummaryQueryService reads summarized usage back out of the counter backend.
//
//go:generate mockgen -source=query_service.go -destination=./mocks/query_service_mock.go -package=mocks
type SummaryQueryService interface {
	// GetSummary returns the named dimension's rows for all three periods.
	GetSummary(ctx context.Context, name string, query SummaryQuery) (models.SummaryResult, *svcerrors.ServiceError)
}

type summaryQueryService struct {
	registry     *DimensionRegistry
	counterStore stores.CounterStore
}

func NewSummaryQueryService(registry *DimensionRegistry, counterStore stores.CounterStore) SummaryQueryService {
	return &summaryQueryService{registry: registry, counterStore: counterStore}
}

func (s *summaryQueryService) GetSummary(ctx context.Context, name string, query SummaryQuery) (models.SummaryResult, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)

	dimension, svcErr := s.registry.Resolve(name)
	if svcErr != nil {
		// The raw name is client input, not a label value.
		metricSummaryQueryTotal.WithLabelValues("unknown", svcErr.Code).Inc()
		return nil, svcErr
	}

	if svcErr := validateQuery(query); svcErr != nil {
		metricSummaryQueryTotal.WithLabelValues(string(dimension), svcErr.Code).Inc()
		return nil, svcErr
	}

	querier, ok := s.counterStore.(stores.CounterQuerier)
	if !ok {
		svcErr := errInternalBackendNotQueryable()
		metricSummaryQueryTotal.WithLabelValues(string(dimension), svcErr.Code).Inc()
		return nil, svcErr
	}

	exactBucket := !query.Start.IsZero() && query.End.IsZero()

	result := make(models.SummaryResult, len(models.AllPeriods()))
	for _, period := range models.AllPeriods() {
		counterQuery := stores.CounterQuery{
			Start:  query.Start,
			End:    query.End,
			Limit:  query.Limit,
			Page:   query.Page,
			Target: query.Target,
		}
		if exactBucket {
			bucket := period.Truncate(query.Start)
			counterQuery.Start = bucket
			counterQuery.End = bucket
		}

		rows, err := querier.Query(ctx, dimension, period, counterQuery)
		if err != nil {
			svcErr := errInternalCounterStoreFailed(err)
			logger.Error().Err(err).
				Str(loggers.FieldDimension, string(dimension)).
				Str(loggers.FieldPeriod, string(period)).
				Msg("failed to query summary rows")
			metricSummaryQueryTotal.WithLabelValues(string(dimension), svcErr.Code).Inc()
			return nil, svcErr
		}

		summaryRows := make([]models.SummaryRow, 0, len(rows))
		for _, row := range rows {
			summaryRows = append(summaryRows, models.SummaryRow{Dimension: dimension, Row: row})
		}
		result[period] = summaryRows
	}

	metricSummaryQueryTotal.WithLabelValues(string(dimension), metrics.ValueNoError).Inc()
	return result, nil
}

func validateQuery(query SummaryQuery) *svcerrors.ServiceError {
	if query.Limit < 0 {
		return errInvalidSummaryQuery("limit cannot be negative", nil)
	}
	if query.Page < 0 {
		return errInvalidSummaryQuery("page cannot be negative", nil)
	}
	if !query.Start.IsZero() && !query.End.IsZero() && query.End.Before(query.Start) {
		return errInvalidSummaryQuery("end_date cannot be before start_date", nil)
	}
	return nil
}
