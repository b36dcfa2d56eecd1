package summaries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"usage-analytics/internal/models"
	"usage-analytics/internal/stores"
	"usage-analytics/internal/stores/mocks"
)

// queryableStore satisfies both the write and read sides of a counter backend.
type queryableStore struct {
	*mocks.MockCounterStore
	*mocks.MockCounterQuerier
}

func newQueryableStore(ctrl *gomock.Controller) *queryableStore {
	return &queryableStore{
		MockCounterStore:   mocks.NewMockCounterStore(ctrl),
		MockCounterQuerier: mocks.NewMockCounterQuerier(ctrl),
	}
}

func TestSummaryQueryService_GetSummary(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	counterStore := newQueryableStore(ctrl)

	registry, svcErr := NewDimensionRegistry([]string{"url"})
	require.Nil(t, svcErr)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	row := models.CounterRow{
		BucketTime:     time.Date(2026, 3, 17, 9, 0, 0, 0, time.UTC),
		DimensionValue: "/pricing",
		Hits:           2,
		Transfer:       1024,
	}
	for _, period := range models.AllPeriods() {
		counterStore.MockCounterQuerier.EXPECT().
			Query(gomock.Any(), models.DimensionUrl, period, stores.CounterQuery{Start: start, End: end}).
			Return([]models.CounterRow{row}, nil)
	}

	service := NewSummaryQueryService(registry, counterStore)
	result, svcErr := service.GetSummary(context.Background(), "sumUrl", SummaryQuery{Start: start, End: end})
	require.Nil(t, svcErr)

	require.Len(t, result, 3)
	for _, period := range models.AllPeriods() {
		require.Len(t, result[period], 1, "period %s", period)
		assert.Equal(t, models.DimensionUrl, result[period][0].Dimension)
		assert.Equal(t, row, result[period][0].Row)
	}
}

func TestSummaryQueryService_GetSummary_ExactBucketMode(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	counterStore := newQueryableStore(ctrl)

	registry, svcErr := NewDimensionRegistry([]string{"url"})
	require.Nil(t, svcErr)

	// With only a start date, each period queries just the bucket containing it.
	start := time.Date(2026, 3, 17, 9, 42, 0, 0, time.UTC)
	expected := map[models.Period]time.Time{
		models.PeriodHour:  time.Date(2026, 3, 17, 9, 0, 0, 0, time.UTC),
		models.PeriodDay:   time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
		models.PeriodMonth: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for period, bucket := range expected {
		counterStore.MockCounterQuerier.EXPECT().
			Query(gomock.Any(), models.DimensionUrl, period, stores.CounterQuery{Start: bucket, End: bucket}).
			Return([]models.CounterRow{}, nil)
	}

	service := NewSummaryQueryService(registry, counterStore)
	_, svcErr = service.GetSummary(context.Background(), "url", SummaryQuery{Start: start})
	require.Nil(t, svcErr)
}

func TestSummaryQueryService_GetSummary_PassesPaginationAndTarget(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	counterStore := newQueryableStore(ctrl)

	registry, svcErr := NewDimensionRegistry([]string{"remote"})
	require.Nil(t, svcErr)

	target := "203.0.113.7"
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	counterStore.MockCounterQuerier.EXPECT().
		Query(gomock.Any(), models.DimensionRemote, gomock.Any(), stores.CounterQuery{
			Start: start, End: end, Limit: 50, Page: 2, Target: &target,
		}).
		Return([]models.CounterRow{}, nil).
		Times(3)

	service := NewSummaryQueryService(registry, counterStore)
	_, svcErr = service.GetSummary(context.Background(), "remote", SummaryQuery{
		Start: start, End: end, Limit: 50, Page: 2, Target: &target,
	})
	require.Nil(t, svcErr)
}

func TestSummaryQueryService_GetSummary_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	counterStore := newQueryableStore(ctrl)

	registry, svcErr := NewDimensionRegistry([]string{"url"})
	require.Nil(t, svcErr)

	service := NewSummaryQueryService(registry, counterStore)
	for _, name := range []string{"visitor", "language", "sumLanguage"} {
		_, svcErr := service.GetSummary(context.Background(), name, SummaryQuery{})
		require.NotNil(t, svcErr, "name %q", name)
		assert.Equal(t, "SUM_1000", svcErr.Code)
	}
}

func TestSummaryQueryService_GetSummary_InvalidRange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	counterStore := newQueryableStore(ctrl)

	registry, svcErr := NewDimensionRegistry([]string{"url"})
	require.Nil(t, svcErr)

	service := NewSummaryQueryService(registry, counterStore)
	_, svcErr = service.GetSummary(context.Background(), "url", SummaryQuery{
		Start: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NotNil(t, svcErr)
	assert.Equal(t, "SUM_1001", svcErr.Code)
	assert.Equal(t, 400, svcErr.HttpStatusCode)
}

func TestSummaryQueryService_GetSummary_BackendNotQueryable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	counterStore := mocks.NewMockCounterStore(ctrl)

	registry, svcErr := NewDimensionRegistry([]string{"url"})
	require.Nil(t, svcErr)

	service := NewSummaryQueryService(registry, counterStore)
	_, svcErr = service.GetSummary(context.Background(), "url", SummaryQuery{})
	require.NotNil(t, svcErr)
	assert.Equal(t, "SUM_9001", svcErr.Code)
}

func TestSummaryQueryService_GetSummary_StoreError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	counterStore := newQueryableStore(ctrl)

	registry, svcErr := NewDimensionRegistry([]string{"url"})
	require.Nil(t, svcErr)

	storeErr := errors.New("connection reset")
	counterStore.MockCounterQuerier.EXPECT().
		Query(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, storeErr)

	service := NewSummaryQueryService(registry, counterStore)
	_, svcErr = service.GetSummary(context.Background(), "url", SummaryQuery{})
	require.NotNil(t, svcErr)
	assert.Equal(t, "SUM_9000", svcErr.Code)
	assert.ErrorIs(t, svcErr, storeErr)
}
