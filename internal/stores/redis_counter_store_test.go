package stores

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usage-analytics/internal/models"
)

func newTestRedisStore(t *testing.T) (*RedisCounterStore, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store, err := NewRedisCounterStore(context.Background(), client, "usage")
	require.NoError(t, err)
	return store, client
}

func TestRedisCounterStore_IncrementUpserts(t *testing.T) {
	t.Parallel()

	store, _ := newTestRedisStore(t)
	ctx := context.Background()
	bucket := time.Date(2026, 3, 17, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Provision(ctx, models.DimensionUrl, models.PeriodHour))

	require.NoError(t, store.Increment(ctx, models.DimensionUrl, models.PeriodHour, bucket, "/pricing", 512))
	require.NoError(t, store.Increment(ctx, models.DimensionUrl, models.PeriodHour, bucket, "/pricing", 256))

	rows, err := store.Query(ctx, models.DimensionUrl, models.PeriodHour, CounterQuery{Start: bucket})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, bucket, rows[0].BucketTime)
	assert.Equal(t, "/pricing", rows[0].DimensionValue)
	assert.Equal(t, int64(2), rows[0].Hits)
	assert.Equal(t, int64(768), rows[0].Transfer)
}

func TestRedisCounterStore_IncrementNotProvisioned(t *testing.T) {
	t.Parallel()

	store, _ := newTestRedisStore(t)

	err := store.Increment(context.Background(), models.DimensionUrl, models.PeriodHour, time.Now(), "/pricing", 1)
	assert.ErrorIs(t, err, ErrNotProvisioned)

	_, err = store.Query(context.Background(), models.DimensionUrl, models.PeriodHour, CounterQuery{})
	assert.ErrorIs(t, err, ErrNotProvisioned)
}

func TestRedisCounterStore_ConcurrentIncrementsAllCounted(t *testing.T) {
	t.Parallel()

	store, _ := newTestRedisStore(t)
	ctx := context.Background()
	bucket := time.Date(2026, 3, 17, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Provision(ctx, models.DimensionServer, models.PeriodDay))

	const writers = 50
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.Increment(ctx, models.DimensionServer, models.PeriodDay, bucket, "web-1", 10)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	rows, err := store.Query(ctx, models.DimensionServer, models.PeriodDay, CounterQuery{Start: bucket})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(writers), rows[0].Hits)
	assert.Equal(t, int64(writers*10), rows[0].Transfer)
}

func TestRedisCounterStore_ProvisionIsIdempotent(t *testing.T) {
	t.Parallel()

	store, _ := newTestRedisStore(t)
	ctx := context.Background()
	bucket := time.Date(2026, 3, 17, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Provision(ctx, models.DimensionUrl, models.PeriodHour))
	require.NoError(t, store.Increment(ctx, models.DimensionUrl, models.PeriodHour, bucket, "/pricing", 1))

	require.NoError(t, store.Provision(ctx, models.DimensionUrl, models.PeriodHour))

	rows, err := store.Query(ctx, models.DimensionUrl, models.PeriodHour, CounterQuery{Start: bucket})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].Hits)
}

func TestRedisCounterStore_RestartReflectsProvisionedTables(t *testing.T) {
	t.Parallel()

	store, client := newTestRedisStore(t)
	ctx := context.Background()
	bucket := time.Date(2026, 3, 17, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Provision(ctx, models.DimensionUrl, models.PeriodHour))
	require.NoError(t, store.Increment(ctx, models.DimensionUrl, models.PeriodHour, bucket, "/pricing", 1))

	restarted, err := NewRedisCounterStore(ctx, client, "usage")
	require.NoError(t, err)

	require.NoError(t, restarted.Increment(ctx, models.DimensionUrl, models.PeriodHour, bucket, "/pricing", 1))

	rows, err := restarted.Query(ctx, models.DimensionUrl, models.PeriodHour, CounterQuery{Start: bucket})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].Hits)
}

func TestRedisCounterStore_QueryRangeInclusiveDescending(t *testing.T) {
	t.Parallel()

	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Provision(ctx, models.DimensionUrl, models.PeriodHour))

	buckets := []time.Time{
		time.Date(2026, 3, 17, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 17, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 17, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 17, 11, 0, 0, 0, time.UTC),
	}
	for _, bucket := range buckets {
		require.NoError(t, store.Increment(ctx, models.DimensionUrl, models.PeriodHour, bucket, "/pricing", 1))
	}

	rows, err := store.Query(ctx, models.DimensionUrl, models.PeriodHour, CounterQuery{
		Start: buckets[1],
		End:   buckets[2],
	})
	require.NoError(t, err)
	require.Len(t, rows, 2, "both range endpoints are included")
	assert.Equal(t, buckets[2], rows[0].BucketTime, "rows come back newest first")
	assert.Equal(t, buckets[1], rows[1].BucketTime)
}

func TestRedisCounterStore_QueryPagination(t *testing.T) {
	t.Parallel()

	store, _ := newTestRedisStore(t)
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Provision(ctx, models.DimensionUrl, models.PeriodHour))
	for i := 0; i < 25; i++ {
		bucket := start.Add(time.Duration(i) * time.Hour)
		require.NoError(t, store.Increment(ctx, models.DimensionUrl, models.PeriodHour, bucket, "/pricing", 1))
	}

	page1, err := store.Query(ctx, models.DimensionUrl, models.PeriodHour, CounterQuery{
		Start: start, Limit: 10, Page: 1,
	})
	require.NoError(t, err)
	require.Len(t, page1, 10)
	assert.Equal(t, start.Add(24*time.Hour), page1[0].BucketTime)

	page3, err := store.Query(ctx, models.DimensionUrl, models.PeriodHour, CounterQuery{
		Start: start, Limit: 10, Page: 3,
	})
	require.NoError(t, err)
	require.Len(t, page3, 5, "last page holds the remainder")
	assert.Equal(t, start, page3[4].BucketTime)

	page4, err := store.Query(ctx, models.DimensionUrl, models.PeriodHour, CounterQuery{
		Start: start, Limit: 10, Page: 4,
	})
	require.NoError(t, err)
	assert.Empty(t, page4)
}

func TestRedisCounterStore_QueryTargetFiltersRows(t *testing.T) {
	t.Parallel()

	store, _ := newTestRedisStore(t)
	ctx := context.Background()
	bucket := time.Date(2026, 3, 17, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Provision(ctx, models.DimensionUrl, models.PeriodHour))
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Increment(ctx, models.DimensionUrl, models.PeriodHour, bucket, fmt.Sprintf("/page-%d", i), 1))
	}
	require.NoError(t, store.Increment(ctx, models.DimensionUrl, models.PeriodHour, bucket, "/page-1", 1))

	target := "/page-1"
	rows, err := store.Query(ctx, models.DimensionUrl, models.PeriodHour, CounterQuery{
		Start:  bucket,
		Target: &target,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "/page-1", rows[0].DimensionValue)
	assert.Equal(t, int64(2), rows[0].Hits)
}

func TestRedisCounterStore_RowValuesSurviveEscaping(t *testing.T) {
	t.Parallel()

	store, _ := newTestRedisStore(t)
	ctx := context.Background()
	bucket := time.Date(2026, 3, 17, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Provision(ctx, models.DimensionUserAgent, models.PeriodMonth))

	ua := "Mozilla/5.0 (X11; Linux x86_64) Gecko|Firefox"
	require.NoError(t, store.Increment(ctx, models.DimensionUserAgent, models.PeriodMonth, bucket, ua, 64))

	rows, err := store.Query(ctx, models.DimensionUserAgent, models.PeriodMonth, CounterQuery{Start: bucket})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, ua, rows[0].DimensionValue)
}
