package streams

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"usage-analytics/internal/models"
	"usage-analytics/internal/shared/loggers"
	"usage-analytics/internal/summaries/mocks"
)

func TestPartitionedQueue_SameKeySamePartition(t *testing.T) {
	t.Parallel()

	queue := newPartitionedQueue[int](4, 16)

	idx := partitionIndex("hour-18", queue.PartitionCount())
	for i := 0; i < 3; i++ {
		queue.Publish("hour-18", i)
	}

	require.Len(t, queue.partitions[idx], 3)
	for i := 0; i < 3; i++ {
		assert.Equal(t, i, <-queue.partitions[idx], "publish order is preserved")
	}
}

func TestRequestEventProducer_Produce(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[models.RequestEvent]()
	producer := NewRequestEventProducer(queue)

	event := &models.RequestEvent{
		Url:        "https://example.com/pricing",
		OccurredAt: time.Date(2026, 3, 17, 18, 42, 0, 0, time.UTC),
	}
	require.NoError(t, producer.Produce(context.Background(), event))

	idx := partitionIndex("hour-18", queue.PartitionCount())
	got := <-queue.partitions[idx]
	assert.Equal(t, *event, got)
}

func TestRequestEventProducer_Produce_CancelledContext(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[models.RequestEvent]()
	producer := NewRequestEventProducer(queue)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := producer.Produce(ctx, &models.RequestEvent{OccurredAt: time.Now()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRequestEventConsumer_DispatchesAllEvents(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockSummaryDispatcher(ctrl)

	queue := NewPartitionedQueue[models.RequestEvent]()
	producer := NewRequestEventProducer(queue)

	const eventCount = 20
	var consumed sync.WaitGroup
	consumed.Add(eventCount)
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any()).
		Do(func(context.Context, *models.RequestEvent) { consumed.Done() }).
		Return(nil).
		Times(eventCount)

	logger, err := loggers.New("error")
	require.NoError(t, err)

	consumer := NewRequestEventConsumer(queue, dispatcher, logger)
	consumer.Start(context.Background())
	defer consumer.Stop()

	base := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	for i := 0; i < eventCount; i++ {
		event := &models.RequestEvent{
			Url:        "https://example.com/pricing",
			OccurredAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, producer.Produce(context.Background(), event))
	}

	consumed.Wait()
}
