package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"usage-analytics/internal/models"
	"usage-analytics/internal/shared/loggers"
	"usage-analytics/internal/shared/metrics"
	"usage-analytics/internal/shared/svcerrors"
	"usage-analytics/internal/shared/ulid"
	"usage-analytics/internal/summaries"
)

//go:generate mockgen -source=request_event_consumer.go -destination=./mocks/request_event_consumer_mock.go -package=mocks
type RequestEventConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type requestEventConsumer struct {
	queue      *PartitionedQueue[models.RequestEvent]
	dispatcher summaries.SummaryDispatcher

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewRequestEventConsumer(queue *PartitionedQueue[models.RequestEvent], dispatcher summaries.SummaryDispatcher, logger loggers.Logger) RequestEventConsumer {
	return &requestEventConsumer{
		queue:      queue,
		dispatcher: dispatcher,
		stopCh:     make(chan struct{}),
		logger:     logger,
	}
}

// Start spawns one worker goroutine per partition, so events sharing a
// partition key are dispatched sequentially.
func (consumer *requestEventConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *requestEventConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *requestEventConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan models.RequestEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event := <-ch:
			consumer.consumeEvent(ctx, partitionIndex, event)
		}
	}
}

// consumeEvent dispatches one event with panic recovery, so a poisoned event
// cannot take the partition worker down with it.
func (consumer *requestEventConsumer) consumeEvent(ctx context.Context, partitionIndex int, event models.RequestEvent) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricRequestEventConsumedTotal.WithLabelValues(streamRequestEvent, svcErr.Code).Inc()
		}
	}()

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)
	svcErr := consumer.dispatcher.Dispatch(ctx, &event)
	if svcErr != nil {
		metricRequestEventConsumedTotal.WithLabelValues(streamRequestEvent, svcErr.Code).Inc()
	} else {
		metricRequestEventConsumedTotal.WithLabelValues(streamRequestEvent, metrics.ValueNoError).Inc()
	}
}
