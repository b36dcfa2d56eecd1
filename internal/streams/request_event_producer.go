package streams

import (
	"context"

	"usage-analytics/internal/models"
)

// RequestEventProducer publishes tracked request events to a partitioned
// queue for asynchronous summarization.
//
// The partition key is the event's hour bucket, e.g. "hour-18" for an event
// at 18:42 UTC. Events inside the same hour therefore share a partition and
// are counted sequentially by the consumer's single worker per partition,
// which keeps contention on shared counter rows to the bucket boundaries
// where hours, days or months change over. Commutative backend increments
// make any remaining cross-partition interleaving harmless.
//
//go:generate mockgen -source=request_event_producer.go -destination=./mocks/request_event_producer_mock.go -package=mocks
type RequestEventProducer interface {
	Produce(ctx context.Context, event *models.RequestEvent) error
}

type requestEventProducer struct {
	queue *PartitionedQueue[models.RequestEvent]
}

func NewRequestEventProducer(queue *PartitionedQueue[models.RequestEvent]) RequestEventProducer {
	return &requestEventProducer{
		queue: queue,
	}
}

func (producer *requestEventProducer) Produce(ctx context.Context, event *models.RequestEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	partitionKey := models.PeriodHour.BucketID(event.OccurredAt)
	producer.queue.Publish(partitionKey, *event)
	metricRequestEventPublishTotal.WithLabelValues(streamRequestEvent).Inc()
	return nil
}
