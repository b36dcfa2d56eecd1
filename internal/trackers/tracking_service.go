package trackers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"usage-analytics/internal/models"
	"usage-analytics/internal/shared/loggers"
	"usage-analytics/internal/shared/metrics"
	"usage-analytics/internal/stores"
	"usage-analytics/internal/streams"

	"github.com/mileusna/useragent"
)

const (
	maxUrlLen       = 2048
	maxUserAgentLen = 1024
)

// TrackResult represents the result of tracking one request event.
type TrackResult struct {
	EventKey string
}

//go:generate mockgen -source=tracking_service.go -destination=./mocks/tracking_service_mock.go -package=mocks
type TrackingService interface {
	// TrackEvent validates and enriches a reported request event, archives it
	// and hands it to the summarization pipeline.
	TrackEvent(ctx context.Context, event *models.RequestEvent) (*TrackResult, error)
}

type trackingService struct {
	eventStore        stores.RequestEventStore
	eventProducer     streams.RequestEventProducer
	defaultServerName string
}

func NewTrackingService(eventStore stores.RequestEventStore, eventProducer streams.RequestEventProducer, defaultServerName string) TrackingService {
	return &trackingService{
		eventStore:        eventStore,
		eventProducer:     eventProducer,
		defaultServerName: defaultServerName,
	}
}

func (s *trackingService) TrackEvent(ctx context.Context, event *models.RequestEvent) (*TrackResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started tracking request event for url: %s", event.Url)

	s.normalizeEvent(event)
	if err := s.validateEvent(event); err != nil {
		return nil, err
	}
	s.enrichEvent(event)

	eventKey, err := s.eventStore.Save(ctx, event)
	if err != nil {
		svcErr := errInternalEventStoreFailed(err)
		metricEventTrackedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	if err := s.eventProducer.Produce(ctx, event); err != nil {
		svcErr := errInternalEventPublisherFailed(err)
		metricEventTrackedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	metricEventTrackedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &TrackResult{EventKey: eventKey}, nil
}

func (s *trackingService) normalizeEvent(event *models.RequestEvent) {
	event.Url = strings.TrimSpace(event.Url)
	event.RemoteAddr = strings.TrimSpace(event.RemoteAddr)
	event.UserAgentString = strings.TrimSpace(event.UserAgentString)
	event.UserAgentLanguage = strings.TrimSpace(event.UserAgentLanguage)
	event.ServerName = strings.TrimSpace(event.ServerName)

	if event.ServerName == "" {
		event.ServerName = s.defaultServerName
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	} else {
		event.OccurredAt = event.OccurredAt.UTC()
	}
}

func (s *trackingService) validateEvent(event *models.RequestEvent) error {
	if event.Url == "" {
		return errValidationFailed("url is required", nil)
	}
	if len(event.Url) > maxUrlLen {
		return errValidationFailed(fmt.Sprintf("url too long: max %d characters", maxUrlLen), nil)
	}
	if len(event.UserAgentString) > maxUserAgentLen {
		return errValidationFailed(fmt.Sprintf("userAgentString too long: max %d characters", maxUserAgentLen), nil)
	}
	if event.ContentLength < 0 {
		return errValidationFailed("contentLength cannot be negative", nil)
	}
	if event.Status < 0 || event.Status > 599 {
		return errValidationFailed("status must be a valid HTTP status code", nil)
	}
	return nil
}

// enrichEvent fills the parsed user agent fields when the collector did not.
func (s *trackingService) enrichEvent(event *models.RequestEvent) {
	if event.UserAgentString == "" {
		return
	}
	if event.UserAgentBrowser != "" && event.UserAgentPlatform != "" {
		return
	}

	parsed := useragent.Parse(event.UserAgentString)
	if event.UserAgentBrowser == "" && parsed.Name != "" {
		event.UserAgentBrowser = parsed.Name
	}
	if event.UserAgentPlatform == "" && parsed.OS != "" {
		event.UserAgentPlatform = parsed.OS
	}
}
