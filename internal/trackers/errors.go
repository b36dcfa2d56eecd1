package trackers

import (
	"fmt"

	"usage-analytics/internal/shared/svcerrors"
)

// TrackingService errors
const (
	codeValidationFailed = "TRK_1000"

	codeInternalEventStoreFailed     = "TRK_9000"
	codeInternalEventPublisherFailed = "TRK_9001"
)

// errValidationFailed returns an error for request event validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInternalEventStoreFailed returns an error when storing the raw event fails.
func errInternalEventStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventStoreFailed, fmt.Errorf("requestEventStoreFailed: %w", cause))
}

// errInternalEventPublisherFailed returns an error when publishing the event for summarization fails.
func errInternalEventPublisherFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventPublisherFailed, fmt.Errorf("requestEventPublisherFailed: %w", cause))
}
