package summaries

import (
	"fmt"

	"usage-analytics/internal/shared/svcerrors"
)

const (
	codeSummaryNotFound              = "SUM_1000"
	codeInvalidSummaryQuery          = "SUM_1001"
	codeInvalidDimensionName         = "SUM_1002"
	codeInternalCounterStoreFailed   = "SUM_9000"
	codeInternalBackendNotQueryable  = "SUM_9001"
	codeInternalDimensionCountFailed = "SUM_9002"
)

// errSummaryNotFound returns an error when a summary name resolves to no enabled dimension.
func errSummaryNotFound(name string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSummaryNotFound, fmt.Sprintf("summary %q not found", name), cause)
}

// errInvalidSummaryQuery returns an error when summary query parameters are malformed.
func errInvalidSummaryQuery(message string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidSummaryQuery, message, cause)
}

// errInvalidDimensionName returns an error when a configured dimension name is unknown.
func errInvalidDimensionName(name string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDimensionName, fmt.Sprintf("invalid dimension name %q", name), cause)
}

// errInternalCounterStoreFailed returns an error when a counter store read fails.
func errInternalCounterStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCounterStoreFailed, fmt.Errorf("counterStoreFailed: %w", cause))
}

// errInternalBackendNotQueryable returns an error when the counter backend cannot serve reads.
func errInternalBackendNotQueryable() *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBackendNotQueryable, fmt.Errorf("counter backend does not support queries"))
}

// errInternalDimensionCountFailed returns an error when one or more dimension counts fail during dispatch.
func errInternalDimensionCountFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDimensionCountFailed, fmt.Errorf("dimensionCountFailed: %w", cause))
}
