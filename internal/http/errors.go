package http

import (
	"fmt"

	"usage-analytics/internal/shared/svcerrors"
)

// Handler-level errors for requests rejected before reaching a service.
const (
	codeMalformedRequestBody = "API_1000"
	codeUnsupportedMediaType = "API_1001"
	codeInvalidQueryParam    = "API_1002"
)

// errMalformedRequestBody returns an error when the request body cannot be decoded.
func errMalformedRequestBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedRequestBody, "malformed request body", cause)
}

// errUnsupportedMediaType returns an error when the content type is not JSON.
func errUnsupportedMediaType(contentType string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedMediaType, fmt.Sprintf("unsupported content type: %q", contentType), nil)
}

// errInvalidQueryParam returns an error when a query parameter cannot be parsed.
func errInvalidQueryParam(name string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, fmt.Sprintf("invalid query parameter: %s", name), cause)
}
