package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"usage-analytics/internal/models"
	"usage-analytics/internal/shared/svcerrors"
	"usage-analytics/internal/trackers"
	trackermocks "usage-analytics/internal/trackers/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTrackEventHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingService := trackermocks.NewMockTrackingService(ctrl)
	handler := NewTrackEventHandler(mockTrackingService)

	body := `{"url":"https://example.com/pricing","remoteAddr":"203.0.113.7","contentLength":512,"occurredAt":"2026-03-17T09:42:31Z"}`
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader([]byte(body)))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	mockTrackingService.EXPECT().
		TrackEvent(gomock.Any(), &models.RequestEvent{
			Url:           "https://example.com/pricing",
			RemoteAddr:    "203.0.113.7",
			ContentLength: 512,
			OccurredAt:    time.Date(2026, 3, 17, 9, 42, 31, 0, time.UTC),
		}).
		Return(&trackers.TrackResult{EventKey: "events/web-1/key.json"}, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rr.Code)

	var response TrackEventResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "events/web-1/key.json", response.EventKey)
}

func TestTrackEventHandler_Handle_MalformedBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingService := trackermocks.NewMockTrackingService(ctrl)
	handler := NewTrackEventHandler(mockTrackingService)

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader([]byte(`{not json`)))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "API_1000", svcErr.Code)
}

func TestTrackEventHandler_Handle_UnsupportedContentType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingService := trackermocks.NewMockTrackingService(ctrl)
	handler := NewTrackEventHandler(mockTrackingService)

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader([]byte(`<xml/>`)))
	req.Header.Set(headerContentType, "application/xml")
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "API_1001", svcErr.Code)
}

func TestTrackEventHandler_Handle_ServiceError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingService := trackermocks.NewMockTrackingService(ctrl)
	handler := NewTrackEventHandler(mockTrackingService)

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader([]byte(`{"url":""}`)))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewInvalidArgumentError("TRK_1000", "url is required", nil)
	mockTrackingService.EXPECT().
		TrackEvent(gomock.Any(), gomock.Any()).
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "TRK_1000", svcErr.Code)
	// Status should not be set when error occurs
	assert.Equal(t, http.StatusOK, rr.Code)
}
