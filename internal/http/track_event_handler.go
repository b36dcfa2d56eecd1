package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"usage-analytics/internal/models"
	"usage-analytics/internal/trackers"
)

const maxEventBytes = 64 * 1024

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// TrackEventResponse represents the response to a tracked event.
type TrackEventResponse struct {
	RequestID string `json:"requestId"`
	EventKey  string `json:"eventKey"`
}

type trackEventHandler struct {
	trackingService trackers.TrackingService
}

func NewTrackEventHandler(trackingService trackers.TrackingService) AppHttpHandler {
	return &trackEventHandler{
		trackingService: trackingService,
	}
}

// Handle processes POST /events requests.
func (h *trackEventHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if ct := contentType(r); ct != "" && !strings.Contains(strings.ToLower(ct), "json") {
		return errUnsupportedMediaType(ct)
	}

	var event models.RequestEvent
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxEventBytes))
	if err := decoder.Decode(&event); err != nil {
		return errMalformedRequestBody(err)
	}

	result, err := h.trackingService.TrackEvent(r.Context(), &event)
	if err != nil {
		return err
	}

	return writeJSONResponse(w, http.StatusAccepted, TrackEventResponse{
		RequestID: requestID(r),
		EventKey:  result.EventKey,
	})
}
