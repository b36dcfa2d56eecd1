package http

import (
	"net/http"
	"strconv"
	"time"

	"usage-analytics/internal/models"
	"usage-analytics/internal/summaries"

	"github.com/go-chi/chi/v5"
)

// SummaryResponse carries one dimension's rows for every period. The Summary
// map is keyed by period name: hour, day and month.
type SummaryResponse struct {
	RequestID string               `json:"requestId"`
	Summary   models.SummaryResult `json:"summary"`
}

type summaryHandler struct {
	queryService summaries.SummaryQueryService
}

func NewSummaryHandler(queryService summaries.SummaryQueryService) AppHttpHandler {
	return &summaryHandler{
		queryService: queryService,
	}
}

// Handle processes GET /summary/{dimension} requests.
func (h *summaryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query, err := parseSummaryQuery(r)
	if err != nil {
		return err
	}

	result, svcErr := h.queryService.GetSummary(r.Context(), chi.URLParam(r, "dimension"), query)
	if svcErr != nil {
		return svcErr
	}

	return writeJSONResponse(w, http.StatusOK, SummaryResponse{
		RequestID: requestID(r),
		Summary:   result,
	})
}

func parseSummaryQuery(r *http.Request) (summaries.SummaryQuery, error) {
	var query summaries.SummaryQuery
	params := r.URL.Query()

	start, err := parseTimeParam(params.Get("start_date"))
	if err != nil {
		return query, errInvalidQueryParam("start_date", err)
	}
	query.Start = start

	end, err := parseTimeParam(params.Get("end_date"))
	if err != nil {
		return query, errInvalidQueryParam("end_date", err)
	}
	query.End = end

	if raw := params.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return query, errInvalidQueryParam("limit", err)
		}
		query.Limit = limit
	}

	if raw := params.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return query, errInvalidQueryParam("page", err)
		}
		query.Page = page
	}

	if raw := params.Get("target"); raw != "" {
		query.Target = &raw
	}

	return query, nil
}

// parseTimeParam accepts RFC3339 timestamps and plain dates. An empty value
// yields the zero time, which the query service treats as unbounded.
func parseTimeParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02", raw)
}
