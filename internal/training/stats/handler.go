package stats

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/tracing"
	"github.com/yorgoszy/code-sneak-peek-sub012/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// defaultRangeDays is used when a request names no "from" date.
const defaultRangeDays = 30

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type statsService interface {
	Report(ctx context.Context, params ReportParams) (*Report, error)
	Rows(ctx context.Context, userID uuid.UUID, from, to calendar.Date) ([]TrainingTypeStat, error)
}

type RowsResponse struct {
	Stats []TrainingTypeStat `json:"stats"`
	Total int                `json:"total"`
}

type Handler struct {
	service  statsService
	location *time.Location
}

func NewHandler(service statsService, location *time.Location) *Handler {
	return &Handler{
		service:  service,
		location: location,
	}
}

func (handler *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.report")
	defer span.End()

	userID, from, to, ok := handler.parseRangeRequest(w, r)
	if !ok {
		return
	}

	groupBy, err := ParseGroupBy(r.URL.Query().Get("group"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := handler.service.Report(ctx, ReportParams{
		UserID:  userID,
		From:    from,
		To:      to,
		GroupBy: groupBy,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			http.Error(w, "error, from date is after to date", http.StatusBadRequest)
			return
		}
		log.Errorf("stats report for user %s: %s", userID, err)
		http.Error(w, "failed to get stats report", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, report, http.StatusOK)
}

func (handler *Handler) HandleRows(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.rows")
	defer span.End()

	userID, from, to, ok := handler.parseRangeRequest(w, r)
	if !ok {
		return
	}

	rows, err := handler.service.Rows(ctx, userID, from, to)
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			http.Error(w, "error, from date is after to date", http.StatusBadRequest)
			return
		}
		log.Errorf("stats rows for user %s: %s", userID, err)
		http.Error(w, "failed to get stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, RowsResponse{
		Stats: rows,
		Total: len(rows),
	}, http.StatusOK)
}

// parseRangeRequest reads {userId} and the from/to query params. "to" defaults
// to today and "from" to the 30 days ending at "to".
func (handler *Handler) parseRangeRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, calendar.Date, calendar.Date, bool) {
	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return uuid.Nil, calendar.Date{}, calendar.Date{}, false
	}

	to := calendar.Today(handler.location)
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		if to, err = calendar.Parse(toParam); err != nil {
			http.Error(w, "error, invalid to date, use YYYY-MM-DD", http.StatusBadRequest)
			return uuid.Nil, calendar.Date{}, calendar.Date{}, false
		}
	}

	from := to.AddDays(-(defaultRangeDays - 1))
	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		if from, err = calendar.Parse(fromParam); err != nil {
			http.Error(w, "error, invalid from date, use YYYY-MM-DD", http.StatusBadRequest)
			return uuid.Nil, calendar.Date{}, calendar.Date{}, false
		}
	}

	return userID, from, to, true
}
