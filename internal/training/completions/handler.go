package completions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/tracing"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/assignments"
	"github.com/yorgoszy/code-sneak-peek-sub012/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=completions_test

type completionsService interface {
	Complete(ctx context.Context, params CompleteParams) (*Completion, error)
	RecomputeDayStats(ctx context.Context, assignmentID uuid.UUID, date calendar.Date) error
	ListForAssignment(ctx context.Context, assignmentID uuid.UUID) ([]Completion, error)
}

// DayRequest addresses one training day of an assignment.
type DayRequest struct {
	AssignmentID uuid.UUID     `json:"assignmentId"`
	Date         calendar.Date `json:"date"`
}

type CompleteResponse struct {
	Completion  *Completion `json:"completion"`
	StatsStored bool        `json:"statsStored"`
}

type ListResponse struct {
	Completions []Completion `json:"completions"`
	Total       int          `json:"total"`
}

type Handler struct {
	service  completionsService
	location *time.Location
}

func NewHandler(service completionsService, location *time.Location) *Handler {
	return &Handler{
		service:  service,
		location: location,
	}
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.completions.complete")
	defer span.End()

	req, ok := decodeDayRequest(w, r)
	if !ok {
		return
	}

	completion, err := handler.service.Complete(ctx, CompleteParams{
		AssignmentID: req.AssignmentID,
		Date:         req.Date,
		CompletedOn:  calendar.Today(handler.location),
	})
	if err != nil && !errors.Is(err, ErrStatsNotStored) {
		writeServiceError(w, err, "failed to complete workout")
		return
	}

	pkg.WriteJSON(w, CompleteResponse{
		Completion:  completion,
		StatsStored: err == nil,
	}, http.StatusOK)
}

func (handler *Handler) HandleRecomputeStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.completions.recomputestats")
	defer span.End()

	req, ok := decodeDayRequest(w, r)
	if !ok {
		return
	}

	if err := handler.service.RecomputeDayStats(ctx, req.AssignmentID, req.Date); err != nil {
		writeServiceError(w, err, "failed to recompute stats")
		return
	}

	pkg.WriteJSONResponseOK(w, `{"recomputed":true}`)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.completions.list")
	defer span.End()

	assignmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid assignment id", http.StatusBadRequest)
		return
	}

	list, err := handler.service.ListForAssignment(ctx, assignmentID)
	if err != nil {
		writeServiceError(w, err, "failed to list completions")
		return
	}

	pkg.WriteJSON(w, ListResponse{
		Completions: list,
		Total:       len(list),
	}, http.StatusOK)
}

func decodeDayRequest(w http.ResponseWriter, r *http.Request) (*DayRequest, bool) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return nil, false
	}

	var req DayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("decode day request: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return nil, false
	}
	if req.AssignmentID == uuid.Nil || req.Date.IsZero() {
		http.Error(w, "error, assignment id or date empty", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func writeServiceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, assignments.ErrAssignmentNotFound), errors.Is(err, ErrCompletionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case IsClientError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", message, err)
		http.Error(w, message, http.StatusInternalServerError)
	}
}
