package reconciler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/metrics"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/tracing"
	"github.com/yorgoszy/code-sneak-peek-sub012/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=reconciler_test

type runsReader interface {
	Last(ctx context.Context) (*Result, error)
	History(ctx context.Context, limit int) ([]Result, error)
}

type HistoryResponse struct {
	Runs  []Result `json:"runs"`
	Total int      `json:"total"`
}

type Handler struct {
	job  jobRunner
	runs runsReader
}

func NewHandler(job jobRunner, runs runsReader) *Handler {
	return &Handler{
		job:  job,
		runs: runs,
	}
}

// HandleTrigger runs a sweep right away. A sweep that completed with per item
// failures still answers 200; the failures are listed in the result.
func (handler *Handler) HandleTrigger(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reconcile.trigger")
	defer span.End()

	result, err := handler.job.Run(ctx, metrics.ReconcileTriggerManual)
	if result == nil {
		log.Errorf("manual reconcile: %s", err)
		http.Error(w, "reconcile failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleLast(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reconcile.last")
	defer span.End()

	result, err := handler.runs.Last(ctx)
	if err != nil {
		if errors.Is(err, ErrNoRuns) {
			http.Error(w, "no reconcile runs yet", http.StatusNotFound)
			return
		}
		log.Errorf("get last reconcile run: %s", err)
		http.Error(w, "failed to get last reconcile run", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reconcile.history")
	defer span.End()

	limit := 0
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		var err error
		if limit, err = strconv.Atoi(limitParam); err != nil {
			http.Error(w, "error, limit NaN", http.StatusBadRequest)
			return
		}
	}

	runs, err := handler.runs.History(ctx, limit)
	if err != nil {
		log.Errorf("get reconcile history: %s", err)
		http.Error(w, "failed to get reconcile history", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, HistoryResponse{
		Runs:  runs,
		Total: len(runs),
	}, http.StatusOK)
}
