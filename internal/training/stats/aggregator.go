package stats

import (
	"context"
	"fmt"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/metrics"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/tracing"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/program"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=stats_test

type dayStatsStore interface {
	ReplaceDay(ctx context.Context, key DayKey, rows []TrainingTypeStat) error
}

type DayStatsParams struct {
	UserID       uuid.UUID
	AssignmentID uuid.UUID
	Date         calendar.Date
	Blocks       []program.Block
	CompletionID *uuid.UUID
}

type Aggregator struct {
	store   dayStatsStore
	metrics *metrics.Manager
}

func NewAggregator(store dayStatsStore, metricsManager *metrics.Manager) *Aggregator {
	return &Aggregator{
		store:   store,
		metrics: metricsManager,
	}
}

// ComputeAndStoreDayStats replaces the stats of one training day with the ones
// computed from its blocks. Running it again for the same day with other blocks
// leaves only the latest rows.
func (a *Aggregator) ComputeAndStoreDayStats(ctx context.Context, params DayStatsParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.stats.computeandstore")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	dayStats := ComputeDayStats(params.Blocks)
	rows := make([]TrainingTypeStat, 0, len(dayStats))
	for _, bm := range dayStats {
		rows = append(rows, TrainingTypeStat{
			ID:                  uuid.New(),
			UserID:              params.UserID,
			AssignmentID:        params.AssignmentID,
			WorkoutCompletionID: params.CompletionID,
			TrainingDate:        params.Date,
			TrainingType:        bm.TrainingType,
			Minutes:             bm.Minutes,
		})
	}

	key := DayKey{
		UserID:       params.UserID,
		AssignmentID: params.AssignmentID,
		Date:         params.Date,
	}
	if err := a.store.ReplaceDay(ctx, key, rows); err != nil {
		return fmt.Errorf("replace stats of %s for assignment %s: %w", params.Date, params.AssignmentID, err)
	}

	a.metrics.CounterStatsDaysStored.Inc()
	log.Debugf("stored %d training type stats for assignment %s on %s", len(rows), params.AssignmentID, params.Date)
	return nil
}
