package internal

import (
	"fmt"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/config"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/metrics"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/assignments"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/completions"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/program"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/reconciler"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/stats"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Training holds the wired training components. The HTTP server and the
// one-shot commands share it.
type Training struct {
	Assignments *assignments.Repo
	Completions *completions.Repo
	Programs    *program.Repo
	Schedules   *program.ScheduleCache
	StatsRepo   *stats.Repo

	Aggregator         *stats.Aggregator
	StatsService       *stats.Service
	CompletionsService *completions.Service

	Reconciler *reconciler.Reconciler
	// Recorder is nil when there is no redis client.
	Recorder *reconciler.RunRecorder
	Job      *reconciler.Job
}

// NewTraining wires repos, services and the reconcile job. rdb may be nil.
func NewTraining(
	dbPool *pgxpool.Pool,
	rdb *redis.Client,
	cfg *config.Config,
	metricsManager *metrics.Manager,
) (*Training, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("resolve location: %w", err)
	}

	t := &Training{
		Assignments: assignments.NewRepo(dbPool),
		Completions: completions.NewRepo(dbPool),
		Programs:    program.NewRepo(dbPool),
		StatsRepo:   stats.NewRepo(dbPool),
	}
	t.Schedules = program.NewScheduleCache(
		t.Programs,
		cfg.ScheduleCacheSizeMB*1024*1024,
		cfg.ScheduleCacheTTL.Duration,
		metricsManager,
	)

	t.Aggregator = stats.NewAggregator(t.StatsRepo, metricsManager)
	t.StatsService = stats.NewService(t.StatsRepo)
	t.CompletionsService = completions.NewService(
		t.Assignments,
		t.Schedules,
		t.Programs,
		t.Completions,
		t.Aggregator,
	)

	t.Reconciler = reconciler.NewReconciler(t.Assignments, t.Completions, t.Schedules, metricsManager)
	if rdb != nil {
		t.Recorder = reconciler.NewRunRecorder(rdb)
		t.Job = reconciler.NewJob(t.Reconciler, t.Recorder, location)
	} else {
		t.Job = reconciler.NewJob(t.Reconciler, nil, location)
	}

	return t, nil
}
