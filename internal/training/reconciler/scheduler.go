package reconciler

import (
	"context"
	"time"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=scheduler_mocks_test.go -package=reconciler_test

type jobRunner interface {
	Run(ctx context.Context, trigger string) (*Result, error)
}

// Scheduler runs the reconcile job at start and then on a fixed interval.
// A failed run does not delay or stop the next one.
type Scheduler struct {
	job        jobRunner
	interval   time.Duration
	runOnStart bool
	done       chan struct{}
}

func NewScheduler(job jobRunner, interval time.Duration, runOnStart bool) *Scheduler {
	return &Scheduler{
		job:        job,
		interval:   interval,
		runOnStart: runOnStart,
		done:       make(chan struct{}),
	}
}

// Start runs the loop in a goroutine until ctx is done. Done is closed once it returns.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		defer close(s.done)
		s.loop(ctx)
	}()
}

func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

func (s *Scheduler) loop(ctx context.Context) {
	if s.runOnStart {
		_, _ = s.job.Run(ctx, metrics.ReconcileTriggerStartup)
	}

	if s.interval <= 0 {
		log.Warnln("reconcile interval not set, periodic reconcile disabled")
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Debugf("reconcile scheduled every %s", s.interval)
	for {
		select {
		case <-ctx.Done():
			log.Debugln("reconcile scheduler stopped")
			return
		case <-ticker.C:
			_, _ = s.job.Run(ctx, metrics.ReconcileTriggerInterval)
		}
	}
}
