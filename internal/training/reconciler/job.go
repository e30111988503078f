package reconciler

import (
	"context"
	"time"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=job_mocks_test.go -package=reconciler_test

type sweeper interface {
	MarkMissedWorkoutsForPastDates(ctx context.Context, today calendar.Date, trigger string) (*Result, error)
}

type resultRecorder interface {
	Record(ctx context.Context, result *Result) error
}

// Job runs one sweep for "today" as seen in the configured location and keeps
// a record of it. Every trigger (startup, interval, cron, http, cli) goes
// through a Job.
type Job struct {
	sweeper  sweeper
	recorder resultRecorder
	location *time.Location
	now      func() time.Time
}

// NewJob builds a Job. recorder may be nil.
func NewJob(sweeper sweeper, recorder resultRecorder, location *time.Location) *Job {
	if location == nil {
		location = time.Local
	}
	return &Job{
		sweeper:  sweeper,
		recorder: recorder,
		location: location,
		now:      time.Now,
	}
}

func (j *Job) Today() calendar.Date {
	return calendar.FromTime(j.now().In(j.location))
}

func (j *Job) Run(ctx context.Context, trigger string) (*Result, error) {
	result, err := j.sweeper.MarkMissedWorkoutsForPastDates(ctx, j.Today(), trigger)
	if err != nil {
		log.Errorf("reconcile [%s]: %s", trigger, err)
	}

	if result != nil && j.recorder != nil {
		if recErr := j.recorder.Record(ctx, result); recErr != nil {
			log.Warnf("record reconcile result: %s", recErr)
		}
	}

	return result, err
}
