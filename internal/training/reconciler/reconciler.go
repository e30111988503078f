// Package reconciler makes sure every training date that has passed ends up
// with a terminal workout completion: completed by the athlete, or missed.
//
// There are no locks. Concurrent sweeps rely on the unique (assignment, date)
// constraint of workout_completions and on updates that only match
// non-terminal rows.
package reconciler

import (
	"context"
	"fmt"
	"time"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/metrics"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/tracing"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/assignments"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/completions"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/program"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=reconciler_mocks_test.go -package=reconciler_test

type assignmentsStore interface {
	ListActive(ctx context.Context) ([]assignments.Assignment, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error)
}

type completionsStore interface {
	ListForAssignment(ctx context.Context, assignmentID uuid.UUID) ([]completions.Completion, error)
	InsertMissed(ctx context.Context, c completions.Completion) (bool, error)
	MarkMissed(ctx context.Context, assignmentID uuid.UUID, date calendar.Date) (bool, error)
}

type scheduleGetter interface {
	Get(ctx context.Context, programID uuid.UUID) (program.Schedule, error)
}

type Reconciler struct {
	assignments assignmentsStore
	completions completionsStore
	schedules   scheduleGetter
	metrics     *metrics.Manager
}

func NewReconciler(
	assignmentsStore assignmentsStore,
	completionsStore completionsStore,
	schedules scheduleGetter,
	metricsManager *metrics.Manager,
) *Reconciler {
	return &Reconciler{
		assignments: assignmentsStore,
		completions: completionsStore,
		schedules:   schedules,
		metrics:     metricsManager,
	}
}

// MarkMissedWorkoutsForPastDates sweeps every active assignment and marks each
// training date before today as missed unless it was completed. Failures of a
// single assignment or date are recorded in the result and the sweep goes on;
// the returned error combines them. Only a failure to list assignments aborts
// the sweep, with a nil result.
func (r *Reconciler) MarkMissedWorkoutsForPastDates(ctx context.Context, today calendar.Date, trigger string) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reconciler.markmissed")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("today", today.String()),
		attribute.String("trigger", trigger),
	)

	result := &Result{
		Trigger:   trigger,
		Today:     today,
		StartedAt: time.Now(),
	}

	active, err := r.assignments.ListActive(ctx)
	if err != nil {
		r.metrics.CounterReconcileRuns.WithLabelValues(trigger, "error").Inc()
		return nil, fmt.Errorf("list active assignments: %w", err)
	}
	result.Assignments = len(active)

	for _, a := range active {
		if ctx.Err() != nil {
			break
		}
		r.reconcileAssignment(ctx, a, today, result)
	}

	result.Duration = time.Since(result.StartedAt)
	r.observe(result)

	span.SetAttributes(
		attribute.Int("created", result.Created),
		attribute.Int("updated", result.Updated),
		attribute.Int("failed", result.Failed),
	)
	log.WithFields(log.Fields{
		"trigger":     trigger,
		"today":       today.String(),
		"assignments": result.Assignments,
		"created":     result.Created,
		"updated":     result.Updated,
		"unchanged":   result.Unchanged,
		"structural":  result.Structural,
		"failed":      result.Failed,
		"finished":    result.FinishedAssignments,
	}).Infof("reconcile done in %s", result.Duration)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, fmt.Errorf("reconcile interrupted: %w", ctxErr)
	}
	return result, result.Err()
}

func (r *Reconciler) reconcileAssignment(ctx context.Context, a assignments.Assignment, today calendar.Date, result *Result) {
	hasPast := false
	for _, d := range a.TrainingDates {
		if d.Before(today) {
			hasPast = true
			break
		}
	}
	if !hasPast {
		return
	}

	existing, err := r.completions.ListForAssignment(ctx, a.ID)
	if err != nil {
		r.fail(result, a.ID, nil, OpListCompletions, err)
		return
	}
	byDate := make(map[calendar.Date]completions.Completion, len(existing))
	for _, c := range existing {
		byDate[c.ScheduledDate] = c
	}

	var (
		schedule       program.Schedule
		scheduleLoaded bool
		scheduleFailed bool
		failuresBefore = result.Failed + result.Structural
	)

	for i, d := range a.TrainingDates {
		if !d.Before(today) {
			continue
		}
		date := d

		if c, ok := byDate[date]; ok {
			if c.Status.IsTerminal() {
				result.Unchanged++
				continue
			}
			r.markMissed(ctx, a.ID, date, result)
			continue
		}

		if !scheduleLoaded && !scheduleFailed {
			schedule, err = r.schedules.Get(ctx, a.ProgramID)
			if err != nil {
				scheduleFailed = true
				r.fail(result, a.ID, nil, OpLoadSchedule, err)
			} else {
				scheduleLoaded = true
			}
		}
		if scheduleFailed {
			continue
		}

		slot, ok := schedule.SlotAt(i)
		if !ok {
			result.Structural++
			r.metrics.CounterReconcileFailures.WithLabelValues("structural").Inc()
			log.WithFields(log.Fields{
				"assignment": a.ID.String(),
				"program":    a.ProgramID.String(),
				"date":       date.String(),
				"index":      i,
				"slots":      len(schedule),
			}).Error("training date has no program day, skipping")
			continue
		}

		inserted, err := r.completions.InsertMissed(ctx, completions.Completion{
			ID:            uuid.New(),
			AssignmentID:  a.ID,
			UserID:        a.UserID,
			ProgramID:     a.ProgramID,
			ScheduledDate: date,
			WeekNumber:    slot.WeekNumber,
			DayNumber:     slot.DayNumber,
		})
		if err != nil {
			r.fail(result, a.ID, &date, OpInsertMissed, err)
			continue
		}
		if inserted {
			result.Created++
			continue
		}

		// another writer created the row after we listed; treat it as existing
		r.markMissed(ctx, a.ID, date, result)
	}

	if result.Failed+result.Structural == failuresBefore && a.AllPast(today) {
		r.completeIfFinished(ctx, a, result)
	}
}

func (r *Reconciler) markMissed(ctx context.Context, assignmentID uuid.UUID, date calendar.Date, result *Result) {
	updated, err := r.completions.MarkMissed(ctx, assignmentID, date)
	if err != nil {
		r.fail(result, assignmentID, &date, OpMarkMissed, err)
		return
	}
	if updated {
		result.Updated++
	} else {
		result.Unchanged++
	}
}

// completeIfFinished moves the assignment to completed when every training
// date has a terminal completion.
func (r *Reconciler) completeIfFinished(ctx context.Context, a assignments.Assignment, result *Result) {
	current, err := r.completions.ListForAssignment(ctx, a.ID)
	if err != nil {
		r.fail(result, a.ID, nil, OpCompleteAssignment, err)
		return
	}

	terminal := make(map[calendar.Date]bool, len(current))
	for _, c := range current {
		terminal[c.ScheduledDate] = c.Status.IsTerminal()
	}
	for _, d := range a.TrainingDates {
		if !terminal[d] {
			return
		}
	}

	changed, err := r.assignments.MarkCompleted(ctx, a.ID)
	if err != nil {
		r.fail(result, a.ID, nil, OpCompleteAssignment, err)
		return
	}
	if changed {
		result.FinishedAssignments++
		log.Infof("assignment %s finished", a.ID)
	}
}

func (r *Reconciler) fail(result *Result, assignmentID uuid.UUID, date *calendar.Date, op string, err error) {
	fields := log.Fields{
		"assignment": assignmentID.String(),
		"op":         op,
	}
	if date != nil {
		fields["date"] = date.String()
	}
	log.WithFields(fields).Errorf("reconcile: %s", err)

	r.metrics.CounterReconcileFailures.WithLabelValues(op).Inc()
	result.addFailure(assignmentID, date, op, err)
}

func (r *Reconciler) observe(result *Result) {
	outcome := "ok"
	if result.Failed > 0 {
		outcome = "partial"
	}
	r.metrics.CounterReconcileRuns.WithLabelValues(result.Trigger, outcome).Inc()
	r.metrics.CounterCompletionsCreated.Add(float64(result.Created))
	r.metrics.CounterCompletionsUpdated.Add(float64(result.Updated))
	r.metrics.HistReconcileDuration.Observe(result.Duration.Seconds())
}
