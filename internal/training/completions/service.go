package completions

import (
	"context"
	"errors"
	"fmt"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/tracing"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/assignments"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/program"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/stats"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=completions_test

type assignmentsGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*assignments.Assignment, error)
}

type scheduleGetter interface {
	Get(ctx context.Context, programID uuid.UUID) (program.Schedule, error)
	Invalidate(programID uuid.UUID)
}

type dayBlocksGetter interface {
	GetDayBlocks(ctx context.Context, programID uuid.UUID, weekNumber, dayNumber int) ([]program.Block, error)
}

type completionsStore interface {
	Get(ctx context.Context, assignmentID uuid.UUID, date calendar.Date) (*Completion, error)
	ListForAssignment(ctx context.Context, assignmentID uuid.UUID) ([]Completion, error)
	MarkCompleted(ctx context.Context, c Completion) (*Completion, error)
}

type dayStatsAggregator interface {
	ComputeAndStoreDayStats(ctx context.Context, params stats.DayStatsParams) error
}

type CompleteParams struct {
	AssignmentID uuid.UUID
	Date         calendar.Date
	// CompletedOn is the day the athlete finished the workout.
	CompletedOn calendar.Date
}

type Service struct {
	assignments assignmentsGetter
	schedules   scheduleGetter
	blocks      dayBlocksGetter
	store       completionsStore
	aggregator  dayStatsAggregator
}

func NewService(
	assignmentsGetter assignmentsGetter,
	schedules scheduleGetter,
	blocks dayBlocksGetter,
	store completionsStore,
	aggregator dayStatsAggregator,
) *Service {
	return &Service{
		assignments: assignmentsGetter,
		schedules:   schedules,
		blocks:      blocks,
		store:       store,
		aggregator:  aggregator,
	}
}

// Complete marks a training day as completed and stores its training type stats.
// Missed days can be completed too. When only the stats fail, the completion is
// returned together with an error wrapping ErrStatsNotStored.
func (s *Service) Complete(ctx context.Context, params CompleteParams) (_ *Completion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.completions.complete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("assignment-id", params.AssignmentID.String()),
		attribute.String("date", params.Date.String()),
	)

	a, err := s.assignments.Get(ctx, params.AssignmentID)
	if err != nil {
		return nil, err
	}
	if a.Status == assignments.StatusCancelled {
		return nil, ErrAssignmentCanceled
	}

	index := a.IndexOf(params.Date)
	if index < 0 {
		return nil, ErrDateNotScheduled
	}

	schedule, err := s.schedules.Get(ctx, a.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("program schedule: %w", err)
	}
	slot, ok := schedule.SlotAt(index)
	if !ok {
		return nil, ErrNoScheduleSlot
	}

	completedOn := params.CompletedOn
	completion, err := s.store.MarkCompleted(ctx, Completion{
		AssignmentID:  a.ID,
		UserID:        a.UserID,
		ProgramID:     a.ProgramID,
		ScheduledDate: params.Date,
		WeekNumber:    slot.WeekNumber,
		DayNumber:     slot.DayNumber,
		CompletedDate: &completedOn,
	})
	if err != nil {
		return nil, fmt.Errorf("mark completed: %w", err)
	}

	if err := s.storeDayStats(ctx, a, completion); err != nil {
		log.Errorf("completion %s stored, stats failed: %s", completion.ID, err)
		return completion, fmt.Errorf("%w: %w", ErrStatsNotStored, err)
	}

	log.Debugf("assignment %s: %s completed", a.ID, params.Date)
	return completion, nil
}

// RecomputeDayStats recomputes the stats of a completed day, e.g. after the
// program was edited or an earlier attempt failed. The program's cached
// schedule is dropped too, so later sweeps see an edited structure.
func (s *Service) RecomputeDayStats(ctx context.Context, assignmentID uuid.UUID, date calendar.Date) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.completions.recomputedaystats")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	a, err := s.assignments.Get(ctx, assignmentID)
	if err != nil {
		return err
	}
	s.schedules.Invalidate(a.ProgramID)

	completion, err := s.store.Get(ctx, assignmentID, date)
	if err != nil {
		return err
	}
	if completion.Status != StatusCompleted {
		return ErrNotCompleted
	}

	if err := s.storeDayStats(ctx, a, completion); err != nil {
		return fmt.Errorf("%w: %w", ErrStatsNotStored, err)
	}
	return nil
}

func (s *Service) ListForAssignment(ctx context.Context, assignmentID uuid.UUID) (_ []Completion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.completions.listforassignment")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if _, err := s.assignments.Get(ctx, assignmentID); err != nil {
		return nil, err
	}
	return s.store.ListForAssignment(ctx, assignmentID)
}

func (s *Service) storeDayStats(ctx context.Context, a *assignments.Assignment, c *Completion) error {
	blocks, err := s.blocks.GetDayBlocks(ctx, a.ProgramID, c.WeekNumber, c.DayNumber)
	if err != nil {
		return fmt.Errorf("day blocks: %w", err)
	}

	completionID := c.ID
	return s.aggregator.ComputeAndStoreDayStats(ctx, stats.DayStatsParams{
		UserID:       a.UserID,
		AssignmentID: a.ID,
		Date:         c.ScheduledDate,
		Blocks:       blocks,
		CompletionID: &completionID,
	})
}

// IsClientError tells whether err comes from a bad request rather than a failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrDateNotScheduled) ||
		errors.Is(err, ErrAssignmentCanceled) ||
		errors.Is(err, ErrNotCompleted) ||
		errors.Is(err, ErrNoScheduleSlot)
}
