package completions

import (
	"context"
	"fmt"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/tracing"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/assignments"
	"github.com/yorgoszy/code-sneak-peek-sub012/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const completionColumns = `
	id, assignment_id, user_id, program_id,
	to_char(scheduled_date, 'YYYY-MM-DD'), week_number, day_number,
	status, COALESCE(status_color, ''), to_char(completed_date, 'YYYY-MM-DD')
`

func (r *Repo) ListForAssignment(ctx context.Context, assignmentID uuid.UUID) (_ []Completion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.listforassignment")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("assignment-id", assignmentID.String()))

	rows, err := r.db.Query(ctx, `
		SELECT `+completionColumns+`
		FROM workout_completions
		WHERE assignment_id = $1
		ORDER BY scheduled_date;
	`, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	completions := make([]Completion, 0)
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		completions = append(completions, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return completions, nil
}

func (r *Repo) Get(ctx context.Context, assignmentID uuid.UUID, date calendar.Date) (_ *Completion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(ctx, `
		SELECT `+completionColumns+`
		FROM workout_completions
		WHERE assignment_id = $1 AND scheduled_date = $2::date;
	`, assignmentID, date.String())
	c, err := scanCompletion(row)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrCompletionNotFound
		}
		return nil, err
	}
	return c, nil
}

// InsertMissed creates a missed completion unless a row for the same assignment
// and date exists. It reports whether a row was created.
func (r *Repo) InsertMissed(ctx context.Context, c Completion) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.insertmissed")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("assignment-id", c.AssignmentID.String()),
		attribute.String("date", c.ScheduledDate.String()),
	)

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	tag, err := r.db.Exec(ctx, `
		INSERT INTO workout_completions
			(id, assignment_id, user_id, program_id, scheduled_date, week_number, day_number, status, status_color)
		VALUES ($1, $2, $3, $4, $5::date, $6, $7, $8, $9)
		ON CONFLICT (assignment_id, scheduled_date) DO NOTHING;
	`,
		c.ID, c.AssignmentID, c.UserID, c.ProgramID,
		c.ScheduledDate.String(), c.WeekNumber, c.DayNumber,
		StatusMissed, ColorFor(StatusMissed),
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return false, assignments.ErrAssignmentNotFound
		}
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkMissed moves a scheduled or pending completion to missed. Completed and
// missed rows never match, so it reports false for them.
func (r *Repo) MarkMissed(ctx context.Context, assignmentID uuid.UUID, date calendar.Date) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.markmissed")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("assignment-id", assignmentID.String()),
		attribute.String("date", date.String()),
	)

	tag, err := r.db.Exec(ctx, `
		UPDATE workout_completions
		SET status = $3, status_color = $4, updated_at = now()
		WHERE assignment_id = $1
		  AND scheduled_date = $2::date
		  AND status IN ($5, $6);
	`,
		assignmentID, date.String(),
		StatusMissed, ColorFor(StatusMissed),
		StatusScheduled, StatusPending,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkCompleted creates or updates the completion of c's day as completed.
// A day completed earlier keeps its first completed date.
func (r *Repo) MarkCompleted(ctx context.Context, c Completion) (_ *Completion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.markcompleted")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("assignment-id", c.AssignmentID.String()),
		attribute.String("date", c.ScheduledDate.String()),
	)

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CompletedDate == nil {
		return nil, fmt.Errorf("completed date missing")
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO workout_completions
			(id, assignment_id, user_id, program_id, scheduled_date, week_number, day_number,
			 status, status_color, completed_date)
		VALUES ($1, $2, $3, $4, $5::date, $6, $7, $8, $9, $10::date)
		ON CONFLICT (assignment_id, scheduled_date) DO UPDATE
		SET status         = EXCLUDED.status,
		    status_color   = EXCLUDED.status_color,
		    completed_date = COALESCE(workout_completions.completed_date, EXCLUDED.completed_date),
		    updated_at     = now()
		RETURNING `+completionColumns+`;
	`,
		c.ID, c.AssignmentID, c.UserID, c.ProgramID,
		c.ScheduledDate.String(), c.WeekNumber, c.DayNumber,
		StatusCompleted, ColorFor(StatusCompleted), c.CompletedDate.String(),
	)
	completion, err := scanCompletion(row)
	if err != nil && pkg.IsForeignKeyViolationError(err) {
		return nil, assignments.ErrAssignmentNotFound
	}
	return completion, err
}

func scanCompletion(row pgx.Row) (*Completion, error) {
	var (
		c             Completion
		scheduledDate string
		completedDate *string
	)
	if err := row.Scan(
		&c.ID, &c.AssignmentID, &c.UserID, &c.ProgramID,
		&scheduledDate, &c.WeekNumber, &c.DayNumber,
		&c.Status, &c.StatusColor, &completedDate,
	); err != nil {
		return nil, err
	}

	var err error
	if c.ScheduledDate, err = calendar.Parse(scheduledDate); err != nil {
		return nil, err
	}
	if completedDate != nil {
		d, err := calendar.Parse(*completedDate)
		if err != nil {
			return nil, err
		}
		c.CompletedDate = &d
	}
	return &c, nil
}
