package program

import (
	"context"
	"fmt"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/tracing"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/duration"

	"github.com/google/uuid"
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

// ListSlots loads the week/day skeleton of a program and walks it into a Schedule.
func (r *Repo) ListSlots(ctx context.Context, programID uuid.UUID) (_ Schedule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.listslots")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("program-id", programID.String()))

	rows, err := r.db.Query(ctx, `
		SELECT w.week_number, d.day_number
		FROM program_weeks w
		LEFT JOIN program_days d ON d.week_id = w.id
		WHERE w.program_id = $1
		ORDER BY w.week_number, d.day_number;
	`, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	p := Program{ID: programID}
	for rows.Next() {
		var weekNumber int
		var dayNumber *int
		if err := rows.Scan(&weekNumber, &dayNumber); err != nil {
			return nil, err
		}
		if len(p.Weeks) == 0 || p.Weeks[len(p.Weeks)-1].WeekNumber != weekNumber {
			p.Weeks = append(p.Weeks, Week{WeekNumber: weekNumber})
		}
		if dayNumber != nil {
			last := &p.Weeks[len(p.Weeks)-1]
			last.Days = append(last.Days, Day{DayNumber: *dayNumber})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(p.Weeks) == 0 {
		exists, err := r.exists(ctx, programID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrProgramNotFound
		}
	}

	return BuildSchedule(p), nil
}

// GetDayBlocks returns the blocks of one program day, in block order, with their exercises.
func (r *Repo) GetDayBlocks(ctx context.Context, programID uuid.UUID, weekNumber, dayNumber int) (_ []Block, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.getdayblocks")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("program-id", programID.String()),
		attribute.Int("week", weekNumber),
		attribute.Int("day", dayNumber),
	)

	rows, err := r.db.Query(ctx, `
		SELECT b.id, COALESCE(b.training_type, ''),
		       e.id, COALESCE(e.sets, 0), COALESCE(e.reps, ''), COALESCE(e.reps_mode, ''),
		       COALESCE(e.tempo, ''), COALESCE(e.rest, '')
		FROM program_weeks w
		JOIN program_days d ON d.week_id = w.id
		JOIN program_blocks b ON b.day_id = d.id
		LEFT JOIN program_exercises e ON e.block_id = b.id
		WHERE w.program_id = $1
		  AND w.week_number = $2
		  AND d.day_number = $3
		ORDER BY b.block_order, b.id, e.exercise_order;
	`, programID, weekNumber, dayNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blocks := make([]Block, 0)
	var lastBlockID uuid.UUID
	for rows.Next() {
		var (
			blockID      uuid.UUID
			trainingType string
			exerciseID   *uuid.UUID
			ex           duration.Exercise
			repsMode     string
		)
		if err := rows.Scan(
			&blockID, &trainingType,
			&exerciseID, &ex.Sets, &ex.Reps, &repsMode,
			&ex.Tempo, &ex.Rest,
		); err != nil {
			return nil, fmt.Errorf("scan block row: %w", err)
		}

		if len(blocks) == 0 || blockID != lastBlockID {
			blocks = append(blocks, Block{
				TrainingType: trainingType,
				Exercises:    make([]duration.Exercise, 0),
			})
			lastBlockID = blockID
		}
		if exerciseID != nil {
			ex.RepsMode = duration.RepsMode(repsMode)
			last := &blocks[len(blocks)-1]
			last.Exercises = append(last.Exercises, ex)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *Repo) exists(ctx context.Context, programID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM programs WHERE id = $1)`, programID).Scan(&exists)
	return exists, err
}
