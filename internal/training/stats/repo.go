package stats

import (
	"context"
	"fmt"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// DayKey identifies the stats of one training day of one assignment.
type DayKey struct {
	UserID       uuid.UUID
	AssignmentID uuid.UUID
	Date         calendar.Date
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ReplaceDay deletes every stat row of the day and inserts rows in their place,
// in one transaction. On error the previous rows are kept.
func (r *Repo) ReplaceDay(ctx context.Context, key DayKey, rows []TrainingTypeStat) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.replaceday")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user-id", key.UserID.String()),
		attribute.String("assignment-id", key.AssignmentID.String()),
		attribute.String("date", key.Date.String()),
		attribute.Int("rows", len(rows)),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `
		DELETE FROM training_type_stats
		WHERE user_id = $1
		  AND assignment_id = $2
		  AND training_date = $3::date;
	`, key.UserID, key.AssignmentID, key.Date.String()); err != nil {
		return fmt.Errorf("delete day stats: %w", err)
	}

	if len(rows) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, s := range rows {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		batch.Queue(`
			INSERT INTO training_type_stats
				(id, user_id, assignment_id, workout_completion_id, training_date, training_type, minutes)
			VALUES ($1, $2, $3, $4, $5::date, $6, $7);
		`,
			s.ID, key.UserID, key.AssignmentID, s.WorkoutCompletionID,
			key.Date.String(), s.TrainingType, s.Minutes,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range rows {
		if _, err = br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("insert day stats: %w", err)
		}
	}
	if err = br.Close(); err != nil {
		return fmt.Errorf("insert day stats: %w", err)
	}

	return nil
}

// FetchRange returns the user's rows with training date in [from, to], oldest first.
func (r *Repo) FetchRange(ctx context.Context, userID uuid.UUID, from, to calendar.Date) (_ []TrainingTypeStat, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.fetchrange")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user-id", userID.String()),
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
	)

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, assignment_id, workout_completion_id,
		       to_char(training_date, 'YYYY-MM-DD'), training_type, minutes
		FROM training_type_stats
		WHERE user_id = $1
		  AND training_date >= $2::date
		  AND training_date <= $3::date
		ORDER BY training_date, created_at, id;
	`, userID, from.String(), to.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]TrainingTypeStat, 0)
	for rows.Next() {
		var (
			s    TrainingTypeStat
			date string
		)
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.AssignmentID, &s.WorkoutCompletionID,
			&date, &s.TrainingType, &s.Minutes,
		); err != nil {
			return nil, err
		}
		if s.TrainingDate, err = calendar.Parse(date); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
