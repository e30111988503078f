package assignments

import (
	"context"
	"fmt"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/tracing"
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

// training dates are rendered with to_char so scanning does not depend on the
// session DateStyle.
const selectAssignment = `
	SELECT id, user_id, program_id, coach_id, status,
		ARRAY(
			SELECT to_char(d, 'YYYY-MM-DD')
			FROM unnest(training_dates) WITH ORDINALITY AS td(d, n)
			ORDER BY n
		)
	FROM program_assignments
`

func (r *Repo) ListActive(ctx context.Context) (_ []Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.assignments.listactive")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, selectAssignment+`
		WHERE status = $1
		ORDER BY created_at, id;
	`, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(assignments)))
	return assignments, nil
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.assignments.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("assignment-id", id.String()))

	row := r.db.QueryRow(ctx, selectAssignment+`WHERE id = $1`, id)
	a, err := scanAssignment(row)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return a, nil
}

// MarkCompleted moves an active assignment to completed. It reports whether a
// row changed; cancelled or already completed assignments are left alone.
func (r *Repo) MarkCompleted(ctx context.Context, id uuid.UUID) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.assignments.markcompleted")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("assignment-id", id.String()))

	tag, err := r.db.Exec(ctx, `
		UPDATE program_assignments
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3;
	`, id, StatusCompleted, StatusActive)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanAssignment(row pgx.Row) (*Assignment, error) {
	var (
		a     Assignment
		dates []string
	)
	if err := row.Scan(&a.ID, &a.UserID, &a.ProgramID, &a.CoachID, &a.Status, &dates); err != nil {
		return nil, err
	}

	parsed, err := calendar.ParseAll(dates)
	if err != nil {
		return nil, fmt.Errorf("assignment %s training dates: %w", a.ID, err)
	}
	a.TrainingDates = parsed
	return &a, nil
}
