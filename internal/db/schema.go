package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the subset of the backend schema this service reads and writes.
// Program structure tables are owned by the program builder; they are created
// here only so a fresh database (tests, local dev) is usable.
const Schema = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;

CREATE TABLE IF NOT EXISTS programs
(
    id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name       VARCHAR NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS program_weeks
(
    id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    program_id  UUID    NOT NULL REFERENCES programs (id) ON DELETE CASCADE,
    week_number INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS program_days
(
    id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    week_id    UUID    NOT NULL REFERENCES program_weeks (id) ON DELETE CASCADE,
    day_number INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS program_blocks
(
    id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    day_id        UUID    NOT NULL REFERENCES program_days (id) ON DELETE CASCADE,
    training_type VARCHAR,
    block_order   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS program_exercises
(
    id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    block_id       UUID    NOT NULL REFERENCES program_blocks (id) ON DELETE CASCADE,
    exercise_order INTEGER NOT NULL DEFAULT 0,
    sets           INTEGER NOT NULL DEFAULT 0,
    reps           VARCHAR,
    reps_mode      VARCHAR,
    tempo          VARCHAR,
    rest           VARCHAR
);

CREATE TABLE IF NOT EXISTS program_assignments
(
    id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id        UUID    NOT NULL,
    program_id     UUID    NOT NULL REFERENCES programs (id),
    coach_id       UUID,
    status         VARCHAR NOT NULL DEFAULT 'active',
    training_dates DATE[]  NOT NULL DEFAULT '{}',
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_program_assignments_status ON program_assignments (status);

CREATE TABLE IF NOT EXISTS workout_completions
(
    id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    assignment_id  UUID    NOT NULL REFERENCES program_assignments (id),
    user_id        UUID    NOT NULL,
    program_id     UUID    NOT NULL,
    scheduled_date DATE    NOT NULL,
    week_number    INTEGER NOT NULL,
    day_number     INTEGER NOT NULL,
    status         VARCHAR NOT NULL,
    status_color   VARCHAR,
    completed_date DATE,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT uq_workout_completions_assignment_date UNIQUE (assignment_id, scheduled_date)
);

CREATE TABLE IF NOT EXISTS training_type_stats
(
    id                    UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id               UUID    NOT NULL,
    assignment_id         UUID    NOT NULL,
    workout_completion_id UUID,
    training_date         DATE    NOT NULL,
    training_type         VARCHAR NOT NULL,
    minutes               INTEGER NOT NULL CHECK (minutes >= 0),
    created_at            TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_training_type_stats_user_date ON training_type_stats (user_id, training_date);
CREATE INDEX IF NOT EXISTS ix_training_type_stats_day ON training_type_stats (user_id, assignment_id, training_date);
`

// Migrate applies Schema. All statements are idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
