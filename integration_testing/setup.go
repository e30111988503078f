//go:build integration_test

package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/config"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/db"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9100
	serverHost = "localhost"
	apiSecret  = "integration-secret"
	testDBName = "training"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Env struct {
	// DB is used to seed program and assignment rows the service only reads.
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()

	redisPort    string
	postgresPort string
}

func newEnv(ctx context.Context) *Env {
	var err error
	suite := &Env{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	suite.redisPort, err = suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err)
	}

	suite.postgresPort, err = suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  suite.Config(),
			APISecret:               apiSecret,
			VersionInfo:             "test-version-info",
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
			Migrate:                 true,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(ctx, serverHost, serverPort)

	if err := suite.dockerPool.Retry(func() error {
		resp, err := http.Get(serverEndpoint + "/health")
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("health: %d", resp.StatusCode)
		}
		return nil
	}); err != nil {
		suite.cleanup()
		log.Fatalf("server not healthy: %s", err)
	}

	return suite
}

func (s *Env) cleanup() {
	fmt.Println(" --> cleaning up test suite...")
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			fmt.Printf(" --> test suite db close error: %s\n", err)
		}
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	fmt.Println(" --> test suite cleanup done")
}

// Config is the service config pointing at the suite containers. The interval
// scheduler and the cron entry are slowed down so only the tests trigger sweeps.
func (s *Env) Config() *config.Config {
	cfg, err := config.Parse("development", fmt.Sprintf(`
[development]
host = %q
port = %d
environment = "development"
log_level = "debug"
log_to_stdout = true
postgres_host = "localhost"
postgres_port = %q
postgres_db_name = %q
redis_host = "localhost"
redis_port = %q
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2113"
reconcile_interval = "24h"
reconcile_on_start = false
reconcile_cron = "@yearly"
reconcile_rate_limit_per_min = 100
timezone = "UTC"
mcp_enabled = true
`, serverHost, serverPort, s.postgresPort, testDBName, s.redisPort))
	if err != nil {
		log.Fatalf("parse test config: %s", err)
	}
	return cfg
}

func (s *Env) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "training-redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := redisResource.Close(); err != nil {
			fmt.Printf("redis teardown: %s\n", err)
		}
	})

	return redisResource.GetPort("6379/tcp"), nil
}

func (s *Env) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "14",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + testDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := pgResource.Close(); err != nil {
			fmt.Printf("postgres teardown: %s\n", err)
		}
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf(
		"postgres://postgres@localhost:%s/%s?sslmode=disable",
		pgPort, testDBName,
	)

	if err := s.dockerPool.Retry(func() error {
		var err error
		s.DB, err = sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		return s.DB.Ping()
	}); err != nil {
		return "", fmt.Errorf("connect to db: %s", err)
	}

	// the server migrates too; the seeding below needs the tables first
	if _, err := s.DB.Exec(db.Schema); err != nil {
		return "", fmt.Errorf("apply schema: %s", err)
	}

	return pgPort, nil
}

type seededDay struct {
	week   int
	day    int
	blocks []seededBlock
}

type seededBlock struct {
	trainingType string
	sets         int
	reps         string
	tempo        string
	rest         string
}

// seedProgram creates a program with one week holding the given days.
func (s *Env) seedProgram(ctx context.Context, days ...seededDay) (uuid.UUID, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() { _ = tx.Rollback() }()

	programID := uuid.New()
	if _, err := tx.ExecContext(ctx, `INSERT INTO programs (id, name) VALUES ($1, $2)`, programID, "program-"+programID.String()[:8]); err != nil {
		return uuid.Nil, fmt.Errorf("insert program: %w", err)
	}

	weekIDs := map[int]uuid.UUID{}
	for _, d := range days {
		weekID, ok := weekIDs[d.week]
		if !ok {
			weekID = uuid.New()
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO program_weeks (id, program_id, week_number) VALUES ($1, $2, $3)
			`, weekID, programID, d.week); err != nil {
				return uuid.Nil, fmt.Errorf("insert week: %w", err)
			}
			weekIDs[d.week] = weekID
		}

		dayID := uuid.New()
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO program_days (id, week_id, day_number) VALUES ($1, $2, $3)
		`, dayID, weekID, d.day); err != nil {
			return uuid.Nil, fmt.Errorf("insert day: %w", err)
		}

		for i, b := range d.blocks {
			blockID := uuid.New()
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO program_blocks (id, day_id, training_type, block_order) VALUES ($1, $2, $3, $4)
			`, blockID, dayID, b.trainingType, i); err != nil {
				return uuid.Nil, fmt.Errorf("insert block: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO program_exercises (block_id, exercise_order, sets, reps, tempo, rest)
				VALUES ($1, 0, $2, $3, $4, $5)
			`, blockID, b.sets, b.reps, b.tempo, b.rest); err != nil {
				return uuid.Nil, fmt.Errorf("insert exercise: %w", err)
			}
		}
	}

	return programID, tx.Commit()
}

func (s *Env) seedAssignment(ctx context.Context, userID, programID uuid.UUID, dates ...string) (uuid.UUID, error) {
	assignmentID := uuid.New()
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO program_assignments (id, user_id, program_id, status, training_dates)
		VALUES ($1, $2, $3, 'active', $4::date[])
	`, assignmentID, userID, programID, pq.Array(dates))
	return assignmentID, err
}

func (s *Env) seedCompletion(ctx context.Context, assignmentID, userID, programID uuid.UUID, date, status string) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO workout_completions
			(assignment_id, user_id, program_id, scheduled_date, week_number, day_number, status)
		VALUES ($1, $2, $3, $4::date, 1, 1, $5)
	`, assignmentID, userID, programID, date, status)
	return err
}

// completionStatuses maps scheduled date to status for one assignment.
func (s *Env) completionStatuses(ctx context.Context, assignmentID uuid.UUID) (map[string]string, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT to_char(scheduled_date, 'YYYY-MM-DD'), status
		FROM workout_completions
		WHERE assignment_id = $1
	`, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := map[string]string{}
	for rows.Next() {
		var date, status string
		if err := rows.Scan(&date, &status); err != nil {
			return nil, err
		}
		statuses[date] = status
	}
	return statuses, rows.Err()
}

func (s *Env) assignmentStatus(ctx context.Context, assignmentID uuid.UUID) (string, error) {
	var status string
	err := s.DB.QueryRowContext(ctx, `SELECT status FROM program_assignments WHERE id = $1`, assignmentID).Scan(&status)
	return status, err
}

func newRequest(ctx context.Context, method, path, body string) (*http.Request, error) {
	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequestWithContext(ctx, method, serverEndpoint+path, nil)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, serverEndpoint+path, strings.NewReader(body))
	}
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-TRAINING-TOKEN", apiSecret)
	return req, nil
}

var httpClient = &http.Client{Timeout: 10 * time.Second}
