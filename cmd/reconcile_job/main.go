// Command reconcile_job runs a single reconcile sweep and exits. It is meant
// for an external daily scheduler; running it next to the service is safe.
package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/config"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/db"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/logging"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run())
}

func run() int {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envFile := flag.String("env-file", ".env", "optional .env file with secrets")
	timeout := flag.Duration("timeout", 30*time.Minute, "max duration of the sweep")
	noRecord := flag.Bool("no-record", false, "do not store the run result in redis")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Debugf("no env file loaded [%s]: %s", *envFile, err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Errorf("load config: %s", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx, timeoutCancel := context.WithTimeout(ctx, *timeout)
	defer timeoutCancel()

	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		log.Errorf("load secrets: %s", err)
		return 1
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout:      true,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        secrets.SentryDSN,
		SentryServerName: "reconcile-job",
	})

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: secrets.PostgresPassword,
	})
	if err != nil {
		log.Errorf("db pool: %s", err)
		return 1
	}
	defer dbPool.Close()

	var rdb *redis.Client
	if !*noRecord {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: secrets.RedisPassword,
		})
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Errorf("close redis client: %s", err)
			}
		}()
	}

	metricsManager := metrics.NewManager("training", "reconcile_job", prometheus.NewRegistry())
	training, err := internal.NewTraining(dbPool, rdb, cfg, metricsManager)
	if err != nil {
		log.Errorf("wire training: %s", err)
		return 1
	}

	result, err := training.Job.Run(ctx, metrics.ReconcileTriggerJob)
	if result == nil {
		log.Errorf("reconcile: %s", err)
		return 1
	}
	if err != nil {
		log.Errorf("reconcile finished with %d failures", result.Failed)
		return 2
	}

	log.Infof("reconcile ok: created=%d updated=%d unchanged=%d finished=%d",
		result.Created, result.Updated, result.Unchanged, result.FinishedAssignments)
	return 0
}
