// Command stats_export writes the training type stats of one user in a date
// range to a Parquet file.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/calendar"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/config"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/db"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/stats"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	userIDArg := flag.String("user", "", "user id")
	fromArg := flag.String("from", "", "first day, YYYY-MM-DD")
	toArg := flag.String("to", "", "last day, YYYY-MM-DD")
	out := flag.String("out", "training_type_stats.parquet", "output file")
	flag.Parse()

	_ = godotenv.Load()

	userID, err := uuid.Parse(*userIDArg)
	if err != nil {
		log.Fatalf("invalid user id [%s]: %s", *userIDArg, err)
	}
	from, err := calendar.Parse(*fromArg)
	if err != nil {
		log.Fatalf("invalid from date: %s", err)
	}
	to, err := calendar.Parse(*toArg)
	if err != nil {
		log.Fatalf("invalid to date: %s", err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx := context.Background()
	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		log.Fatalf("load secrets: %s", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: secrets.PostgresPassword,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	rows, err := stats.NewService(stats.NewRepo(dbPool)).Rows(ctx, userID, from, to)
	if err != nil {
		log.Fatalf("fetch stats: %s", err)
	}

	data, err := stats.ExportParquet(rows)
	if err != nil {
		log.Fatalf("export: %s", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %s", *out, err)
	}

	log.Infof("%d rows written to %s", len(rows), *out)
}
