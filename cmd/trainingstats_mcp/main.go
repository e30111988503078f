// Package main runs the training stats MCP server over stdio (for local use).
// The same server is mounted on the service at /mcp when mcp_enabled is set.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/config"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/db"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/metrics"
	trainingmcp "github.com/yorgoszy/code-sneak-peek-sub012/internal/training/mcp"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		log.Fatalf("load secrets: %v", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: secrets.PostgresPassword,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	// metrics are not served from here
	metricsManager := metrics.NewManager("training", "mcp_stdio", prometheus.NewRegistry())
	training, err := internal.NewTraining(dbPool, nil, cfg, metricsManager)
	if err != nil {
		log.Fatalf("wire training: %v", err)
	}

	server := trainingmcp.NewServer(
		trainingmcp.NewPoolSchemaRepo(dbPool),
		training.StatsService,
		training.CompletionsService,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
