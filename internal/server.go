package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/config"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/db"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/middleware"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/metrics"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/tracing"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/completions"
	trainingmcp "github.com/yorgoszy/code-sneak-peek-sub012/internal/training/mcp"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/reconciler"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/stats"
	"github.com/yorgoszy/code-sneak-peek-sub012/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	apiSecret         string
	versionInfo       string

	config   *config.Config
	dbPool   *pgxpool.Pool
	training *Training

	redisClient *redis.Client

	scheduler *reconciler.Scheduler
	cron      *cron.Cron

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	APISecret               string
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
	// Migrate applies db.Schema before serving.
	Migrate bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.Migrate {
		if err := db.Migrate(ctx, dbPool); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		log.Infoln("db schema applied")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.NewRegistry(params.VersionInfo, pgxpoolCollector)
	metricsManager := metrics.NewManager("training", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "training-backend")
	if err != nil {
		return nil, err
	}

	training, err := NewTraining(dbPool, rdb, params.Config, metricsManager)
	if err != nil {
		return nil, fmt.Errorf("wire training: %w", err)
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		training:    training,
		apiSecret:   params.APISecret,
		versionInfo: params.VersionInfo,
		redisClient: rdb,
		scheduler: reconciler.NewScheduler(
			training.Job,
			params.Config.ReconcileInterval.Duration,
			*params.Config.ReconcileOnStart,
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("training-router"))

	r.HandleFunc("/", s.handleHealth).Methods("GET")
	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	location, err := s.config.Location()
	if err != nil {
		return nil, err
	}

	statsHandler := stats.NewHandler(s.training.StatsService, location)
	r.HandleFunc("/training/stats/user/{userId}", statsHandler.HandleReport).Methods("GET", "OPTIONS").Name("stats-report")
	r.HandleFunc("/training/stats/user/{userId}/rows", statsHandler.HandleRows).Methods("GET", "OPTIONS").Name("stats-rows")

	completionsHandler := completions.NewHandler(s.training.CompletionsService, location)
	r.HandleFunc("/training/completions/complete", completionsHandler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-workout")
	r.HandleFunc("/training/stats/recompute", completionsHandler.HandleRecomputeStats).Methods("POST", "OPTIONS").Name("recompute-stats")
	r.HandleFunc("/training/assignments/{id}/completions", completionsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-completions")

	var runs reconcileRunsReader = noRunsReader{}
	if s.training.Recorder != nil {
		runs = s.training.Recorder
	}
	reconcileHandler := reconciler.NewHandler(s.training.Job, runs)
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	r.Handle("/training/reconcile", middleware.RateLimit(
		reqRateLimiter,
		s.metricsManager,
		"reconcile",
		s.config.ReconcileRateLimitPerMin,
	)(http.HandlerFunc(reconcileHandler.HandleTrigger))).Methods("POST", "OPTIONS").Name("reconcile")
	r.HandleFunc("/training/reconcile/last", reconcileHandler.HandleLast).Methods("GET", "OPTIONS").Name("reconcile-last")
	r.HandleFunc("/training/reconcile/history", reconcileHandler.HandleHistory).Methods("GET", "OPTIONS").Name("reconcile-history")

	if s.config.MCPEnabled {
		mcpServer := trainingmcp.NewServer(
			trainingmcp.NewPoolSchemaRepo(s.dbPool),
			s.training.StatsService,
			s.training.CompletionsService,
		)
		mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return mcpServer
		}, nil)
		r.PathPrefix("/mcp").Handler(mcpHandler).Methods("GET", "POST", "DELETE", "OPTIONS").Name("mcp")
		log.Infoln("mcp mounted at /mcp")
	}

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.apiSecret)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, map[string]string{
		"status":  "ok",
		"version": s.versionInfo,
	}, http.StatusOK)
}

// Serve starts the http servers and the reconcile triggers owned by the
// process: the interval scheduler and the daily cron entry. Both stop with ctx.
func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.scheduler.Start(ctx)
	if err := s.startCron(ctx); err != nil {
		log.Errorf("daily reconcile not scheduled: %s", err)
	}

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) startCron(ctx context.Context) error {
	location, err := s.config.Location()
	if err != nil {
		return err
	}

	c := cron.NewWithLocation(location)
	if err := c.AddFunc(s.config.ReconcileCron, func() {
		if ctx.Err() != nil {
			return
		}
		_, _ = s.training.Job.Run(ctx, metrics.ReconcileTriggerCron)
	}); err != nil {
		return fmt.Errorf("add cron entry %q: %w", s.config.ReconcileCron, err)
	}
	c.Start()
	s.cron = c

	log.Debugf("daily reconcile scheduled: [%s]", s.config.ReconcileCron)
	return nil
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.cron != nil {
		s.cron.Stop()
	}
	select {
	case <-s.scheduler.Done():
		log.Debugln("reconcile scheduler stopped")
	case <-ctx.Done():
		log.Warnln("reconcile scheduler did not stop in time")
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}

type reconcileRunsReader interface {
	Last(ctx context.Context) (*reconciler.Result, error)
	History(ctx context.Context, limit int) ([]reconciler.Result, error)
}

// noRunsReader answers like an empty run history.
type noRunsReader struct{}

func (noRunsReader) Last(context.Context) (*reconciler.Result, error) {
	return nil, reconciler.ErrNoRuns
}

func (noRunsReader) History(context.Context, int) ([]reconciler.Result, error) {
	return nil, nil
}
