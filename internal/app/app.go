package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/campus-collab-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/campus-collab-backend/internal/adapter/postgres/audit"
	contributionrepo "github.com/heartmarshall/campus-collab-backend/internal/adapter/postgres/contribution"
	projectrepo "github.com/heartmarshall/campus-collab-backend/internal/adapter/postgres/project"
	userrepo "github.com/heartmarshall/campus-collab-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/campus-collab-backend/internal/auth"
	"github.com/heartmarshall/campus-collab-backend/internal/config"
	"github.com/heartmarshall/campus-collab-backend/internal/service/admin"
	"github.com/heartmarshall/campus-collab-backend/internal/service/audit"
	authsvc "github.com/heartmarshall/campus-collab-backend/internal/service/auth"
	"github.com/heartmarshall/campus-collab-backend/internal/service/collab"
	"github.com/heartmarshall/campus-collab-backend/internal/service/maintenance"
	"github.com/heartmarshall/campus-collab-backend/internal/service/project"
	"github.com/heartmarshall/campus-collab-backend/internal/service/user"
	"github.com/heartmarshall/campus-collab-backend/internal/transport/dataloader"
	"github.com/heartmarshall/campus-collab-backend/internal/transport/middleware"
	"github.com/heartmarshall/campus-collab-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = 5 * time.Minute

// Run is the application entry point. It loads configuration from
// configPath, connects to the database, wires services and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := newContainer(cfg, logger, pool, reg)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, rateLimitCleanupInterval)
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      c.handler(cfg, reg, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	// The audit writer outlives the HTTP server: handlers still running
	// during graceful shutdown keep recording.
	auditCtx, stopAudit := context.WithCancel(context.WithoutCancel(ctx))
	defer stopAudit()

	g.Go(func() error { return c.recorder.Run(auditCtx) })
	g.Go(func() error { return c.scheduler.Run(gctx) })

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		defer stopAudit()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// container holds the wired repositories and services.
type container struct {
	log *slog.Logger

	users    *userrepo.Repo
	projects *projectrepo.Repo
	pool     *pgxpool.Pool

	tokens    *auth.TokenService
	recorder  *audit.Recorder
	scheduler *maintenance.Scheduler

	authSvc    *authsvc.Service
	userSvc    *user.Service
	projectSvc *project.Service
	collabSvc  *collab.Service
	auditSvc   *audit.Service
	adminSvc   *admin.Service
}

func newContainer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, reg prometheus.Registerer) *container {
	users := userrepo.New(pool)
	projects := projectrepo.New(pool)
	contributions := contributionrepo.New(pool)
	audits := auditrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	recorder := audit.NewRecorder(logger, audits, cfg.Audit, reg)
	auditSvc := audit.NewService(logger, audits, recorder)
	maint := maintenance.NewService(logger, contributions, auditSvc)
	collabSvc := collab.NewService(logger, contributions, projects, users, recorder)

	return &container{
		log:        logger,
		users:      users,
		projects:   projects,
		pool:       pool,
		tokens:     tokens,
		recorder:   recorder,
		scheduler:  maintenance.NewScheduler(logger, maint, cfg.Maintenance.Schedule, cfg.Maintenance.AuditRetentionDays),
		authSvc:    authsvc.NewService(logger, users, tokens, hasher, recorder),
		userSvc:    user.NewService(logger, users, recorder),
		projectSvc: project.NewService(logger, projects, txm, recorder),
		collabSvc:  collabSvc,
		auditSvc:   auditSvc,
		adminSvc: admin.NewService(logger, admin.Deps{
			Users:       users,
			Projects:    projects,
			Requests:    contributions,
			Collab:      collabSvc,
			Maintenance: maint,
			Audit:       recorder,
		}),
	}
}

// handler builds the routed mux wrapped in the middleware chain.
// limiter may be nil to disable rate limiting.
func (c *container) handler(cfg *config.Config, reg *prometheus.Registry, limiter *middleware.RateLimiter) http.Handler {
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(c.pool, c.recorder, BuildVersion()),
		Auth:    rest.NewAuthHandler(c.authSvc, c.log),
		User:    rest.NewUserHandler(c.userSvc, c.log),
		Project: rest.NewProjectHandler(c.projectSvc, c.log),
		Collab:  rest.NewCollabHandler(c.collabSvc, c.log),
		Admin:   rest.NewAdminHandler(c.adminSvc, c.log),
		Audit:   rest.NewAuditHandler(c.auditSvc, c.log),
	}, metricsHandler, cfg.Metrics.Path)

	stack := middleware.Stack{
		middleware.Recovery(c.log),
		middleware.RequestID(),
		middleware.ClientInfo(),
	}.Use(cfg.Metrics.Enabled, middleware.NewHTTPMetrics(reg).Middleware())
	stack = append(stack, middleware.Logger(c.log), middleware.CORS(cfg.CORS))
	if limiter != nil {
		stack = append(stack, limiter.Middleware())
	}
	stack = append(stack,
		middleware.Auth(c.tokens, c.users, c.log, cfg.Auth.PublicPrefixes()),
		dataloader.Middleware(&dataloader.Repos{Principal: c.users, Project: c.projects}),
	)

	return stack.Then(middleware.RoutePattern(mux))
}
