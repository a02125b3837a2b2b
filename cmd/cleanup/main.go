// Command cleanup runs the maintenance jobs once: it removes orphaned
// contribution requests and purges audit entries older than the configured
// retention. It is meant for an external cron when the in-process schedule
// is disabled.
//
// Usage:
//
//	cleanup [--config=config.yaml] [--retention-days=N]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/campus-collab-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/campus-collab-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/campus-collab-backend/internal/adapter/postgres/contribution"
	"github.com/heartmarshall/campus-collab-backend/internal/app"
	"github.com/heartmarshall/campus-collab-backend/internal/config"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
	"github.com/heartmarshall/campus-collab-backend/internal/service/audit"
	"github.com/heartmarshall/campus-collab-backend/internal/service/maintenance"
)

// noopRecorder discards audit events; the one-shot run records nothing itself.
type noopRecorder struct{}

func (noopRecorder) Record(context.Context, domain.AuditEvent) {}
func (noopRecorder) Flush(context.Context) error               { return nil }

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config")
	retention := flag.Int("retention-days", -1, "override maintenance.audit_retention_days (0 disables the purge)")
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	auditSvc := audit.NewService(logger, auditrepo.New(pool), noopRecorder{})
	svc := maintenance.NewService(logger, contribution.New(pool), auditSvc)

	days := cfg.Maintenance.AuditRetentionDays
	if *retention >= 0 {
		days = *retention
	}

	report, err := svc.RunAll(ctx, days)
	if err != nil {
		logger.Error("maintenance failed",
			slog.String("error", err.Error()),
			slog.Int64("orphaned_requests", report.OrphanedRequests),
			slog.Int64("purged_audit", report.PurgedAudit),
		)
		os.Exit(1)
	}

	logger.Info("maintenance completed",
		slog.Int64("orphaned_requests", report.OrphanedRequests),
		slog.Int64("purged_audit", report.PurgedAudit),
		slog.Int("audit_retention_days", days),
	)
}
