// Command cleanup closes issues that have stayed resolved longer than the
// configured retention (ISSUES_AUTO_CLOSE_AFTER). It is intended to be
// invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres"
	"github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres/issue"
	"github.com/gramaconnect/gramaconnect-backend/internal/app"
	"github.com/gramaconnect/gramaconnect-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Issues.AutoCloseAfter == 0 {
		logger.Info("auto close disabled")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()
	threshold := now.Add(-cfg.Issues.AutoCloseAfter)

	closed, err := issue.New(pool).CloseResolvedBefore(ctx, threshold, now)
	if err != nil {
		logger.Error("auto close failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("auto close completed",
		slog.Int64("closed", closed),
		slog.Time("threshold", threshold),
	)
}
