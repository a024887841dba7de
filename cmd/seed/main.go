// Command seed loads the starter educational content and the demo citizen
// account into the database. Re-running it is safe: existing content
// (by title and language) and an existing demo phone number are skipped.
//
// Flags:
//
//	--phase        comma-separated list of phases to run: content, demo (default: all)
//	--dry-run      validate inputs without writing to DB
//	--seed-config  path to seed YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres"
	"github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres/content"
	"github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres/user"
	"github.com/gramaconnect/gramaconnect-backend/internal/app"
	"github.com/gramaconnect/gramaconnect-backend/internal/app/seeder"
	"github.com/gramaconnect/gramaconnect-backend/internal/config"
)

// Compile-time interface assertions.
var (
	_ seeder.ContentRepo = (*content.Repo)(nil)
	_ seeder.UserRepo    = (*user.Repo)(nil)
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "validate inputs without writing to DB")
	seedConfigFlag := flag.String("seed-config", "", "path to seed YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seedCfg, err := seeder.LoadConfig(*seedConfigFlag)
	if err != nil {
		logger.Error("load seed config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seedCfg.DryRun = true
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, content.New(pool), user.New(pool), *seedCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
