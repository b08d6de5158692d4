package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/harborwind/clientstate/internal/config"
	"github.com/harborwind/clientstate/internal/logger"
	"github.com/harborwind/clientstate/internal/model"
	"github.com/harborwind/clientstate/internal/registry"
	"github.com/harborwind/clientstate/internal/service"
	"github.com/harborwind/clientstate/internal/store/memory"
	"github.com/harborwind/clientstate/internal/store/postgres"
	"github.com/harborwind/clientstate/internal/store/sqlite"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open store", "error", err)
	}
	defer closeStore()

	state := service.NewState(store, cfg.BadgeCacheKey, logger)

	reg := registry.New(logger)
	reg.SetDebug(cfg.Debug)
	registry.Bind(reg, registry.Modules{State: state})

	logger.Debug("client state ready",
		"session_id", uuid.NewString(),
		"store", cfg.Store.Driver,
		"version", buildVersion,
		"build_date", buildDate,
		"build_commit", buildCommit,
	)

	if err := newRootCmd(reg, state).ExecuteContext(ctx); err != nil {
		logger.Fatal("command failed", "error", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (model.Store, func(), error) {
	switch cfg.Store.Driver {
	case "memory":
		return memory.New(), func() {}, nil
	case "sqlite":
		s, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case "postgres":
		conn, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewStateRepository(conn), func() { _ = conn.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
