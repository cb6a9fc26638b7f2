package main

import (
	"context"
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/honeycarbs/jobportal/internal/config"
	"github.com/honeycarbs/jobportal/internal/mcp"
	"github.com/honeycarbs/jobportal/pkg/logging"
	"github.com/honeycarbs/jobportal/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	res, err := mcp.InitializeResources(ctx, cfg, logger)
	cancel()
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}
	if res.Neo4j != nil {
		logger.Info("Neo4j client initialized", "uri", cfg.Neo4j.URI)
	}

	if err := res.Refresher.Start(context.Background()); err != nil {
		logger.Error("failed to start token refresher", "err", err)
		os.Exit(1)
	}

	srv := mcp.NewServer(logger, cfg, res)

	stoppables := append([]shutdown.Stoppable{srv}, res.Stoppables()...)
	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		10*time.Second,
		logger,
		stoppables...,
	)

	logger.Info("server initialized and starting", "addr", net.JoinHostPort(cfg.Host, cfg.Port), "portal", cfg.Portal.BaseURL)

	if err := srv.Run(); err != nil {
		logger.Error("server exited with error", "err", err)
	} else {
		logger.Info("server stopped")
	}
}
