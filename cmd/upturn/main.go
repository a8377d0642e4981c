package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"upturn/internal/analytics"
	"upturn/internal/config"
	"upturn/internal/logging"
	"upturn/internal/server"
	"upturn/internal/session"
)

func main() {
	// A missing .env is fine; settings may come from flags or the shell.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Args[1:], os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "upturn: %v\n", err)
		fmt.Fprintln(os.Stderr, "usage: upturn -r RUN -w WIDTH -h HEIGHT (-m | -b) [-workers N] [-spectate ADDR] [-log-level LEVEL]")
		os.Exit(2)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "upturn: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync()

	producer := analytics.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
	defer producer.Close()

	var sink session.EventSink
	if producer != nil {
		sink = producer
		logger.Info("analytics enabled", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}

	var srv *server.Server
	manager := session.NewManager(logger, sink, func(s session.Snapshot) {
		if srv != nil {
			srv.Broadcast(s)
		}
	})
	if cfg.SpectateAddr != "" {
		srv = server.New(server.Config{Manager: manager, Logger: logger})
		go func() {
			if err := srv.Run(cfg.SpectateAddr); err != nil {
				logger.Error("spectator server stopped", zap.Error(err))
			}
		}()
	}

	snap, err := manager.Start(cfg.Game)
	if err != nil {
		logger.Fatal("cannot start game", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := play(ctx, os.Stdin, os.Stdout, manager, snap.ID); err != nil {
		logger.Error("game ended early", zap.String("game_id", snap.ID), zap.Error(err))
	}
}
