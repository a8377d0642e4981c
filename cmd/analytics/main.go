package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"upturn/internal/analytics"
	"upturn/internal/config"
	"upturn/internal/logging"
)

func main() {
	_ = godotenv.Load()

	logger, err := logging.New(getenv("LOG_LEVEL", "info"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "analytics: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync()

	brokers := strings.Split(getenv("KAFKA_BROKERS", "localhost:9092"), ",")
	topic := getenv("KAFKA_TOPIC", config.DefaultKafkaTopic)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: "upturn-analytics",
	})
	defer reader.Close()

	logger.Info("analytics consumer listening", zap.Strings("brokers", brokers), zap.String("topic", topic))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats := analytics.NewStats()
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				stats.Log(logger)
			}
		}
	}()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				stats.Log(logger)
				return
			}
			logger.Fatal("read error", zap.Error(err))
		}
		var e analytics.Event
		if err := json.Unmarshal(msg.Value, &e); err != nil {
			logger.Warn("failed to unmarshal event", zap.Error(err))
			continue
		}
		stats.Record(e)
		logger.Debug("event",
			zap.String("event", e.Event),
			zap.Any("game_id", e.Payload["gameId"]),
			zap.Any("outcome", e.Payload["outcome"]),
		)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
