package main

import (
	"context"
	"log/slog"
	"os"

	"hisitter/internal/infra/db"
	"hisitter/internal/infra/notify"
	"hisitter/internal/infra/readstore"
	"hisitter/internal/pkg/config"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	srv := asynq.NewServer(
		notify.RedisClientOpt(cfg.Redis),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := notify.NewMux(
		notify.LogMailer{},
		readstore.NewServiceReadStore(pool),
		readstore.NewUserReadStore(pool),
	)

	slog.Info("starting notification worker", "redis", cfg.Redis.Addr)
	if err := srv.Run(mux); err != nil {
		slog.Error("worker stopped", "error", err)
		os.Exit(1)
	}
}
