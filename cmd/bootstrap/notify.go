package bootstrap

import (
	"context"

	"hisitter/internal/infra/notify"
	"hisitter/internal/pkg/config"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewAsynqClient,
		notify.NewAsynqNotifier,
	),
)

func NewAsynqClient(lc fx.Lifecycle, cfg config.Config) *asynq.Client {
	client, cleanup := notify.NewAsynqClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client
}
