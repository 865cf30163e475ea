package bootstrap

import (
	"hisitter/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	NotifyModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
