package components

import (
	"hisitter/internal/handler"
	"hisitter/internal/handler/api"
	"hisitter/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBabysitterHandler,
		api.NewServiceHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
