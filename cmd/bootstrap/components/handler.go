package components

import (
	"paylane/internal/handler"
	"paylane/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewMerchantHandler,
		api.NewResourceHandler,
		api.NewSessionHandler,
		api.NewAnalyticsHandler,
	),
	fx.Invoke(handler.NewRouter),
)
