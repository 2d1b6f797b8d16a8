package components

import (
	"paylane/internal/infra/readstore"
	"paylane/internal/infra/repository"
	"paylane/internal/usecase/commands"
	"paylane/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewMerchantRepository,
			fx.As(new(commands.MerchantRepository)),
		),
		fx.Annotate(
			repository.NewResourceRepository,
			fx.As(new(commands.ResourceRepository)),
		),
		fx.Annotate(
			repository.NewSessionRepository,
			fx.As(new(commands.SessionRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewResourceReadStore,
			fx.As(new(queries.ResourceReadStore)),
		),
		fx.Annotate(
			readstore.NewSessionReadStore,
			fx.As(new(queries.SessionReadStore)),
		),
	),
)
