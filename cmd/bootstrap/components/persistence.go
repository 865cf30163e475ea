package components

import (
	"hisitter/internal/infra/db"
	"hisitter/internal/infra/readstore"
	"hisitter/internal/infra/uow"
	"hisitter/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewBabysitterReadStore,
			fx.As(new(queries.BabysitterReadStore)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
