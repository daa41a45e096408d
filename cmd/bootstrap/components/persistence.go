package components

import (
	"facility-booking/internal/infra/db"
	"facility-booking/internal/infra/memstore"
	"facility-booking/internal/infra/readstore"
	"facility-booking/internal/infra/repository"
	"facility-booking/internal/infra/uow"
	"facility-booking/internal/usecase/notification"
	"facility-booking/internal/usecase/queries"
	"facility-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresModule = fx.Module("persistence/postgres",
	fx.Provide(NewDBTX),
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			readstore.NewDirectoryReadStore,
			fx.As(new(queries.DirectoryViewRepo)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Notification outbox
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(notification.JobWriter)),
		),
		fx.Annotate(
			notification.NewOutboxSink,
			fx.As(new(notification.Sink)),
		),
	),
)

var MemoryModule = fx.Module("persistence/memory",
	fx.Provide(
		memstore.New,
		func(s *memstore.Store) shared.UnitOfWork { return s },
		fx.Annotate(
			memstore.NewReservationViews,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			memstore.NewDirectoryViews,
			fx.As(new(queries.DirectoryViewRepo)),
		),
		fx.Annotate(
			notification.NewLogSink,
			fx.As(new(notification.Sink)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
