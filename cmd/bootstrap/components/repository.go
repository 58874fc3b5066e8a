package components

import (
	"context"

	"room-booking/internal/infra/readrepo"
	"room-booking/internal/infra/readstore"
	"room-booking/internal/infra/repository"
	"room-booking/internal/infra/uow"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/password"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Bookings
		fx.Annotate(
			repository.NewBookingStore,
			fx.As(fx.Self()),
			fx.As(new(queries.SlotBookingReader)),
			fx.As(new(readrepo.BookingSource)),
		),
		uow.NewMemoryUoW,
		// Resources
		fx.Annotate(
			NewResourceCatalog,
			fx.As(new(commands.ResourceRepository)),
			fx.As(new(queries.ResourceReadStore)),
			fx.As(new(readrepo.ResourceSource)),
		),
		// Users
		NewPasswordHasher,
		fx.Annotate(
			NewUserStore,
			fx.As(new(commands.UserRepository)),
			fx.As(new(readstore.UserFinder)),
		),
		// Read-side repositories for queries
		fx.Annotate(
			readrepo.NewBookingViewRepository,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewResourceCatalog() *readstore.ResourceReadStore {
	return readstore.NewResourceReadStore(readstore.DefaultResources())
}

func NewPasswordHasher() *password.Hasher {
	return password.NewHasher(password.DefaultCost)
}

func NewUserStore(cfg config.Config, hasher *password.Hasher) (*repository.UserStore, error) {
	return repository.NewSeededUserStore(context.Background(), hasher, cfg.Auth.Users)
}
