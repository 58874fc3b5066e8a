package components

import (
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewResourceQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClock(loc), nil
}
