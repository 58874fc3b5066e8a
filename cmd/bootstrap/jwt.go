package bootstrap

import (
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/jwt"
	"room-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(fx.Self()),
			fx.As(new(commands.TokenIssuer)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.JWT.AccessTokenDuration <= 0 {
		panic("invalid JWT_ACCESS_TOKEN_DURATION: must be positive")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration)
}
