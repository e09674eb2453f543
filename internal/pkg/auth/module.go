package auth

import (
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"

	"github.com/polkiloo/salesdesk/internal/config"
)

// Module provides the password hasher and the configured token strategy.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(bcrypt.DefaultCost)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	opts := Options{TTL: p.Config.AuthTokenTTL}
	switch p.Config.AuthStrategy {
	case StrategyJWT:
		return NewJWTStrategy(p.Config.AuthSecret, opts)
	default:
		return NewHMACStrategy(p.Config.AuthSecret, opts)
	}
}
