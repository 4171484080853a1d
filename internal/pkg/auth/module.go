package auth

import (
	"github.com/eshopcore/backoffice/internal/config"
	"go.uber.org/fx"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newKeyHasher),
	fx.Provide(newTokenStrategy),
	fx.Provide(newSessionManager),
)

func newKeyHasher() KeyHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.AuthSecret, Options{TTL: p.Config.SessionTTL})
}

type sessionParams struct {
	fx.In

	Hasher   KeyHasher
	Strategy Strategy
	Config   *config.Config
}

func newSessionManager(p sessionParams) (*SessionManager, error) {
	return NewSessionManager(p.Hasher, p.Strategy, p.Config.AdminAccessKey)
}
