package di

import (
	"github.com/eshopcore/backoffice/internal/app"
	"github.com/eshopcore/backoffice/internal/config"
	"github.com/eshopcore/backoffice/internal/logger"
	"github.com/eshopcore/backoffice/internal/pkg/auth"
	"github.com/eshopcore/backoffice/internal/server/http/router"
	"github.com/eshopcore/backoffice/internal/storage/postgres"
	"github.com/eshopcore/backoffice/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
