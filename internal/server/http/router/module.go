package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/eshopcore/backoffice/internal/app"
	"github.com/eshopcore/backoffice/internal/config"
	"github.com/eshopcore/backoffice/internal/storage/postgres"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newRouter)

type routerParams struct {
	fx.In

	Facade  *app.BackofficeFacade
	Storage *postgres.Storage
	Config  *config.Config
	Logger  *slog.Logger
}

func newRouter(p routerParams) *gin.Engine {
	return Setup(p.Facade, p.Storage, p.Config.EligibilityWindowDays, p.Logger)
}
