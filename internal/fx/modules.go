package fx

import (
	"mastery-dashboard/internal/config"
	"mastery-dashboard/internal/directory"
	"mastery-dashboard/internal/gateway"
	"mastery-dashboard/internal/logger"
	"mastery-dashboard/internal/server"
	"mastery-dashboard/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// static data
	fx.Provide(directory.New),
	// api client
	fx.Provide(gateway.NewClient),
	// svc
	fx.Provide(service.NewSummonerService),
	fx.Provide(service.NewMatchService),
	// server
	fx.Provide(server.NewDashboardServer),
)
