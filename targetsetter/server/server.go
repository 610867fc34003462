package server

import (
	"net/http"

	"github.com/ecs-queue-autoscaler/autoscaler/db"
	"github.com/ecs-queue-autoscaler/autoscaler/healthendpoint"
	"github.com/ecs-queue-autoscaler/autoscaler/helpers"
	"github.com/ecs-queue-autoscaler/autoscaler/helpers/handlers"
	"github.com/ecs-queue-autoscaler/autoscaler/ratelimiter"
	"github.com/ecs-queue-autoscaler/autoscaler/routes"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/tedsuo/ifrit"
)

// NewRouter serves the target setter API. A nil limiter leaves manual runs unlimited.
func NewRouter(logger lager.Logger, historyDB db.TargetHistoryDB, runner TargetRunner,
	httpRequestCollector healthendpoint.HTTPRequestCollector, limiter ratelimiter.Limiter) *mux.Router {
	handler := NewTargetHandler(logger, historyDB, runner)

	var updateTarget http.Handler = handlers.VarsFunc(handler.UpdateTarget)
	if limiter != nil {
		updateTarget = ratelimiter.NewRateLimiterMiddleware("policy", limiter, logger).CheckRateLimit(updateTarget)
	}

	r := routes.TargetSetterRoutes()
	r.Use(httpRequestCollector.Middleware)
	r.Get(routes.GetTargetHistoriesRouteName).Handler(handlers.VarsFunc(handler.GetTargetHistories))
	r.Get(routes.UpdateTargetRouteName).Handler(updateTarget)
	return r
}

func NewServer(logger lager.Logger, conf helpers.ServerConfig, historyDB db.TargetHistoryDB, runner TargetRunner,
	httpRequestCollector healthendpoint.HTTPRequestCollector, limiter ratelimiter.Limiter) (ifrit.Runner, error) {
	return helpers.NewHTTPServer(logger, conf, NewRouter(logger, historyDB, runner, httpRequestCollector, limiter))
}
