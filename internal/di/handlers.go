package di

import (
	"net/http"
	"strings"

	"github.com/defval/di"
	"github.com/etherlabsio/healthcheck/v2"
	"github.com/gorilla/mux"
	"github.com/mono83/slf"

	. "github.com/elyby/skulls/internal/http"
	"github.com/elyby/skulls/internal/security"
)

var handlersDiOptions = di.Options(
	di.Provide(newHandlerFactory, di.As(new(http.Handler))),
	di.Provide(newHeadsHandler, di.WithName("heads")),
	di.Provide(newApiHandler, di.WithName("api")),
)

func newHandlerFactory(
	container *di.Container,
	emitter Emitter,
) (*mux.Router, error) {
	// gorilla.mux has no native way to combine multiple routers.
	// The heads router serves the root prefix, so it's used as the base router
	var router *mux.Router
	if err := container.Resolve(&router, di.Name("heads")); err != nil {
		return nil, err
	}

	router.StrictSlash(true)
	requestEventsMiddleware := CreateRequestEventsMiddleware(emitter, "skulls")
	router.Use(requestEventsMiddleware)
	// NotFoundHandler doesn't call for registered middlewares, so we must wrap it manually.
	// See https://github.com/gorilla/mux/issues/416#issuecomment-600079279
	router.NotFoundHandler = requestEventsMiddleware(http.HandlerFunc(NotFoundHandler))

	var apiRouter *mux.Router
	if err := container.Resolve(&apiRouter, di.Name("api")); err != nil {
		return nil, err
	}

	var authenticator Authenticator
	if err := container.Resolve(&authenticator); err != nil {
		return nil, err
	}

	apiRouter.Use(CreateAuthenticationMiddleware(authenticator, security.PlayersScope))

	mount(router, "/api", apiRouter)

	// Resolve health checkers last, because all the services required by the application
	// must first be initialized and each of them can publish its own checkers
	var healthCheckers []*namedHealthChecker
	if has, _ := container.Has(&healthCheckers); has {
		if err := container.Resolve(&healthCheckers); err != nil {
			return nil, err
		}

		checkersOptions := make([]healthcheck.Option, len(healthCheckers))
		for i, checker := range healthCheckers {
			checkersOptions[i] = healthcheck.WithChecker(checker.Name, checker.Checker)
		}

		router.Handle("/healthcheck", healthcheck.Handler(checkersOptions...)).Methods("GET")
	}

	return router, nil
}

func newHeadsHandler(resolver Resolver, logger slf.Logger) *mux.Router {
	return (&Heads{
		Resolver: resolver,
		Logger:   logger,
	}).Handler()
}

func newApiHandler(playersManager PlayersManager, logger slf.Logger) *mux.Router {
	return (&Api{
		PlayersManager: playersManager,
		Logger:         logger,
	}).Handler()
}

func mount(router *mux.Router, path string, handler http.Handler) {
	router.PathPrefix(path).Handler(
		http.StripPrefix(
			strings.TrimSuffix(path, "/"),
			handler,
		),
	)
}

type namedHealthChecker struct {
	Name    string
	Checker healthcheck.Checker
}
