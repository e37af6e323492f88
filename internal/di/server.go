package di

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/defval/di"
	"github.com/getsentry/raven-go"
	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"
	"github.com/spf13/viper"
)

var serverDiOptions = di.Options(
	di.Provide(newServer),
)

type serverParams struct {
	di.Inject

	Config  *viper.Viper  `di:""`
	Handler http.Handler  `di:""`
	Logger  slf.Logger    `di:""`
	Sentry  *raven.Client `di:"" optional:"true"`
}

func newServer(params serverParams) *http.Server {
	params.Config.SetDefault("server.host", "")
	params.Config.SetDefault("server.port", 80)

	handler := params.Handler
	if params.Sentry != nil {
		// raven.Recoverer works with raven.DefaultClient, which is replaced by newSentry
		handler = raven.Recoverer(handler)
	} else {
		// Without a panic handler mux just resets the connection
		handler = recoverer(handler, params.Logger)
	}

	return &http.Server{
		Addr:           fmt.Sprintf("%s:%d", params.Config.GetString("server.host"), params.Config.GetInt("server.port")),
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
		Handler:        handler,
	}
}

func recoverer(handler http.Handler, logger slf.Logger) http.Handler {
	return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Error("Panic during the request handling: :panic", wd.StringParam("panic", fmt.Sprint(recovered)))
				debug.PrintStack()
				resp.WriteHeader(http.StatusInternalServerError)
			}
		}()

		handler.ServeHTTP(resp, req)
	})
}
