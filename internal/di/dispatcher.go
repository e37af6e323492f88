package di

import (
	"github.com/defval/di"
	"github.com/mono83/slf"

	d "github.com/elyby/skulls/internal/dispatcher"
	"github.com/elyby/skulls/internal/eventsubscribers"
	"github.com/elyby/skulls/internal/http"
	"github.com/elyby/skulls/internal/security"
	"github.com/elyby/skulls/internal/textures"
)

var dispatcherDiOptions = di.Options(
	di.Provide(newDispatcher,
		di.As(new(d.Emitter)),
		di.As(new(d.Subscriber)),
		di.As(new(http.Emitter)),
		di.As(new(security.Emitter)),
		di.As(new(textures.Emitter)),
	),
	di.Invoke(enableEventsHandlers),
)

func newDispatcher() d.Dispatcher {
	return d.New()
}

func enableEventsHandlers(
	dispatcher d.Subscriber,
	logger slf.Logger,
	statsReporter slf.StatsReporter,
) {
	(&eventsubscribers.Logger{Logger: logger}).ConfigureWithDispatcher(dispatcher)
	(&eventsubscribers.StatsReporter{StatsReporter: statsReporter}).ConfigureWithDispatcher(dispatcher)
}
