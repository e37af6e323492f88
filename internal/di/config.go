package di

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/defval/di"
	"github.com/spf13/viper"
)

var configDiOptions = di.Options(
	di.Provide(newConfig),
)

var contextDiOptions = di.Options(
	di.Provide(newBaseContext),
)

func newConfig() *viper.Viper {
	return viper.GetViper()
}

// newBaseContext is cancelled on the first termination signal
func newBaseContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return ctx
}
