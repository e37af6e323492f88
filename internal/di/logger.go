package di

import (
	"os"

	"github.com/defval/di"
	"github.com/getsentry/raven-go"
	"github.com/mono83/slf"
	"github.com/mono83/slf/rays"
	"github.com/mono83/slf/recievers/statsd"
	"github.com/mono83/slf/recievers/writer"
	"github.com/mono83/slf/wd"
	"github.com/spf13/viper"

	"github.com/elyby/skulls/internal/logger/receivers/sentry"
	"github.com/elyby/skulls/internal/version"
)

var loggerDiOptions = di.Options(
	di.Provide(newLogger),
	di.Provide(newSentry),
	di.Provide(newStatsReporter),
)

type loggerParams struct {
	di.Inject

	SentryRaven *raven.Client `di:"" optional:"true"`
}

func newLogger(params loggerParams) (slf.Logger, error) {
	dispatcher := &slf.Dispatcher{}
	dispatcher.AddReceiver(writer.New(writer.Options{
		Marker:     false,
		TimeFormat: "15:04:05.000",
	}))

	if params.SentryRaven != nil {
		sentryReceiver, err := sentry.NewReceiver(params.SentryRaven, sentry.Config{
			MinLevel: "warn",
		})
		if err != nil {
			return nil, err
		}

		dispatcher.AddReceiver(sentryReceiver)
	}

	logger := wd.Custom("", "", dispatcher)
	logger.WithParams(rays.Host)

	return logger, nil
}

func newSentry(config *viper.Viper) (*raven.Client, error) {
	sentryAddr := config.GetString("sentry.dsn")
	if sentryAddr == "" {
		return nil, nil
	}

	ravenClient, err := raven.New(sentryAddr)
	if err != nil {
		return nil, err
	}

	ravenClient.SetEnvironment("production")
	ravenClient.SetDefaultLoggerName("sentry-watchdog-receiver")
	ravenClient.SetRelease(version.Version())

	raven.DefaultClient = ravenClient

	return ravenClient, nil
}

func newStatsReporter(config *viper.Viper) (slf.StatsReporter, error) {
	dispatcher := &slf.Dispatcher{}

	statsdAddr := config.GetString("statsd.addr")
	if statsdAddr != "" {
		hostname, err := os.Hostname()
		if err != nil {
			return nil, err
		}

		statsdReceiver, err := statsd.NewReceiver(statsd.Config{
			Address:    statsdAddr,
			Prefix:     "ely.skulls." + hostname + ".app.",
			FlushEvery: 1,
		})
		if err != nil {
			return nil, err
		}

		dispatcher.AddReceiver(statsdReceiver)
	}

	return wd.Custom("", "", dispatcher), nil
}
