package sentry

import (
	"fmt"

	"github.com/getsentry/raven-go"
	"github.com/mono83/slf"
	"github.com/mono83/slf/filters"
)

// Config describes which log events are forwarded to the Sentry
type Config struct {
	// MinLevel is a slf level name, "warn" when empty
	MinLevel string
	// Params that are never attached to the packet
	ParamsBlackList []string
}

// NewReceiver creates a receiver that captures log events of at least MinLevel
// with the provided raven client. The client is expected to be configured
// (release, environment) by the caller.
func NewReceiver(client *raven.Client, cfg Config) (slf.Receiver, error) {
	if cfg.MinLevel == "" {
		cfg.MinLevel = "warn"
	}

	level, ok := slf.ParseType(cfg.MinLevel)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", cfg.MinLevel)
	}

	return filters.MinLogLevel(level, &receiver{
		client: client,
		filter: slf.NewBlackListParamsFilter(cfg.ParamsBlackList),
	}), nil
}

type receiver struct {
	client *raven.Client
	filter slf.ParamsFilter
}

func (r *receiver) Receive(e slf.Event) {
	if !e.IsLog() {
		return
	}

	// Skip slf internals so the trace starts in the application code
	pkt := raven.NewPacket(
		slf.ReplacePlaceholders(e.Content, e.Params, false),
		raven.NewStacktrace(5, 5, []string{}),
	)
	for _, param := range r.filter(e.Params) {
		pkt.Extra[param.GetKey()] = extraValue(param.GetRaw())
	}

	pkt.Level = severity(e.Type)
	pkt.Timestamp = raven.Timestamp(e.Time)

	r.client.Capture(pkt, map[string]string{})
}

func extraValue(raw interface{}) interface{} {
	if err, ok := raw.(error); ok && err != nil {
		return err.Error()
	}

	return raw
}

func severity(t byte) raven.Severity {
	switch t {
	case slf.TypeTrace, slf.TypeDebug:
		return raven.DEBUG
	case slf.TypeInfo:
		return raven.INFO
	case slf.TypeWarning:
		return raven.WARNING
	case slf.TypeError:
		return raven.ERROR
	case slf.TypeAlert, slf.TypeEmergency:
		return raven.FATAL
	}

	return raven.ERROR
}
