package eventsubscribers

import (
	"net"
	"net/http"

	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"

	"github.com/elyby/skulls/internal/dispatcher"
)

type Logger struct {
	slf.Logger
}

func (l *Logger) ConfigureWithDispatcher(d dispatcher.Subscriber) {
	d.Subscribe("skulls:after_request", l.handleAfterRequest)
	d.Subscribe("textures:apply_failed", l.handleApplyFailed)
	d.Subscribe("textures:writer_unavailable", l.handleWriterUnavailable)
	d.Subscribe("authentication:error", l.handleAuthenticationError)
}

func (l *Logger) handleAfterRequest(req *http.Request, statusCode int) {
	path := req.URL.Path
	if req.URL.RawQuery != "" {
		path += "?" + req.URL.RawQuery
	}

	l.Info(
		":ip - - \":method :path\" :statusCode - \":userAgent\" \":forwardedIp\"",
		wd.StringParam("ip", trimPort(req.RemoteAddr)),
		wd.StringParam("method", req.Method),
		wd.StringParam("path", path),
		wd.IntParam("statusCode", statusCode),
		wd.StringParam("userAgent", req.UserAgent()),
		wd.StringParam("forwardedIp", req.Header.Get("X-Forwarded-For")),
	)
}

func (l *Logger) handleApplyFailed(value string, err error) {
	l.Warning("Unable to apply textures :value to the skull: :err", wd.StringParam("value", value), wd.ErrParam(err))
}

func (l *Logger) handleWriterUnavailable(version string, err error) {
	l.Error(
		"Skull profiles can't be attached on the engine :version, only usernames will work: :err",
		wd.StringParam("version", version),
		wd.ErrParam(err),
	)
}

func (l *Logger) handleAuthenticationError(err error) {
	l.Debug("Authentication failed: :err", wd.ErrParam(err))
}

func trimPort(ip string) string {
	host, _, err := net.SplitHostPort(ip)
	if err != nil {
		return ip
	}

	return host
}
