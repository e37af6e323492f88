package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"

	"github.com/elyby/skulls/internal/security"
)

type Emitter interface {
	Emit(name string, args ...interface{})
}

func StartServer(ctx context.Context, server *http.Server, logger slf.Logger) {
	srvErr := make(chan error, 1)
	go func() {
		logger.Info("Starting the server, HTTP on: :addr", wd.StringParam("addr", server.Addr))
		srvErr <- server.ListenAndServe()
		close(srvErr)
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Error in the server: :err", wd.ErrParam(err))
		}
	case <-ctx.Done():
		logger.Info("Got stop signal, starting graceful shutdown")

		stopCtx, cancelFunc := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancelFunc()

		_ = server.Shutdown(stopCtx)

		logger.Info("Graceful shutdown succeed, exiting")
	}
}

func CreateRequestEventsMiddleware(emitter Emitter, prefix string) mux.MiddlewareFunc {
	beforeTopic := prefix + ":before_request"
	afterTopic := prefix + ":after_request"

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
			emitter.Emit(beforeTopic, req)

			lrw := &loggingResponseWriter{
				ResponseWriter: resp,
				statusCode:     http.StatusOK,
			}
			handler.ServeHTTP(lrw, req)

			emitter.Emit(afterTopic, req, lrw.statusCode)
		})
	}
}

type Authenticator interface {
	Authenticate(req *http.Request, scope security.Scope) error
}

func CreateAuthenticationMiddleware(authenticator Authenticator, scope security.Scope) mux.MiddlewareFunc {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
			err := authenticator.Authenticate(req, scope)
			if err != nil {
				apiForbidden(resp, err.Error())
				return
			}

			handler.ServeHTTP(resp, req)
		})
	}
}

func NotFoundHandler(response http.ResponseWriter, _ *http.Request) {
	data, _ := json.Marshal(map[string]string{
		"status":  "404",
		"message": "Not Found",
	})

	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(http.StatusNotFound)
	_, _ = response.Write(data)
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func apiResponse(resp http.ResponseWriter, code int, body interface{}) {
	resp.Header().Set("Content-Type", "application/json")
	resp.WriteHeader(code)
	result, _ := json.Marshal(body)
	_, _ = resp.Write(result)
}

func apiBadRequest(resp http.ResponseWriter, errorsPerField map[string][]string) {
	apiResponse(resp, http.StatusBadRequest, map[string]interface{}{
		"errors": errorsPerField,
	})
}

func apiForbidden(resp http.ResponseWriter, reason string) {
	apiResponse(resp, http.StatusForbidden, map[string]interface{}{
		"error": reason,
	})
}

func apiNotImplemented(resp http.ResponseWriter, reason string) {
	apiResponse(resp, http.StatusNotImplemented, map[string]interface{}{
		"error": reason,
	})
}

var internalServerError = []byte("Internal server error")

func apiServerError(resp http.ResponseWriter) {
	resp.Header().Set("Content-Type", "text/plain")
	resp.WriteHeader(http.StatusInternalServerError)
	_, _ = resp.Write(internalServerError)
}
