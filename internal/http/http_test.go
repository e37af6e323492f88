package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	testify "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/elyby/skulls/internal/security"
)

type emitterMock struct {
	mock.Mock
}

func (e *emitterMock) Emit(name string, args ...interface{}) {
	e.Called(append([]interface{}{name}, args...)...)
}

func TestCreateRequestEventsMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.com", nil)
	resp := httptest.NewRecorder()

	emitter := &emitterMock{}
	emitter.On("Emit", "skulls:before_request", req).Once()
	emitter.On("Emit", "skulls:after_request", req, 400).Once()

	isHandlerCalled := false
	middlewareFunc := CreateRequestEventsMiddleware(emitter, "skulls")
	middlewareFunc.Middleware(http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		resp.WriteHeader(400)
		isHandlerCalled = true
	})).ServeHTTP(resp, req)

	testify.True(t, isHandlerCalled, "Handler isn't called from the middleware")
	testify.Equal(t, 400, resp.Code)

	emitter.AssertExpectations(t)
}

func TestCreateRequestEventsMiddlewareImplicitStatus(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.com", nil)
	resp := httptest.NewRecorder()

	emitter := &emitterMock{}
	emitter.On("Emit", "skulls:before_request", req).Once()
	emitter.On("Emit", "skulls:after_request", req, 200).Once()

	CreateRequestEventsMiddleware(emitter, "skulls").Middleware(http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		_, _ = resp.Write([]byte("ok"))
	})).ServeHTTP(resp, req)

	emitter.AssertExpectations(t)
}

type authCheckerMock struct {
	mock.Mock
}

func (m *authCheckerMock) Authenticate(req *http.Request, scope security.Scope) error {
	return m.Called(req, scope).Error(0)
}

func TestCreateAuthenticationMiddleware(t *testing.T) {
	t.Run("pass", func(t *testing.T) {
		req := httptest.NewRequest("GET", "http://example.com", nil)
		resp := httptest.NewRecorder()

		auth := &authCheckerMock{}
		auth.On("Authenticate", req, security.PlayersScope).Once().Return(nil)

		isHandlerCalled := false
		middlewareFunc := CreateAuthenticationMiddleware(auth, security.PlayersScope)
		middlewareFunc.Middleware(http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
			isHandlerCalled = true
		})).ServeHTTP(resp, req)

		testify.True(t, isHandlerCalled, "Handler isn't called from the middleware")

		auth.AssertExpectations(t)
	})

	t.Run("fail", func(t *testing.T) {
		req := httptest.NewRequest("GET", "http://example.com", nil)
		resp := httptest.NewRecorder()

		auth := &authCheckerMock{}
		auth.On("Authenticate", req, security.PlayersScope).Once().Return(errors.New("error reason"))

		isHandlerCalled := false
		middlewareFunc := CreateAuthenticationMiddleware(auth, security.PlayersScope)
		middlewareFunc.Middleware(http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
			isHandlerCalled = true
		})).ServeHTTP(resp, req)

		testify.False(t, isHandlerCalled, "Handler shouldn't be called")
		testify.Equal(t, 403, resp.Code)
		body, _ := io.ReadAll(resp.Body)
		testify.JSONEq(t, `{
			"error": "error reason"
		}`, string(body))

		auth.AssertExpectations(t)
	})
}

func TestNotFoundHandler(t *testing.T) {
	assert := testify.New(t)

	req := httptest.NewRequest("GET", "http://example.com", nil)
	w := httptest.NewRecorder()

	NotFoundHandler(w, req)

	resp := w.Result()
	assert.Equal(404, resp.StatusCode)
	assert.Equal("application/json", resp.Header.Get("Content-Type"))
	response, _ := io.ReadAll(resp.Body)
	assert.JSONEq(`{
		"status": "404",
		"message": "Not Found"
	}`, string(response))
}
