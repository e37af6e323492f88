package eventsubscribers

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mono83/slf"
	"github.com/stretchr/testify/mock"

	"github.com/elyby/skulls/internal/dispatcher"
	"github.com/elyby/skulls/internal/textures"
)

func prepareStatsReporterArgs(name string, value interface{}, params []slf.Param) []interface{} {
	args := []interface{}{name, value}
	for _, v := range params {
		args = append(args, v.(interface{}))
	}

	return args
}

type StatsReporterMock struct {
	mock.Mock
}

func (r *StatsReporterMock) IncCounter(name string, value int64, params ...slf.Param) {
	r.Called(prepareStatsReporterArgs(name, value, params)...)
}

func (r *StatsReporterMock) UpdateGauge(name string, value int64, params ...slf.Param) {
	r.Called(prepareStatsReporterArgs(name, value, params)...)
}

func (r *StatsReporterMock) RecordTimer(name string, duration time.Duration, params ...slf.Param) {
	r.Called(prepareStatsReporterArgs(name, duration, params)...)
}

func (r *StatsReporterMock) Timer(name string, params ...slf.Param) slf.Timer {
	return slf.NewTimer(name, params, r)
}

type StatsReporterTestCase struct {
	Events        [][]interface{}
	ExpectedCalls [][]interface{}
}

var statsReporterTestCases = []*StatsReporterTestCase{
	// Before request
	{
		Events: [][]interface{}{
			{"skulls:before_request", httptest.NewRequest("GET", "http://localhost/heads?identifier=Notch", nil)},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "heads.request", int64(1)},
		},
	},
	{
		Events: [][]interface{}{
			{"skulls:before_request", httptest.NewRequest("GET", "http://localhost/heads/uuid/069a79f444e94726a5befca90e38aaf5", nil)},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "heads.uuid_request", int64(1)},
		},
	},
	{
		Events: [][]interface{}{
			{"skulls:before_request", httptest.NewRequest("GET", "http://localhost/textures/encode?url=http://example.com", nil)},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "textures.encode_request", int64(1)},
		},
	},
	{
		Events: [][]interface{}{
			{"skulls:before_request", httptest.NewRequest("GET", "http://localhost/textures/classify?identifier=Notch", nil)},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "textures.classify_request", int64(1)},
		},
	},
	{
		Events: [][]interface{}{
			{"skulls:before_request", httptest.NewRequest("POST", "http://localhost/api/players", nil)},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "api.players.post.request", int64(1)},
		},
	},
	{
		Events: [][]interface{}{
			{"skulls:before_request", httptest.NewRequest("DELETE", "http://localhost/api/players/069a79f444e94726a5befca90e38aaf5", nil)},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "api.players.delete.request", int64(1)},
		},
	},
	{
		Events: [][]interface{}{
			{"skulls:before_request", httptest.NewRequest("GET", "http://localhost/healthcheck", nil)},
		},
		ExpectedCalls: [][]interface{}{},
	},
	// After request
	{
		Events: [][]interface{}{
			{"skulls:after_request", httptest.NewRequest("POST", "http://localhost/api/players", nil), 201},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "api.players.post.success", int64(1)},
		},
	},
	{
		Events: [][]interface{}{
			{"skulls:after_request", httptest.NewRequest("POST", "http://localhost/api/players", nil), 400},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "api.players.post.validation_failed", int64(1)},
		},
	},
	{
		Events: [][]interface{}{
			{"skulls:after_request", httptest.NewRequest("DELETE", "http://localhost/api/players/069a79f444e94726a5befca90e38aaf5", nil), 204},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "api.players.delete.success", int64(1)},
		},
	},
	{
		Events: [][]interface{}{
			{"skulls:after_request", httptest.NewRequest("GET", "http://localhost/heads?identifier=Notch", nil), 501},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "heads.attachment_unsupported", int64(1)},
		},
	},
	{
		Events: [][]interface{}{
			{"skulls:after_request", httptest.NewRequest("GET", "http://localhost/heads?identifier=Notch", nil), 200},
		},
		ExpectedCalls: [][]interface{}{},
	},
	// Textures
	{
		Events: [][]interface{}{
			{"textures:classified", "Notch", textures.Username},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "textures.classified.username", int64(1)},
		},
	},
	{
		Events: [][]interface{}{
			{"textures:classified", "abcdef0123", textures.URLSuffix},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "textures.classified.url_suffix", int64(1)},
		},
	},
	{
		Events: [][]interface{}{
			{"textures:apply_failed", "eyJ0ZXh0dXJlcyI6e319", errors.New("attachment is broken")},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "textures.apply_failed", int64(1)},
		},
	},
	// Authentication
	{
		Events: [][]interface{}{
			{"authentication:success"},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "authentication.success", int64(1)},
		},
	},
	{
		Events: [][]interface{}{
			{"authentication:error", errors.New("error")},
		},
		ExpectedCalls: [][]interface{}{
			{"IncCounter", "authentication.failed", int64(1)},
		},
	},
}

func TestStatsReporter(t *testing.T) {
	for _, c := range statsReporterTestCases {
		t.Run("handle events", func(t *testing.T) {
			statsReporterMock := &StatsReporterMock{}
			for _, c := range c.ExpectedCalls {
				topicName, _ := c[0].(string)
				statsReporterMock.On(topicName, c[1:]...).Once()
			}

			reporter := &StatsReporter{
				StatsReporter: statsReporterMock,
			}

			d := dispatcher.New()
			reporter.ConfigureWithDispatcher(d)
			for _, e := range c.Events {
				eventName, _ := e[0].(string)
				d.Emit(eventName, e[1:]...)
			}

			statsReporterMock.AssertExpectations(t)
		})
	}
}

func TestStatsReporterRequestDuration(t *testing.T) {
	statsReporterMock := &StatsReporterMock{}
	statsReporterMock.On("IncCounter", "heads.request", int64(1)).Once()
	statsReporterMock.On("RecordTimer", "request.duration", mock.MatchedBy(func(d time.Duration) bool {
		return d > 0
	})).Once()

	reporter := &StatsReporter{
		StatsReporter: statsReporterMock,
	}

	d := dispatcher.New()
	reporter.ConfigureWithDispatcher(d)

	req := httptest.NewRequest("GET", "http://localhost/heads?identifier=Notch", nil)
	d.Emit("skulls:before_request", req)
	time.Sleep(time.Millisecond)
	d.Emit("skulls:after_request", req, 200)

	statsReporterMock.AssertExpectations(t)
}
