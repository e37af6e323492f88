package eventsubscribers

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mono83/slf"

	"github.com/elyby/skulls/internal/dispatcher"
	"github.com/elyby/skulls/internal/textures"
)

type StatsReporter struct {
	slf.StatsReporter

	timersMap   map[string]time.Time
	timersMutex sync.Mutex
}

func (s *StatsReporter) ConfigureWithDispatcher(d dispatcher.Subscriber) {
	s.timersMap = make(map[string]time.Time)

	// Per request events
	d.Subscribe("skulls:before_request", s.handleBeforeRequest)
	d.Subscribe("skulls:after_request", s.handleAfterRequest)

	// Textures events
	d.Subscribe("textures:classified", s.handleClassified)
	d.Subscribe("textures:apply_failed", s.incCounterHandler("textures.apply_failed"))

	// Authentication events
	d.Subscribe("authentication:success", s.incCounterHandler("authentication.success"))
	d.Subscribe("authentication:error", s.incCounterHandler("authentication.failed"))
}

func (s *StatsReporter) handleBeforeRequest(req *http.Request) {
	s.startTimeRecording(requestTimerKey(req))

	var key string
	m := req.Method
	p := req.URL.Path
	if p == "/heads" {
		key = "heads.request"
	} else if strings.HasPrefix(p, "/heads/uuid/") {
		key = "heads.uuid_request"
	} else if p == "/textures/encode" {
		key = "textures.encode_request"
	} else if p == "/textures/classify" {
		key = "textures.classify_request"
	} else if m == http.MethodPost && p == "/api/players" {
		key = "api.players.post.request"
	} else if m == http.MethodDelete && strings.HasPrefix(p, "/api/players/") {
		key = "api.players.delete.request"
	} else {
		return
	}

	s.IncCounter(key, 1)
}

func (s *StatsReporter) handleAfterRequest(req *http.Request, code int) {
	s.finalizeTimeRecording(requestTimerKey(req), "request.duration")

	var key string
	m := req.Method
	p := req.URL.Path
	if m == http.MethodPost && p == "/api/players" && code == http.StatusCreated {
		key = "api.players.post.success"
	} else if m == http.MethodPost && p == "/api/players" && code == http.StatusBadRequest {
		key = "api.players.post.validation_failed"
	} else if m == http.MethodDelete && strings.HasPrefix(p, "/api/players/") && code == http.StatusNoContent {
		key = "api.players.delete.success"
	} else if strings.HasPrefix(p, "/heads") && code == http.StatusNotImplemented {
		key = "heads.attachment_unsupported"
	} else {
		return
	}

	s.IncCounter(key, 1)
}

func (s *StatsReporter) handleClassified(_ string, kind textures.Kind) {
	s.IncCounter("textures.classified."+kind.String(), 1)
}

func (s *StatsReporter) incCounterHandler(name string) func(...interface{}) {
	return func(...interface{}) {
		s.IncCounter(name, 1)
	}
}

func (s *StatsReporter) startTimeRecording(timeKey string) {
	s.timersMutex.Lock()
	defer s.timersMutex.Unlock()
	s.timersMap[timeKey] = time.Now()
}

func (s *StatsReporter) finalizeTimeRecording(timeKey string, statName string) {
	s.timersMutex.Lock()
	defer s.timersMutex.Unlock()
	startedAt, ok := s.timersMap[timeKey]
	if !ok {
		return
	}

	delete(s.timersMap, timeKey)

	s.RecordTimer(statName, time.Since(startedAt))
}

// The same *http.Request is passed to both the before and after events
func requestTimerKey(req *http.Request) string {
	return fmt.Sprintf("request:%p", req)
}
