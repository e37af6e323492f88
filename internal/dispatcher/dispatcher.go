package dispatcher

import "github.com/asaskevich/EventBus"

type Subscriber interface {
	Subscribe(topic string, fn interface{})
	SubscribeAsync(topic string, fn interface{})
}

type Emitter interface {
	Emit(topic string, args ...interface{})
}

type Dispatcher interface {
	Subscriber
	Emitter
	// Wait blocks until all async handlers have finished
	Wait()
}

type localEventDispatcher struct {
	bus EventBus.Bus
}

func (d *localEventDispatcher) Subscribe(topic string, fn interface{}) {
	_ = d.bus.Subscribe(topic, fn)
}

// SubscribeAsync runs the handler in its own goroutine, one event at a time
func (d *localEventDispatcher) SubscribeAsync(topic string, fn interface{}) {
	_ = d.bus.SubscribeAsync(topic, fn, true)
}

func (d *localEventDispatcher) Emit(topic string, args ...interface{}) {
	d.bus.Publish(topic, args...)
}

func (d *localEventDispatcher) Wait() {
	d.bus.WaitAsync()
}

func New() Dispatcher {
	return &localEventDispatcher{
		bus: EventBus.New(),
	}
}
