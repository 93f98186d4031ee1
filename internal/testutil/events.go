package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

// Event is one emitted UI event.
type Event struct {
	Name    string
	Payload any
}

// Recorder captures emitted events in order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	fail   map[string]error
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{fail: make(map[string]error)}
}

// FailOn makes every emission of event return err. The event is not recorded.
func (r *Recorder) FailOn(event string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail[event] = err
}

// Emit records the event.
func (r *Recorder) Emit(event string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail[event]; err != nil {
		return err
	}
	r.events = append(r.events, Event{Name: event, Payload: payload})
	return nil
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Names returns the recorded event names in order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.events))
	for _, e := range r.events {
		names = append(names, e.Name)
	}
	return names
}

// Count returns how many times event was recorded.
func (r *Recorder) Count(event string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Name == event {
			n++
		}
	}
	return n
}

// Payloads returns the payloads recorded for event, in order.
func (r *Recorder) Payloads(event string) []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []any
	for _, e := range r.events {
		if e.Name == event {
			out = append(out, e.Payload)
		}
	}
	return out
}

// MockEmitter is a mock implementation of the event emitter for testing.
type MockEmitter struct {
	mock.Mock
}

// Emit mocks the Emit method.
func (m *MockEmitter) Emit(event string, payload any) error {
	args := m.Called(event, payload)
	return args.Error(0)
}
