package ws

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/superbuilder/coreui/backend/internal/infrastructure/monitoring"
	"github.com/superbuilder/coreui/backend/internal/shared/id"
)

// ErrClosed is returned by Emit after Close.
var ErrClosed = errors.New("event hub closed")

// Frame is the wire format of one UI event.
type Frame struct {
	Event     string `json:"event"`
	Payload   any    `json:"payload"`
	Timestamp int64  `json:"timestamp"`
}

// Subscriber receives encoded frames. C is closed when the subscriber is
// removed, either by Unsubscribe, by Close or because it fell behind.
type Subscriber struct {
	ID id.SubscriberID
	C  <-chan []byte

	ch chan []byte
}

// Hub fans UI events out to every connected window.
type Hub struct {
	logger  *zap.Logger
	metrics *monitoring.Metrics
	buffer  int

	mu          sync.Mutex
	subscribers map[id.SubscriberID]*Subscriber
	closed      bool
}

// NewHub creates a hub whose subscribers each queue up to buffer frames.
func NewHub(logger *zap.Logger, metrics *monitoring.Metrics, buffer int) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	if buffer <= 0 {
		buffer = 256
	}
	return &Hub{
		logger:      logger,
		metrics:     metrics,
		buffer:      buffer,
		subscribers: make(map[id.SubscriberID]*Subscriber),
	}
}

// Emit encodes the event once and queues it for every subscriber. A
// subscriber whose queue is full is dropped so one stalled window cannot
// hold back the others. Emit never blocks on delivery.
func (h *Hub) Emit(event string, payload any) error {
	data, err := sonic.Marshal(Frame{
		Event:     event,
		Payload:   payload,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", event, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	for subID, sub := range h.subscribers {
		select {
		case sub.ch <- data:
		default:
			delete(h.subscribers, subID)
			close(sub.ch)
			if h.metrics != nil {
				h.metrics.RecordWSDropped()
			}
			h.logger.Warn("Dropping slow event subscriber",
				zap.String("subscriber", subID.String()),
				zap.String("event", event),
			)
		}
	}
	return nil
}

// Subscribe registers a new subscriber.
func (h *Hub) Subscribe() (*Subscriber, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrClosed
	}

	ch := make(chan []byte, h.buffer)
	sub := &Subscriber{
		ID: id.NewSubscriberID(),
		C:  ch,
		ch: ch,
	}
	h.subscribers[sub.ID] = sub
	return sub, nil
}

// Unsubscribe removes sub. It is safe to call more than once.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.subscribers[sub.ID]; ok && current == sub {
		delete(h.subscribers, sub.ID)
		close(sub.ch)
	}
}

// Subscribers returns the number of connected subscribers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Close removes every subscriber and rejects further events.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for subID, sub := range h.subscribers {
		delete(h.subscribers, subID)
		close(sub.ch)
	}
}
