// Package hub implements the realtime broadcast channel: task-created
// notifications and chat message relay to every connected client.
// Delivery is at-most-once, no history, no acknowledgment.
package hub

import (
	"sync"

	"taskboard/internal/logger"

	"github.com/google/uuid"
)

// Wire events carried over the channel.
const (
	EventNewTask = "new_task_notification"
	EventMessage = "message"
)

// Envelope is the single frame type exchanged with realtime clients.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// TaskCreated is the payload of EventNewTask.
type TaskCreated struct {
	Title string `json:"title"`
}

// subscriberBuffer bounds undelivered frames per client; a full buffer
// means the frame is dropped for that client, never that publish blocks.
const subscriberBuffer = 16

// Subscriber is one connected client's handle on the hub.
type Subscriber struct {
	id string
	ch chan Envelope
}

// C returns the channel the client reads broadcast frames from.
// It is closed on Unsubscribe.
func (s *Subscriber) C() <-chan Envelope { return s.ch }

// Hub is a registry of active subscribers. Publish iterates the current
// snapshot; clients subscribing afterwards never see earlier frames.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]*Subscriber
	log  *logger.Logger
}

func New(log *logger.Logger) *Hub {
	return &Hub{
		subs: make(map[string]*Subscriber),
		log:  log,
	}
}

// Subscribe registers a new client and returns its handle.
func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{
		id: uuid.NewString(),
		ch: make(chan Envelope, subscriberBuffer),
	}
	h.mu.Lock()
	h.subs[s.id] = s
	h.mu.Unlock()
	return s
}

// Unsubscribe removes the client and closes its channel. Frames still
// en route to it are dropped; the senders are not notified.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[s.id]; !ok {
		return
	}
	delete(h.subs, s.id)
	close(s.ch)
}

// Publish delivers env to every currently connected subscriber.
// It never blocks: a subscriber with a full buffer has the frame
// dropped and logged.
func (h *Hub) Publish(env Envelope) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.subs {
		select {
		case s.ch <- env:
		default:
			if h.log != nil {
				h.log.Infow("hub_frame_dropped", "subscriber", s.id, "event", env.Event)
			}
		}
	}
}

// PublishTaskCreated broadcasts a task-created notification.
func (h *Hub) PublishTaskCreated(title string) {
	h.Publish(Envelope{Event: EventNewTask, Data: TaskCreated{Title: title}})
}

// RelayMessage rebroadcasts a free-text chat message verbatim to all
// subscribers, including the sender.
func (h *Hub) RelayMessage(text string) {
	h.Publish(Envelope{Event: EventMessage, Data: text})
}
