package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skuma49/my-node-app/internal/models"
)

// subscriber channels are buffered; a slow reader drops events rather than
// blocking the mutating request.
const subscriberBuffer = 16

// Hub is an in-process broadcaster for collection change events.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]chan models.ChangeEvent
	nextID int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan models.ChangeEvent)}
}

// Publish stamps the event with an id and timestamp and fans it out to every
// subscriber.
func (h *Hub) Publish(entity, action string, recordID int) {
	ev := models.ChangeEvent{
		EventID:    uuid.NewString(),
		OccurredAt: time.Now().UTC(),
		Entity:     entity,
		Action:     action,
		RecordID:   recordID,
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe registers a feed consumer. The returned cancel func must be
// called to release the channel; after cancel the channel is closed.
func (h *Hub) Subscribe() (<-chan models.ChangeEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	ch := make(chan models.ChangeEvent, subscriberBuffer)
	h.subs[id] = ch
	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}
