package sse

import (
	"bytes"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/metrics"
)

// Event is one message on a stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a connected stream. EventChannel is closed when the client is
// unregistered or the hub stops.
type Client struct {
	ID           string
	EventChannel chan Event
	types        map[string]struct{} // empty means every type
}

func (c *Client) wants(eventType string) bool {
	if len(c.types) == 0 {
		return true
	}
	_, ok := c.types[eventType]
	return ok
}

// Hub fans broadcast events out to registered clients from a single goroutine
type Hub struct {
	clock     clock.Clock
	broadcast chan Event
	done      chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	mu      sync.RWMutex
	clients map[string]*Client
	stopped bool
}

// NewHub creates a Hub. Call Start before broadcasting.
func NewHub(clk clock.Clock) *Hub {
	return &Hub{
		clock:     clk,
		broadcast: make(chan Event, BroadcastBufferSize),
		done:      make(chan struct{}),
		clients:   make(map[string]*Client),
	}
}

// Start launches the fan-out loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the fan-out loop and closes every client channel. Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
	h.wg.Wait()

	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopped = true
	for id, c := range h.clients {
		close(c.EventChannel)
		delete(h.clients, id)
	}
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case evt := <-h.broadcast:
			h.fanOut(evt)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) fanOut(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !c.wants(evt.Type) {
			continue
		}
		// a slow reader loses the event instead of stalling everyone else
		select {
		case c.EventChannel <- evt:
		default:
			metrics.SSEEventsDropped.WithLabelValues(evt.Type).Inc()
		}
	}
}

// Register adds a client that receives only eventTypes, or everything when none are given.
// After Stop the returned client's channel is already closed.
func (h *Hub) Register(eventTypes []string) *Client {
	c := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
		types:        make(map[string]struct{}, len(eventTypes)),
	}
	for _, t := range eventTypes {
		c.types[t] = struct{}{}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		close(c.EventChannel)
		return c
	}
	h.clients[c.ID] = c
	return c
}

// Unregister removes the client and closes its channel. Unknown ids are ignored.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[clientID]; ok {
		close(c.EventChannel)
		delete(h.clients, clientID)
	}
}

// Broadcast queues an event for every interested client. It never blocks;
// when the queue is full the event is dropped.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	select {
	case h.broadcast <- h.newEvent(uuid.NewString(), eventType, payload):
	default:
		metrics.SSEEventsDropped.WithLabelValues(eventType).Inc()
	}
}

func (h *Hub) newEvent(id, eventType string, payload interface{}) Event {
	return Event{ID: id, Type: eventType, Timestamp: h.clock.Now().Unix(), Payload: payload}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders evt in text/event-stream framing with a JSON data line
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	if evt.ID != "" {
		b.WriteString("id: " + evt.ID + "\n")
	}
	b.WriteString("event: " + evt.Type + "\n")
	b.WriteString("data: ")
	b.Write(data)
	b.WriteString("\n\n")
	return b.Bytes(), nil
}
