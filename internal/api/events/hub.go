// Package events streams store snapshots to HTTP clients as server-sent
// events.
package events

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Event is one named snapshot
type Event struct {
	Name string
	Data any
}

// Hub fans messages out to connected stream clients
type Hub struct {
	clients map[*client]bool
	mu      sync.RWMutex
	logger  *slog.Logger

	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}
	closeOnce  sync.Once
}

// NewHub creates a hub; Run must be started before clients connect
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		logger:     logger,
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
	}
}

// Run is the hub's event loop. It returns after Close.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("event stream opened",
				slog.String("remote_addr", c.remoteAddr),
				slog.Int("total_clients", count))

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				count := len(h.clients)
				h.mu.Unlock()
				h.logger.Info("event stream closed",
					slog.String("remote_addr", c.remoteAddr),
					slog.Duration("connection_duration", time.Since(c.connectedAt)),
					slog.Int("total_clients", count))
			} else {
				h.mu.Unlock()
			}

		case message := <-h.broadcast:
			h.mu.RLock()
			dropped := 0
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					dropped++
				}
			}
			h.mu.RUnlock()
			if dropped > 0 {
				h.logger.Warn("event dropped for slow clients", slog.Int("dropped", dropped))
			}

		case <-h.done:
			h.mu.Lock()
			count := len(h.clients)
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			h.logger.Info("event hub stopped", slog.Int("disconnected_clients", count))
			return
		}
	}
}

// Publish encodes e and queues it for every client. It never blocks: when
// the queue is full the event is dropped.
func (h *Hub) Publish(e Event) {
	msg, err := formatEvent(e)
	if err != nil {
		h.logger.Error("failed to encode event",
			slog.String("event", e.Name),
			slog.String("error", err.Error()))
		return
	}

	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("event dropped, hub queue full", slog.String("event", e.Name))
	}
}

// Close disconnects every client and stops Run
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) add(c *client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// formatEvent renders e in the text/event-stream format, one data line per
// line of the JSON payload
func formatEvent(e Event) ([]byte, error) {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return nil, err
	}
	return formatMessage(e.Name, string(data)), nil
}

func formatMessage(name, data string) []byte {
	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(name)
	b.WriteString("\n")
	for _, line := range strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return []byte(b.String())
}
