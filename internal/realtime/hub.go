// Package realtime pushes entity-change events to connected WebSocket
// clients. Delivery is best-effort: a publish never fails or delays
// the mutating request that triggered it.
package realtime

import (
	"sync"
	"time"

	"restaurant-hub/internal/normalize"

	"github.com/rs/zerolog"
)

// Action describes the mutation that produced an event.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Event type tags carried in the envelope.
const (
	EventCategoryCreated    = "category_created"
	EventCategoryUpdated    = "category_updated"
	EventCategoryDeleted    = "category_deleted"
	EventMenuItemCreated    = "menu_item_created"
	EventMenuItemUpdated    = "menu_item_updated"
	EventMenuItemDeleted    = "menu_item_deleted"
	EventContactInfoUpdated = "contact_info_updated"
	EventSiteImageUploaded  = "site_image_uploaded"
	EventSiteImageDeleted   = "site_image_deleted"
	EventMenuImageUploaded  = "menu_image_uploaded"
)

// eventName is the single logical event every envelope is delivered
// under; clients subscribe once and dispatch on the Type field.
const eventName = "data_update"

// Envelope is the wire format for a pushed update.
type Envelope struct {
	Event     string `json:"event"`
	Type      string `json:"type"`
	Action    Action `json:"action"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

// Hub maintains the set of live clients and broadcasts envelopes to
// them. Client registration and publishing are safe to call
// concurrently.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	closed  bool
	logger  zerolog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
		logger:  logger.With().Str("component", "realtime-hub").Logger(),
	}
}

// Register adds a client to the broadcast set. The client receives
// only events published after registration; there is no backlog.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(c.send)
		return
	}
	h.clients[c] = true
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Info().Int("total_clients", total).Msg("realtime client connected")
}

// Unregister removes a client and closes its send channel. Safe to
// call more than once for the same client.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
	}
	total := len(h.clients)
	h.mu.Unlock()

	if ok {
		close(c.send)
		h.logger.Info().Int("total_clients", total).Msg("realtime client disconnected")
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish normalizes payload and enqueues an envelope to every
// connected client. A client whose buffer is full is dropped so one
// slow consumer cannot stall the rest. All faults are logged and
// swallowed; Publish never panics past its own boundary.
func (h *Hub) Publish(eventType string, action Action, payload any) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error().Interface("panic", rec).Str("type", eventType).Msg("publish panic recovered")
		}
	}()

	env := Envelope{
		Event:     eventName,
		Type:      eventType,
		Action:    action,
		Data:      normalize.Value(payload),
		Timestamp: time.Now().Format(time.RFC3339),
	}

	h.mu.Lock()
	var dropped []*Client
	for c := range h.clients {
		select {
		case c.send <- env:
		default:
			// Buffer full; the client is too slow to keep.
			dropped = append(dropped, c)
		}
	}
	for _, c := range dropped {
		delete(h.clients, c)
		close(c.send)
	}
	delivered := len(h.clients)
	h.mu.Unlock()

	if len(dropped) > 0 {
		h.logger.Warn().
			Int("dropped", len(dropped)).
			Str("type", eventType).
			Msg("dropped slow realtime clients")
	}
	h.logger.Debug().
		Str("type", eventType).
		Str("action", string(action)).
		Int("clients", delivered).
		Msg("event published")
}

// Close drops every client and rejects future registrations. Called
// once during shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[*Client]bool)
	h.closed = true
	h.mu.Unlock()

	for _, c := range clients {
		close(c.send)
	}
	if len(clients) > 0 {
		h.logger.Info().Int("clients_closed", len(clients)).Msg("closed all realtime clients during shutdown")
	}
}
