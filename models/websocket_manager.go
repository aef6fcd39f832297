package models

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// WebSocketManager handles WebSocket connections and broadcasts notifications
type WebSocketManager struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	mu         sync.Mutex
	log        logrus.FieldLogger
}

// NewWebSocketManager creates a new WebSocket manager
func NewWebSocketManager(log logrus.FieldLogger) *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		log:        log.WithField("component", "websocket"),
	}
}

// Start runs the manager loop until ctx is cancelled
func (wsm *WebSocketManager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				close(wsm.done)
				wsm.mu.Lock()
				for client := range wsm.clients {
					client.Close()
					delete(wsm.clients, client)
				}
				wsm.mu.Unlock()
				return
			case client := <-wsm.register:
				wsm.mu.Lock()
				wsm.clients[client] = true
				total := len(wsm.clients)
				wsm.mu.Unlock()
				wsm.log.WithField("clients", total).Debug("websocket client connected")
			case client := <-wsm.unregister:
				wsm.mu.Lock()
				if _, ok := wsm.clients[client]; ok {
					delete(wsm.clients, client)
					client.Close()
				}
				total := len(wsm.clients)
				wsm.mu.Unlock()
				wsm.log.WithField("clients", total).Debug("websocket client disconnected")
			case message := <-wsm.broadcast:
				wsm.mu.Lock()
				for client := range wsm.clients {
					if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
						wsm.log.WithError(err).Warn("failed to send notification to client")
						client.Close()
						delete(wsm.clients, client)
					}
				}
				wsm.mu.Unlock()
			}
		}
	}()
}

// BroadcastNotification sends a notification to all connected clients.
// The message is dropped when the broadcast buffer is full.
func (wsm *WebSocketManager) BroadcastNotification(n Notification) {
	update := map[string]any{
		"type":         "notification",
		"notification": n,
	}

	jsonData, err := json.Marshal(update)
	if err != nil {
		wsm.log.WithError(err).Error("failed to marshal notification")
		return
	}

	select {
	case wsm.broadcast <- jsonData:
	default:
		wsm.log.WithField("notification", n.ID).Warn("broadcast buffer full, notification dropped")
	}
}

// RegisterClient registers a new WebSocket client
func (wsm *WebSocketManager) RegisterClient(conn *websocket.Conn) {
	select {
	case wsm.register <- conn:
	case <-wsm.done:
		conn.Close()
	}
}

// UnregisterClient unregisters a WebSocket client
func (wsm *WebSocketManager) UnregisterClient(conn *websocket.Conn) {
	select {
	case wsm.unregister <- conn:
	case <-wsm.done:
	}
}

// ClientCount returns the number of connected clients
func (wsm *WebSocketManager) ClientCount() int {
	wsm.mu.Lock()
	defer wsm.mu.Unlock()
	return len(wsm.clients)
}
