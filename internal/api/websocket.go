// Package api - WebSocket stream of settled rounds. A presentation layer
// subscribes here and animates toward each settlement it receives.
package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"casino-sim/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// WSClient represents a WebSocket client connection
type WSClient struct {
	conn   *websocket.Conn
	send   chan []byte
	player string
}

// Hub tracks connected clients per player and fans out settlements.
type Hub struct {
	log *zap.Logger

	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

// NewHub creates an empty hub.
func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		log:     log,
		clients: make(map[string]map[*WSClient]struct{}),
	}
}

func (hub *Hub) add(c *WSClient) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	if hub.clients[c.player] == nil {
		hub.clients[c.player] = make(map[*WSClient]struct{})
	}
	hub.clients[c.player][c] = struct{}{}
}

func (hub *Hub) remove(c *WSClient) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	if set, ok := hub.clients[c.player]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(hub.clients, c.player)
		}
	}
}

// Broadcast pushes a settled round to every connection of the player.
func (hub *Hub) Broadcast(player string, result *domain.RoundResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	msg, _ := json.Marshal(WSMessage{Type: "round_settled", Payload: payload})

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	for c := range hub.clients[player] {
		select {
		case c.send <- msg:
		default:
			// Channel full, drop message
		}
	}
}

// HandleWebSocket handles GET /api/v1/ws/rounds
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	player := playerFrom(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &WSClient{
		conn:   conn,
		send:   make(chan []byte, 256),
		player: player,
	}
	h.hub.add(client)

	go client.writePump()
	go h.readPump(client)
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *WSClient) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)
			w.Close()

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the connection. The stream is one-way; the only inbound
// message honored is a ping.
func (h *Handler) readPump(c *WSClient) {
	defer func() {
		h.hub.remove(c)
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	h.sendMessage(c, "connected", map[string]interface{}{
		"player":  c.player,
		"message": "Subscribed to round settlements",
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Debug("websocket closed", zap.Error(err))
			}
			break
		}

		var msg WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		if msg.Type == "ping" {
			h.sendMessage(c, "pong", map[string]interface{}{
				"timestamp": time.Now().Unix(),
			})
		}
	}
}

// sendMessage sends a message to the client
func (h *Handler) sendMessage(c *WSClient, msgType string, payload interface{}) {
	payloadBytes, _ := json.Marshal(payload)
	msgBytes, _ := json.Marshal(WSMessage{
		Type:    msgType,
		Payload: payloadBytes,
	})

	select {
	case c.send <- msgBytes:
	default:
		// Channel full, drop message
	}
}
