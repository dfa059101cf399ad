package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/thermovote/thermovote/internal/adapters/web/middleware"
	"github.com/thermovote/thermovote/internal/core/domain"
	"github.com/thermovote/thermovote/internal/core/ports"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")

		// Allow same-origin (no Origin header)
		if origin == "" {
			return true
		}

		allowedOrigins := []string{
			"http://localhost:8080",
			"http://127.0.0.1:8080",
			"http://[::1]:8080",
		}

		for _, allowed := range allowedOrigins {
			if origin == allowed {
				return true
			}
		}

		log.Printf("WebSocket: Rejected origin: %s", origin)
		return false
	},
}

// WSMessage is the envelope for every push to the UI.
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// WSManager pushes live zone and stats updates to connected clients.
type WSManager struct {
	Service ports.ZoneService
	Clients map[*websocket.Conn]string // session id per connection
	mu      sync.Mutex
}

// NewWSManager creates a new WSManager.
func NewWSManager(service ports.ZoneService) *WSManager {
	return &WSManager{
		Service: service,
		Clients: make(map[*websocket.Conn]string),
	}
}

// Start launches the periodic stats broadcast.
func (m *WSManager) Start(ctx context.Context) {
	go m.processAndBroadcast(ctx)
}

// HandleWebSocket upgrades the connection and registers the client.
func (m *WSManager) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	sid := middleware.SessionID(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}

	m.mu.Lock()
	m.Clients[conn] = sid
	m.mu.Unlock()

	log.Printf("WebSocket connected: session=%s", sid)

	// Clean up on disconnect
	go func() {
		defer conn.Close()
		defer func() {
			m.mu.Lock()
			delete(m.Clients, conn)
			m.mu.Unlock()
			log.Printf("WebSocket disconnected: session=%s", sid)
		}()
		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				break
			}
		}
	}()
}

func (m *WSManager) processAndBroadcast(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.broadcastStats()
		}
	}
}

func (m *WSManager) broadcastStats() {
	if !m.hasClients() {
		return
	}

	stats, err := m.Service.GetSystemStats(context.Background())
	if err != nil {
		log.Println("Error getting stats:", err)
		return
	}

	m.broadcastMessage(WSMessage{
		Type:    "stats",
		Payload: stats,
	})
}

// NotifyZoneUpdate pushes a freshly recomputed zone view to all clients.
// Called by the vote service after every accepted vote.
func (m *WSManager) NotifyZoneUpdate(view domain.ZoneView) {
	m.broadcastMessage(WSMessage{
		Type:    "zone.update",
		Payload: view,
	})
}

func (m *WSManager) hasClients() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Clients) > 0
}

func (m *WSManager) broadcastMessage(msg WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for conn := range m.Clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(m.Clients, conn)
		}
	}
}

// Ensure interface compliance
var _ ports.ZoneNotifier = (*WSManager)(nil)
